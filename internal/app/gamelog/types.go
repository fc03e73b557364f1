package gamelog

import "encoding/json"

// Event is the Lambda payload. Empty fields fall back to env config.
type Event struct {
	Team   string `json:"team"`   // full name, e.g. "Kansas City Chiefs"
	Season int    `json:"season"` // e.g. 2024
	Format string `json:"format"` // csv | parquet
}

// Raw is used by Lambda entrypoint to avoid tight coupling to the event type at the edge.
type Raw = json.RawMessage
