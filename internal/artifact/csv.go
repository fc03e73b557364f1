package artifact

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// FileName is "{Team_Name}_game_log_{season}.{format}".
func FileName(team string, season int, format string) string {
	return fmt.Sprintf("%s_game_log_%d.%s", strings.ReplaceAll(team, " ", "_"), season, format)
}

// WriteCSV writes a header row of pfr.Columns followed by one line per game.
func WriteCSV(w io.Writer, recs []pfr.GameRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(pfr.Columns); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write encodes recs in the given format.
func Write(w io.Writer, format string, recs []pfr.GameRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, recs)
	case FormatParquet:
		return WriteParquet(w, recs)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
