package pfr

import (
	"strings"
	"testing"
)

type diag struct {
	Level Level
	Msg   string
}

// captureSink records diagnostics for assertions.
type captureSink struct {
	got []diag
}

func (c *captureSink) Report(level Level, msg string) {
	c.got = append(c.got, diag{level, msg})
}

func (c *captureSink) count(level Level) int {
	n := 0
	for _, d := range c.got {
		if d.Level == level {
			n++
		}
	}
	return n
}

func (c *captureSink) contains(sub string) bool {
	for _, d := range c.got {
		if strings.Contains(d.Msg, sub) {
			return true
		}
	}
	return false
}

// mapRow is a RawGameRow backed by a map; a key that is not set is an absent cell.
type mapRow map[string]string

func (m mapRow) Cell(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func rowsOf(ms ...mapRow) []RawGameRow {
	out := make([]RawGameRow, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

func wantInt(t *testing.T, field string, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s = missing, want %d", field, want)
	}
	if *got != want {
		t.Fatalf("%s = %d, want %d", field, *got, want)
	}
}

func wantMissing[T any](t *testing.T, field string, got *T) {
	t.Helper()
	if got != nil {
		t.Fatalf("%s = %v, want missing", field, *got)
	}
}
