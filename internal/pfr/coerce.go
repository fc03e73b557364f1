package pfr

import (
	"fmt"
	"strconv"
	"strings"
)

// IntOrMissing coerces a cell to an integer. Absent or blank cells are
// missing without a diagnostic; anything that is not all decimal digits is
// missing and reported as a warning.
func IntOrMissing(text string, present bool, sink Sink) *int {
	if !present {
		return nil
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	if !isDigits(s) {
		sinkOrDiscard(sink).Report(LevelWarning, fmt.Sprintf("Unexpected value encountered: '%s'. Setting to missing.", s))
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// all digits but overflows int
		sinkOrDiscard(sink).Report(LevelWarning, fmt.Sprintf("Unexpected value encountered: '%s'. Setting to missing.", s))
		return nil
	}
	return &n
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
