package pfr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Months a regular season can span.
var seasonMonths = map[string]time.Month{
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
	"January":   time.January,
}

// RestDays computes, for each date label ("September 8"), the calendar days
// since the previous label. The first entry is always nil. A December ->
// January step moves the later date into season+1. Unparseable or
// out-of-order pairs yield nil plus an error diagnostic.
func RestDays(labels []string, season int, sink Sink) []*int {
	sink = sinkOrDiscard(sink)
	out := make([]*int, len(labels))
	for i := 1; i < len(labels); i++ {
		n, err := restBetween(labels[i-1], labels[i], season)
		if err != nil {
			sink.Report(LevelError, fmt.Sprintf("Error parsing game dates: '%s' and '%s'. Error: %v", labels[i-1], labels[i], err))
			continue
		}
		out[i] = intPtr(n)
	}
	return out
}

func restBetween(prevLabel, curLabel string, season int) (int, error) {
	pm, pd, err := parseMonthDay(prevLabel)
	if err != nil {
		return 0, err
	}
	cm, cd, err := parseMonthDay(curLabel)
	if err != nil {
		return 0, err
	}
	curYear := season
	if pm == time.December && cm == time.January {
		curYear = season + 1
	}
	prev, err := calendarDate(season, pm, pd)
	if err != nil {
		return 0, err
	}
	cur, err := calendarDate(curYear, cm, cd)
	if err != nil {
		return 0, err
	}
	days := int(cur.Sub(prev).Hours() / 24)
	if days < 0 {
		return 0, fmt.Errorf("negative rest days (%d)", days)
	}
	return days, nil
}

func parseMonthDay(label string) (time.Month, int, error) {
	parts := strings.Split(label, " ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"Month Day\", got %q", label)
	}
	m, ok := seasonMonths[parts[0]]
	if !ok {
		return 0, 0, fmt.Errorf("unknown month %q", parts[0])
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad day %q", parts[1])
	}
	return m, d, nil
}

// calendarDate rejects dates time.Date would silently normalize (September 31).
func calendarDate(year int, m time.Month, d int) (time.Time, error) {
	t := time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	if t.Month() != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("invalid date %s %d, %d", m, d, year)
	}
	return t, nil
}
