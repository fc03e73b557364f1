package pfr

import "testing"

func TestRestDays(t *testing.T) {
	sink := &captureSink{}
	got := RestDays([]string{
		"September 8",
		"September 15",
		"October 3",
		"December 29",
		"January 5",
		"Janury 12",
	}, 2023, sink)

	wantMissing(t, "rest[0]", got[0])
	wantInt(t, "rest[1]", got[1], 7)
	wantInt(t, "rest[2]", got[2], 18)
	wantInt(t, "rest[3]", got[3], 87)
	wantInt(t, "rest[4]", got[4], 7) // December -> January crosses into 2024
	wantMissing(t, "rest[5]", got[5])
	if sink.count(LevelError) != 1 {
		t.Fatalf("want one error diagnostic, got %v", sink.got)
	}
}

func TestRestDays_JanuaryToJanuary(t *testing.T) {
	// both in January: no rollover, both dated in the season year
	got := RestDays([]string{"January 5", "January 12"}, 2023, nil)
	wantInt(t, "rest[1]", got[1], 7)
}

func TestRestDays_MonthBoundary(t *testing.T) {
	got := RestDays([]string{"November 28", "December 5"}, 2024, nil)
	wantInt(t, "rest[1]", got[1], 7)
}

func TestRestDays_ParseFailures(t *testing.T) {
	cases := []struct {
		name       string
		prev, cur  string
		wantErrSub string
	}{
		{"empty label", "", "September 15", "Month Day"},
		{"three tokens", "Sun September 8", "September 15", "Month Day"},
		{"unknown month", "August 30", "September 6", "unknown month"},
		{"abbreviated month", "Sep 8", "Sep 15", "unknown month"},
		{"non numeric day", "September 8th", "September 15", "bad day"},
		{"invalid date", "September 31", "October 6", "invalid date"},
		{"out of order", "October 6", "September 29", "negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSink{}
			got := RestDays([]string{tc.prev, tc.cur, "October 13"}, 2024, sink)
			wantMissing(t, "rest[1]", got[1])
			if sink.count(LevelError) < 1 || !sink.contains(tc.wantErrSub) {
				t.Fatalf("diagnostics = %v, want error containing %q", sink.got, tc.wantErrSub)
			}
		})
	}
}

func TestRestDays_FailureDoesNotLeak(t *testing.T) {
	got := RestDays([]string{"September 8", "Bogus", "September 22", "September 29"}, 2024, nil)
	wantMissing(t, "rest[1]", got[1])
	wantMissing(t, "rest[2]", got[2]) // previous label is bad
	wantInt(t, "rest[3]", got[3], 7)
}

func TestRestDays_Empty(t *testing.T) {
	if got := RestDays(nil, 2024, nil); len(got) != 0 {
		t.Fatalf("len = %d", len(got))
	}
	got := RestDays([]string{"September 8"}, 2024, nil)
	if len(got) != 1 || got[0] != nil {
		t.Fatalf("single game: %v", got)
	}
}
