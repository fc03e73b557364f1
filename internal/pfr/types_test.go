package pfr

import (
	"sort"
	"testing"
)

func TestParseSeason(t *testing.T) {
	for in, want := range map[string]int{"2024": 2024, " 1999 ": 1999, "1920": 1920} {
		got, err := ParseSeason(in)
		if err != nil || got != want {
			t.Errorf("ParseSeason(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "twenty", "1919", "24.0"} {
		if _, err := ParseSeason(in); err == nil {
			t.Errorf("ParseSeason(%q) should fail", in)
		}
	}
}

func TestTeamNames_SortedAndResolvable(t *testing.T) {
	ref := DefaultReference()
	names := ref.TeamNames()
	if len(names) != len(teams) {
		t.Fatalf("got %d names, want %d", len(names), len(teams))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatal("names are not sorted")
	}
	for _, n := range names {
		if _, ok := ref.TeamPath(n); !ok {
			t.Fatalf("%q has no path", n)
		}
	}
}
