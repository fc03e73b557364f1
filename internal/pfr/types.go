package pfr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const ua = "Mozilla/5.0 (compatible; PFRGameLogBot/1.0; +https://example.com/bot)"

var (
	ErrUnknownTeam    = errors.New("unknown team")
	ErrSeasonNotFound = errors.New("season not found")
)

// SeasonNotFoundError is returned when PFR has no page for the team/season,
// usually because the franchise did not exist under that name that year.
type SeasonNotFoundError struct {
	Team   string
	Season int
}

func (e *SeasonNotFoundError) Error() string {
	return fmt.Sprintf("404: the team %q may not have existed in the %d season", e.Team, e.Season)
}

func (e *SeasonNotFoundError) Is(target error) bool { return target == ErrSeasonNotFound }

// GameRecord is one scheduled regular-season game. nil pointers are missing values.
type GameRecord struct {
	Week              *int
	Day               string
	RestDays          *int
	IsHome            bool
	DistanceTravelled *float64 // miles; 0 for home games
	Opponent          string
	Result            string
	PointsFor         *int
	PointsAllowed     *int
	TotYds            *int
	PassYds           *int
	RushYds           *int
	OppTotYds         *int
	OppPassYds        *int
	OppRushYds        *int
	IsPlayed          bool
}

// Columns is the output column contract, in order.
var Columns = []string{
	"week", "day", "rest_days", "home_team", "distance_travelled",
	"opp", "result", "points_for", "points_allowed",
	"tot_yds", "pass_yds", "rush_yds",
	"opp_tot_yds", "opp_pass_yds", "opp_rush_yds",
	"is_played",
}

// Values renders the record in Columns order. Missing values render as "".
func (g GameRecord) Values() []string {
	return []string{
		itoa(g.Week), g.Day, itoa(g.RestDays), strconv.FormatBool(g.IsHome), ftoa(g.DistanceTravelled),
		g.Opponent, g.Result, itoa(g.PointsFor), itoa(g.PointsAllowed),
		itoa(g.TotYds), itoa(g.PassYds), itoa(g.RushYds),
		itoa(g.OppTotYds), itoa(g.OppPassYds), itoa(g.OppRushYds),
		strconv.FormatBool(g.IsPlayed),
	}
}

func itoa(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func ftoa(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

// ParseSeason parses a season year like "2024".
func ParseSeason(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1920 {
		return 0, fmt.Errorf("invalid season %q", s)
	}
	return n, nil
}
