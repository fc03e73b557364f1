package pfr

import (
	"fmt"
	"strings"

	"github.com/golang/geo/s2"
)

const earthRadiusMiles = 3958.7613

// extracted is a first-pass record plus the raw date label the rest-days
// pass needs.
type extracted struct {
	rec       GameRecord
	dateLabel string
}

func textCell(r RawGameRow, key string) string {
	txt, ok := r.Cell(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(txt)
}

func intCell(r RawGameRow, key string, sink Sink) *int {
	txt, ok := r.Cell(key)
	return IntOrMissing(txt, ok, sink)
}

// ExtractGame maps one filtered row to a GameRecord. RestDays and IsPlayed
// are left for later passes.
func ExtractGame(r RawGameRow, team string, ref *Reference, sink Sink) GameRecord {
	return extractGame(r, team, ref, sink).rec
}

func extractGame(r RawGameRow, team string, ref *Reference, sink Sink) extracted {
	opp := textCell(r, colOpp)
	// home unless the location cell is present and reads "@"
	loc, ok := r.Cell(colLocation)
	isHome := !ok || strings.TrimSpace(loc) != "@"

	var dist *float64
	if isHome {
		dist = floatPtr(0)
	} else {
		dist = awayDistance(team, opp, ref, sink)
	}

	return extracted{
		dateLabel: textCell(r, colDate),
		rec: GameRecord{
			Week:              intCell(r, colWeek, sink),
			Day:               textCell(r, colDay),
			IsHome:            isHome,
			DistanceTravelled: dist,
			Opponent:          opp,
			Result:            textCell(r, colOutcome),
			PointsFor:         intCell(r, colPtsOff, sink),
			PointsAllowed:     intCell(r, colPtsDef, sink),
			TotYds:            intCell(r, colYardsOff, sink),
			PassYds:           intCell(r, colPassYdsOff, sink),
			RushYds:           intCell(r, colRushYdsOff, sink),
			OppTotYds:         intCell(r, colYardsDef, sink),
			OppPassYds:        intCell(r, colPassYdsDef, sink),
			OppRushYds:        intCell(r, colRushYdsDef, sink),
		},
	}
}

func awayDistance(team, opp string, ref *Reference, sink Sink) *float64 {
	sink = sinkOrDiscard(sink)
	teamCity, ok := ref.TeamCity(team)
	if !ok {
		sink.Report(LevelWarning, fmt.Sprintf("Team city not found for team: '%s'. Setting distance_travelled to missing.", team))
		return nil
	}
	oppCity, ok := ref.TeamCity(opp)
	if !ok {
		sink.Report(LevelWarning, fmt.Sprintf("Opponent city not found for opponent: '%s'. Setting distance_travelled to missing.", opp))
		return nil
	}
	from, ok1 := ref.Location(teamCity)
	to, ok2 := ref.Location(oppCity)
	if !ok1 || !ok2 {
		sink.Report(LevelWarning, fmt.Sprintf("Location data missing for cities: '%s' or '%s'. Setting distance_travelled to missing.", teamCity, oppCity))
		return nil
	}
	return floatPtr(HaversineMiles(from, to))
}

// HaversineMiles is the great-circle distance between two cities in miles.
func HaversineMiles(a, b CityLocation) float64 {
	from := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	to := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return from.Distance(to).Radians() * earthRadiusMiles
}
