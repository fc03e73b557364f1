package pfr

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// data-stat keys on the PFR schedule & game results table.
const (
	colWeek        = "week_num"
	colDay         = "game_day_of_week"
	colDate        = "game_date"
	colOpp         = "opp"
	colLocation    = "game_location"
	colOutcome     = "game_outcome"
	colPtsOff      = "pts_off"
	colPtsDef      = "pts_def"
	colYardsOff    = "yards_off"
	colPassYdsOff  = "pass_yds_off"
	colRushYdsOff  = "rush_yds_off"
	colYardsDef    = "yards_def"
	colPassYdsDef  = "pass_yds_def"
	colRushYdsDef  = "rush_yds_def"
	colBoxscore    = "boxscore_word"
	playoffsMarker = "Playoffs"
	byeWeekMarker  = "Bye Week"
)

// RawGameRow exposes named-cell lookup on one results-table row.
// A missing cell reports ok=false, never an error.
type RawGameRow interface {
	Cell(key string) (text string, ok bool)
}

type selRow struct {
	tr *goquery.Selection
}

func (r selRow) Cell(key string) (string, bool) {
	c := r.tr.Find(fmt.Sprintf(`th[data-stat=%q], td[data-stat=%q]`, key, key)).First()
	if c.Length() == 0 {
		return "", false
	}
	return c.Text(), true
}

// GameRows returns every row of the primary results table body, in order.
// found is false when the page has no table body at all.
func GameRows(doc *goquery.Document) (rows []RawGameRow, found bool) {
	body := doc.Find("table#games > tbody").First()
	if body.Length() == 0 {
		body = doc.Find("tbody").First()
	}
	if body.Length() == 0 {
		return nil, false
	}
	body.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, selRow{tr: tr})
	})
	return rows, true
}

func cellIs(r RawGameRow, key, want string) bool {
	txt, ok := r.Cell(key)
	return ok && strings.TrimSpace(txt) == want
}

// FilterRegularSeason keeps the played-or-scheduled regular-season rows:
// everything from the Playoffs marker onward is dropped, then bye weeks and
// canceled games.
func FilterRegularSeason(rows []RawGameRow) []RawGameRow {
	out := make([]RawGameRow, 0, len(rows))
	for _, r := range rows {
		if cellIs(r, colDate, playoffsMarker) {
			break
		}
		if cellIs(r, colOpp, byeWeekMarker) {
			continue
		}
		if box, ok := r.Cell(colBoxscore); ok && strings.EqualFold(strings.TrimSpace(box), "canceled") {
			continue
		}
		out = append(out, r)
	}
	return out
}
