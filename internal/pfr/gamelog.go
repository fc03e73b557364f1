package pfr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher retrieves a team season page. It returns an error wrapping
// ErrPageNotFound when the site answers 404.
type PageFetcher interface {
	FetchTeamSeason(ctx context.Context, teamPath string, season int) (string, error)
}

// GameLogger builds a team's regular-season game log from its PFR season page.
type GameLogger struct {
	Ref     *Reference
	Fetcher PageFetcher
	Sink    Sink
}

// GetTeamGameLog validates the team, fetches its season page and runs the
// filter / extract / rest-days passes over it.
func (g *GameLogger) GetTeamGameLog(ctx context.Context, team string, season int) ([]GameRecord, error) {
	ref := g.Ref
	if ref == nil {
		ref = DefaultReference()
	}
	path, ok := ref.TeamPath(team)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}

	html, err := g.Fetcher.FetchTeamSeason(ctx, path, season)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return nil, &SeasonNotFoundError{Team: team, Season: season}
		}
		return nil, fmt.Errorf("fetch %s %d: %w", team, season, err)
	}
	return ParseGameLog(html, team, season, ref, g.Sink)
}

// ParseGameLog runs the pipeline over an already retrieved page. A page
// without a results table yields an empty log and an error diagnostic.
func ParseGameLog(html, team string, season int, ref *Reference, sink Sink) ([]GameRecord, error) {
	sink = sinkOrDiscard(sink)

	// PFR ships most tables inside HTML comments
	clean := strings.ReplaceAll(html, "<!--", "")
	clean = strings.ReplaceAll(clean, "-->", "")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	rows, found := GameRows(doc)
	if !found {
		sink.Report(LevelError, "No tbody found in the HTML content.")
		return []GameRecord{}, nil
	}
	return buildGameLog(FilterRegularSeason(rows), team, season, ref, sink), nil
}

func buildGameLog(rows []RawGameRow, team string, season int, ref *Reference, sink Sink) []GameRecord {
	first := make([]extracted, 0, len(rows))
	for _, r := range rows {
		first = append(first, extractGame(r, team, ref, sink))
	}

	labels := make([]string, len(first))
	for i, e := range first {
		labels[i] = e.dateLabel
	}
	rest := RestDays(labels, season, sink)

	out := make([]GameRecord, len(first))
	for i, e := range first {
		rec := e.rec
		rec.RestDays = rest[i]
		rec.IsPlayed = rec.PointsAllowed != nil
		out[i] = rec
	}
	return out
}
