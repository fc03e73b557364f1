package artifact

import (
	"io"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

// GameLogRow is the parquet shape of pfr.GameRecord; column names follow pfr.Columns.
type GameLogRow struct {
	Week              *int64   `parquet:"week,optional"`
	Day               string   `parquet:"day"`
	RestDays          *int64   `parquet:"rest_days,optional"`
	HomeTeam          bool     `parquet:"home_team"`
	DistanceTravelled *float64 `parquet:"distance_travelled,optional"`
	Opp               string   `parquet:"opp"`
	Result            string   `parquet:"result"`
	PointsFor         *int64   `parquet:"points_for,optional"`
	PointsAllowed     *int64   `parquet:"points_allowed,optional"`
	TotYds            *int64   `parquet:"tot_yds,optional"`
	PassYds           *int64   `parquet:"pass_yds,optional"`
	RushYds           *int64   `parquet:"rush_yds,optional"`
	OppTotYds         *int64   `parquet:"opp_tot_yds,optional"`
	OppPassYds        *int64   `parquet:"opp_pass_yds,optional"`
	OppRushYds        *int64   `parquet:"opp_rush_yds,optional"`
	IsPlayed          bool     `parquet:"is_played"`
}

func i64(p *int) *int64 {
	if p == nil {
		return nil
	}
	v := int64(*p)
	return &v
}

func ToRow(g pfr.GameRecord) GameLogRow {
	return GameLogRow{
		Week:              i64(g.Week),
		Day:               g.Day,
		RestDays:          i64(g.RestDays),
		HomeTeam:          g.IsHome,
		DistanceTravelled: g.DistanceTravelled,
		Opp:               g.Opponent,
		Result:            g.Result,
		PointsFor:         i64(g.PointsFor),
		PointsAllowed:     i64(g.PointsAllowed),
		TotYds:            i64(g.TotYds),
		PassYds:           i64(g.PassYds),
		RushYds:           i64(g.RushYds),
		OppTotYds:         i64(g.OppTotYds),
		OppPassYds:        i64(g.OppPassYds),
		OppRushYds:        i64(g.OppRushYds),
		IsPlayed:          g.IsPlayed,
	}
}

// WriteParquet writes recs as a single snappy-compressed parquet file.
func WriteParquet(w io.Writer, recs []pfr.GameRecord) error {
	pw := parquet.NewGenericWriter[GameLogRow](w, parquet.Compression(&parquet.Snappy))
	rows := make([]GameLogRow, len(recs))
	for i, g := range recs {
		rows[i] = ToRow(g)
	}
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}
