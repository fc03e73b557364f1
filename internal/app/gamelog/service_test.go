package gamelog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tyler180/pfr-gamelog/internal/config"
	"github.com/tyler180/pfr-gamelog/internal/logging"
	"github.com/tyler180/pfr-gamelog/internal/pfr"
	"github.com/tyler180/pfr-gamelog/internal/store"
)

const page = `<table id="games"><tbody>
<tr><th data-stat="week_num">1</th><td data-stat="game_day_of_week">Thu</td><td data-stat="game_date">September 5</td>
<td data-stat="game_location"></td><td data-stat="opp">Baltimore Ravens</td><td data-stat="game_outcome">W</td>
<td data-stat="pts_off">27</td><td data-stat="pts_def">20</td></tr>
<tr><th data-stat="week_num">2</th><td data-stat="game_day_of_week">Sun</td><td data-stat="game_date">September 15</td>
<td data-stat="game_location">@</td><td data-stat="opp">Cincinnati Bengals</td><td data-stat="game_outcome">W</td>
<td data-stat="pts_off">26</td><td data-stat="pts_def">25</td></tr>
</tbody></table>`

type stubFetcher struct {
	html string
	err  error
}

func (s stubFetcher) FetchTeamSeason(context.Context, string, int) (string, error) {
	return s.html, s.err
}

type recDDB struct{ tables []string }

func (r *recDDB) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	for t := range in.RequestItems {
		r.tables = append(r.tables, t)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

type recS3 struct {
	key  string
	body []byte
}

func (r *recS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.key = *in.Key
	r.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestRun_AllSinks(t *testing.T) {
	var logs bytes.Buffer
	ddb := &recDDB{}
	s3c := &recS3{}
	cfg := config.Config{Team: "Kansas City Chiefs", Season: 2024, Format: "csv", TableName: "nfl_game_logs"}

	res, err := Run(context.Background(), cfg, Deps{
		Fetcher:  stubFetcher{html: page},
		DDB:      ddb,
		Uploader: &store.Uploader{Client: s3c, Bucket: "b", Prefix: "logs"},
		Logger:   logging.New(&logs, false),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Games) != 2 {
		t.Fatalf("games = %d", len(res.Games))
	}
	if res.FileName != "Kansas_City_Chiefs_game_log_2024.csv" {
		t.Fatalf("file = %q", res.FileName)
	}
	if s3c.key != "logs/season=2024/Kansas_City_Chiefs_game_log_2024.csv" || !bytes.Equal(s3c.body, res.Artifact) {
		t.Fatalf("s3 key=%q body len=%d", s3c.key, len(s3c.body))
	}
	if !strings.HasPrefix(string(res.Artifact), strings.Join(pfr.Columns, ",")) {
		t.Fatalf("artifact header: %q", string(res.Artifact))
	}
	if len(ddb.tables) != 1 || ddb.tables[0] != "nfl_game_logs" {
		t.Fatalf("ddb tables = %v", ddb.tables)
	}
	if !strings.Contains(logs.String(), "games=2") {
		t.Fatalf("summary log missing: %q", logs.String())
	}
}

func TestRun_NoOptionalSinks(t *testing.T) {
	res, err := Run(context.Background(), config.Config{Team: "Kansas City Chiefs", Season: 2024, Format: "parquet"},
		Deps{Fetcher: stubFetcher{html: page}})
	if err != nil {
		t.Fatal(err)
	}
	if res.S3Key != "" || len(res.Artifact) == 0 || !strings.HasSuffix(res.FileName, ".parquet") {
		t.Fatalf("%+v", res)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := Run(ctx, config.Config{Season: 2024}, Deps{}); err == nil {
		t.Fatal("missing team should fail")
	}
	_, err := Run(ctx, config.Config{Team: "Nowhere Nomads", Season: 2024}, Deps{Fetcher: stubFetcher{html: page}})
	if !errors.Is(err, pfr.ErrUnknownTeam) {
		t.Fatalf("err = %v", err)
	}
	_, err = Run(ctx, config.Config{Team: "Houston Texans", Season: 1990},
		Deps{Fetcher: stubFetcher{err: pfr.ErrPageNotFound}})
	if !errors.Is(err, pfr.ErrSeasonNotFound) {
		t.Fatalf("err = %v", err)
	}
	_, err = Run(ctx, config.Config{Team: "Houston Texans", Season: 2024, Format: "xml"},
		Deps{Fetcher: stubFetcher{html: page}})
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewFetcher_NoRedis(t *testing.T) {
	f, closer, err := NewFetcher(context.Background(), config.Config{}, nil)
	if err != nil || f == nil || closer == nil {
		t.Fatalf("f=%v err=%v", f, err)
	}
	closer()
	if _, ok := f.(*pfr.Fetcher); !ok {
		t.Fatalf("want *pfr.Fetcher without REDIS_URL, got %T", f)
	}
}

func TestNewFetcher_BadRedisURL(t *testing.T) {
	_, closer, err := NewFetcher(context.Background(), config.Config{RedisURL: "not a url"}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	closer()
}

// memDDB keeps written items per table and answers single-page Queries.
type memDDB struct {
	items map[string][]map[string]types.AttributeValue
}

func (m *memDDB) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if m.items == nil {
		m.items = map[string][]map[string]types.AttributeValue{}
	}
	for t, reqs := range in.RequestItems {
		for _, r := range reqs {
			m.items[t] = append(m.items[t], r.PutRequest.Item)
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func (m *memDDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	pk := in.ExpressionAttributeValues[":p"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, it := range m.items[*in.TableName] {
		if it["TeamSeason"].(*types.AttributeValueMemberS).Value == pk {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func TestStored_ReadsBackRun(t *testing.T) {
	db := &memDDB{}
	cfg := config.Config{Team: "Kansas City Chiefs", Season: 2024, TableName: "games"}
	res, err := Run(context.Background(), cfg, Deps{Fetcher: stubFetcher{html: page}, DDB: db})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := Stored(context.Background(), cfg, nil, db)
	if err != nil {
		t.Fatalf("Stored: %v", err)
	}
	if len(got) != len(res.Games) {
		t.Fatalf("got %d games, want %d", len(got), len(res.Games))
	}
	if got[1].Opponent != "Cincinnati Bengals" || got[1].IsHome {
		t.Fatalf("game 2 = %+v", got[1])
	}
	if got[1].RestDays == nil || *got[1].RestDays != 10 {
		t.Fatalf("game 2 rest days = %v", got[1].RestDays)
	}
}

func TestStored_Errors(t *testing.T) {
	db := &memDDB{}
	if _, err := Stored(context.Background(), config.Config{Team: "Kansas City Chiefs"}, nil, db); err == nil {
		t.Fatal("expected error without table name")
	}
	_, err := Stored(context.Background(), config.Config{Team: "Gotham Rogues", TableName: "games"}, nil, db)
	if !errors.Is(err, pfr.ErrUnknownTeam) {
		t.Fatalf("err = %v, want ErrUnknownTeam", err)
	}
}
