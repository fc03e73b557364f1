package gamelog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tyler180/pfr-gamelog/internal/artifact"
	"github.com/tyler180/pfr-gamelog/internal/config"
	"github.com/tyler180/pfr-gamelog/internal/logging"
	"github.com/tyler180/pfr-gamelog/internal/pfr"
	"github.com/tyler180/pfr-gamelog/internal/store"
)

// Deps are the collaborators of Run. DDB and Uploader are optional.
type Deps struct {
	Ref      *pfr.Reference
	Fetcher  pfr.PageFetcher
	DDB      store.DynamoDBAPI
	Uploader *store.Uploader
	Logger   *slog.Logger
}

type Result struct {
	Team     string
	Season   int
	Games    []pfr.GameRecord
	FileName string
	Artifact []byte
	S3Key    string
}

// Run builds one team-season game log, encodes it and ships it to whichever
// sinks are configured.
func Run(ctx context.Context, cfg config.Config, d Deps) (Result, error) {
	if cfg.Team == "" {
		return Result{}, errors.New("team is required")
	}
	ref := d.Ref
	if ref == nil {
		ref = pfr.DefaultReference()
	}
	format := cfg.Format
	if format == "" {
		format = artifact.FormatCSV
	}

	gl := &pfr.GameLogger{Ref: ref, Fetcher: d.Fetcher, Sink: pfr.SlogSink{Logger: d.Logger}}
	games, err := gl.GetTeamGameLog(ctx, cfg.Team, cfg.Season)
	if err != nil {
		return Result{}, err
	}
	if d.Logger != nil {
		d.Logger.Info("game log built", "team", cfg.Team, "season", cfg.Season, "games", len(games))
	}

	var buf bytes.Buffer
	if err := artifact.Write(&buf, format, games); err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", format, err)
	}
	res := Result{
		Team:     cfg.Team,
		Season:   cfg.Season,
		Games:    games,
		FileName: artifact.FileName(cfg.Team, cfg.Season, format),
		Artifact: buf.Bytes(),
	}

	if d.Uploader != nil {
		res.S3Key = d.Uploader.Key(cfg.Season, res.FileName)
		if err := d.Uploader.Put(ctx, res.S3Key, contentType(format), res.Artifact); err != nil {
			return res, err
		}
	}
	if d.DDB != nil && cfg.TableName != "" {
		path, _ := ref.TeamPath(cfg.Team)
		if err := store.PutGameRows(ctx, d.DDB, cfg.TableName, path, cfg.Season, games); err != nil {
			return res, fmt.Errorf("write game rows: %w", err)
		}
	}
	return res, nil
}

// Stored reads back a game log previously written by Run.
func Stored(ctx context.Context, cfg config.Config, ref *pfr.Reference, ddb store.DynamoDBReadAPI) ([]pfr.GameRecord, error) {
	if cfg.TableName == "" {
		return nil, errors.New("TABLE_NAME is required")
	}
	if ref == nil {
		ref = pfr.DefaultReference()
	}
	path, ok := ref.TeamPath(cfg.Team)
	if !ok {
		return nil, fmt.Errorf("%w: %q", pfr.ErrUnknownTeam, cfg.Team)
	}
	return store.QueryGameRows(ctx, ddb, cfg.TableName, path, cfg.Season)
}

func contentType(format string) string {
	if format == artifact.FormatParquet {
		return "application/vnd.apache.parquet"
	}
	return "text/csv"
}

// NewFetcher returns the HTTP fetcher, wrapped in a Redis page cache when
// REDIS_URL is set. The returned closer is never nil.
func NewFetcher(ctx context.Context, cfg config.Config, logger *slog.Logger) (pfr.PageFetcher, func(), error) {
	f := pfr.NewFetcher(cfg.Fetch)
	if cfg.RedisURL == "" {
		return f, func() {}, nil
	}
	rs, err := store.NewRedisPageStore(ctx, cfg.RedisURL)
	if err != nil {
		return nil, func() {}, fmt.Errorf("redis: %w", err)
	}
	cf := &store.CachedFetcher{Next: f, Store: rs, TTL: cfg.CacheTTL, Logger: logger}
	return cf, func() { _ = rs.Close() }, nil
}

// LambdaEntrypoint is the single Lambda handler exported from this package.
func LambdaEntrypoint(ctx context.Context, raw Raw) (string, error) {
	var e Event
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &e); err != nil {
			return "", fmt.Errorf("decode event: %w", err)
		}
	}

	cfg := config.Load()
	if e.Team != "" {
		cfg.Team = e.Team
	}
	if e.Season != 0 {
		cfg.Season = e.Season
	}
	if e.Format != "" {
		cfg.Format = strings.ToLower(e.Format)
	}
	logger := logging.NewLogger(cfg.Debug)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("aws config: %w", err)
	}

	fetcher, closeFetcher, err := NewFetcher(ctx, cfg, logger)
	if err != nil {
		return "", err
	}
	defer closeFetcher()

	d := Deps{Fetcher: fetcher, Logger: logger}
	if cfg.TableName != "" {
		d.DDB = dynamodb.NewFromConfig(awsCfg)
	}
	if cfg.Bucket != "" {
		d.Uploader = &store.Uploader{Client: s3.NewFromConfig(awsCfg), Bucket: cfg.Bucket, Prefix: cfg.Prefix}
	}

	res, err := Run(ctx, cfg, d)
	if err != nil {
		return "", err
	}
	log.Printf("OK gamelog: %d games for %s %d (s3=%q table=%q)", len(res.Games), res.Team, res.Season, res.S3Key, cfg.TableName)
	return fmt.Sprintf("games=%d", len(res.Games)), nil
}
