package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

// Config is everything the entry points read from the environment.
type Config struct {
	Team   string
	Season int
	Debug  bool

	Fetch pfr.FetchConfig

	RedisURL string // empty disables the page cache
	CacheTTL time.Duration

	TableName string // empty skips DynamoDB
	Bucket    string // empty skips S3
	Prefix    string
	Format    string // csv | parquet
}

// ------------------ env helpers ------------------

func envStr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envMillis(k string, def int) time.Duration {
	return time.Duration(envInt(k, def)) * time.Millisecond
}

// Load reads the environment. Unparseable numbers fall back to defaults.
func Load() Config {
	return Config{
		Team:   envStr("TEAM", ""),
		Season: envInt("SEASON", 2024),
		Debug:  envBool("DEBUG", false),
		Fetch: pfr.FetchConfig{
			BaseURL:     envStr("PFR_BASE_URL", pfr.BaseWWW),
			MaxAttempts: envInt("HTTP_MAX_ATTEMPTS", 6),
			RetryBase:   envMillis("HTTP_RETRY_BASE_MS", 400),
			RetryMax:    envMillis("HTTP_RETRY_MAX_MS", 6000),
			Cooldown:    envMillis("HTTP_COOLDOWN_MS", 7000),
			Timeout:     envMillis("HTTP_TIMEOUT_MS", 30000),
		},
		RedisURL:  envStr("REDIS_URL", ""),
		CacheTTL:  time.Duration(envInt("CACHE_TTL_MIN", 720)) * time.Minute,
		TableName: envStr("TABLE_NAME", ""),
		Bucket:    envStr("OUTPUT_BUCKET", ""),
		Prefix:    strings.Trim(envStr("OUTPUT_PREFIX", "game_logs"), "/"),
		Format:    strings.ToLower(envStr("OUTPUT_FORMAT", "csv")),
	}
}
