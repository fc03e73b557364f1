package pfr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const BaseWWW = "https://www.pro-football-reference.com"

var ErrPageNotFound = errors.New("page not found")

// Upper bound on a server-requested Retry-After wait.
const maxRetryAfter = 2 * time.Minute

// FetchConfig tunes the HTTP client. Zero values fall back to defaults.
type FetchConfig struct {
	BaseURL     string
	MaxAttempts int           // attempts per request
	RetryBase   time.Duration // base backoff
	RetryMax    time.Duration // cap per-attempt backoff
	Cooldown    time.Duration // used on 429 when no Retry-After
	Timeout     time.Duration
}

func (c FetchConfig) withDefaults() FetchConfig {
	if c.BaseURL == "" {
		c.BaseURL = BaseWWW
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 6
	}
	if c.RetryBase <= 0 {
		c.RetryBase = 400 * time.Millisecond
	}
	if c.RetryMax <= 0 {
		c.RetryMax = 6 * time.Second
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 7 * time.Second
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// Fetcher downloads team season pages, retrying 429/5xx and transport errors.
type Fetcher struct {
	cli *resty.Client
}

func NewFetcher(cfg FetchConfig) *Fetcher {
	cfg = cfg.withDefaults()
	// resty clamps every RetryAfter result to RetryMaxWaitTime, so the clamp
	// is raised to cover 429 waits and the 5xx cap is applied in backoff.
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", ua).
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetRetryCount(cfg.MaxAttempts - 1).
		SetRetryWaitTime(cfg.RetryBase).
		SetRetryMaxWaitTime(max(cfg.RetryMax, cfg.Cooldown, maxRetryAfter)).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			code := r.StatusCode()
			return code == http.StatusTooManyRequests || (code >= 500 && code <= 599)
		}).
		SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			if r != nil && r.StatusCode() == http.StatusTooManyRequests {
				if d := parseRetryAfter(r.Header().Get("Retry-After")); d > 0 {
					return min(d, maxRetryAfter), nil
				}
				return cfg.Cooldown, nil
			}
			attempt := 1
			if r != nil && r.Request != nil && r.Request.Attempt > 0 {
				attempt = r.Request.Attempt
			}
			return backoff(cfg.RetryBase, cfg.RetryMax, attempt), nil
		})
	return &Fetcher{cli: cli}
}

// backoff doubles base per attempt (1-based), capped at limit.
func backoff(base, limit time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt && d < limit; i++ {
		d *= 2
	}
	return min(d, limit)
}

// FetchTeamSeason GETs /teams/{teamPath}/{season}.htm.
func (f *Fetcher) FetchTeamSeason(ctx context.Context, teamPath string, season int) (string, error) {
	path := fmt.Sprintf("/teams/%s/%d.htm", teamPath, season)
	resp, err := f.cli.R().
		SetContext(ctx).
		SetHeader("Referer", fmt.Sprintf("%s/years/%d/", f.cli.BaseURL, season)).
		Get(path)
	if err != nil {
		return "", err
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		return resp.String(), nil
	case code == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrPageNotFound, path)
	default:
		return "", fmt.Errorf("status %d for %s (body len=%d)", code, path, len(resp.Body()))
	}
}

func parseRetryAfter(h string) time.Duration {
	h = strings.TrimSpace(h)
	if h == "" {
		return 0
	}
	// seconds form
	if secs, err := strconv.Atoi(h); err == nil {
		return time.Duration(secs) * time.Second
	}
	// HTTP date
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
