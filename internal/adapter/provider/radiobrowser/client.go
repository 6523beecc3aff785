// Package radiobrowser fetches station records, aggregate stats and the
// language list from a radio-browser directory mirror.
package radiobrowser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/radiocatalog/internal/config"
	"github.com/heartmarshall/radiocatalog/internal/domain"
	"github.com/heartmarshall/radiocatalog/pkg/ctxutil"
)

// Client talks to one radio-browser mirror. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	order      string
	reverse    bool
	maxRetries int
	initial    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from the upstream configuration.
func New(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		order:      cfg.Order,
		reverse:    cfg.Reverse,
		maxRetries: cfg.MaxRetries,
		initial:    cfg.RetryInitialInterval,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "radiobrowser"),
	}
}

// FetchStats returns the directory's aggregate counters.
func (c *Client) FetchStats(ctx context.Context) (domain.UpstreamStats, error) {
	var stats apiStats
	if err := c.getJSON(ctx, "/stats", nil, &stats); err != nil {
		return domain.UpstreamStats{}, err
	}
	return stats.toDomain(), nil
}

// FetchTotalCount returns the number of stations the directory reports.
func (c *Client) FetchTotalCount(ctx context.Context) (int, error) {
	stats, err := c.FetchStats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Stations, nil
}

// FetchPage returns up to limit stations starting at offset, in the
// configured order.
func (c *Client) FetchPage(ctx context.Context, offset, limit int) ([]domain.Station, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	if c.order != "" {
		q.Set("order", c.order)
		q.Set("reverse", strconv.FormatBool(c.reverse))
	}

	var page []apiStation
	if err := c.getJSON(ctx, "/stations", q, &page); err != nil {
		return nil, fmt.Errorf("page at offset %d: %w", offset, err)
	}

	out := make([]domain.Station, len(page))
	for i, s := range page {
		out[i] = s.toDomain()
	}
	return out, nil
}

// FetchLanguages returns every raw language label the directory knows.
func (c *Client) FetchLanguages(ctx context.Context) ([]domain.UpstreamLanguage, error) {
	var langs []apiLanguage
	if err := c.getJSON(ctx, "/languages", nil, &langs); err != nil {
		return nil, err
	}

	out := make([]domain.UpstreamLanguage, len(langs))
	for i, l := range langs {
		out[i] = domain.UpstreamLanguage{Name: l.Name, ISO639: l.ISO639, StationCount: l.StationCount}
	}
	return out, nil
}

// statusError is a non-2xx response.
type statusError struct {
	code int
}

func (e *statusError) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }

// retryable reports whether a failed attempt may succeed when repeated.
func retryable(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

// getJSON issues GET base+path and decodes the body into dst, retrying
// network errors, 5xx and 429 with exponential backoff.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	attempt := 0
	op := func() error {
		attempt++
		c.log.DebugContext(ctx, "radiobrowser request", slog.String("url", reqURL), slog.Int("attempt", attempt))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			_, _ = io.Copy(io.Discard, resp.Body)
			serr := &statusError{code: resp.StatusCode}
			if retryable(resp.StatusCode) {
				return serr
			}
			return backoff.Permanent(serr)
		}

		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return backoff.Permanent(fmt.Errorf("decode json: %w", err))
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		attrs := []any{
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Duration("wait", wait),
		}
		if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
			attrs = append(attrs, slog.String("run_id", id.String()))
		}
		if phase := ctxutil.PhaseFromCtx(ctx); phase != "" {
			attrs = append(attrs, slog.String("phase", phase))
		}
		c.log.WarnContext(ctx, "radiobrowser retry", attrs...)
	}

	if err := backoff.RetryNotify(op, c.policy(ctx), notify); err != nil {
		var serr *statusError
		if errors.As(err, &serr) {
			c.log.ErrorContext(ctx, "radiobrowser request failed", slog.String("path", path), slog.Int("status", serr.code))
		}
		return fmt.Errorf("%w: GET %s: %w", domain.ErrUpstreamFetch, path, err)
	}
	return nil
}

func (c *Client) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.initial > 0 {
		exp.InitialInterval = c.initial
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(max(c.maxRetries, 0))), ctx)
}
