package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL    = "https://jp.finalfantasyxiv.com/lodestone"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
	initialBackoff    = 2 * time.Second
	defaultMaxPage    = 8 << 20
	userAgent         = "lodestone-resume/1.0 (+https://github.com/jjenkins/resume)"
)

// ClientOptions configures a LodestoneClient. Zero values fall back to defaults,
// except MaxRetries where 0 means a single attempt.
type ClientOptions struct {
	BaseURL       string
	Timeout       time.Duration
	MaxRetries    int // retries after the first attempt; negative means the default
	MaxPageSize   int64
	Backoff       time.Duration
	RatePerSecond float64 // <= 0 disables rate limiting
	HTTPClient    *http.Client
}

// LodestoneClient retrieves character achievement pages from the Lodestone
type LodestoneClient struct {
	client     *http.Client
	baseURL    string
	maxRetries int
	maxPage    int64
	backoff    time.Duration
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewLodestoneClient creates a new Lodestone client
func NewLodestoneClient(opts ClientOptions, logger *zap.Logger) *LodestoneClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = defaultMaxPage
	}
	if opts.Backoff <= 0 {
		opts.Backoff = initialBackoff
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}

	return &LodestoneClient{
		client:     opts.HTTPClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		maxRetries: opts.MaxRetries,
		maxPage:    opts.MaxPageSize,
		backoff:    opts.Backoff,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// AchievementPageURL returns the address of a character's achievement log
func (c *LodestoneClient) AchievementPageURL(characterID string) string {
	return fmt.Sprintf("%s/character/%s/achievement/kind/1/", c.baseURL, url.PathEscape(characterID))
}

// FetchAchievementPage retrieves the raw markup of a character's achievement page.
// Every failure is a *FetchError.
func (c *LodestoneClient) FetchAchievementPage(ctx context.Context, characterID string) (string, error) {
	pageURL := c.AchievementPageURL(characterID)

	body, status, err := c.fetchWithRetry(ctx, pageURL)
	if err != nil {
		return "", &FetchError{CharacterID: characterID, StatusCode: status, Err: err}
	}

	c.logger.Debug("fetched achievement page",
		zap.String("character_id", characterID),
		zap.Int("bytes", len(body)))

	return string(body), nil
}

// errNotRetryable marks responses that will not change on retry (e.g. 404)
var errNotRetryable = errors.New("not retryable")

// fetchWithRetry performs an HTTP GET with exponential backoff retry.
// The returned status is the last HTTP status seen, or 0 if none.
func (c *LodestoneClient) fetchWithRetry(ctx context.Context, pageURL string) ([]byte, int, error) {
	var lastErr error
	var lastStatus int
	backoff := c.backoff
	attempts := c.maxRetries + 1

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying fetch",
				zap.String("url", pageURL),
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr))

			select {
			case <-ctx.Done():
				return nil, lastStatus, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, lastStatus, err
		}

		body, status, err := c.get(ctx, pageURL)
		lastStatus = status
		if err == nil {
			return body, status, nil
		}
		if errors.Is(err, errNotRetryable) {
			return nil, status, err
		}
		lastErr = err
	}

	return nil, lastStatus, fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

func (c *LodestoneClient) get(ctx context.Context, pageURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w: %w", err, errNotRetryable)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "ja")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	// read one byte past the limit to tell a full page from a truncated one
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxPage+1))
	if err != nil {
		return nil, resp.StatusCode, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if int64(len(body)) > c.maxPage {
			// status 0 so the FetchError reports the size, not "HTTP 200"
			return nil, 0, fmt.Errorf("page exceeds %d bytes: %w", c.maxPage, errNotRetryable)
		}
		return body, resp.StatusCode, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, resp.StatusCode, fmt.Errorf("rate limited (HTTP 429)")
	case resp.StatusCode >= 500:
		return nil, resp.StatusCode, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return nil, resp.StatusCode, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errNotRetryable)
	}
}
