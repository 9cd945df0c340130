package cricbuzz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

const (
	defaultBaseURL      = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultTimeout      = 20 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 8 << 20

	// Used by the upstream feed when a fixture lists no team name.
	fallbackTeam1 = "Team1"
	fallbackTeam2 = "Team2"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads series listings, scorecards and commentary from the Cricbuzz
// RapidAPI feed. It implements usecase.MatchProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	retry      resilience.RetryPolicy
	guard      *resilience.Guard
	flight     resilience.Group[[]byte]
	logger     *logging.Logger
}

var _ usecase.MatchProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		if parsed, err := url.Parse(baseURL); err == nil {
			apiHost = parsed.Host
		}
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiHost:    apiHost,
		retry:      resilience.RetryPolicy{MaxRetries: max(cfg.MaxRetries, 0), Backoff: backoff},
		guard:      resilience.NewGuard(withBreakerLogging(cfg.CircuitBreaker, logger)),
		logger:     logger.Named("cricbuzz"),
	}
}

// ListSeriesMatches returns every fixture of a series. Ad blocks and groups
// without a match map are ignored.
func (c *Client) ListSeriesMatches(ctx context.Context, seriesID string) ([]usecase.ExternalMatch, error) {
	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, crerr.New("series id is required")
	}

	raw, err := c.get(ctx, "/series/v1/"+url.PathEscape(seriesID))
	if err != nil {
		return nil, fmt.Errorf("fetch series series_id=%s: %w", seriesID, err)
	}

	var envelope seriesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "decode series series_id=%s", seriesID)
	}

	out := make([]usecase.ExternalMatch, 0, 80)
	for _, group := range envelope.MatchDetails {
		if group.MatchDetailsMap == nil {
			continue
		}
		for _, item := range group.MatchDetailsMap.Match {
			info := item.MatchInfo
			if info.MatchID <= 0 {
				continue
			}
			out = append(out, usecase.ExternalMatch{
				ID:    info.MatchID,
				Team1: firstNonEmpty(info.Team1.TeamName, fallbackTeam1),
				Team2: firstNonEmpty(info.Team2.TeamName, fallbackTeam2),
				State: strings.TrimSpace(info.State),
			})
		}
	}
	return out, nil
}

func (c *Client) FetchScorecard(ctx context.Context, matchID int64) ([]byte, error) {
	return c.fetchMatchDocument(ctx, matchID, "scard")
}

func (c *Client) FetchCommentary(ctx context.Context, matchID int64) ([]byte, error) {
	return c.fetchMatchDocument(ctx, matchID, "comm")
}

func (c *Client) fetchMatchDocument(ctx context.Context, matchID int64, kind string) ([]byte, error) {
	if matchID <= 0 {
		return nil, crerr.Newf("match id must be greater than zero, got %d", matchID)
	}
	raw, err := c.get(ctx, "/mcenter/v1/"+strconv.FormatInt(matchID, 10)+"/"+kind)
	if err != nil {
		return nil, fmt.Errorf("fetch %s match_id=%d: %w", kind, matchID, err)
	}
	if !sonic.Valid(raw) {
		return nil, crerr.Newf("%s match_id=%d is not valid json", kind, matchID)
	}
	return raw, nil
}

// get shares one in-flight request per path and runs it through the circuit
// breaker with linear-backoff retries.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path
	raw, err, _ := c.flight.Do(path, func() ([]byte, error) {
		var body []byte
		err := c.guard.Execute(func() error {
			return resilience.Retry(ctx, c.retry, func(attempt int) error {
				payload, err := c.execute(ctx, fullURL)
				if err != nil {
					c.logger.DebugContext(ctx, "cricbuzz request attempt failed", "path", path, "attempt", attempt+1, "error", err)
					return err
				}
				body = payload
				return nil
			})
		})
		return body, err
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "cricbuzz circuit breaker rejected request", "state", c.guard.State())
		return nil, fmt.Errorf("%w: score feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cricbuzz request failed", "path", path, "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, resilience.MarkTransient(fmt.Errorf("send request: %s", sanitize(err.Error(), c.apiKey)))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resilience.MarkTransient(fmt.Errorf("read response body: %w", err))
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	statusErr := fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	if isRetryableStatus(resp.StatusCode) {
		return nil, resilience.MarkTransient(statusErr)
	}
	return nil, statusErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

func sanitize(value, secret string) string {
	value = strings.TrimSpace(value)
	if secret != "" {
		value = strings.ReplaceAll(value, secret, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func withBreakerLogging(cfg resilience.CircuitBreakerConfig, logger *logging.Logger) resilience.CircuitBreakerConfig {
	if cfg.OnStateChange != nil {
		return cfg
	}
	cfg.OnStateChange = func(from, to resilience.CircuitState) {
		logger.Warn("cricbuzz circuit breaker state changed", "from", from, "to", to)
	}
	return cfg
}
