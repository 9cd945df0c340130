package superset

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout = 15 * time.Second
	loginPath      = "/api/v1/security/login"
	chartPath      = "/api/v1/chart/"
)

type ClientConfig struct {
	BaseURL        string
	Username       string
	Password       string
	Provider       string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client logs into a Superset instance and touches chart endpoints so the
// dashboards pick up freshly rebuilt tables.
type Client struct {
	http     *fasthttp.Client
	baseURL  string
	username string
	password string
	provider string
	timeout  time.Duration
	guard    *resilience.Guard
	logger   *logging.Logger
}

var _ usecase.DashboardRefresher = (*Client)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Provider string `json:"provider"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, crerr.New("superset username is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" {
		provider = "db"
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "cricket-stats",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:  baseURL,
		username: strings.TrimSpace(cfg.Username),
		password: cfg.Password,
		provider: provider,
		timeout:  timeout,
		guard:    resilience.NewGuard(withBreakerLogging(cfg.CircuitBreaker, logger)),
		logger:   logger.Named("superset"),
	}, nil
}

// Login exchanges the configured credentials for a bearer token.
func (c *Client) Login(ctx context.Context) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	err := sonic.ConfigStd.NewEncoder(buf).Encode(loginRequest{
		Username: c.username,
		Password: c.password,
		Provider: c.provider,
	})
	if err != nil {
		return "", crerr.Wrap(err, "encode login request")
	}

	status, body, err := c.do(ctx, fasthttp.MethodPost, c.baseURL+loginPath, "", buf.B)
	if err != nil {
		return "", fmt.Errorf("superset login: %w", err)
	}
	if status != fasthttp.StatusOK {
		return "", crerr.Newf("superset login status=%d body=%s", status, abbreviateBody(body))
	}

	var resp loginResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return "", crerr.Wrap(err, "decode login response")
	}
	if strings.TrimSpace(resp.AccessToken) == "" {
		return "", crerr.New("superset login returned no access token")
	}
	return resp.AccessToken, nil
}

// RefreshChart fetches one chart so Superset re-runs its query.
func (c *Client) RefreshChart(ctx context.Context, accessToken string, chartID int) error {
	if chartID <= 0 {
		return crerr.Newf("chart id must be greater than zero, got %d", chartID)
	}
	status, body, err := c.do(ctx, fasthttp.MethodGet, c.baseURL+chartPath+strconv.Itoa(chartID), accessToken, nil)
	if err != nil {
		return fmt.Errorf("refresh chart chart_id=%d: %w", chartID, err)
	}
	if status != fasthttp.StatusOK {
		return crerr.Newf("refresh chart chart_id=%d status=%d body=%s", chartID, status, abbreviateBody(body))
	}
	c.logger.DebugContext(ctx, "superset chart refreshed", "chart_id", chartID)
	return nil
}

func (c *Client) do(ctx context.Context, method, target, token string, payload []byte) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	var (
		status int
		body   []byte
	)
	err := c.guard.Execute(func() error {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(target)
		req.Header.SetMethod(method)
		req.Header.Set("Accept", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if payload != nil {
			req.Header.SetContentType("application/json")
			req.SetBody(payload)
		}

		var err error
		if deadline, ok := ctx.Deadline(); ok {
			err = c.http.DoDeadline(req, resp, deadline)
		} else {
			err = c.http.DoTimeout(req, resp, c.timeout)
		}
		if err != nil {
			return resilience.MarkTransient(crerr.Wrapf(err, "%s %s", method, redactURL(target)))
		}

		status = resp.StatusCode()
		body = append([]byte(nil), resp.Body()...)
		if status >= fasthttp.StatusInternalServerError {
			return resilience.MarkTransient(crerr.Newf("%s %s status=%d", method, redactURL(target), status))
		}
		return nil
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "superset circuit breaker rejected request", "state", c.guard.State())
		return 0, nil, fmt.Errorf("%w: superset is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return status, body, err
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return crerr.New("superset base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return crerr.Wrapf(err, "parse superset base url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return crerr.Newf("superset base url must be http or https, got %q", raw)
	}
	if parsed.Host == "" {
		return crerr.Newf("superset base url has no host: %q", raw)
	}
	return nil
}

func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	parsed.User = nil
	parsed.RawQuery = ""
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func withBreakerLogging(cfg resilience.CircuitBreakerConfig, logger *logging.Logger) resilience.CircuitBreakerConfig {
	if cfg.OnStateChange != nil {
		return cfg
	}
	cfg.OnStateChange = func(from, to resilience.CircuitState) {
		logger.Warn("superset circuit breaker state changed", "from", from, "to", to)
	}
	return cfg
}
