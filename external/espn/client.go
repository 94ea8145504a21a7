package espn

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gridiron-teams/internal/platform/logging"
	"github.com/riskibarqy/gridiron-teams/internal/platform/resilience"
	"github.com/riskibarqy/gridiron-teams/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTeamsURL       = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams"
	DefaultStandingsURL   = "https://site.api.espn.com/apis/v2/sports/football/nfl/standings"
	DefaultLeagueStatsURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/statistics"
	defaultTimeout        = 10 * time.Second
	maxResponseBytes      = 6 << 20
)

var errTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	TeamsURL       string
	StandingsURL   string
	LeagueStatsURL string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads NFL team data from ESPN's public site API. Requests are never retried.
type Client struct {
	httpClient     *http.Client
	teamsURL       string
	standingsURL   string
	leagueStatsURL string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreakerFromConfig(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("espn circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient:     httpClient,
		teamsURL:       normalizeURL(cfg.TeamsURL, DefaultTeamsURL),
		standingsURL:   normalizeURL(cfg.StandingsURL, DefaultStandingsURL),
		leagueStatsURL: normalizeURL(cfg.LeagueStatsURL, DefaultLeagueStatsURL),
		timeout:        timeout,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	var env teamsEnvelope
	if err := c.doJSON(ctx, c.teamsURL, &env); err != nil {
		return nil, crerr.Wrap(err, "fetch espn teams")
	}
	return mapTeams(env), nil
}

func (c *Client) FetchStandings(ctx context.Context) ([]usecase.ExternalStanding, error) {
	var env standingsEnvelope
	if err := c.doJSON(ctx, c.standingsURL, &env); err != nil {
		return nil, crerr.Wrap(err, "fetch espn standings")
	}
	return mapStandings(env), nil
}

func (c *Client) FetchTeamInfo(ctx context.Context, teamID string) (usecase.ExternalTeamInfo, error) {
	fullURL, err := c.teamURL(teamID, "")
	if err != nil {
		return usecase.ExternalTeamInfo{}, err
	}

	var env teamDetailEnvelope
	if err := c.doJSON(ctx, fullURL, &env); err != nil {
		return usecase.ExternalTeamInfo{}, crerr.Wrapf(err, "fetch espn team team_id=%s", teamID)
	}
	if env.Team == nil {
		return usecase.ExternalTeamInfo{}, crerr.Mark(
			crerr.Newf("espn team payload has no team object team_id=%s", teamID),
			usecase.ErrUpstream,
		)
	}
	return mapTeamInfo(*env.Team), nil
}

func (c *Client) FetchTeamStatistics(ctx context.Context, teamID string) ([]usecase.ExternalStatCategory, error) {
	fullURL, err := c.teamURL(teamID, "/statistics")
	if err != nil {
		return nil, err
	}

	var env teamStatisticsEnvelope
	if err := c.doJSON(ctx, fullURL, &env); err != nil {
		return nil, crerr.Wrapf(err, "fetch espn team statistics team_id=%s", teamID)
	}
	return mapStatCategories(env), nil
}

func (c *Client) FetchTeamRoster(ctx context.Context, teamID string) ([]usecase.ExternalRosterGroup, error) {
	fullURL, err := c.teamURL(teamID, "/roster")
	if err != nil {
		return nil, err
	}

	var env rosterEnvelope
	if err := c.doJSON(ctx, fullURL, &env); err != nil {
		return nil, crerr.Wrapf(err, "fetch espn team roster team_id=%s", teamID)
	}
	return mapRoster(env), nil
}

func (c *Client) FetchLeagueLeaders(ctx context.Context) ([]usecase.ExternalLeaderCategory, error) {
	var env leagueStatisticsEnvelope
	if err := c.doJSON(ctx, c.leagueStatsURL, &env); err != nil {
		return nil, crerr.Wrap(err, "fetch espn league statistics")
	}
	return mapLeaderCategories(env), nil
}

func (c *Client) teamURL(teamID, suffix string) (string, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return "", crerr.Wrap(usecase.ErrInvalidInput, "team id is required")
	}
	return c.teamsURL + "/" + url.PathEscape(teamID) + suffix, nil
}

func (c *Client) doJSON(ctx context.Context, fullURL string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", string(c.breaker.State()), "url", fullURL)
			return crerr.Mark(
				crerr.Wrap(usecase.ErrDependencyUnavailable, "espn is temporarily unavailable"),
				usecase.ErrUpstream,
			)
		}
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		c.recordOutcome(ctx, err)
	}
	if err != nil {
		return crerr.Mark(err, usecase.ErrUpstream)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "decode espn payload"), usecase.ErrUpstream)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = crerr.Newf("espn status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		if isTransientStatus(resp.StatusCode) {
			err = crerr.Mark(err, errTransient)
		}
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "status", resp.StatusCode, "error", err)
		return nil, err
	}

	return raw, nil
}

// recordOutcome feeds the breaker. Client errors such as 404 say the dependency is
// healthy; cancellations by the caller say nothing and only free the probe slot.
func (c *Client) recordOutcome(ctx context.Context, err error) {
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
	case !crerr.Is(err, errTransient):
		c.breaker.RecordSuccess()
	case ctx.Err() != nil:
		c.breaker.Release()
	default:
		c.breaker.RecordFailure()
	}
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func normalizeURL(raw, fallback string) string {
	value := strings.TrimRight(strings.TrimSpace(raw), "/")
	if value == "" {
		return fallback
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
