package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/jstittsworth/league-charts/internal/league"
)

const defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"

// CacheProvider interface for cache operations.
type CacheProvider interface {
	SetSimple(key string, value interface{}, expiration time.Duration) error
	GetSimple(key string, dest interface{}) error
}

// Options configures the ESPN Fantasy client.
type Options struct {
	LeagueID int
	Season   int
	// ESPN cookie pair; both empty for public leagues.
	ESPNS2 string
	SWID   string

	BaseURL          string
	Timeout          time.Duration
	RequestsPerSec   int
	BreakerThreshold int
}

// Client reads league and box-score records from the ESPN Fantasy v3
// API. It implements league.MatchupSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	leagueID   int
	season     int
	espnS2     string
	swid       string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	cache      CacheProvider
	logger     *logrus.Logger
}

// NewClient creates a new ESPN Fantasy API client. cache may be nil in
// one-shot mode; responses are then fetched fresh every time.
func NewClient(opts Options, cache CacheProvider, logger *logrus.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := opts.RequestsPerSec
	if rps <= 0 {
		rps = 10
	}
	threshold := opts.BreakerThreshold
	if threshold <= 0 {
		threshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "espn-fantasy",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		leagueID:   opts.LeagueID,
		season:     opts.Season,
		espnS2:     opts.ESPNS2,
		swid:       opts.SWID,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		breaker:    breaker,
		cache:      cache,
		logger:     logger,
	}
}

// GetMetadata fetches league name, team roster, and the current
// matchup period.
func (c *Client) GetMetadata(ctx context.Context) (*league.Metadata, error) {
	url := fmt.Sprintf("%s?view=mTeam&view=mSettings", c.leagueURL())

	var resp leagueResponse
	if err := c.makeRequest(ctx, url, "", &resp); err != nil {
		return nil, err
	}

	teams := make([]league.Team, 0, len(resp.Teams))
	for i, team := range resp.Teams {
		teams = append(teams, league.Team{
			ID:     team.ID,
			Abbrev: team.Abbrev,
			Name:   team.displayName(),
			Index:  i,
		})
	}

	return &league.Metadata{
		LeagueName:  resp.Settings.Name,
		Season:      c.season,
		CurrentWeek: resp.Status.CurrentMatchupPeriod,
		Teams:       teams,
	}, nil
}

// cachedWeek is the cache payload for one week's converted records.
type cachedWeek struct {
	Matchups    []league.Matchup    `json:"matchups"`
	Diagnostics []league.Diagnostic `json:"diagnostics"`
}

// GetWeekMatchups fetches box scores for one matchup period and
// converts them into domain matchups, skipping malformed records with
// diagnostics.
func (c *Client) GetWeekMatchups(ctx context.Context, week int) ([]league.Matchup, []league.Diagnostic, error) {
	cacheKey := fmt.Sprintf("espn:%d:%d:week:%d", c.leagueID, c.season, week)

	if c.cache != nil {
		var cached cachedWeek
		if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
			return cached.Matchups, cached.Diagnostics, nil
		}
	}

	url := fmt.Sprintf("%s?view=mMatchupScore&view=mBoxscore&scoringPeriodId=%d", c.leagueURL(), week)
	filter := fmt.Sprintf(`{"schedule":{"filterMatchupPeriodIds":{"value":[%d]}}}`, week)

	var resp leagueResponse
	if err := c.makeRequest(ctx, url, filter, &resp); err != nil {
		return nil, nil, err
	}

	matchups, diagnostics := convertSchedule(resp.Schedule, week)

	if c.cache != nil && len(matchups) > 0 {
		payload := cachedWeek{Matchups: matchups, Diagnostics: diagnostics}
		if err := c.cache.SetSimple(cacheKey, payload, 2*time.Hour); err != nil {
			c.logger.Warnf("Failed to cache week %d: %v", week, err)
		}
	}

	return matchups, diagnostics, nil
}

// convertSchedule validates the loose schedule entries and produces
// typed matchups plus diagnostics for everything it had to skip.
func convertSchedule(schedule []wireMatchup, week int) ([]league.Matchup, []league.Diagnostic) {
	var (
		matchups    []league.Matchup
		diagnostics []league.Diagnostic
	)

	for _, entry := range schedule {
		if entry.MatchupPeriodID != week {
			continue
		}

		home, homeDiags := convertSide(entry.Home, week)
		away, awayDiags := convertSide(entry.Away, week)
		diagnostics = append(diagnostics, homeDiags...)
		diagnostics = append(diagnostics, awayDiags...)

		if home == nil && away == nil {
			diagnostics = append(diagnostics, league.Diagnostic{
				Week:    week,
				Message: fmt.Sprintf("matchup %d has no usable sides", entry.ID),
			})
			continue
		}

		matchups = append(matchups, league.Matchup{
			Home:   home,
			Away:   away,
			Result: matchupResult(entry.Winner),
		})
	}

	return matchups, diagnostics
}

// matchupResult maps the winner field onto the domain verdict. Anything
// unrecognized is treated as still in progress.
func matchupResult(winner string) league.MatchupResult {
	switch winner {
	case "HOME":
		return league.ResultHome
	case "AWAY":
		return league.ResultAway
	case "TIE":
		return league.ResultTie
	default:
		return league.ResultUndecided
	}
}

// convertSide validates one side of a matchup. A nil side is a bye,
// not an error. Sides missing team identity or carrying a negative
// score are malformed and skipped.
func convertSide(side *wireSide, week int) (*league.MatchupSide, []league.Diagnostic) {
	if side == nil {
		return nil, nil
	}

	var diagnostics []league.Diagnostic

	if side.TeamID <= 0 {
		diagnostics = append(diagnostics, league.Diagnostic{
			Week:    week,
			Message: "matchup side missing team identity",
		})
		return nil, diagnostics
	}
	if side.TotalPoints < 0 {
		diagnostics = append(diagnostics, league.Diagnostic{
			Week:    week,
			Message: fmt.Sprintf("team %d has negative score %.2f", side.TeamID, side.TotalPoints),
		})
		return nil, diagnostics
	}

	converted := &league.MatchupSide{
		TeamID: side.TeamID,
		Score:  side.TotalPoints,
	}

	if roster := side.roster(); roster != nil {
		for _, entry := range roster.Entries {
			if entry.PlayerPoolEntry.Player.FullName == "" {
				diagnostics = append(diagnostics, league.Diagnostic{
					Week:    week,
					Message: fmt.Sprintf("team %d lineup entry missing player name", side.TeamID),
				})
				continue
			}
			converted.Lineup = append(converted.Lineup, league.PlayerContribution{
				Name:    entry.PlayerPoolEntry.Player.FullName,
				Points:  entry.PlayerPoolEntry.AppliedStatTotal,
				Starter: entry.isStarter(),
			})
		}
	}

	return converted, diagnostics
}

func (c *Client) leagueURL() string {
	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.season, c.leagueID)
}

// makeRequest performs a rate-limited GET through the circuit breaker
// with exponential backoff. Credential rejection is not retried.
func (c *Client) makeRequest(ctx context.Context, url, fantasyFilter string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", league.ErrSourceUnavailable, err)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doWithRetry(ctx, url, fantasyFilter)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", league.ErrSourceUnavailable, err)
	}

	if err := json.Unmarshal(body.([]byte), target); err != nil {
		return fmt.Errorf("%w: decode response: %v", league.ErrSourceUnavailable, err)
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, url, fantasyFilter string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			waitTime := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			c.logger.Warnf("ESPN request failed (attempt %d), waiting %v: %v", attempt, waitTime, lastErr)
			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, retryable, err := c.doOnce(ctx, url, fantasyFilter)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("request failed after retries: %w", lastErr)
}

func (c *Client) doOnce(ctx context.Context, url, fantasyFilter string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")
	if fantasyFilter != "" {
		req.Header.Set("X-Fantasy-Filter", fantasyFilter)
	}
	if c.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, err
		}
		return data, false, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, false, fmt.Errorf("credentials rejected (status %d)", resp.StatusCode)
	default:
		return nil, true, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}
