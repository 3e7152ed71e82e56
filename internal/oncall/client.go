// Package oncall talks to the on-call management service: rendered
// schedule shifts, incident and alert listings, and escalation policies.
package oncall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

type Config struct {
	BaseURL  string        `split_words:"true" required:"true"`
	APIToken string        `split_words:"true" required:"true"`
	Timeout  time.Duration `default:"30s"`
	PageSize int           `split_words:"true" default:"500"`
}

// ErrNotFound is returned when the service has no record of the requested
// schedule or escalation policy.
var ErrNotFound = errors.New("not found")

//go:generate go tool mockgen -source=client.go -destination=mocks/oncall_mock.go -package=mocks
type Client interface {
	Shifts(ctx context.Context, scheduleID string, since, until time.Time) ([]Shift, error)
	Incidents(ctx context.Context, since, until time.Time) ([]Incident, error)
	Alerts(ctx context.Context, since, until time.Time) ([]Alert, error)
	EscalationPolicy(ctx context.Context, policyID string) (*EscalationPolicy, error)
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

// New builds a Client that authenticates every request with the
// configured bearer token.
func New(ctx context.Context, cfg Config) (Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q missing scheme or host", cfg.BaseURL)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = cfg.Timeout

	return &client{cfg: cfg, httpClient: httpClient}, nil
}

type shiftsResponse struct {
	Shifts []Shift `json:"shifts"`
	More   bool    `json:"more"`
}

func (c *client) Shifts(ctx context.Context, scheduleID string, since, until time.Time) ([]Shift, error) {
	path := "/api/v1/schedules/" + url.PathEscape(scheduleID) + "/shifts"

	var out shiftsResponse
	if err := c.get(ctx, path, timeRange(since, until), &out); err != nil {
		return nil, err
	}

	return out.Shifts, nil
}

type incidentsResponse struct {
	Incidents []Incident `json:"incidents"`
	More      bool       `json:"more"`
}

func (c *client) Incidents(ctx context.Context, since, until time.Time) ([]Incident, error) {
	q := timeRange(since, until)
	q.Set("limit", strconv.Itoa(c.cfg.PageSize))

	var out incidentsResponse
	if err := c.get(ctx, "/api/v1/incidents", q, &out); err != nil {
		return nil, err
	}
	if out.More {
		slog.WarnContext(ctx, "incident listing truncated to a single page", "limit", c.cfg.PageSize)
	}

	return out.Incidents, nil
}

type alertsResponse struct {
	Alerts []Alert `json:"alerts"`
	More   bool    `json:"more"`
}

func (c *client) Alerts(ctx context.Context, since, until time.Time) ([]Alert, error) {
	q := timeRange(since, until)
	q.Set("limit", strconv.Itoa(c.cfg.PageSize))

	var out alertsResponse
	if err := c.get(ctx, "/api/v1/alerts", q, &out); err != nil {
		return nil, err
	}
	if out.More {
		slog.WarnContext(ctx, "alert listing truncated to a single page", "limit", c.cfg.PageSize)
	}

	return out.Alerts, nil
}

type escalationPolicyResponse struct {
	EscalationPolicy EscalationPolicy `json:"escalation_policy"`
}

func (c *client) EscalationPolicy(ctx context.Context, policyID string) (*EscalationPolicy, error) {
	path := "/api/v1/escalation_policies/" + url.PathEscape(policyID)

	var out escalationPolicyResponse
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}

	return &out.EscalationPolicy, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.JoinPath(c.cfg.BaseURL, path)
	if err != nil {
		return fmt.Errorf("building URL for %s: %w", path, err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("requesting %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}

func timeRange(since, until time.Time) url.Values {
	return url.Values{
		"since": []string{since.Format(time.RFC3339)},
		"until": []string{until.Format(time.RFC3339)},
	}
}
