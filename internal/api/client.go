package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Client provides read access to the ProjectHub backend.
type Client interface {
	// Health checks whether the backend is reachable and reports healthy.
	Health(ctx context.Context) error

	Projects(ctx context.Context) ([]domain.Project, error)
	Project(ctx context.Context, id string) (domain.Project, error)
	Breakdown(ctx context.Context, projectID string) (domain.Breakdown, error)
	Milestones(ctx context.Context, projectID string) ([]domain.Milestone, error)
	Risks(ctx context.Context, projectID string) ([]domain.RiskRecord, error)
	BudgetItems(ctx context.Context, projectID string) ([]domain.BudgetItem, error)
	Stats(ctx context.Context) (domain.PortfolioStats, error)
}

// httpClient implements Client against the ProjectHub HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that talks to the configured backend.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Health(ctx context.Context) error {
	var hr healthRecord
	if err := c.get(ctx, "/api/health", &hr); err != nil {
		return err
	}
	if hr.Status != "" && hr.Status != "healthy" {
		return fmt.Errorf("%w: backend reports %q", ErrRemote, hr.Status)
	}
	return nil
}

func (c *httpClient) Projects(ctx context.Context) ([]domain.Project, error) {
	var records []ProjectRecord
	if err := c.get(ctx, "/api/projects", &records); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(records))
	for _, r := range records {
		p, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *httpClient) Project(ctx context.Context, id string) (domain.Project, error) {
	var record ProjectRecord
	if err := c.get(ctx, "/api/projects/"+id, &record); err != nil {
		return domain.Project{}, err
	}
	p, err := record.ToDomain()
	if err != nil {
		return domain.Project{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return p, nil
}

func (c *httpClient) Breakdown(ctx context.Context, projectID string) (domain.Breakdown, error) {
	var payload wbsPayload
	if err := c.get(ctx, "/api/projects/"+projectID+"/wbs", &payload); err != nil {
		return domain.Breakdown{}, err
	}
	b, err := BreakdownFromRecords(payload.Tasks, payload.CriticalPath)
	if err != nil {
		return domain.Breakdown{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

func (c *httpClient) Milestones(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	var records []MilestoneRecord
	if err := c.get(ctx, "/api/projects/"+projectID+"/milestones", &records); err != nil {
		return nil, err
	}
	out := make([]domain.Milestone, 0, len(records))
	for _, r := range records {
		m, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *httpClient) Risks(ctx context.Context, projectID string) ([]domain.RiskRecord, error) {
	var records []RiskRecord
	if err := c.get(ctx, "/api/projects/"+projectID+"/risks", &records); err != nil {
		return nil, err
	}
	out := make([]domain.RiskRecord, 0, len(records))
	for _, r := range records {
		risk, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		out = append(out, risk)
	}
	return out, nil
}

func (c *httpClient) BudgetItems(ctx context.Context, projectID string) ([]domain.BudgetItem, error) {
	var records []BudgetItemRecord
	if err := c.get(ctx, "/api/projects/"+projectID+"/budget", &records); err != nil {
		return nil, err
	}
	out := make([]domain.BudgetItem, 0, len(records))
	for _, r := range records {
		item, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *httpClient) Stats(ctx context.Context) (domain.PortfolioStats, error) {
	var record StatsRecord
	if err := c.get(ctx, "/api/dashboard/stats", &record); err != nil {
		return domain.PortfolioStats{}, err
	}
	return record.ToDomain(), nil
}

// BreakdownFromRecords converts wire records into the node and task
// collections. The snapshot reader shares it so both sources derive
// identical breakdowns from identical records.
func BreakdownFromRecords(records []WBSTaskRecord, criticalPath []string) (domain.Breakdown, error) {
	b := domain.Breakdown{CriticalPath: criticalPath}
	for _, r := range records {
		n, err := r.ToDomain()
		if err != nil {
			return domain.Breakdown{}, err
		}
		task, err := r.ToTask()
		if err != nil {
			return domain.Breakdown{}, err
		}
		b.Nodes = append(b.Nodes, n)
		b.Tasks = append(b.Tasks, task)
	}
	return b, nil
}

// wbsPayload tolerates both shapes of the breakdown endpoint: the bare
// record array and the envelope carrying a critical_path id list.
type wbsPayload struct {
	Tasks        []WBSTaskRecord
	CriticalPath []string
}

func (p *wbsPayload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &p.Tasks)
	}
	var envelope struct {
		Tasks        []WBSTaskRecord `json:"tasks"`
		CriticalPath []string        `json:"critical_path"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	p.Tasks = envelope.Tasks
	p.CriticalPath = envelope.CriticalPath
	return nil
}

// get performs one request against the backend. There is no retry
// loop: a failed fetch surfaces immediately and the caller decides
// whether to fall back.
func (c *httpClient) get(ctx context.Context, endpoint string, out any) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	status, err := c.doGet(ctx, endpoint, out)
	latency := time.Since(start).Milliseconds()
	if err == nil {
		c.observer.OnCallComplete(CallEvent{
			Endpoint:  endpoint,
			Status:    status,
			LatencyMs: latency,
			Success:   true,
		})
		return nil
	}

	err = classify(ctx, err)
	c.observer.OnCallComplete(CallEvent{
		Endpoint:  endpoint,
		Status:    status,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *httpClient) doGet(ctx context.Context, endpoint string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return resp.StatusCode, fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode, trimBody(body))
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return resp.StatusCode, nil
}

// classify maps transport failures onto the package sentinels. Errors
// that already carry a sentinel pass through; a canceled context stays
// context.Canceled so callers can tell cancellation from failure.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRemote), errors.Is(err, ErrDecode):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case ctx.Err() != nil:
		return ctx.Err()
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	case errors.Is(err, ErrRemote):
		return "REMOTE"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

func trimBody(body []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
