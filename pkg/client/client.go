// Package client implements the invoker the wizard UI calls for each batch of
// name suggestions. It talks to the generation API with a bounded per-attempt
// timeout and a single sequential retry, then falls back to locally generated
// mock suggestions so the UI never dead-ends on upstream failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/namegenius/api/internal/config"
	"github.com/namegenius/api/internal/logger"
	"github.com/namegenius/api/internal/metrics"
	"github.com/namegenius/api/internal/namegen"
)

// Input is the raw generation request the UI submits.
type Input = namegen.GenerateNamesRequest

// Suggestion is one generated candidate name.
type Suggestion = namegen.NameSuggestion

// Phase tags the invoker's state transitions: Sending on the first attempt,
// Retrying after a failure, then Success or Fallback.
type Phase string

const (
	PhaseSending  Phase = "sending"
	PhaseRetrying Phase = "retrying"
	PhaseSuccess  Phase = "success"
	PhaseFallback Phase = "fallback"
)

// Attempt reports one state transition to the observer, with the error that
// caused it where applicable.
type Attempt struct {
	Phase Phase
	Err   error
}

const defaultAttemptTimeout = 25 * time.Second

// Client invokes the generation API. Safe for concurrent use; each call is a
// single logical request with no internal parallelism.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	attemptTimeout time.Duration
	mock           *namegen.MockGenerator
	observer       func(Attempt)
	logger         *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAttemptTimeout bounds each network attempt (primary and retry).
func WithAttemptTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.attemptTimeout = timeout }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithMockGenerator substitutes the fallback generator (tests use one with
// zero delay and a pinned rand source).
func WithMockGenerator(mock *namegen.MockGenerator) Option {
	return func(c *Client) { c.mock = mock }
}

// WithObserver registers a callback receiving every state transition.
func WithObserver(observer func(Attempt)) Option {
	return func(c *Client) { c.observer = observer }
}

// WithLogger substitutes the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// New creates a client for the generation API at baseURL. The server's
// network location is supplied by the caller; no discovery heuristics.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     &http.Client{},
		attemptTimeout: defaultAttemptTimeout,
		logger:         logger.New(logger.FromConfig("info", "text")),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.mock == nil {
		c.mock = namegen.NewMockGenerator(
			config.DefaultDomainAvailability,
			namegen.NewRandSource(time.Now().UnixNano()),
			1*time.Second,
			2*time.Second,
		)
	}

	c.logger = c.logger.WithComponent("namegen-client")
	return c
}

// RequestNames resolves raw input into a non-empty suggestion list. The only
// error it can return is a local validation failure: client bugs fail fast
// instead of being masked by mock data. Every other failure (timeout,
// transport error, non-2xx, structurally invalid body) is retried exactly
// once with the same payload, then unconditionally replaced by mock output.
func (c *Client) RequestNames(ctx context.Context, raw Input) ([]Suggestion, error) {
	req, err := namegen.NormalizeRequest(raw)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	log := c.logger.WithContext(ctx)

	c.observe(Attempt{Phase: PhaseSending})
	names, err := c.requestOnce(ctx, body)
	if err == nil {
		c.observe(Attempt{Phase: PhaseSuccess})
		return names, nil
	}

	log.Warn("generation attempt failed, retrying once", slog.String("error", err.Error()))
	c.observe(Attempt{Phase: PhaseRetrying, Err: err})

	names, err = c.requestOnce(ctx, body)
	if err == nil {
		c.observe(Attempt{Phase: PhaseSuccess})
		return names, nil
	}

	log.Warn("retry failed, substituting mock suggestions", slog.String("error", err.Error()))
	metrics.ClientFallbacks.Inc()
	c.observe(Attempt{Phase: PhaseFallback, Err: err})

	return c.mock.Generate(ctx, req), nil
}

// requestOnce issues one bounded call to the generation endpoint.
func (c *Client) requestOnce(ctx context.Context, body []byte) ([]Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	url := c.baseURL + "/api/generate-names"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call generation API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation API returned %d", resp.StatusCode)
	}

	var response namegen.GenerateNamesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(response.Names) == 0 {
		return nil, fmt.Errorf("generation API returned no names")
	}

	return response.Names, nil
}

func (c *Client) observe(attempt Attempt) {
	if c.observer != nil {
		c.observer(attempt)
	}
}
