package namegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/namegenius/api/internal/config"
	"github.com/namegenius/api/internal/logger"
	"github.com/namegenius/api/internal/metrics"
)

// Gateway issues one completion call to the hosted language model and returns
// its raw response text. An interface so the orchestrator and its tests can
// swap the live client for a stub.
type Gateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIGateway calls an OpenAI-compatible chat-completions endpoint with a
// JSON-object response format constraint.
type OpenAIGateway struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	client      *http.Client
	logger      *logger.Logger
}

func NewOpenAIGateway(cfg *config.Config, log *logger.Logger) *OpenAIGateway {
	return &OpenAIGateway{
		baseURL:     strings.TrimSuffix(cfg.OpenAIBaseURL, "/"),
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.Generation.Model,
		temperature: cfg.Generation.Temperature,
		maxTokens:   cfg.Generation.MaxTokens,
		timeout:     cfg.GatewayTimeout,
		client:      &http.Client{},
		logger:      log.WithComponent("openai-gateway"),
	}
}

// Complete makes a single chat-completions call. The timeout is enforced via
// the request context, so a slow upstream is aborted rather than awaited.
// Failures are classified into *GatewayError kinds:
//   - missing credential: Unauthorized, without attempting the call
//   - deadline exceeded: Timeout
//   - 401/403: Unauthorized; 429: RateLimited
//   - everything else (transport, non-2xx, empty choices): Unknown
func (g *OpenAIGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.apiKey == "" {
		return "", &GatewayError{Kind: GatewayUnauthorized, Detail: "api key not configured"}
	}

	payload := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     g.temperature,
		"max_tokens":      g.maxTokens,
		"stream":          false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("marshal request: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	url := g.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("create request: %v", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	metrics.GatewayLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", &GatewayError{Kind: GatewayTimeout, Detail: fmt.Sprintf("completion call exceeded %s", g.timeout)}
		}
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("call completion API: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("read response: %v", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Never include the response body here: upstream auth errors can echo
		// credential fragments.
		return "", &GatewayError{Kind: GatewayUnauthorized, Detail: fmt.Sprintf("completion API returned %d", resp.StatusCode)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &GatewayError{Kind: GatewayRateLimited, Detail: fmt.Sprintf("completion API returned %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("completion API returned %d: %s", resp.StatusCode, truncate(string(respBody), 200))}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &GatewayError{Kind: GatewayUnknown, Detail: fmt.Sprintf("decode response: %v", err)}
	}

	if len(result.Choices) == 0 {
		return "", &GatewayError{Kind: GatewayUnknown, Detail: "no choices in response"}
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
