package namegen

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namegenius/api/internal/config"
	"github.com/namegenius/api/internal/logger"
)

func newTestGateway(baseURL, apiKey string, timeout time.Duration) *OpenAIGateway {
	cfg := &config.Config{
		OpenAIAPIKey:   apiKey,
		OpenAIBaseURL:  baseURL,
		GatewayTimeout: timeout,
		Generation:     config.DefaultGenerationConfig(),
	}
	return NewOpenAIGateway(cfg, logger.New(logger.Config{Level: slog.LevelError}))
}

func TestCompleteParsesChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  {\"names\":[]}  "}}]}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, "test-key", time.Second)

	text, err := gateway.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"names":[]}`, text)
}

func TestCompleteMissingKeyFailsWithoutCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, "", time.Second)

	_, err := gateway.Complete(context.Background(), "system", "user")

	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, GatewayUnauthorized, gatewayErr.Kind)
	assert.False(t, called, "no network call may be made without a credential")
}

func TestCompleteClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		kind   GatewayErrorKind
	}{
		{http.StatusUnauthorized, GatewayUnauthorized},
		{http.StatusForbidden, GatewayUnauthorized},
		{http.StatusTooManyRequests, GatewayRateLimited},
		{http.StatusInternalServerError, GatewayUnknown},
		{http.StatusBadGateway, GatewayUnknown},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		gateway := newTestGateway(server.URL, "test-key", time.Second)
		_, err := gateway.Complete(context.Background(), "system", "user")
		server.Close()

		var gatewayErr *GatewayError
		require.ErrorAs(t, err, &gatewayErr, "status %d", tt.status)
		assert.Equal(t, tt.kind, gatewayErr.Kind, "status %d", tt.status)
	}
}

func TestCompleteAbortsOnTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	gateway := newTestGateway(server.URL, "test-key", 50*time.Millisecond)

	start := time.Now()
	_, err := gateway.Complete(context.Background(), "system", "user")
	elapsed := time.Since(start)

	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, GatewayTimeout, gatewayErr.Kind)
	assert.Less(t, elapsed, time.Second, "the in-flight call must be aborted, not awaited")
}

func TestCompleteEmptyChoicesIsUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, "test-key", time.Second)

	_, err := gateway.Complete(context.Background(), "system", "user")

	var gatewayErr *GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, GatewayUnknown, gatewayErr.Kind)
}
