package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation pipeline metrics. Registered on the default registry and served
// via promhttp on GET /metrics.
var (
	// GenerationRequests counts generation requests by final outcome
	// (success, validation_error, gateway_error, normalization_error).
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namegenius",
		Name:      "generation_requests_total",
		Help:      "Name generation requests by outcome.",
	}, []string{"outcome"})

	// GatewayErrors counts upstream LLM failures by kind
	// (timeout, unauthorized, rate_limited, unknown).
	GatewayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namegenius",
		Name:      "gateway_errors_total",
		Help:      "Upstream LLM gateway failures by kind.",
	}, []string{"kind"})

	// GatewayLatency observes the duration of upstream completion calls.
	GatewayLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "namegenius",
		Name:      "gateway_latency_seconds",
		Help:      "Latency of upstream LLM completion calls.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 15, 20, 25},
	})

	// ClientFallbacks counts invoker-side substitutions of mock suggestions
	// after the retry budget is exhausted.
	ClientFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "namegenius",
		Name:      "client_fallbacks_total",
		Help:      "Mock-generator fallbacks after primary and retry failed.",
	})
)
