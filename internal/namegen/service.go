package namegen

import (
	"context"
	"log/slog"

	"github.com/namegenius/api/internal/config"
	"github.com/namegenius/api/internal/logger"
	"github.com/namegenius/api/internal/metrics"
)

// Service drives one generation end to end: validate, compile the prompt,
// call the gateway, normalize the response. Failures come back as the typed
// errors the handler maps onto HTTP statuses.
type Service struct {
	gateway         Gateway
	normalizer      *Normalizer
	systemPrompt    string
	suggestionCount int
	logger          *logger.Logger
}

func NewService(gateway Gateway, normalizer *Normalizer, generation *config.GenerationConfig, log *logger.Logger) *Service {
	systemPrompt := generation.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &Service{
		gateway:         gateway,
		normalizer:      normalizer,
		systemPrompt:    systemPrompt,
		suggestionCount: generation.SuggestionCount,
		logger:          log.WithComponent("namegen-service"),
	}
}

// Generate validates raw and runs the pipeline. Validation failures return
// before any gateway call is attempted.
func (s *Service) Generate(ctx context.Context, raw GenerateNamesRequest) ([]NameSuggestion, error) {
	log := s.logger.WithContext(ctx)

	req, err := NormalizeRequest(raw)
	if err != nil {
		log.Warn("rejected invalid generation request", slog.String("error", err.Error()))
		metrics.GenerationRequests.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	log.Debug("generating names",
		slog.String("naming_type", req.NamingType),
		slog.String("industry", req.Industry),
		slog.Int("traits", len(req.Traits)))

	prompt := CompilePrompt(req, s.suggestionCount)

	var rawText string
	err = s.logger.LogOperation(ctx, "gateway_complete", func() error {
		var completeErr error
		rawText, completeErr = s.gateway.Complete(ctx, s.systemPrompt, prompt)
		return completeErr
	})
	if err != nil {
		if gatewayErr, ok := err.(*GatewayError); ok {
			metrics.GatewayErrors.WithLabelValues(string(gatewayErr.Kind)).Inc()
		}
		metrics.GenerationRequests.WithLabelValues("gateway_error").Inc()
		return nil, err
	}

	suggestions, err := s.normalizer.Normalize(rawText)
	if err != nil {
		log.Error("failed to normalize model output", slog.String("error", err.Error()))
		metrics.GenerationRequests.WithLabelValues("normalization_error").Inc()
		return nil, err
	}

	log.Info("generated names", slog.Int("count", len(suggestions)))
	metrics.GenerationRequests.WithLabelValues("success").Inc()
	return suggestions, nil
}

// CheckDomains simulates a bulk availability lookup for already-generated
// names. Same independent draw as the per-suggestion flag; no real registrar
// is consulted.
func (s *Service) CheckDomains(names []string) map[string]bool {
	results := make(map[string]bool, len(names))
	for _, name := range names {
		results[name] = s.normalizer.DrawDomainAvailable()
	}
	return results
}
