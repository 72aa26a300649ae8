package namegen

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
)

// NameRequest is the canonical, validated input descriptor for one generation.
// It is reused verbatim for every batch within a wizard session.
type NameRequest struct {
	NamingType  string   `json:"namingType"`
	Description string   `json:"description"`
	Industry    string   `json:"industry"`
	Traits      []string `json:"traits"`
}

// Clone returns a deep copy so batches cannot share trait slices.
func (r NameRequest) Clone() NameRequest {
	clone := r
	clone.Traits = append([]string(nil), r.Traits...)
	return clone
}

// NameSuggestion is one generated candidate name with metadata.
// Values are immutable once returned.
type NameSuggestion struct {
	Name            string `json:"name"`
	Meaning         string `json:"meaning"`
	StyleCategory   string `json:"styleCategory"`
	DomainAvailable bool   `json:"domainAvailable"`
}

// GenerateNamesRequest is the raw, unvalidated wire shape of a generation
// request. Traits accepts either a bare string or a list of strings.
type GenerateNamesRequest struct {
	NamingType  string     `json:"namingType"`
	Description string     `json:"description"`
	Industry    string     `json:"industry"`
	Traits      StringList `json:"traits"`
}

// GenerateNamesResponse is the success payload of POST /api/generate-names.
type GenerateNamesResponse struct {
	Names []NameSuggestion `json:"names"`
}

// StringList unmarshals from either a JSON string or a JSON array of strings,
// so clients that send a single trait don't have to wrap it themselves.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	return fmt.Errorf("traits must be a string or an array of strings")
}

// ValidationError reports a malformed or incomplete request. It is surfaced
// immediately to the caller, never retried, and never masked by mock data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid request: %s", e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// GatewayErrorKind classifies upstream LLM failures.
type GatewayErrorKind string

const (
	GatewayTimeout      GatewayErrorKind = "timeout"
	GatewayUnauthorized GatewayErrorKind = "unauthorized"
	GatewayRateLimited  GatewayErrorKind = "rate_limited"
	GatewayUnknown      GatewayErrorKind = "unknown"
)

// GatewayError reports a failed call to the hosted completion API.
type GatewayError struct {
	Kind   GatewayErrorKind
	Detail string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (%s): %s", e.Kind, e.Detail)
}

// NormalizationErrorKind classifies malformed upstream payloads.
type NormalizationErrorKind string

const (
	InvalidJSON       NormalizationErrorKind = "invalid_json"
	MissingNamesArray NormalizationErrorKind = "missing_names_array"
	EmptyNamesArray   NormalizationErrorKind = "empty_names_array"
)

// NormalizationError reports that the model's response text could not be
// reshaped into a suggestion list.
type NormalizationError struct {
	Kind   NormalizationErrorKind
	Detail string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization error (%s): %s", e.Kind, e.Detail)
}

// RandSource yields uniform draws in [0,1). Injected wherever simulated
// randomness is needed (domain availability, mock latency) so tests can pin
// the outcome.
type RandSource interface {
	Float64() float64
}

// lockedRand makes a rand.Rand safe for concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// NewRandSource returns a concurrency-safe RandSource seeded from seed.
func NewRandSource(seed int64) RandSource {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}
