package namegen

import (
	"encoding/json"
	"fmt"
)

// Default fill-ins for suggestion fields the model omitted.
const (
	defaultName          = "Unnamed"
	defaultMeaning       = "A unique, memorable name for your brand."
	defaultStyleCategory = "Modern"
)

// Normalizer reshapes raw model output into a suggestion list. The simulated
// domain-availability flag is drawn per suggestion from the injected rand
// source with the configured probability (0.7 unless overridden, see config).
type Normalizer struct {
	availability float64
	rng          RandSource
}

func NewNormalizer(availability float64, rng RandSource) *Normalizer {
	return &Normalizer{availability: availability, rng: rng}
}

// Normalize parses rawText as the JSON object requested by the prompt and
// fills defaults for any missing field. Fails with *NormalizationError:
// InvalidJSON when rawText is not JSON, MissingNamesArray when there is no
// "names" array, EmptyNamesArray when the array has no elements. An empty
// list is a failure, never a valid-but-empty success.
func (n *Normalizer) Normalize(rawText string) ([]NameSuggestion, error) {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		return nil, &NormalizationError{Kind: InvalidJSON, Detail: fmt.Sprintf("parse model output: %v", err)}
	}

	rawNames, ok := parsed["names"]
	if !ok {
		return nil, &NormalizationError{Kind: MissingNamesArray, Detail: "model output has no names field"}
	}

	var items []struct {
		Name          string `json:"name"`
		Meaning       string `json:"meaning"`
		StyleCategory string `json:"styleCategory"`
	}
	if err := json.Unmarshal(rawNames, &items); err != nil {
		return nil, &NormalizationError{Kind: MissingNamesArray, Detail: "names field is not an array of suggestions"}
	}

	if len(items) == 0 {
		return nil, &NormalizationError{Kind: EmptyNamesArray, Detail: "model returned zero suggestions"}
	}

	suggestions := make([]NameSuggestion, 0, len(items))
	for _, item := range items {
		suggestion := NameSuggestion{
			Name:            item.Name,
			Meaning:         item.Meaning,
			StyleCategory:   item.StyleCategory,
			DomainAvailable: n.DrawDomainAvailable(),
		}
		if suggestion.Name == "" {
			suggestion.Name = defaultName
		}
		if suggestion.Meaning == "" {
			suggestion.Meaning = defaultMeaning
		}
		if suggestion.StyleCategory == "" {
			suggestion.StyleCategory = defaultStyleCategory
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// DrawDomainAvailable makes one independent availability draw. Exposed for
// the simulated bulk domain check, which uses the same distribution.
func (n *Normalizer) DrawDomainAvailable() bool {
	return n.rng.Float64() < n.availability
}
