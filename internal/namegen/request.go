package namegen

import "strings"

// NormalizeRequest validates and canonicalizes a raw generation request.
// Strings are trimmed, the description defaults to "", and traits are coerced
// into a clean slice. Fails with *ValidationError naming the first missing
// field; no side effects, no network.
func NormalizeRequest(raw GenerateNamesRequest) (NameRequest, error) {
	namingType := strings.TrimSpace(raw.NamingType)
	if namingType == "" {
		return NameRequest{}, &ValidationError{Field: "namingType"}
	}

	industry := strings.TrimSpace(raw.Industry)
	if industry == "" {
		return NameRequest{}, &ValidationError{Field: "industry"}
	}

	traits := make([]string, 0, len(raw.Traits))
	for _, trait := range raw.Traits {
		if trimmed := strings.TrimSpace(trait); trimmed != "" {
			traits = append(traits, trimmed)
		}
	}
	if len(traits) == 0 {
		return NameRequest{}, &ValidationError{Field: "traits", Reason: "empty traits"}
	}

	return NameRequest{
		NamingType:  namingType,
		Description: strings.TrimSpace(raw.Description),
		Industry:    industry,
		Traits:      traits,
	}, nil
}
