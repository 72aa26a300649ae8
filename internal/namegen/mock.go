package namegen

import (
	"context"
	"fmt"
	"time"
)

// MockGenerator produces plausible suggestions locally. It is the fallback of
// last resort when the live generation path is unavailable, so it has no
// failure path: malformed input is patched up, never rejected.
type MockGenerator struct {
	availability float64
	rng          RandSource
	delayMin     time.Duration
	delayMax     time.Duration
}

// defaultTraits substitutes for an empty or malformed trait list.
var defaultTraits = []string{"Modern", "Innovative"}

func NewMockGenerator(availability float64, rng RandSource, delayMin, delayMax time.Duration) *MockGenerator {
	if delayMax < delayMin {
		delayMax = delayMin
	}
	return &MockGenerator{
		availability: availability,
		rng:          rng,
		delayMin:     delayMin,
		delayMax:     delayMax,
	}
}

// Generate returns exactly five suggestions built from a fixed prefix pool
// combined with fragments of the industry and traits. A randomized delay
// mimics generation latency; cancelling the context skips the remaining wait
// but still yields the suggestions. Output varies between invocations, so
// only its shape is stable.
func (m *MockGenerator) Generate(ctx context.Context, req NameRequest) []NameSuggestion {
	m.simulateLatency(ctx)

	traits := req.Traits
	if len(traits) == 0 {
		traits = defaultTraits
	}

	namingType := req.NamingType
	if namingType == "" {
		namingType = "brand"
	}

	industry := req.Industry
	if industry == "" {
		industry = "Business"
	}

	secondTrait := ""
	if len(traits) > 1 {
		secondTrait = traits[1]
	}

	return []NameSuggestion{
		{
			Name:            "Lumeno" + fragment(industry, 3),
			Meaning:         fmt.Sprintf("A modern name inspired by the Latin word for light, perfect for a %s in the %s industry.", namingType, industry),
			StyleCategory:   "Modern",
			DomainAvailable: m.rng.Float64() < m.availability,
		},
		{
			Name:            "Nexora" + fragment(traits[0], 2),
			Meaning:         fmt.Sprintf("A powerful and dynamic name that conveys innovation and forward thinking, ideal for a %s.", namingType),
			StyleCategory:   "Technical",
			DomainAvailable: m.rng.Float64() < m.availability,
		},
		{
			Name:            "Zenvia" + fragment(industry, 2),
			Meaning:         fmt.Sprintf("A calming and trustworthy name that suggests balance and harmony, great for a %s focused on customer experience.", namingType),
			StyleCategory:   "Trustworthy",
			DomainAvailable: m.rng.Float64() < m.availability,
		},
		{
			Name:            "Avantra" + fragment(secondTrait, 2),
			Meaning:         fmt.Sprintf("A forward-thinking name that suggests advancement and progress, perfect for a %s in the %s space.", namingType, industry),
			StyleCategory:   "Professional",
			DomainAvailable: m.rng.Float64() < m.availability,
		},
		{
			Name:            "Elyxir" + fragment(industry, 2),
			Meaning:         fmt.Sprintf("A luxurious and memorable name that stands out in the %s industry, ideal for a premium %s.", industry, namingType),
			StyleCategory:   "Luxurious",
			DomainAvailable: m.rng.Float64() < m.availability,
		},
	}
}

func (m *MockGenerator) simulateLatency(ctx context.Context) {
	if m.delayMax == 0 {
		return
	}

	delay := m.delayMin + time.Duration(m.rng.Float64()*float64(m.delayMax-m.delayMin))
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// fragment returns the first n runes of s.
func fragment(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
