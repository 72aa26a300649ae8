package namegen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMockGenerator() *MockGenerator {
	// Zero delay: tests exercise shape, not latency simulation.
	return NewMockGenerator(0.7, NewRandSource(1), 0, 0)
}

func TestMockGeneratorShape(t *testing.T) {
	mock := newTestMockGenerator()

	suggestions := mock.Generate(context.Background(), NameRequest{
		NamingType: "App",
		Industry:   "Technology",
		Traits:     []string{"Modern", "Bold"},
	})

	require.Len(t, suggestions, 5)
	for _, suggestion := range suggestions {
		assert.NotEmpty(t, suggestion.Name)
		assert.NotEmpty(t, suggestion.Meaning)
		assert.NotEmpty(t, suggestion.StyleCategory)
	}
}

func TestMockGeneratorNeverFails(t *testing.T) {
	mock := newTestMockGenerator()

	// Randomized trials across degenerate inputs: the fallback of last resort
	// must always produce five complete suggestions.
	inputs := []NameRequest{
		{},
		{NamingType: "App"},
		{Industry: "Tech"},
		{NamingType: "App", Industry: "Technology", Traits: []string{}},
		{NamingType: "App", Industry: "T", Traits: []string{"M"}},
	}

	for trial := 0; trial < 100; trial++ {
		req := inputs[trial%len(inputs)]
		suggestions := mock.Generate(context.Background(), req)

		require.Len(t, suggestions, 5, "trial %d", trial)
		for i, suggestion := range suggestions {
			assert.NotEmpty(t, suggestion.Name, "trial %d item %d", trial, i)
			assert.NotEmpty(t, suggestion.Meaning, "trial %d item %d", trial, i)
			assert.NotEmpty(t, suggestion.StyleCategory, "trial %d item %d", trial, i)
		}
	}
}

func TestMockGeneratorUsesIndustryFragments(t *testing.T) {
	mock := newTestMockGenerator()

	suggestions := mock.Generate(context.Background(), NameRequest{
		NamingType: "App",
		Industry:   "Technology",
		Traits:     []string{"Modern", "Bold"},
	})

	assert.Equal(t, "LumenoTec", suggestions[0].Name)
	assert.Equal(t, "NexoraMo", suggestions[1].Name)
	assert.Equal(t, "AvantraBo", suggestions[3].Name)
}

func TestMockGeneratorCancelledContextSkipsDelay(t *testing.T) {
	mock := NewMockGenerator(0.7, NewRandSource(1), time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	suggestions := mock.Generate(ctx, NameRequest{NamingType: "App", Industry: "Tech", Traits: []string{"Modern"}})

	assert.Len(t, suggestions, 5)
	assert.Less(t, time.Since(start), time.Second)
}
