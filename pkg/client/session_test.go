package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namegenius/api/internal/namegen"
)

// stubSource emulates the invoker. Optionally blocks until released so tests
// can observe the in-flight state.
type stubSource struct {
	names   []Suggestion
	err     error
	block   chan struct{}
	inputs  []Input
	requests int
}

func (s *stubSource) RequestNames(ctx context.Context, raw Input) ([]Suggestion, error) {
	s.requests++
	s.inputs = append(s.inputs, raw)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.names, nil
}

func fiveSuggestions() []Suggestion {
	names := make([]Suggestion, 5)
	for i := range names {
		names[i] = Suggestion{Name: "N", Meaning: "M", StyleCategory: "S"}
	}
	return names
}

func TestSessionStartMovesToSwiper(t *testing.T) {
	source := &stubSource{names: fiveSuggestions()}
	session := NewSession(source)

	require.NoError(t, session.Start(context.Background(), validInput()))

	assert.Equal(t, StepSwiper, session.Step())
	assert.Equal(t, StatusDone, session.Status())
	assert.Equal(t, 1, session.Batch())
	assert.Len(t, session.Current(), 5)
}

func TestSessionRunsThreeBatchesThenResults(t *testing.T) {
	source := &stubSource{names: fiveSuggestions()}
	session := NewSession(source)

	require.NoError(t, session.Start(context.Background(), validInput()))
	require.NoError(t, session.NextBatch(context.Background()))
	require.NoError(t, session.NextBatch(context.Background()))
	assert.Equal(t, 3, session.Batch())
	assert.Equal(t, StepSwiper, session.Step())

	require.NoError(t, session.NextBatch(context.Background()))
	assert.Equal(t, StepResults, session.Step())
	assert.Equal(t, 3, source.requests)
}

func TestSessionReusesInputAcrossBatches(t *testing.T) {
	source := &stubSource{names: fiveSuggestions()}
	session := NewSession(source)

	input := validInput()
	require.NoError(t, session.Start(context.Background(), input))
	require.NoError(t, session.NextBatch(context.Background()))

	require.Len(t, source.inputs, 2)
	assert.Equal(t, source.inputs[0], source.inputs[1])

	// Deep copy: mutating the caller's traits must not leak into later batches.
	input.Traits[0] = "Changed"
	require.NoError(t, session.NextBatch(context.Background()))
	assert.Equal(t, "Modern", source.inputs[2].Traits[0])
}

func TestSessionLikedPreservesDuplicates(t *testing.T) {
	source := &stubSource{names: fiveSuggestions()}
	session := NewSession(source)
	require.NoError(t, session.Start(context.Background(), validInput()))

	same := Suggestion{Name: "Echo", Meaning: "M", StyleCategory: "S"}
	session.Like(same)
	session.Like(same)

	liked := session.Liked()
	require.Len(t, liked, 2)
	assert.Equal(t, liked[0], liked[1])
}

func TestSessionInFlightGuard(t *testing.T) {
	source := &stubSource{names: fiveSuggestions(), block: make(chan struct{})}
	session := NewSession(source)

	started := make(chan error, 1)
	go func() {
		started <- session.Start(context.Background(), validInput())
	}()

	// Wait for the generation to be in flight.
	require.Eventually(t, func() bool {
		return session.Status() == StatusInFlight
	}, time.Second, 5*time.Millisecond)

	err := session.Start(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	close(source.block)
	require.NoError(t, <-started)
}

func TestSessionValidationErrorReturnsToInput(t *testing.T) {
	source := &stubSource{err: &namegen.ValidationError{Field: "traits", Reason: "empty traits"}}
	session := NewSession(source)

	err := session.Start(context.Background(), validInput())
	require.Error(t, err)

	assert.Equal(t, StepInput, session.Step())
	assert.Equal(t, StatusIdle, session.Status())
	assert.NotEmpty(t, session.Message())
}

func TestSessionTimeoutReturnsToInput(t *testing.T) {
	source := &stubSource{names: fiveSuggestions(), block: make(chan struct{})}
	defer close(source.block)
	session := NewSession(source, WithSessionTimeout(50*time.Millisecond))

	err := session.Start(context.Background(), validInput())
	require.True(t, errors.Is(err, ErrSessionTimeout))

	assert.Equal(t, StepInput, session.Step())
	assert.Contains(t, session.Message(), "taking longer than expected")
}

func TestSessionNextBatchBeforeStart(t *testing.T) {
	session := NewSession(&stubSource{names: fiveSuggestions()})
	assert.ErrorIs(t, session.NextBatch(context.Background()), ErrNoInput)
}

func TestSessionRestartClearsState(t *testing.T) {
	source := &stubSource{names: fiveSuggestions()}
	session := NewSession(source)

	require.NoError(t, session.Start(context.Background(), validInput()))
	session.Like(Suggestion{Name: "Keep"})

	session.Restart()

	assert.Equal(t, StepInput, session.Step())
	assert.Equal(t, StatusIdle, session.Status())
	assert.Equal(t, 0, session.Batch())
	assert.Empty(t, session.Liked())
	assert.Empty(t, session.Current())
}
