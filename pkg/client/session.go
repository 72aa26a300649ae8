package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Step is the wizard's current screen.
type Step string

const (
	StepInput   Step = "input"
	StepLoading Step = "loading"
	StepSwiper  Step = "swiper"
	StepResults Step = "results"
)

// GenerationStatus guards against duplicate in-flight generations for the
// same batch. A single tagged value instead of ambient flags and timers.
type GenerationStatus int

const (
	StatusIdle GenerationStatus = iota
	StatusInFlight
	StatusDone
)

const (
	// DefaultBatchCount is how many swipe rounds a session runs.
	DefaultBatchCount = 3
	// DefaultSessionTimeout bounds one whole generation from the UI's point
	// of view, independent of the invoker's own attempt timeouts.
	DefaultSessionTimeout = 45 * time.Second
)

// timeoutMessage is shown when a generation exceeds the session deadline.
const timeoutMessage = "The name generation is taking longer than expected. Please try again."

// ErrGenerationInFlight is returned when a generation is requested while one
// is already running for this session.
var ErrGenerationInFlight = errors.New("a generation is already in flight")

// ErrNoInput is returned when a batch is requested before the session started.
var ErrNoInput = errors.New("session has no input yet")

// ErrSessionTimeout is returned when a generation exceeds the session
// deadline; the session is already back at the input step with a retry
// affordance when callers see it.
var ErrSessionTimeout = errors.New("generation exceeded the session deadline")

// NameSource abstracts the invoker so session tests can emulate it.
type NameSource interface {
	RequestNames(ctx context.Context, raw Input) ([]Suggestion, error)
}

// Session owns the wizard state: current step, batch counter, the input
// reused across batches, and the liked-name list. All mutation goes through
// its methods; the liked list is append-only until Restart.
type Session struct {
	mu sync.Mutex

	source     NameSource
	batchCount int
	timeout    time.Duration

	step    Step
	status  GenerationStatus
	batch   int
	input   *Input
	current []Suggestion
	liked   []Suggestion
	message string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithBatchCount overrides the number of swipe rounds.
func WithBatchCount(count int) SessionOption {
	return func(s *Session) { s.batchCount = count }
}

// WithSessionTimeout overrides the per-generation deadline.
func WithSessionTimeout(timeout time.Duration) SessionOption {
	return func(s *Session) { s.timeout = timeout }
}

func NewSession(source NameSource, opts ...SessionOption) *Session {
	s := &Session{
		source:     source,
		batchCount: DefaultBatchCount,
		timeout:    DefaultSessionTimeout,
		step:       StepInput,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a session with the submitted input and generates the first
// batch. A validation failure keeps the session at the input step and is
// returned to the caller; it is never papered over with mock data.
func (s *Session) Start(ctx context.Context, input Input) error {
	s.mu.Lock()
	if s.status == StatusInFlight {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}

	stored := input
	stored.Traits = append([]string(nil), input.Traits...)
	s.input = &stored
	s.batch = 1
	s.mu.Unlock()

	return s.generate(ctx)
}

// NextBatch is called when the user has swiped through the current batch.
// It either generates the next batch with the same input or, after the last
// batch, moves the session to the results step.
func (s *Session) NextBatch(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusInFlight {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	if s.input == nil {
		s.mu.Unlock()
		return ErrNoInput
	}
	if s.batch >= s.batchCount {
		s.step = StepResults
		s.mu.Unlock()
		return nil
	}
	s.batch++
	s.mu.Unlock()

	return s.generate(ctx)
}

// generate runs one invoker call under the session deadline. The lock is not
// held during the call so the UI can keep reading session state.
func (s *Session) generate(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusInFlight
	s.step = StepLoading
	s.message = ""
	input := *s.input
	input.Traits = append([]string(nil), s.input.Traits...)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	names, err := s.source.RequestNames(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = StatusIdle
		s.step = StepInput
		s.message = err.Error()
		return err
	}

	// The invoker itself never fails past validation, but the session
	// deadline can expire while it is still retrying. Treat that as a
	// fallback-equivalent outcome: back to input with a retry affordance.
	if ctx.Err() != nil || len(names) == 0 {
		s.status = StatusIdle
		s.step = StepInput
		s.message = timeoutMessage
		return ErrSessionTimeout
	}

	s.current = names
	s.status = StatusDone
	s.step = StepSwiper
	return nil
}

// Like appends a suggestion to the liked list. Duplicates are preserved: no
// uniqueness invariant exists, a name produced twice can be liked twice.
func (s *Session) Like(suggestion Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = append(s.liked, suggestion)
}

// Restart clears all session state back to the input step. The liked list is
// destroyed here and nowhere else.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.step = StepInput
	s.status = StatusIdle
	s.batch = 0
	s.input = nil
	s.current = nil
	s.liked = nil
	s.message = ""
}

// Step returns the wizard's current screen.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Status returns the generation status.
func (s *Session) Status() GenerationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Batch returns the current batch number (1-based; 0 before Start).
func (s *Session) Batch() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch
}

// Current returns a copy of the batch being swiped.
func (s *Session) Current() []Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Suggestion(nil), s.current...)
}

// Liked returns a copy of the liked suggestions in like order.
func (s *Session) Liked() []Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Suggestion(nil), s.liked...)
}

// Message returns the user-facing message for the input step, if any.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
