// Package session implements the per-view scan session lifecycle:
//
//	Idle --Submit--> Running --ok--> Complete
//	                     \----err--> Failed
//	any --Reset--> Idle
//
// A session is owned by exactly one view instance and never shared, so a
// single mutex guards its state. Submitting while a run is in flight is
// rejected; the in-flight run keeps its target. Every submit bumps a
// generation counter and late engine completions from a superseded run are
// discarded instead of applied, so a reset or teardown can never be
// overwritten by a stale result.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"auditor/internal/target"
	"auditor/pkg/domain"
	"auditor/pkg/engine"
	"auditor/pkg/serrors"
)

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusIdle means no analysis has been started or the session was reset.
	StatusIdle Status = "IDLE"
	// StatusRunning means an analysis is in flight.
	StatusRunning Status = "RUNNING"
	// StatusComplete means the analysis finished and a result is available.
	StatusComplete Status = "COMPLETE"
	// StatusFailed means the analysis ended with an error; see Snapshot.Err.
	StatusFailed Status = "FAILED"
)

// Snapshot is a consistent copy of the session state at one point in time.
type Snapshot struct {
	Status Status
	// Target is the normalized URL of the current or last run. Empty in Idle.
	Target string
	// Result is set only when Status is Complete.
	Result *domain.AnalysisResult
	// Err is set only when Status is Failed.
	Err error
}

// Options configure a session.
type Options struct {
	// Timeout bounds a single analysis run. Zero disables the bound.
	Timeout time.Duration
}

// Session drives one view's analysis lifecycle over an engine.
type Session struct {
	engine  engine.Engine
	options Options

	mu         sync.Mutex
	status     Status
	targetURL  string
	result     *domain.AnalysisResult
	failure    error
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates a session in the Idle state.
func New(eng engine.Engine, options Options) *Session {
	return &Session{
		engine:  eng,
		options: options,
		status:  StatusIdle,
	}
}

// Submit validates the raw target and starts an analysis run. It returns the
// normalized target on acceptance.
//
// Invalid input keeps the session in its current state. A submit while a run
// is in flight is rejected with a CONFLICT error and the running target stays
// unchanged. Submitting from Complete or Failed implicitly resets first.
func (s *Session) Submit(_ context.Context, raw string) (string, error) {
	url, err := target.Normalize(raw)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusRunning {
		return "", serrors.With(serrors.ErrConflict, "an analysis is already running for %s", s.targetURL)
	}

	s.generation++
	gen := s.generation

	// The run outlives the submit call; it is bounded by the session's own
	// cancel (Reset/Close) and the configured timeout, not by the caller ctx.
	runCtx := context.Background()
	var cancel context.CancelFunc
	if s.options.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, s.options.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(runCtx)
	}

	s.status = StatusRunning
	s.targetURL = url
	s.result = nil
	s.failure = nil
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, gen, url, s.done)

	return url, nil
}

// run performs the engine call and applies the terminal transition, unless
// the session moved on (reset or re-submitted) while the call was in flight.
func (s *Session) run(ctx context.Context, gen uint64, url string, done chan struct{}) {
	result, err := s.engine.Analyze(ctx, url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.status != StatusRunning {
		// stale completion from a superseded run; drop it
		return
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err != nil {
		s.status = StatusFailed
		s.failure = normalizeFailure(err)
	} else {
		s.status = StatusComplete
		s.result = result
	}

	close(done)
}

// normalizeFailure ensures deadline errors surface as the TIMEOUT kind even
// when the engine returned the raw context error.
func normalizeFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, serrors.ErrTimeout) {
		return serrors.Wrap(serrors.ErrTimeout, err, "analysis timed out")
	}

	return err
}

// Reset cancels any in-flight run and returns the session to Idle with
// target, result and failure cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.status == StatusRunning && s.done != nil {
		// wake waiters; the run goroutine will observe the generation bump
		// and drop its completion
		close(s.done)
	}

	s.generation++
	s.status = StatusIdle
	s.targetURL = ""
	s.result = nil
	s.failure = nil
	s.done = nil
}

// Close tears the session down when its view unmounts. Equivalent to Reset.
func (s *Session) Close() {
	s.Reset()
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Status: s.status,
		Target: s.targetURL,
		Result: s.result,
		Err:    s.failure,
	}
}

// Done returns a channel closed when the current run reaches a terminal state
// or the session is reset. Returns nil when no run was started.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}
