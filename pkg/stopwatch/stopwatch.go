// Package stopwatch implements a pausable stopwatch with lap capture.
//
// A running Stopwatch recomputes its elapsed time on a fixed-period tick and publishes
// the result to an optional listener. User operations (Start, Pause, Reset, Lap) are
// serialised with the tick, and cancellation is synchronous: once Pause, Reset or Close
// returns, no tick mutates the stopwatch or reaches the listener.
package stopwatch

import (
	"sync"
	"time"

	log "github.com/cloudposse/chronometer/pkg/logger"
)

// DefaultTickInterval is the period between display recomputations.
const DefaultTickInterval = 10 * time.Millisecond

// Listener receives each published display value. It runs on the tick goroutine
// and must not call back into the Stopwatch.
type Listener func(ElapsedTime)

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(s *Stopwatch) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithScheduler replaces the ticker-based scheduler.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Stopwatch) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithTickInterval sets the tick period. Non-positive values keep the default.
func WithTickInterval(d time.Duration) Option {
	return func(s *Stopwatch) {
		if d > 0 {
			s.tickInterval = d
		}
	}
}

// WithListener sets the function each tick publishes to.
func WithListener(fn Listener) Option {
	return func(s *Stopwatch) {
		s.listener = fn
	}
}

// Stopwatch tracks running time across pause/resume cycles and records laps.
type Stopwatch struct {
	clock        Clock
	scheduler    Scheduler
	tickInterval time.Duration
	listener     Listener

	mu          sync.Mutex
	running     bool
	closed      bool
	accumulated time.Duration
	anchor      time.Time
	display     ElapsedTime
	laps        []ElapsedTime
	task        Task
	// generation changes on every start and stop so that a tick scheduled for an
	// earlier running interval is discarded.
	generation uint64
}

// New returns an idle stopwatch at zero.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		clock:        SystemClock{},
		scheduler:    TickerScheduler{},
		tickInterval: DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins or resumes timing. It reports false, changing nothing, when the
// stopwatch is already running or has been closed.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.closed {
		return false
	}

	// Anchoring in the past by the accumulated amount resumes where the last interval stopped.
	s.anchor = s.clock.Now().Add(-s.accumulated)
	s.running = true
	s.generation++
	gen := s.generation
	s.task = s.scheduler.Every(s.tickInterval, func() { s.tick(gen) })

	log.Trace("Stopwatch started", "accumulated", s.accumulated, "interval", s.tickInterval)
	return true
}

// Pause stops timing and freezes the accumulated time at its last ticked value.
// It reports false when the stopwatch was not running.
func (s *Stopwatch) Pause() bool {
	s.mu.Lock()
	task, ok := s.stopLocked()
	s.mu.Unlock()

	if !ok {
		return false
	}

	stopTask(task)

	log.Trace("Stopwatch paused", "accumulated", s.Accumulated())
	return true
}

// Reset pauses the stopwatch, zeroes the time and discards all laps.
// The zero display is published to the listener.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	task, _ := s.stopLocked()
	s.accumulated = 0
	s.anchor = time.Time{}
	s.display = ElapsedTime{}
	s.laps = nil
	listener := s.listener
	s.mu.Unlock()

	stopTask(task)

	log.Trace("Stopwatch reset")
	if listener != nil {
		listener(ElapsedTime{})
	}
}

// Lap records the currently displayed time. The value is the last published one, so
// it can trail the clock by up to one tick. It reports false when not running.
func (s *Stopwatch) Lap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}

	s.laps = append(s.laps, s.display)
	log.Trace("Lap recorded", "lap", len(s.laps), "time", s.display)
	return true
}

// Close cancels any pending tick. The stopwatch cannot be started again.
// Close is safe to call more than once.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	task, _ := s.stopLocked()
	s.closed = true
	s.mu.Unlock()

	stopTask(task)
}

// Running reports whether the clock is advancing.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the displayed time.
func (s *Stopwatch) Elapsed() ElapsedTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}

// Accumulated returns the running time recorded up to the last tick or pause,
// truncated to whole milliseconds.
func (s *Stopwatch) Accumulated() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accumulated
}

// Anchor returns the instant the current running interval is measured from.
// ok is false while the stopwatch is not running.
func (s *Stopwatch) Anchor() (anchor time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return time.Time{}, false
	}
	return s.anchor, true
}

// Laps returns a copy of the recorded laps, oldest first.
func (s *Stopwatch) Laps() []ElapsedTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ElapsedTime(nil), s.laps...)
}

// LapEntries returns the recorded laps newest first, numbered for display.
func (s *Stopwatch) LapEntries() []LapEntry {
	return LapEntries(s.Laps())
}

// Snapshot returns a consistent copy of the observable state.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Running:     s.running,
		Accumulated: s.accumulated,
		Elapsed:     s.display,
		Laps:        append([]ElapsedTime(nil), s.laps...),
	}
}

// stopLocked clears the running state and hands back the task to cancel.
func (s *Stopwatch) stopLocked() (Task, bool) {
	if !s.running {
		return nil, false
	}
	task := s.task
	s.task = nil
	s.running = false
	s.anchor = time.Time{}
	s.generation++
	return task, true
}

// stopTask stops task, if any. The tick takes s.mu, so it must be called without the lock held.
func stopTask(task Task) {
	if task != nil {
		task.Stop()
	}
}

func (s *Stopwatch) tick(gen uint64) {
	s.mu.Lock()
	if !s.running || gen != s.generation {
		s.mu.Unlock()
		return
	}

	// Truncate to the millisecond, then never let a clock step move time backwards.
	elapsed := s.clock.Now().Sub(s.anchor).Truncate(time.Millisecond)
	if elapsed > s.accumulated {
		s.accumulated = elapsed
	}
	s.display = Decompose(s.accumulated.Milliseconds())
	display := s.display
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(display)
	}
}
