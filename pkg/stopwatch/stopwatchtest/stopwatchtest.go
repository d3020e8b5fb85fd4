// Package stopwatchtest provides a settable clock and a hand-driven scheduler for
// exercising code built on package stopwatch without real time passing.
package stopwatchtest

import (
	"sync"
	"time"

	"github.com/cloudposse/chronometer/pkg/stopwatch"
)

// Epoch is the instant a new FakeClock starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is a Clock that only moves when told to.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t, which may be in the past.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// ManualScheduler records scheduled tasks and runs them only when Fire is called.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*ManualTask
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every registers fn. It never runs on its own.
func (s *ManualScheduler) Every(period time.Duration, fn func()) stopwatch.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &ManualTask{Period: period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Fire invokes every task that has not been stopped, once, on the calling goroutine.
func (s *ManualScheduler) Fire() {
	for _, t := range s.Active() {
		t.Fire()
	}
}

// Active returns the tasks that have not been stopped.
func (s *ManualScheduler) Active() []*ManualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []*ManualTask
	for _, t := range s.tasks {
		if !t.Stopped() {
			active = append(active, t)
		}
	}
	return active
}

// Scheduled returns the number of tasks ever scheduled.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// ManualTask is a task created by ManualScheduler.
type ManualTask struct {
	Period time.Duration

	mu      sync.Mutex
	fn      func()
	stopped bool
}

// Fire runs the callback unless the task was stopped.
func (t *ManualTask) Fire() {
	if t.Stopped() {
		return
	}
	t.fn()
}

// FireStale runs the callback even after Stop, as a late timer would.
func (t *ManualTask) FireStale() {
	t.fn()
}

// Stop marks the task as stopped.
func (t *ManualTask) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *ManualTask) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Rig is a stopwatch wired to a fake clock and a manual scheduler.
type Rig struct {
	Clock     *FakeClock
	Scheduler *ManualScheduler
	Stopwatch *stopwatch.Stopwatch
}

// NewRig builds a Rig. Extra options are applied after the clock and scheduler.
func NewRig(opts ...stopwatch.Option) *Rig {
	clock := NewFakeClock()
	scheduler := NewManualScheduler()
	all := append([]stopwatch.Option{
		stopwatch.WithClock(clock),
		stopwatch.WithScheduler(scheduler),
	}, opts...)
	return &Rig{
		Clock:     clock,
		Scheduler: scheduler,
		Stopwatch: stopwatch.New(all...),
	}
}

// Run advances the clock by d in steps of the tick period, firing after each step,
// the way a real ticker would while d passes.
func (r *Rig) Run(d time.Duration) {
	step := stopwatch.DefaultTickInterval
	if active := r.Scheduler.Active(); len(active) > 0 {
		step = active[0].Period
	}
	for elapsed := time.Duration(0); elapsed+step <= d; elapsed += step {
		r.Clock.Advance(step)
		r.Scheduler.Fire()
	}
	if rem := d % step; rem > 0 {
		r.Clock.Advance(rem)
	}
}
