package stopwatch_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/stopwatch/stopwatchtest"
)

func TestNew_StartsIdleAtZero(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	assert.False(t, sw.Running())
	assert.Equal(t, time.Duration(0), sw.Accumulated())
	assert.Equal(t, "00:00:00.00", sw.Elapsed().String())
	assert.Empty(t, sw.Laps())
	_, ok := sw.Anchor()
	assert.False(t, ok)
	assert.Equal(t, 0, rig.Scheduler.Scheduled())
}

func TestStart_SchedulesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := stopwatch.NewMockClock(ctrl)
	scheduler := stopwatch.NewMockScheduler(ctrl)
	task := stopwatch.NewMockTask(ctrl)

	now := stopwatchtest.Epoch
	clock.EXPECT().Now().Return(now).Times(1)
	scheduler.EXPECT().Every(stopwatch.DefaultTickInterval, gomock.Any()).Return(task).Times(1)
	task.EXPECT().Stop().Times(1)

	sw := stopwatch.New(stopwatch.WithClock(clock), stopwatch.WithScheduler(scheduler))

	assert.True(t, sw.Start())
	assert.False(t, sw.Start(), "second start should be a no-op")
	assert.True(t, sw.Running())

	anchor, ok := sw.Anchor()
	require.True(t, ok)
	assert.Equal(t, now, anchor)

	sw.Close()
}

func TestCloseAndReset_StopTaskWithoutLock(t *testing.T) {
	for _, op := range []struct {
		name string
		fn   func(*stopwatch.Stopwatch)
	}{
		{"close", (*stopwatch.Stopwatch).Close},
		{"reset", (*stopwatch.Stopwatch).Reset},
	} {
		t.Run(op.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scheduler := stopwatch.NewMockScheduler(ctrl)
			task := stopwatch.NewMockTask(ctrl)

			var sw *stopwatch.Stopwatch
			scheduler.EXPECT().Every(gomock.Any(), gomock.Any()).Return(task).Times(1)
			// Stop runs after the state change is complete and the lock is released.
			task.EXPECT().Stop().Do(func() {
				assert.False(t, sw.Running())
			}).Times(1)

			sw = stopwatch.New(stopwatch.WithClock(stopwatchtest.NewFakeClock()), stopwatch.WithScheduler(scheduler))
			require.True(t, sw.Start())
			op.fn(sw)
			assert.False(t, sw.Running())
		})
	}
}

func TestClose_RacingStartLeavesStopwatchStopped(t *testing.T) {
	for range 50 {
		rig := stopwatchtest.NewRig()
		sw := rig.Stopwatch

		var wg sync.WaitGroup
		begin := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-begin
			for range 20 {
				sw.Start()
				sw.Reset()
				sw.Start()
			}
		}()
		go func() {
			defer wg.Done()
			<-begin
			sw.Close()
		}()
		close(begin)
		wg.Wait()

		assert.False(t, sw.Running())
		assert.False(t, sw.Start())
		assert.Empty(t, rig.Scheduler.Active())
	}
}

func TestStart_TwiceDoesNotJumpAccumulation(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(300 * time.Millisecond)
	sw.Start()
	rig.Run(200 * time.Millisecond)

	assert.Equal(t, 500*time.Millisecond, sw.Accumulated())
	assert.Equal(t, 1, rig.Scheduler.Scheduled())
}

func TestWithTickInterval(t *testing.T) {
	rig := stopwatchtest.NewRig(stopwatch.WithTickInterval(250 * time.Millisecond))
	rig.Stopwatch.Start()

	active := rig.Scheduler.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 250*time.Millisecond, active[0].Period)

	ignored := stopwatchtest.NewRig(stopwatch.WithTickInterval(-time.Second))
	ignored.Stopwatch.Start()
	assert.Equal(t, stopwatch.DefaultTickInterval, ignored.Scheduler.Active()[0].Period)
}

func TestPause_PreservesAccumulationAcrossResume(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(500 * time.Millisecond)
	assert.True(t, sw.Pause())
	sw.Start()
	rig.Run(500 * time.Millisecond)
	sw.Pause()

	assert.InDelta(t, float64(time.Second), float64(sw.Accumulated()), float64(stopwatch.DefaultTickInterval))
	assert.Equal(t, "00:00:01.00", sw.Elapsed().String())
}

func TestPause_FreezesTime(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(120 * time.Millisecond)
	sw.Pause()

	frozen := sw.Accumulated()
	rig.Clock.Advance(time.Hour)
	rig.Scheduler.Fire()

	assert.Equal(t, frozen, sw.Accumulated())
	assert.False(t, sw.Running())
	_, ok := sw.Anchor()
	assert.False(t, ok, "anchor must be absent while paused")
	assert.Empty(t, rig.Scheduler.Active())
}

func TestPause_WhenNotRunningIsNoop(t *testing.T) {
	rig := stopwatchtest.NewRig()
	assert.False(t, rig.Stopwatch.Pause())

	rig.Stopwatch.Start()
	rig.Stopwatch.Pause()
	assert.False(t, rig.Stopwatch.Pause())
}

func TestReset_FromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *stopwatchtest.Rig)
	}{
		{name: "idle", setup: func(*stopwatchtest.Rig) {}},
		{name: "running", setup: func(r *stopwatchtest.Rig) {
			r.Stopwatch.Start()
			r.Run(700 * time.Millisecond)
			r.Stopwatch.Lap()
		}},
		{name: "paused with laps", setup: func(r *stopwatchtest.Rig) {
			r.Stopwatch.Start()
			r.Run(300 * time.Millisecond)
			r.Stopwatch.Lap()
			r.Run(300 * time.Millisecond)
			r.Stopwatch.Lap()
			r.Stopwatch.Pause()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := stopwatchtest.NewRig()
			tt.setup(rig)

			rig.Stopwatch.Reset()

			snap := rig.Stopwatch.Snapshot()
			assert.False(t, snap.Running)
			assert.Equal(t, time.Duration(0), snap.Accumulated)
			assert.True(t, snap.Elapsed.IsZero())
			assert.Empty(t, snap.Laps)
			_, ok := rig.Stopwatch.Anchor()
			assert.False(t, ok)
			assert.Empty(t, rig.Scheduler.Active())
		})
	}
}

func TestReset_ThenStartBeginsFromZero(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(2 * time.Second)
	sw.Reset()
	sw.Start()
	rig.Run(100 * time.Millisecond)

	assert.Equal(t, "00:00:00.10", sw.Elapsed().String())
}

func TestLap_WhilePausedIsNoop(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	assert.False(t, sw.Lap(), "lap while idle")

	sw.Start()
	rig.Run(100 * time.Millisecond)
	require.True(t, sw.Lap())
	sw.Pause()

	assert.False(t, sw.Lap(), "lap while paused")
	assert.Len(t, sw.Laps(), 1)
}

func TestLap_UsesDisplayedValue(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(100 * time.Millisecond)
	// Time passes with no tick, so the display still reads 0.10.
	rig.Clock.Advance(9 * time.Millisecond)
	sw.Lap()

	assert.Equal(t, []stopwatch.ElapsedTime{stopwatch.Decompose(100)}, sw.Laps())
}

func TestLapEntries_NewestFirst(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(1000 * time.Millisecond)
	sw.Lap()
	rig.Run(1500 * time.Millisecond)
	sw.Lap()
	rig.Run(1500 * time.Millisecond)
	sw.Lap()

	entries := sw.LapEntries()
	require.Len(t, entries, 3)

	expected := []struct {
		label string
		time  string
	}{
		{"Lap 3", "00:00:04.00"},
		{"Lap 2", "00:00:02.50"},
		{"Lap 1", "00:00:01.00"},
	}
	for i, e := range expected {
		assert.Equal(t, e.label, entries[i].Label())
		assert.Equal(t, e.time, entries[i].Time.String())
	}

	// The underlying list stays chronological.
	laps := sw.Laps()
	assert.Equal(t, "00:00:01.00", laps[0].String())
	assert.Equal(t, "00:00:04.00", laps[2].String())
}

func TestLapEntries_Empty(t *testing.T) {
	assert.Empty(t, stopwatch.LapEntries(nil))
}

func TestLaps_ReturnsCopy(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch
	sw.Start()
	rig.Run(50 * time.Millisecond)
	sw.Lap()

	laps := sw.Laps()
	laps[0] = stopwatch.Decompose(999_999)

	assert.Equal(t, "00:00:00.05", sw.Laps()[0].String())
}

func TestEndToEnd(t *testing.T) {
	var published []stopwatch.ElapsedTime
	rig := stopwatchtest.NewRig(stopwatch.WithListener(func(e stopwatch.ElapsedTime) {
		published = append(published, e)
	}))
	sw := rig.Stopwatch

	sw.Start()
	rig.Clock.Advance(1234 * time.Millisecond)
	rig.Scheduler.Fire()
	assert.Equal(t, "00:00:01.23", sw.Elapsed().String())

	sw.Lap()
	require.Len(t, sw.Laps(), 1)
	assert.Equal(t, "00:00:01.23", sw.Laps()[0].String())

	sw.Pause()
	sw.Reset()

	assert.Equal(t, "00:00:00.00", sw.Elapsed().String())
	assert.Empty(t, sw.Laps())

	require.Len(t, published, 2)
	assert.Equal(t, "00:00:01.23", published[0].String())
	assert.True(t, published[1].IsZero(), "reset publishes the zero display")
}

func TestTick_AfterPauseIsDiscarded(t *testing.T) {
	var calls int
	rig := stopwatchtest.NewRig(stopwatch.WithListener(func(stopwatch.ElapsedTime) { calls++ }))
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(100 * time.Millisecond)
	task := rig.Scheduler.Active()[0]
	sw.Pause()
	callsAtPause := calls

	rig.Clock.Advance(time.Second)
	task.FireStale()

	assert.Equal(t, 100*time.Millisecond, sw.Accumulated())
	assert.Equal(t, callsAtPause, calls)
}

func TestTick_FromEarlierIntervalIsDiscarded(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	stale := rig.Scheduler.Active()[0]
	rig.Run(100 * time.Millisecond)
	sw.Reset()
	sw.Start()

	rig.Clock.Advance(time.Minute)
	stale.FireStale()

	assert.Equal(t, time.Duration(0), sw.Accumulated())
	assert.True(t, sw.Elapsed().IsZero())
}

func TestTick_ClockStepBackwardsDoesNotDecrease(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(500 * time.Millisecond)
	rig.Clock.Set(stopwatchtest.Epoch.Add(-time.Hour))
	rig.Scheduler.Fire()

	assert.Equal(t, 500*time.Millisecond, sw.Accumulated())
}

func TestClose(t *testing.T) {
	rig := stopwatchtest.NewRig()
	sw := rig.Stopwatch

	sw.Start()
	rig.Run(30 * time.Millisecond)
	task := rig.Scheduler.Active()[0]

	sw.Close()
	assert.True(t, task.Stopped())
	assert.False(t, sw.Running())
	assert.False(t, sw.Start(), "closed stopwatch cannot start")

	assert.NotPanics(t, sw.Close)
	assert.Equal(t, 30*time.Millisecond, sw.Accumulated())
}

func TestChannelListener_DropsWhenFull(t *testing.T) {
	ch := make(chan stopwatch.ElapsedTime, 1)
	listener := stopwatch.ChannelListener(ch)

	listener(stopwatch.Decompose(10))
	listener(stopwatch.Decompose(20))

	require.Len(t, ch, 1)
	assert.Equal(t, stopwatch.Decompose(10), <-ch)
}

func TestTickerScheduler_StopIsSynchronous(t *testing.T) {
	var count atomic.Int64
	task := stopwatch.TickerScheduler{}.Every(time.Millisecond, func() {
		count.Add(1)
		time.Sleep(2 * time.Millisecond)
	})

	require.Eventually(t, func() bool { return count.Load() >= 2 }, time.Second, time.Millisecond)
	task.Stop()
	after := count.Load()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "no invocation after Stop returns")
	assert.NotPanics(t, task.Stop)
}

func TestStopwatch_RealClock(t *testing.T) {
	var mu sync.Mutex
	var last stopwatch.ElapsedTime
	sw := stopwatch.New(stopwatch.WithListener(func(e stopwatch.ElapsedTime) {
		mu.Lock()
		last = e
		mu.Unlock()
	}))
	defer sw.Close()

	sw.Start()
	require.Eventually(t, func() bool { return sw.Accumulated() >= 50*time.Millisecond }, 2*time.Second, 5*time.Millisecond)
	sw.Pause()

	frozen := sw.Snapshot()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, frozen, sw.Snapshot())
	mu.Lock()
	assert.Equal(t, frozen.Elapsed, last)
	mu.Unlock()
}
