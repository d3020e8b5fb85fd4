package stopwatch

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Task is a recurring callback that can be cancelled.
type Task interface {
	// Stop cancels the task. When Stop returns, no invocation of the callback is running
	// and none will start. Stop must not be called from inside the callback.
	Stop()
}

// Scheduler runs a callback at a fixed period until the returned Task is stopped.
// Invocations of one task never overlap.
type Scheduler interface {
	Every(period time.Duration, fn func()) Task
}

// SystemClock reads the host clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickerScheduler runs each task on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// Every starts fn on a ticker with the given period.
func (TickerScheduler) Every(period time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(period),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(fn func()) {
	defer close(t.done)

	for {
		select {
		case <-t.stop:
			return
		case <-t.ticker.C:
			// A stop that raced the tick wins.
			select {
			case <-t.stop:
				return
			default:
			}
			fn()
		}
	}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stop)
	})
	<-t.done
}

var (
	_ Clock     = SystemClock{}
	_ Scheduler = TickerScheduler{}
)
