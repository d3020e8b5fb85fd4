package stopwatch

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// LapEntry is one row of the lap list.
type LapEntry struct {
	// Number counts from 1 for the oldest lap.
	Number int
	Time   ElapsedTime
}

// Label returns "Lap n".
func (e LapEntry) Label() string {
	return fmt.Sprintf("Lap %d", e.Number)
}

// LapEntries orders laps newest first and numbers them, so the first entry
// carries the highest number.
func LapEntries(laps []ElapsedTime) []LapEntry {
	return lo.Map(laps, func(_ ElapsedTime, i int) LapEntry {
		n := len(laps) - i
		return LapEntry{Number: n, Time: laps[n-1]}
	})
}

// Snapshot is a point-in-time copy of a Stopwatch.
type Snapshot struct {
	Running     bool
	Accumulated time.Duration
	Elapsed     ElapsedTime
	// Laps are oldest first.
	Laps []ElapsedTime
}

// LapEntries returns the snapshot's laps newest first.
func (s Snapshot) LapEntries() []LapEntry {
	return LapEntries(s.Laps)
}
