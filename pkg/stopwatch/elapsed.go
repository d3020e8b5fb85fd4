package stopwatch

import "fmt"

const (
	msPerCentisecond = 10
	msPerSecond      = 1000
	msPerMinute      = 60 * msPerSecond
	msPerHour        = 60 * msPerMinute

	secondsPerMinute = 60
	minutesPerHour   = 60
)

// ElapsedTime is a running time broken into display fields.
// It is only ever produced by Decompose.
type ElapsedTime struct {
	Hours        int64 `json:"hours" yaml:"hours"`
	Minutes      int   `json:"minutes" yaml:"minutes"`
	Seconds      int   `json:"seconds" yaml:"seconds"`
	Centiseconds int   `json:"centiseconds" yaml:"centiseconds"`
}

// Decompose splits a millisecond total into hours, minutes, seconds and centiseconds.
// Every field is truncated, never rounded. Hours do not wrap.
// Negative totals are treated as zero.
func Decompose(ms int64) ElapsedTime {
	if ms < 0 {
		ms = 0
	}

	return ElapsedTime{
		Hours:        ms / msPerHour,
		Minutes:      int((ms / msPerMinute) % minutesPerHour),
		Seconds:      int((ms / msPerSecond) % secondsPerMinute),
		Centiseconds: int((ms % msPerSecond) / msPerCentisecond),
	}
}

// Milliseconds returns the total the fields represent, at centisecond resolution.
func (t ElapsedTime) Milliseconds() int64 {
	return t.Hours*msPerHour +
		int64(t.Minutes)*msPerMinute +
		int64(t.Seconds)*msPerSecond +
		int64(t.Centiseconds)*msPerCentisecond
}

// IsZero reports whether all fields are zero.
func (t ElapsedTime) IsZero() bool {
	return t == ElapsedTime{}
}

// String returns FormatTime(t).
func (t ElapsedTime) String() string {
	return FormatTime(t)
}

// FormatTime renders t as "HH:MM:SS.CC". Every field is padded to at least two digits;
// hours may be wider. Negative fields render as zero.
func FormatTime(t ElapsedTime) string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d",
		max(t.Hours, 0),
		max(t.Minutes, 0),
		max(t.Seconds, 0),
		max(t.Centiseconds, 0),
	)
}
