package stopwatch_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/chronometer/pkg/stopwatch"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected stopwatch.ElapsedTime
	}{
		{name: "zero", ms: 0, expected: stopwatch.ElapsedTime{}},
		{name: "below one centisecond truncates", ms: 9, expected: stopwatch.ElapsedTime{}},
		{name: "one centisecond", ms: 10, expected: stopwatch.ElapsedTime{Centiseconds: 1}},
		{name: "1234 ms", ms: 1234, expected: stopwatch.ElapsedTime{Seconds: 1, Centiseconds: 23}},
		{name: "999 ms", ms: 999, expected: stopwatch.ElapsedTime{Centiseconds: 99}},
		{name: "one minute", ms: 60_000, expected: stopwatch.ElapsedTime{Minutes: 1}},
		{name: "59:59.99", ms: 3_599_999, expected: stopwatch.ElapsedTime{Minutes: 59, Seconds: 59, Centiseconds: 99}},
		{name: "one hour", ms: 3_600_000, expected: stopwatch.ElapsedTime{Hours: 1}},
		{name: "hours do not wrap", ms: 100 * 3_600_000, expected: stopwatch.ElapsedTime{Hours: 100}},
		{name: "negative clamps to zero", ms: -500, expected: stopwatch.ElapsedTime{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stopwatch.Decompose(tt.ms))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    stopwatch.ElapsedTime
		expected string
	}{
		{name: "zero", input: stopwatch.ElapsedTime{}, expected: "00:00:00.00"},
		{name: "padded fields", input: stopwatch.ElapsedTime{Hours: 1, Minutes: 2, Seconds: 3, Centiseconds: 4}, expected: "01:02:03.04"},
		{name: "two digit fields", input: stopwatch.ElapsedTime{Hours: 12, Minutes: 34, Seconds: 56, Centiseconds: 78}, expected: "12:34:56.78"},
		{name: "hours wider than two digits", input: stopwatch.ElapsedTime{Hours: 123}, expected: "123:00:00.00"},
		{name: "negative fields render as zero", input: stopwatch.ElapsedTime{Hours: -1, Minutes: -2, Seconds: -3, Centiseconds: -4}, expected: "00:00:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stopwatch.FormatTime(tt.input))
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestFormatTime_MatchesDecomposition(t *testing.T) {
	pattern := regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{2})$`)
	rng := rand.New(rand.NewSource(42))

	samples := []int64{0, 1, 10, 999, 1000, 59_999, 60_000, 3_599_999, 3_600_000, 359_999_000}
	for i := 0; i < 2000; i++ {
		samples = append(samples, rng.Int63n(359_999_001))
	}

	for _, ms := range samples {
		formatted := stopwatch.FormatTime(stopwatch.Decompose(ms))
		m := pattern.FindStringSubmatch(formatted)
		require.NotNil(t, m, "unexpected format %q for %d", formatted, ms)

		fields := make([]int64, 4)
		for i := range fields {
			v, err := strconv.ParseInt(m[i+1], 10, 64)
			require.NoError(t, err)
			fields[i] = v
		}

		assert.Equal(t, ms/3_600_000, fields[0], "hours for %d", ms)
		assert.Equal(t, (ms/60_000)%60, fields[1], "minutes for %d", ms)
		assert.Equal(t, (ms/1000)%60, fields[2], "seconds for %d", ms)
		assert.Equal(t, (ms%1000)/10, fields[3], "centiseconds for %d", ms)
	}
}

func TestElapsedTime_Milliseconds(t *testing.T) {
	assert.Equal(t, int64(1230), stopwatch.Decompose(1234).Milliseconds())
	assert.Equal(t, int64(3_723_040), stopwatch.ElapsedTime{Hours: 1, Minutes: 2, Seconds: 3, Centiseconds: 4}.Milliseconds())
	assert.True(t, stopwatch.ElapsedTime{}.IsZero())
	assert.False(t, stopwatch.Decompose(10).IsZero())
}

func ExampleFormatTime() {
	fmt.Println(stopwatch.FormatTime(stopwatch.Decompose(1234)))
	fmt.Println(stopwatch.FormatTime(stopwatch.Decompose(90_061_500)))
	// Output:
	// 00:00:01.23
	// 25:01:01.50
}
