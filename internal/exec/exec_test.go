package exec

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/chronometer/errors"
	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/stopwatch/stopwatchtest"
	"github.com/cloudposse/chronometer/pkg/version"
)

func testConfig() *schema.Configuration {
	return &schema.Configuration{
		Stopwatch: schema.StopwatchSettings{TickInterval: 10 * time.Millisecond},
		UI:        schema.UISettings{Title: "Time Lapse Chronometer", LapListHeight: 10, Color: "never"},
		Output:    schema.OutputSettings{Format: "text"},
	}
}

func manualOptions() []stopwatch.Option {
	return []stopwatch.Option{
		stopwatch.WithClock(stopwatchtest.NewFakeClock()),
		stopwatch.WithScheduler(stopwatchtest.NewManualScheduler()),
	}
}

func TestExecuteSession_Console(t *testing.T) {
	var out bytes.Buffer
	snap, err := ExecuteSession(context.Background(), testConfig(), SessionOptions{
		In:               strings.NewReader("start\nlap\nlap\nquit\n"),
		Out:              &out,
		StopwatchOptions: manualOptions(),
	})
	require.NoError(t, err)

	assert.False(t, snap.Running)
	assert.Len(t, snap.Laps, 2)
	assert.True(t, strings.HasPrefix(out.String(), "Time Lapse Chronometer\n"))
	assert.Contains(t, out.String(), "Lap 2  00:00:00.00")
	assert.Nil(t, active.Load(), "the session is no longer active")
}

func TestExecuteSession_ConsoleBanner(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Banner = true
	cfg.UI.Title = ""

	var out bytes.Buffer
	_, err := ExecuteSession(context.Background(), cfg, SessionOptions{
		In:               strings.NewReader("quit\n"),
		Out:              &out,
		StopwatchOptions: manualOptions(),
	})
	require.NoError(t, err)
	assert.Greater(t, strings.Index(out.String(), "Type 'help'"), 0, "the banner comes first")
}

func TestExecuteSession_InteractiveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	snap, err := ExecuteSession(ctx, testConfig(), SessionOptions{
		In:               strings.NewReader(""),
		Out:              &out,
		Interactive:      true,
		StopwatchOptions: manualOptions(),
	})
	require.NoError(t, err)
	assert.False(t, snap.Running)
	assert.Empty(t, snap.Laps)
}

func TestCloseActiveSession(t *testing.T) {
	CloseActiveSession()

	rig := stopwatchtest.NewRig()
	active.Store(rig.Stopwatch)
	t.Cleanup(func() { active.Store(nil) })

	require.True(t, rig.Stopwatch.Start())
	CloseActiveSession()
	assert.False(t, rig.Stopwatch.Running())
	assert.False(t, rig.Stopwatch.Start())
}

func TestExecuteFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ExecuteFormat(&out, []string{"0", "1234", "90061500"}))
	assert.Equal(t, "00:00:00.00\n00:00:01.23\n25:01:01.50\n", out.String())
}

func TestExecuteFormat_Invalid(t *testing.T) {
	for _, arg := range []string{"-1", "abc", "1.5", ""} {
		t.Run(arg, func(t *testing.T) {
			var out bytes.Buffer
			err := ExecuteFormat(&out, []string{"10", arg})
			assert.ErrorIs(t, err, errUtils.ErrInvalidMilliseconds)
			assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
			assert.Empty(t, out.String(), "nothing is printed when any argument is invalid")
		})
	}
}

func TestVersionExec(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewVersionExec(&out, false).Execute(""))
		assert.Contains(t, out.String(), "Chronometer "+version.Version)
	})

	t.Run("text with banner", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewVersionExec(&out, true).Execute("text"))
		assert.Greater(t, strings.Index(out.String(), "Chronometer "+version.Version), 0)
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewVersionExec(&out, true).Execute("json"))
		assert.Contains(t, out.String(), `"version": "`+version.Version+`"`)
		assert.Contains(t, out.String(), `"go_version"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewVersionExec(&out, false).Execute("yaml"))
		assert.Contains(t, out.String(), "version: "+version.Version)
	})

	t.Run("invalid", func(t *testing.T) {
		err := NewVersionExec(&bytes.Buffer{}, false).Execute("toml")
		assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
	})
}
