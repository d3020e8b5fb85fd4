package config

import (
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/chronometer/errors"
	log "github.com/cloudposse/chronometer/pkg/logger"
	"github.com/cloudposse/chronometer/pkg/report"
	"github.com/cloudposse/chronometer/pkg/schema"
)

var colorModes = []string{schema.ColorAuto, schema.ColorAlways, schema.ColorNever}

// Validate checks the decoded configuration.
func Validate(cfg *schema.Configuration) error {
	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return usageError(err)
	}

	tick := cfg.Stopwatch.TickInterval
	if tick <= 0 || tick > MaxTickInterval {
		return errUtils.Build(errUtils.ErrInvalidTickInterval).
			WithTitle("Configuration Error").
			WithExplanation("The tick interval is how often the running time is recomputed and redrawn. Longer intervals make the display and laps lag the clock.").
			WithContext("tick_interval", tick.String()).
			WithHintf("Set %s to a duration greater than 0 and at most %s, e.g. 10ms", KeyTickInterval, MaxTickInterval).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if !lo.Contains(colorModes, cfg.UI.Color) {
		return errUtils.Build(errUtils.ErrInvalidColorMode).
			WithTitle("Configuration Error").
			WithContext("color", cfg.UI.Color).
			WithHint("Supported color modes are auto, always, never").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if cfg.UI.LapListHeight < 1 {
		return errUtils.Build(errUtils.ErrInvalidLapListSize).
			WithTitle("Configuration Error").
			WithContext("lap_list_height", cfg.UI.LapListHeight).
			WithHintf("Set %s to at least 1", KeyLapListHeight).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if err := report.ValidateFormat(cfg.Output.Format); err != nil {
		return usageError(err)
	}

	return nil
}

func usageError(err error) error {
	return errUtils.Build(err).
		WithTitle("Configuration Error").
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}
