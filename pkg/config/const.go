package config

import (
	"time"

	"github.com/cloudposse/chronometer/pkg/schema"
)

const (
	AppName = "chronometer"

	// CliConfigFileName is the config file base name, without extension.
	CliConfigFileName = "chronometer"
	CliConfigFileExt  = ".yaml"

	// EnvPrefix prefixes every environment override, e.g. CHRONOMETER_LOGS_LEVEL.
	EnvPrefix = "CHRONOMETER"

	// ConfigPathEnvVar points at an extra config file or directory.
	ConfigPathEnvVar = "CHRONOMETER_CONFIG_PATH"

	DefaultTitle         = "Time Lapse Chronometer"
	DefaultLogsFile      = "/dev/stderr"
	DefaultLogsLevel     = "Info"
	DefaultColor         = schema.ColorAuto
	DefaultLapListHeight = 10
	DefaultOutputFormat  = "text"

	// MaxTickInterval bounds stopwatch.tick_interval; slower ticks make the display useless.
	MaxTickInterval = time.Second
)

// Viper keys.
const (
	KeyLogsFile      = "logs.file"
	KeyLogsLevel     = "logs.level"
	KeyTickInterval  = "stopwatch.tick_interval"
	KeyBanner        = "ui.banner"
	KeyTitle         = "ui.title"
	KeyColor         = "ui.color"
	KeyLapListHeight = "ui.lap_list_height"
	KeyPlain         = "ui.plain"
	KeyOutputFormat  = "output.format"
)

// FlagKeys maps CLI flag names to the viper keys they override.
var FlagKeys = map[string]string{
	"logs-file":     KeyLogsFile,
	"logs-level":    KeyLogsLevel,
	"tick-interval": KeyTickInterval,
	"banner":        KeyBanner,
	"title":         KeyTitle,
	"color":         KeyColor,
	"lap-height":    KeyLapListHeight,
	"plain":         KeyPlain,
	"output":        KeyOutputFormat,
}
