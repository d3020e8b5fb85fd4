package schema

import "time"

// Configuration is the decoded chronometer.yaml merged with environment and flags.
type Configuration struct {
	Logs      Logs              `yaml:"logs" json:"logs" mapstructure:"logs"`
	Stopwatch StopwatchSettings `yaml:"stopwatch" json:"stopwatch" mapstructure:"stopwatch"`
	UI        UISettings        `yaml:"ui" json:"ui" mapstructure:"ui"`
	Output    OutputSettings    `yaml:"output" json:"output" mapstructure:"output"`

	// ConfigFileUsed is the path of the last config file merged, if any.
	ConfigFileUsed string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

type StopwatchSettings struct {
	TickInterval time.Duration `yaml:"tick_interval" json:"tick_interval" mapstructure:"tick_interval"`
}

// Color modes accepted by ui.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type UISettings struct {
	Banner        bool   `yaml:"banner" json:"banner" mapstructure:"banner"`
	Title         string `yaml:"title" json:"title" mapstructure:"title"`
	Color         string `yaml:"color" json:"color" mapstructure:"color"`
	LapListHeight int    `yaml:"lap_list_height" json:"lap_list_height" mapstructure:"lap_list_height"`
	Plain         bool   `yaml:"plain" json:"plain" mapstructure:"plain"`
}

type OutputSettings struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}
