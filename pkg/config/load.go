package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/chronometer/errors"
	log "github.com/cloudposse/chronometer/pkg/logger"
	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/xdg"
)

// LoadConfig merges configuration into v from the following locations (from lower to higher priority):
// defaults, <XDG config home>/chronometer/chronometer.yaml, ./chronometer.yaml,
// $CHRONOMETER_CONFIG_PATH, CHRONOMETER_* environment variables and any flags
// already bound with BindFlags. The result is validated.
func LoadConfig(v *viper.Viper) (schema.Configuration, error) {
	var cfg schema.Configuration

	v.SetConfigType("yaml")
	setDefaultConfiguration(v)

	if err := readXDGConfig(v); err != nil {
		return cfg, err
	}
	if err := readWorkDirConfig(v); err != nil {
		return cfg, err
	}
	if err := readEnvConfigPath(v); err != nil {
		return cfg, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return cfg, errUtils.Build(errUtils.ErrDecodeConfig).
			WithCause(err).
			WithTitle("Configuration Error").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	cfg.ConfigFileUsed = v.ConfigFileUsed()

	if cfg.ConfigFileUsed == "" {
		log.Debug("No chronometer.yaml found, using defaults")
	} else {
		log.Debug("Loaded configuration", "file", cfg.ConfigFileUsed)
	}

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// BindFlags binds every flag in FlagKeys that fs defines to its viper key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(KeyLogsFile, DefaultLogsFile)
	v.SetDefault(KeyLogsLevel, DefaultLogsLevel)
	v.SetDefault(KeyTickInterval, stopwatch.DefaultTickInterval)
	v.SetDefault(KeyBanner, true)
	v.SetDefault(KeyTitle, DefaultTitle)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetDefault(KeyLapListHeight, DefaultLapListHeight)
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyOutputFormat, DefaultOutputFormat)
}

// readXDGConfig loads config from the user's XDG config directory.
func readXDGConfig(v *viper.Viper) error {
	return mergeConfigFile(v, filepath.Join(xdg.GetXDGConfigDir(""), CliConfigFileName+CliConfigFileExt))
}

// readWorkDirConfig loads config from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	return mergeConfigFile(v, filepath.Join(wd, CliConfigFileName+CliConfigFileExt))
}

// readEnvConfigPath loads the file, or the chronometer.yaml inside the directory, named by CHRONOMETER_CONFIG_PATH.
func readEnvConfigPath(v *viper.Viper) error {
	path := os.Getenv(ConfigPathEnvVar)
	if path == "" {
		return nil
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, CliConfigFileName+CliConfigFileExt)
	}

	if _, err := os.Stat(path); err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithContext("path", path).
			WithHintf("Unset %s or point it at an existing file", ConfigPathEnvVar).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	log.Debug("Found config from environment", ConfigPathEnvVar, path)
	return mergeConfigFile(v, path)
}

// mergeConfigFile merges path into v. A missing file is skipped.
func mergeConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithContext("file", path).
			WithTitle("Configuration Error").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
	return nil
}
