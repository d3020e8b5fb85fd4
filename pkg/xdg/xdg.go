package xdg

import (
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const (
	appName = "chronometer"

	// ConfigHomeOverrideEnvVar takes precedence over XDG_CONFIG_HOME for chronometer only.
	ConfigHomeOverrideEnvVar = "CHRONOMETER_XDG_CONFIG_HOME"
)

// GetXDGConfigDir returns <config home>/chronometer/<subpath>. The config home is
// CHRONOMETER_XDG_CONFIG_HOME, then XDG_CONFIG_HOME, then the platform default.
// The directory is not created.
func GetXDGConfigDir(subpath string) string {
	return filepath.Join(configHome(), appName, subpath)
}

func configHome() string {
	if dir := os.Getenv(ConfigHomeOverrideEnvVar); dir != "" {
		return dir
	}
	// adrg/xdg reads the environment once at init; honour later changes.
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return adrg.ConfigHome
}
