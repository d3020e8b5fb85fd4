package exec

import (
	"fmt"
	"io"
	"runtime"

	errUtils "github.com/cloudposse/chronometer/errors"
	tuiUtils "github.com/cloudposse/chronometer/internal/tui/utils"
	"github.com/cloudposse/chronometer/pkg/report"
	"github.com/cloudposse/chronometer/pkg/utils"
	"github.com/cloudposse/chronometer/pkg/version"
)

// VersionInfo is the structured output of `chronometer version --format json|yaml`.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// VersionExec prints version information.
type VersionExec struct {
	out    io.Writer
	banner bool
}

func NewVersionExec(out io.Writer, banner bool) *VersionExec {
	return &VersionExec{out: out, banner: banner}
}

// Execute prints the version in format: "" or "text" for the human-readable line,
// "json" or "yaml" for VersionInfo.
func (v *VersionExec) Execute(format string) error {
	info := VersionInfo{
		Version:   version.Version,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	switch format {
	case "", report.FormatText:
		if v.banner {
			if err := tuiUtils.PrintDecoratedText(v.out, BannerText); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(v.out, "⏱  Chronometer %s on %s/%s\n", info.Version, info.OS, info.Arch)
		return err
	case report.FormatJSON:
		return utils.WriteAsJSON(v.out, info)
	case report.FormatYAML:
		return utils.WriteAsYAML(v.out, info)
	default:
		return errUtils.Build(errUtils.ErrInvalidOutputFormat).
			WithContext("format", format).
			WithHint("Supported formats are json, yaml").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}
