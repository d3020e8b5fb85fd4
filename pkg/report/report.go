// Package report renders the end-of-session summary of a stopwatch run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/chronometer/errors"
	"github.com/cloudposse/chronometer/pkg/stopwatch"
	"github.com/cloudposse/chronometer/pkg/utils"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatNone = "none"
)

// Formats lists every accepted output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatNone}

// Lap is one recorded lap in a Summary.
type Lap struct {
	Number       int    `json:"number" yaml:"number"`
	Label        string `json:"label" yaml:"label"`
	Time         string `json:"time" yaml:"time"`
	Milliseconds int64  `json:"milliseconds" yaml:"milliseconds"`
}

// Summary is the final state of a session. Laps are newest first.
type Summary struct {
	Elapsed   string `json:"elapsed" yaml:"elapsed"`
	ElapsedMs int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	Laps      []Lap  `json:"laps" yaml:"laps"`
}

// NewSummary builds a Summary from a stopwatch snapshot.
func NewSummary(snap stopwatch.Snapshot) Summary {
	return Summary{
		Elapsed:   stopwatch.FormatTime(snap.Elapsed),
		ElapsedMs: snap.Elapsed.Milliseconds(),
		Laps: lo.Map(snap.LapEntries(), func(e stopwatch.LapEntry, _ int) Lap {
			return Lap{
				Number:       e.Number,
				Label:        e.Label(),
				Time:         stopwatch.FormatTime(e.Time),
				Milliseconds: e.Time.Milliseconds(),
			}
		}),
	}
}

// ValidateFormat returns ErrInvalidOutputFormat unless format is one of Formats.
func ValidateFormat(format string) error {
	if lo.Contains(Formats, format) {
		return nil
	}
	return errUtils.Build(errUtils.ErrInvalidOutputFormat).
		WithContext("format", format).
		WithHintf("Supported formats are %s", strings.Join(Formats, ", ")).
		WithExitCode(errUtils.ExitCodeUsage).
		Err()
}

// Write renders s to w in format.
func Write(w io.Writer, s Summary, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	var err error
	switch format {
	case FormatNone:
		return nil
	case FormatJSON:
		err = utils.WriteAsJSON(w, s)
	case FormatYAML:
		err = utils.WriteAsYAML(w, s)
	default:
		_, err = io.WriteString(w, RenderText(s))
	}
	if err != nil {
		return errUtils.Build(errUtils.ErrWriteOutput).
			WithCause(err).
			WithContext("format", format).
			Err()
	}
	return nil
}

// RenderText renders s as the elapsed line followed, when laps were recorded, by a lap table.
func RenderText(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Elapsed: %s\n", s.Elapsed)
	if len(s.Laps) == 0 {
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Lap", "Time").
		Rows(lo.Map(s.Laps, func(l Lap, _ int) []string {
			return []string{l.Label, l.Time}
		})...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		})

	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
