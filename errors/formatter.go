package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/ui/theme"
)

const (
	// DefaultMaxLineLength is the width long messages are wrapped to.
	DefaultMaxLineLength = 80

	defaultTitle = "Error"
	hintPrefix   = "    💡 "
	newline      = "\n"

	// headerRow is the row index lipgloss/table passes for the header.
	headerRow = -1
)

// FormatterConfig controls error formatting.
type FormatterConfig struct {
	// Verbose adds the context table, explanations and the full error chain.
	Verbose bool

	// Color is one of the schema color modes.
	Color string

	// MaxLineLength is the width to wrap at (default 80).
	MaxLineLength int
}

var verbose bool

// SetVerbose sets the Verbose field of DefaultFormatterConfig.
func SetVerbose(v bool) {
	verbose = v
}

// DefaultFormatterConfig returns the auto-colour configuration, verbose only after SetVerbose(true).
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       verbose,
		Color:         schema.ColorAuto,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders err for the terminal: a title, the message, hints and, in verbose
// mode, context, explanations and the error chain.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)
	titleStyle := lipgloss.NewStyle().Bold(true)
	errorStyle := lipgloss.NewStyle()
	if useColor {
		titleStyle = titleStyle.Foreground(lipgloss.Color(theme.ColorRed))
		errorStyle = errorStyle.Foreground(lipgloss.Color(theme.ColorRed))
	}

	title, hints := splitHints(errors.GetAllHints(err))

	var output strings.Builder
	output.WriteString(titleStyle.Render(title))
	output.WriteString(newline)

	msg := err.Error()
	if !config.Verbose {
		msg = wrapText(msg, config.MaxLineLength)
	}
	output.WriteString(errorStyle.Render(msg))

	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(newline)
			output.WriteString(hintPrefix + hint)
		}
	}

	if config.Verbose {
		if contextTable := formatContextTable(err, useColor); contextTable != "" {
			output.WriteString(newline)
			output.WriteString(contextTable)
		}
		if details := errors.GetAllDetails(err); len(details) > 0 {
			output.WriteString(newline + newline)
			output.WriteString(strings.Join(details, newline))
		}
		output.WriteString(newline + newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// splitHints separates the title hint from the user-facing ones.
func splitHints(all []string) (string, []string) {
	title := defaultTitle
	hints := make([]string, 0, len(all))
	for _, hint := range all {
		if t, ok := strings.CutPrefix(hint, titleHintPrefix); ok {
			title = t
			continue
		}
		hints = append(hints, hint)
	}
	return title, hints
}

// formatContextTable renders the safe details added by ErrorBuilder.WithContext.
func formatContextTable(err error, useColor bool) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if k, v, ok := strings.Cut(pair, "="); ok {
					rows = append(rows, []string{k, v})
				}
			}
		}
	}
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBorder))).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
				if row == headerRow {
					return style.Foreground(lipgloss.Color(theme.ColorGreen)).Bold(true)
				}
				if col == 0 {
					return style.Foreground(lipgloss.Color(theme.ColorGray))
				}
				return style
			})
	}

	return t.String()
}

func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case schema.ColorAlways:
		return true
	case schema.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text on word boundaries at width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	if len(text) <= width {
		return text
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, newline)
}

// formatStackTrace renders the cockroachdb %+v chain.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color(theme.ColorGray))
	}
	return style.Render(fmt.Sprintf("%+v", err))
}
