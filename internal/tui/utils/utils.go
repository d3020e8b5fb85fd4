package utils

import (
	"io"
	"os"

	"github.com/arsham/figurine/figurine"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/cloudposse/chronometer/pkg/schema"
)

const bannerFont = "ANSI Regular.flf"

// PrintDecoratedText prints text to w in a large figlet font.
func PrintDecoratedText(w io.Writer, text string) error {
	return figurine.Write(w, text, bannerFont)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorProfile picks the lipgloss color profile for a ui.color mode.
// "auto" honours NO_COLOR and only colours interactive terminals.
func ColorProfile(mode string, out *os.File) termenv.Profile {
	switch mode {
	case schema.ColorNever:
		return termenv.Ascii
	case schema.ColorAlways:
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	default:
		if os.Getenv("NO_COLOR") != "" || !IsTTY(out) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	}
}

// ConfigureColors applies the profile for mode to lipgloss and returns it.
func ConfigureColors(mode string, out *os.File) termenv.Profile {
	profile := ColorProfile(mode, out)
	lipgloss.SetColorProfile(profile)
	return profile
}
