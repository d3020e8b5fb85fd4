// Package theme holds the colours shared by the terminal UI, the logger and the error formatter.
package theme

import "github.com/charmbracelet/lipgloss"

// ColorScheme maps UI roles to hex colours.
type ColorScheme struct {
	Primary string // Title text
	Action  string // Enabled controls
	Success string // Running indicator
	Warning string // Paused indicator
	Error   string // Error text

	TextPrimary string // Main text
	TextMuted   string // Disabled controls, lap numbers, log keys
	Display     string // Digits on the time display
	DisplayBg   string // Time display panel
	Border      string // Lap list dividers and table borders

	LogDebug   string
	LogInfo    string
	LogWarning string
	LogError   string
}

// Named colours used outside a scheme.
const (
	ColorGreen  = "#4CAF50"
	ColorRed    = "#FF0000"
	ColorGray   = "#808080"
	ColorBorder = "#5F5FD7"
)

// DefaultScheme returns the built-in palette.
func DefaultScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     "#E0E0E0",
		Action:      ColorGreen,
		Success:     ColorGreen,
		Warning:     "#FFB300",
		Error:       ColorRed,
		TextPrimary: "#FFFFFF",
		TextMuted:   "#888888",
		Display:     "#FFFFFF",
		DisplayBg:   "#333333",
		Border:      ColorBorder,
		LogDebug:    "#00A3E0",
		LogInfo:     ColorGreen,
		LogWarning:  "#FFB300",
		LogError:    "#D32F2F",
	}
}

// Styles are the lipgloss styles the stopwatch screen is drawn with.
type Styles struct {
	Title      lipgloss.Style
	Display    lipgloss.Style
	Running    lipgloss.Style
	Paused     lipgloss.Style
	LapsTitle  lipgloss.Style
	LapNumber  lipgloss.Style
	LapTime    lipgloss.Style
	LapDivider lipgloss.Style
}

// NewStyles builds Styles from a scheme. A nil scheme uses DefaultScheme.
func NewStyles(scheme *ColorScheme) Styles {
	if scheme == nil {
		scheme = DefaultScheme()
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Primary)).
			MarginBottom(1),
		Display: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Display)).
			Background(lipgloss.Color(scheme.DisplayBg)).
			Padding(1, 4),
		Running: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Success)),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Warning)),
		LapsTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Primary)).
			MarginTop(1),
		LapNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.TextMuted)),
		LapTime: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.TextPrimary)),
		LapDivider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Border)),
	}
}
