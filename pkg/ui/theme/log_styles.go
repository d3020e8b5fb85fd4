package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

// WCAG sRGB gamma correction constants.
const (
	rgbMaxValue          = 255.0
	srgbThreshold        = 0.03928
	srgbGammaDivisor     = 12.92
	srgbGammaOffset      = 0.055
	srgbGammaDenominator = 1.055
	srgbGammaExponent    = 2.4
	// WCAG relative luminance weights.
	wcagLuminanceRedWeight   = 0.2126
	wcagLuminanceGreenWeight = 0.7152
	wcagLuminanceBlueWeight  = 0.0722

	hexColorLength     = 6
	hexBase            = 16
	intBitSize         = 64
	luminanceThreshold = 0.5
)

// traceLevel mirrors logger.TraceLevel; the logger package imports this one.
const traceLevel = log.DebugLevel - 1

// getContrastTextColor returns black or white text color based on background luminance.
func getContrastTextColor(bgColor string) string {
	hexColor := bgColor
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}

	if len(hexColor) != hexColorLength {
		return "#FFFFFF"
	}

	r, err1 := strconv.ParseInt(hexColor[0:2], hexBase, intBitSize)
	g, err2 := strconv.ParseInt(hexColor[2:4], hexBase, intBitSize)
	b, err3 := strconv.ParseInt(hexColor[4:6], hexBase, intBitSize)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#FFFFFF"
	}

	toLinear := func(c int64) float64 {
		v := float64(c) / rgbMaxValue
		if v <= srgbThreshold {
			return v / srgbGammaDivisor
		}
		return math.Pow((v+srgbGammaOffset)/srgbGammaDenominator, srgbGammaExponent)
	}

	luminance := wcagLuminanceRedWeight*toLinear(r) +
		wcagLuminanceGreenWeight*toLinear(g) +
		wcagLuminanceBlueWeight*toLinear(b)

	if luminance > luminanceThreshold {
		return "#000000"
	}
	return "#FFFFFF"
}

func badge(label, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(getContrastTextColor(bg))).
		Bold(true).
		Padding(0, 1)
}

// createLogLevelStyles creates 4-character badge styles for every level, trace included.
func createLogLevelStyles(scheme *ColorScheme) map[log.Level]lipgloss.Style {
	return map[log.Level]lipgloss.Style{
		traceLevel:     badge("TRCE", scheme.TextMuted),
		log.DebugLevel: badge("DEBU", scheme.LogDebug),
		log.InfoLevel:  badge("INFO", scheme.LogInfo),
		log.WarnLevel:  badge("WARN", scheme.LogWarning),
		log.ErrorLevel: badge("ERRO", scheme.LogError),
		log.FatalLevel: badge("FATA", scheme.LogError),
	}
}

// GetLogStyles returns charm/log styles in the scheme's colours.
func GetLogStyles(scheme *ColorScheme) *log.Styles {
	if scheme == nil {
		return GetLogStylesNoColor()
	}

	styles := log.DefaultStyles()
	styles.Levels = createLogLevelStyles(scheme)
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted))
	styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Primary))
	styles.Message = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextPrimary))
	styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextMuted)).Faint(true)
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Error)).Bold(true)
	styles.Values["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Error))
	return styles
}

// GetLogStylesNoColor returns plain 4-character level labels.
func GetLogStylesNoColor() *log.Styles {
	styles := &log.Styles{
		Levels: map[log.Level]lipgloss.Style{
			traceLevel:     lipgloss.NewStyle().SetString("TRCE"),
			log.DebugLevel: lipgloss.NewStyle().SetString("DEBU"),
			log.InfoLevel:  lipgloss.NewStyle().SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().SetString("ERRO"),
			log.FatalLevel: lipgloss.NewStyle().SetString("FATA"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
	return styles
}
