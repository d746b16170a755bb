// Package theme defines the colors, styles and symbols used for terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme supplies the visual style for Output and the interactive components.
type Theme interface {
	Name() string
	Palette() ColorPalette
	Styles() Styles
	Symbols() Symbols
}

// ColorPalette holds the adaptive colors a theme is built from.
type ColorPalette struct {
	Primary lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Text         lipgloss.AdaptiveColor
	TextMuted    lipgloss.AdaptiveColor
	TextFaint    lipgloss.AdaptiveColor
	TextEmphasis lipgloss.AdaptiveColor
}

// Styles are the rendered styles derived from a palette.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Header    lipgloss.Style
	SubHeader lipgloss.Style

	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Emphasis lipgloss.Style

	ListBullet lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
}

// Symbols are the glyphs prefixed to messages.
type Symbols struct {
	Success string
	Error   string
	Warning string
	Info    string
	Arrow   string
	Bullet  string
}

var current Theme = NewDefaultTheme()

// Current returns the active theme.
func Current() Theme {
	return current
}
