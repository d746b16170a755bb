package theme

import "github.com/charmbracelet/lipgloss"

// defaultTheme is a minimal style with violet accents.
type defaultTheme struct {
	palette ColorPalette
	styles  Styles
	symbols Symbols
}

// NewDefaultTheme creates the default cutc theme.
func NewDefaultTheme() Theme {
	// AdaptiveColor picks light/dark variants automatically
	palette := ColorPalette{
		Primary: lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet

		Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}, // Green
		Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"}, // Red
		Warning: lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}, // Yellow
		Info:    lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}, // Blue

		Text:         lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f9fafb"},
		TextMuted:    lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		TextFaint:    lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"},
		TextEmphasis: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#ffffff"},
	}

	symbols := Symbols{
		Success: "✅", // check mark button
		Error:   "❌", // cross mark
		Warning: "⚠", // warning sign
		Info:    "→", // arrow
		Arrow:   "→",
		Bullet:  "•",
	}

	t := &defaultTheme{
		palette: palette,
		symbols: symbols,
	}

	t.styles = Styles{
		Success: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(palette.Warning),
		Info: lipgloss.NewStyle().
			Foreground(palette.Info),

		Header: lipgloss.NewStyle().
			Foreground(palette.TextEmphasis).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Foreground(palette.TextEmphasis).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
		Faint: lipgloss.NewStyle().
			Foreground(palette.TextFaint),
		Emphasis: lipgloss.NewStyle().
			Foreground(palette.Primary),

		ListBullet: lipgloss.NewStyle().
			Foreground(palette.Primary),
		Selected: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
	}

	return t
}

func (t *defaultTheme) Name() string {
	return "default"
}

func (t *defaultTheme) Palette() ColorPalette {
	return t.palette
}

func (t *defaultTheme) Styles() Styles {
	return t.styles
}

func (t *defaultTheme) Symbols() Symbols {
	return t.symbols
}
