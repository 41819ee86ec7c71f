package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Path   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

// Available themes
var (
	ThemeNight = Theme{
		Name:   "night",
		Path:   lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Accent: lipgloss.Color("#00ffff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Path:   lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#008800"),
		Accent: lipgloss.Color("#88ff88"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Path:   lipgloss.Color("#3c3c3c"),
		Text:   lipgloss.Color("#b4b4b4"),
		Muted:  lipgloss.Color("#8c8c8c"),
		Accent: lipgloss.Color("#ffffff"),
	}
)

var Themes = []Theme{ThemeNight, ThemeRetroGreen, ThemeMono}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
