package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	// Key hint style
	KeyHint = lipgloss.NewStyle().Italic(true)
)

// statusBar joins label/value pairs into a single line. Labels use the
// theme's muted color, values its text color and the first value its accent.
func statusBar(theme Theme, pairs ...string) string {
	label := lipgloss.NewStyle().Foreground(theme.Muted)
	text := lipgloss.NewStyle().Foreground(theme.Text)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		value := text
		if i == 0 {
			value = accent
		}
		parts = append(parts, label.Render(pairs[i]+" ")+value.Render(pairs[i+1]))
	}
	return strings.Join(parts, label.Render("  │  "))
}

// hintLine renders the key help in the theme's muted color.
func hintLine(theme Theme, hint string) string {
	return KeyHint.Foreground(theme.Muted).Render(hint)
}
