package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the live view
type Theme struct {
	Name   string
	Trace  lipgloss.Color
	Body   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

var (
	// Dark background with a yellow sun, after the classic matplotlib look.
	ThemeNight = Theme{
		Name:   "night",
		Trace:  lipgloss.Color("#1f77b4"),
		Body:   lipgloss.Color("#ffff00"),
		Accent: lipgloss.Color("#00ccff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888899"),
		Border: lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Trace:  lipgloss.Color("#00ff00"), // Green phosphor
		Body:   lipgloss.Color("#88ff88"),
		Accent: lipgloss.Color("#00cc00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Trace:  lipgloss.Color("#ffffff"),
		Body:   lipgloss.Color("#ffaa00"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
	}

	Themes = []Theme{
		ThemeNight,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeNight, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
