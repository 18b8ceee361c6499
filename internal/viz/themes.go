package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for bars and chrome.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Bar        lipgloss.Color
	Active     lipgloss.Color
	Eliminated lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"),
		Accent:     lipgloss.Color("#ffff00"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Error:      lipgloss.Color("#ff0000"),
		Bar:        lipgloss.Color("#00ffff"),
		Active:     lipgloss.Color("#ff00ff"),
		Eliminated: lipgloss.Color("#444444"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Error:      lipgloss.Color("#ff0000"),
		Bar:        lipgloss.Color("#00cc00"),
		Active:     lipgloss.Color("#ffff00"),
		Eliminated: lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Error:      lipgloss.Color("#ff0000"),
		Bar:        lipgloss.Color("#cccccc"),
		Active:     lipgloss.Color("#0088ff"),
		Eliminated: lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"),
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Error:      lipgloss.Color("#ff4444"),
		Bar:        lipgloss.Color("#00a8cc"),
		Active:     lipgloss.Color("#ffd700"),
		Eliminated: lipgloss.Color("#1a3a55"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Error:      lipgloss.Color("#ff4757"),
		Bar:        lipgloss.Color("#feca57"),
		Active:     lipgloss.Color("#ff6b6b"),
		Eliminated: lipgloss.Color("#4a3a4b"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			break
		}
	}
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BarColor picks the theme color for a bar in the given state.
func (t Theme) BarColor(s State) lipgloss.Color {
	switch s {
	case StateActive:
		return t.Active
	case StateEliminated:
		return t.Eliminated
	default:
		return t.Bar
	}
}
