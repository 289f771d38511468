package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	Border      string
	BorderFocus string
}

// Styles holds the Lipgloss styles derived from a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Title       lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

var themes = []Theme{
	{
		Name:        "Dracula",
		Text:        "#F8F8F2",
		Muted:       "#9AA5CE",
		Faint:       "#6272A4",
		Accent:      "#BD93F9",
		Success:     "#50FA7B",
		Warning:     "#F1FA8C",
		Danger:      "#FF5555",
		Border:      "#44475A",
		BorderFocus: "#BD93F9",
	},
	{
		Name:        "Slate",
		Text:        "#E2E8F0",
		Muted:       "#94A3B8",
		Faint:       "#64748B",
		Accent:      "#38BDF8",
		Success:     "#4ADE80",
		Warning:     "#FACC15",
		Danger:      "#F87171",
		Border:      "#334155",
		BorderFocus: "#38BDF8",
	},
}

// GetTheme returns the theme with the given name, falling back to the first
// theme when the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// ThemeNames returns the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the name of the theme after the given one.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
