package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{
		title: "Search Form",
		entries: []helpEntry{
			{"tab / shift+tab", "move between fields"},
			{"enter", "run the search"},
			{"space", "flip the focused toggle"},
			{"left / right", "adjust context lines"},
			{"ctrl+n", "add a term field (up to 10)"},
			{"ctrl+x", "remove the last term field"},
		},
	},
	{
		title: "Results",
		entries: []helpEntry{
			{"j / k, up / down", "scroll"},
			{"g / G", "jump to top / bottom"},
			{"s", "save results to a file"},
			{"esc", "back to the form"},
		},
	},
	{
		title: "Global",
		entries: []helpEntry{
			{"ctrl+t", "cycle color theme"},
			{"f1", "toggle this help"},
			{"ctrl+c", "quit"},
		},
	},
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentText.Render(section.title) + "\n")
		for _, e := range section.entries {
			b.WriteString("  " + styles.Text.Render(padRight(e.keys, 20)) +
				styles.MutedText.Render(e.desc) + "\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Help"),
		"",
		strings.TrimRight(b.String(), "\n"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
