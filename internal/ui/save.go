package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// saveState is the save-results modal: a single path input over the
// results view.
type saveState struct {
	input  textinput.Model
	active bool
}

func newSaveState() saveState {
	in := textinput.New()
	in.Placeholder = "path to write results"
	in.CharLimit = 0
	return saveState{input: in}
}

func (s *saveState) open(suggestion string) {
	s.active = true
	s.input.SetValue(suggestion)
	s.input.CursorEnd()
	s.input.Focus()
}

func (s *saveState) close() {
	s.active = false
	s.input.Blur()
}

// writeResults writes the annotated output lines to path, replacing any
// existing file. Lines already carry their trailing newlines.
func writeResults(path string, lines []string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve results path: %w", err)
	}
	if err := os.WriteFile(resolved, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return abs, nil
}

func (m Model) renderSaveModal() string {
	styles := m.theme.Styles()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(min(m.width-4, 72))

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Save Results"),
		"",
		m.save.input.View(),
		"",
		styles.FaintText.Render("enter save · esc cancel"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box.Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}
