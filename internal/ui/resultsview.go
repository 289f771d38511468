package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/LucAce/uvm-message-search/internal/results"
)

// resultsState is the scrollable results view.
type resultsState struct {
	viewport viewport.Model
	ready    bool
}

// setSnapshot loads the latest search outcome into the viewport.
func (r *resultsState) setSnapshot(snap results.Snapshot) {
	content := strings.TrimSuffix(strings.Join(snap.Lines, ""), "\n")
	r.viewport.SetContent(content)
	r.viewport.GotoTop()
}

func (r *resultsState) resize(width, height int) {
	if !r.ready {
		r.viewport = viewport.New(width, height)
		r.ready = true
		return
	}
	r.viewport.Width = width
	r.viewport.Height = height
}

func (m Model) resultsHeader() string {
	styles := m.theme.Styles()
	snap := m.store.Snapshot()

	switch {
	case snap.Err != nil:
		return styles.DangerText.Render(fmt.Sprintf("search failed: %v", snap.Err))
	case !snap.HasResult():
		return styles.MutedText.Render("no results yet")
	case len(snap.Lines) == 0:
		return styles.WarningText.Render(fmt.Sprintf("no matches in %s", snap.Path))
	default:
		return styles.SuccessText.Render(fmt.Sprintf("%d lines", len(snap.Lines))) +
			styles.MutedText.Render("  "+snap.Path)
	}
}

func (m Model) resultsHints() string {
	return m.theme.Styles().FaintText.Render(
		"j/k scroll · g/G top/bottom · s save · esc back · ctrl+c quit")
}

func (m Model) renderResults() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.resultsHeader(),
		m.resultsView.viewport.View(),
		m.resultsHints(),
	)
}
