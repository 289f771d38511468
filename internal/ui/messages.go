package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LucAce/uvm-message-search/internal/results"
	"github.com/LucAce/uvm-message-search/internal/scan"
)

// scanDoneMsg reports a finished search. The result itself lives in the
// store; the message only says the store is ready to read.
type scanDoneMsg struct {
	path string
	err  error
}

// saveDoneMsg reports a finished save of the current results.
type saveDoneMsg struct {
	path string
	err  error
}

// scanCmd runs the search off the update loop and records the outcome in
// the shared store before reporting back.
func scanCmd(store *results.Store, path string, terms []string, opts scan.Options) tea.Cmd {
	return func() tea.Msg {
		lines, err := scan.File(path, terms, opts)
		store.Update(path, terms, opts, lines, err)
		return scanDoneMsg{path: path, err: err}
	}
}

func saveCmd(path string, lines []string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{path: path, err: writeResults(path, lines)}
	}
}
