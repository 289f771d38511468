package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LucAce/uvm-message-search/internal/prefs"
	"github.com/LucAce/uvm-message-search/internal/results"
)

// view identifies the active screen.
type view int

const (
	viewForm view = iota
	viewResults
)

// Options configures the UI.
type Options struct {
	Store     *results.Store
	Prefs     prefs.Prefs
	PrefsPath string

	// FilePath pre-fills the log file input when set.
	FilePath string
}

// Model is the root Bubble Tea model.
type Model struct {
	store     *results.Store
	prefs     prefs.Prefs
	prefsPath string

	keys  keyMap
	theme Theme

	width  int
	height int

	currentView view
	showHelp    bool
	searching   bool

	form        formState
	resultsView resultsState
	save        saveState

	status    string
	statusErr bool
}

// New builds the root model from options.
func New(opts Options) Model {
	return Model{
		store:     opts.Store,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		form:      newFormState(opts.Prefs, opts.FilePath),
		save:      newSaveState(),
	}
}

// Run drives the UI until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsView.resize(msg.Width, m.viewportHeight(msg.Height))
		return m, nil

	case scanDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("search failed: %v", msg.err), true)
			return m, nil
		}
		snap := m.store.Snapshot()
		m.setStatus(fmt.Sprintf("%d lines from %s", len(snap.Lines), snap.Path), false)
		m.currentView = viewResults
		m.resultsView.resize(m.width, m.viewportHeight(m.height))
		m.resultsView.setSnapshot(snap)
		return m, nil

	case saveDoneMsg:
		m.save.close()
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("save failed: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("saved to %s", msg.path), false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMatches(msg, m.keys.Quit) {
		m.persistPrefs()
		return m, tea.Quit
	}

	if m.showHelp {
		if keyMatches(msg, m.keys.Help) || keyMatches(msg, m.keys.Back) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.save.active {
		return m.handleSaveKey(msg)
	}

	switch {
	case keyMatches(msg, m.keys.Theme):
		m.prefs.Theme = NextTheme(m.theme.Name)
		m.theme = GetTheme(m.prefs.Theme)
		m.persistPrefs()
		m.setStatus(fmt.Sprintf("theme: %s", m.theme.Name), false)
		return m, nil
	case keyMatches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	switch m.currentView {
	case viewForm:
		return m.handleFormKey(msg)
	case viewResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Search):
		return m.startSearch()
	case keyMatches(msg, m.keys.Next):
		m.form.nextField()
		return m, nil
	case keyMatches(msg, m.keys.Prev):
		m.form.prevField()
		return m, nil
	case keyMatches(msg, m.keys.AddTerm):
		m.form.addTerm()
		return m, nil
	case keyMatches(msg, m.keys.RemoveTerm):
		m.form.removeTerm()
		return m, nil
	case keyMatches(msg, m.keys.Back):
		if m.store.Snapshot().HasResult() {
			m.currentView = viewResults
		}
		return m, nil
	}

	if !m.form.onTextInput() {
		switch {
		case keyMatches(msg, m.keys.Toggle):
			m.form.toggleFocused()
			return m, nil
		case keyMatches(msg, m.keys.Decrement):
			m.form.adjustContext(-1)
			return m, nil
		case keyMatches(msg, m.keys.Increment):
			m.form.adjustContext(1)
			return m, nil
		}
		return m, nil
	}

	cmd := m.form.updateInputs(msg)
	return m, cmd
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	path := m.form.filePath()
	if path == "" {
		m.setStatus("enter a log file path", true)
		return m, nil
	}
	m.searching = true
	m.persistPrefs()
	m.setStatus(fmt.Sprintf("searching %s", path), false)
	return m, scanCmd(m.store, path, m.form.termValues(), m.form.scanOptions())
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Back):
		m.currentView = viewForm
		return m, nil
	case keyMatches(msg, m.keys.Save):
		snap := m.store.Snapshot()
		if !snap.HasResult() {
			m.setStatus("nothing to save", true)
			return m, nil
		}
		m.save.open(snap.Path + ".search")
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.resultsView.viewport.GotoTop()
		return m, nil
	case keyMatches(msg, m.keys.Bottom):
		m.resultsView.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.resultsView.viewport, cmd = m.resultsView.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Back):
		m.save.close()
		return m, nil
	case keyMatches(msg, m.keys.Search):
		path := m.save.input.Value()
		if path == "" {
			m.setStatus("enter a path to save to", true)
			return m, nil
		}
		return m, saveCmd(path, m.store.Snapshot().Lines)
	}

	var cmd tea.Cmd
	m.save.input, cmd = m.save.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.save.active {
		return m.renderSaveModal()
	}

	title := m.renderTitle()
	var body string
	switch m.currentView {
	case viewForm:
		body = m.renderForm()
	case viewResults:
		body = m.renderResults()
	}

	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, status)
}

func (m Model) renderTitle() string {
	return m.theme.Styles().Title.Render("UVM Message Search")
}

// viewportHeight measures the chrome View stacks around the results
// viewport (the title, the spacer under it, the results header, the hint
// line, and the status line) and leaves the viewport the rest.
func (m Model) viewportHeight(total int) int {
	chrome := lipgloss.Height(m.renderTitle()) + 1 +
		lipgloss.Height(m.resultsHeader()) +
		lipgloss.Height(m.resultsHints()) +
		lipgloss.Height(m.renderStatus())
	return max(total-chrome, 1)
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.searching {
		return styles.WarningText.Render("searching...")
	}
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styles.DangerText.Render(m.status)
	}
	return styles.MutedText.Render(m.status)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// persistPrefs writes the current toggles and theme back to disk. Failures
// surface in the status bar rather than interrupting the session.
func (m *Model) persistPrefs() {
	p := m.form.applyPrefs(m.prefs)
	p.Theme = m.theme.Name
	m.prefs = p
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.setStatus(fmt.Sprintf("save preferences: %v", err), true)
	}
}
