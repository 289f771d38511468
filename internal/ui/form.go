package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LucAce/uvm-message-search/internal/prefs"
	"github.com/LucAce/uvm-message-search/internal/scan"
)

const (
	maxTermFields = 10
	maxContext    = 10
)

// Toggle positions after the file and term inputs.
const (
	toggleMode = iota
	toggleCase
	toggleMatch
	toggleErrors
	toggleWarnings
	toggleLineNumbers
	toggleContext
	toggleCount
)

// formState holds the search form: the log file path, up to ten search
// terms, and the scan option toggles. Focus moves through the file input,
// the term inputs, and the toggles in order.
type formState struct {
	file  textinput.Model
	terms []textinput.Model
	focus int

	regex         bool
	caseSensitive bool
	exclusive     bool
	showErrors    bool
	showWarnings  bool
	lineNumbers   bool
	context       int
}

func newFormState(p prefs.Prefs, filePath string) formState {
	file := textinput.New()
	file.Placeholder = "path to simulation log"
	file.CharLimit = 0
	file.SetValue(filePath)
	file.Focus()

	f := formState{
		file:          file,
		regex:         p.Regex,
		caseSensitive: p.CaseSensitive,
		exclusive:     p.Exclusive,
		showErrors:    p.ShowErrors,
		showWarnings:  p.ShowWarnings,
		lineNumbers:   p.LineNumbers,
		context:       clampContext(p.Context),
	}
	f.terms = append(f.terms, newTermInput())
	return f
}

func newTermInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "search term"
	in.CharLimit = 0
	return in
}

func clampContext(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxContext {
		return maxContext
	}
	return n
}

// focusCount is the number of focusable elements on the form.
func (f formState) focusCount() int {
	return 1 + len(f.terms) + toggleCount
}

// toggleIndex maps a focus index to a toggle position, or -1 when the focus
// is on a text input.
func (f formState) toggleIndex() int {
	base := 1 + len(f.terms)
	if f.focus < base {
		return -1
	}
	return f.focus - base
}

func (f formState) onTextInput() bool {
	return f.toggleIndex() < 0
}

func (f *formState) setFocus(idx int) {
	count := f.focusCount()
	if idx < 0 {
		idx = count - 1
	}
	f.focus = idx % count
	f.file.Blur()
	for i := range f.terms {
		f.terms[i].Blur()
	}
	if f.focus == 0 {
		f.file.Focus()
	} else if f.focus <= len(f.terms) {
		f.terms[f.focus-1].Focus()
	}
}

func (f *formState) nextField() { f.setFocus(f.focus + 1) }
func (f *formState) prevField() { f.setFocus(f.focus - 1) }

func (f *formState) addTerm() {
	if len(f.terms) >= maxTermFields {
		return
	}
	f.terms = append(f.terms, newTermInput())
	f.setFocus(len(f.terms))
}

func (f *formState) removeTerm() {
	if len(f.terms) <= 1 {
		return
	}
	f.terms = f.terms[:len(f.terms)-1]
	if f.focus > len(f.terms) {
		f.setFocus(len(f.terms))
	} else {
		f.setFocus(f.focus)
	}
}

// toggleFocused flips the toggle under the cursor. The context spinner is
// adjusted with adjustContext instead.
func (f *formState) toggleFocused() {
	switch f.toggleIndex() {
	case toggleMode:
		f.regex = !f.regex
	case toggleCase:
		f.caseSensitive = !f.caseSensitive
	case toggleMatch:
		f.exclusive = !f.exclusive
	case toggleErrors:
		f.showErrors = !f.showErrors
	case toggleWarnings:
		f.showWarnings = !f.showWarnings
	case toggleLineNumbers:
		f.lineNumbers = !f.lineNumbers
	}
}

func (f *formState) adjustContext(delta int) {
	if f.toggleIndex() != toggleContext {
		return
	}
	f.context = clampContext(f.context + delta)
}

// updateInputs forwards a message to the focused text input.
func (f *formState) updateInputs(msg tea.Msg) tea.Cmd {
	if f.focus == 0 {
		var cmd tea.Cmd
		f.file, cmd = f.file.Update(msg)
		return cmd
	}
	if f.focus <= len(f.terms) {
		var cmd tea.Cmd
		idx := f.focus - 1
		f.terms[idx], cmd = f.terms[idx].Update(msg)
		return cmd
	}
	return nil
}

// termValues returns the non-blank search terms in field order.
func (f formState) termValues() []string {
	var terms []string
	for _, in := range f.terms {
		if v := strings.TrimSpace(in.Value()); v != "" {
			terms = append(terms, v)
		}
	}
	return terms
}

func (f formState) filePath() string {
	return strings.TrimSpace(f.file.Value())
}

func (f formState) scanOptions() scan.Options {
	return scan.Options{
		CaseSensitive: f.caseSensitive,
		Regex:         f.regex,
		Exclusive:     f.exclusive,
		ShowErrors:    f.showErrors,
		ShowWarnings:  f.showWarnings,
		LineNumbers:   f.lineNumbers,
		Context:       f.context,
	}
}

// applyPrefs copies the form toggles into a preferences value for saving.
func (f formState) applyPrefs(p prefs.Prefs) prefs.Prefs {
	p.CaseSensitive = f.caseSensitive
	p.Regex = f.regex
	p.Exclusive = f.exclusive
	p.ShowErrors = f.showErrors
	p.ShowWarnings = f.showWarnings
	p.LineNumbers = f.lineNumbers
	p.Context = f.context
	return p
}

func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(m.renderFormLabel("Log File", m.form.focus == 0))
	b.WriteString("\n")
	b.WriteString("  " + m.form.file.View() + "\n\n")

	for i, in := range m.form.terms {
		label := fmt.Sprintf("Term %d", i+1)
		b.WriteString(m.renderFormLabel(label, m.form.focus == i+1))
		b.WriteString("\n")
		b.WriteString("  " + in.View() + "\n")
	}
	b.WriteString("\n")

	ti := m.form.toggleIndex()
	mode := "Text"
	if m.form.regex {
		mode = "Regex"
	}
	match := "Any term (OR)"
	if m.form.exclusive {
		match = "All terms (AND)"
	}
	caseLabel := m.renderChoice("Case sensitive", m.form.caseSensitive, ti == toggleCase)
	if m.form.regex {
		// Regex searches are always case sensitive.
		caseLabel = m.renderFormLabel("Case sensitive", ti == toggleCase) + " " +
			styles.FaintText.Render("always (regex)")
	}

	b.WriteString(m.renderFormLabel("Mode", ti == toggleMode) + " " + styles.Text.Render(mode) + "\n")
	b.WriteString(caseLabel + "\n")
	b.WriteString(m.renderFormLabel("Match", ti == toggleMatch) + " " + styles.Text.Render(match) + "\n")
	b.WriteString(m.renderChoice("Show errors", m.form.showErrors, ti == toggleErrors) + "\n")
	b.WriteString(m.renderChoice("Show warnings", m.form.showWarnings, ti == toggleWarnings) + "\n")
	b.WriteString(m.renderChoice("Line numbers", m.form.lineNumbers, ti == toggleLineNumbers) + "\n")

	ctx := fmt.Sprintf("< %d >", m.form.context)
	b.WriteString(m.renderFormLabel("Context lines", ti == toggleContext) + " " + styles.Text.Render(ctx) + "\n")

	hints := styles.FaintText.Render(
		"enter search · tab next · ctrl+n add term · ctrl+x remove term · f1 help · ctrl+c quit")

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), hints)
}

func (m Model) renderFormLabel(label string, focused bool) string {
	styles := m.theme.Styles()
	if focused {
		return styles.AccentText.Render("> " + label + ":")
	}
	return styles.MutedText.Render("  " + label + ":")
}

func (m Model) renderChoice(label string, on, focused bool) string {
	styles := m.theme.Styles()
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return m.renderFormLabel(label, focused) + " " + styles.Text.Render(box)
}
