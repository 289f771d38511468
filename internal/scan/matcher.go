package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// term is one search term prepared for repeated matching. Exactly one of re
// or folded is in use depending on the scan mode.
type term struct {
	folded string
	re     *regexp.Regexp
}

func (t term) matches(line, folded string) bool {
	if t.re != nil {
		return t.re.MatchString(line)
	}
	return strings.Contains(folded, t.folded)
}

// termMatcher decides whether the lines seen so far within the current
// message block satisfy the search terms. In exclusive (AND) mode it tracks
// which terms have matched anywhere in the block; in inclusive (OR) mode any
// single term match suffices.
type termMatcher struct {
	terms     []term
	exclusive bool
	seen      []bool
}

// newTermMatcher prepares terms for scanning. Regex terms are compiled once
// up front so an invalid pattern fails the scan before any line is read.
func newTermMatcher(terms []string, opts Options) (*termMatcher, error) {
	m := &termMatcher{
		terms:     make([]term, 0, len(terms)),
		exclusive: opts.Exclusive,
		seen:      make([]bool, len(terms)),
	}
	for _, raw := range terms {
		if opts.Regex {
			re, err := regexp.Compile(raw)
			if err != nil {
				return nil, fmt.Errorf("compile term %q: %w", raw, err)
			}
			m.terms = append(m.terms, term{re: re})
			continue
		}
		folded := raw
		if !opts.CaseSensitive {
			folded = strings.ToLower(folded)
		}
		m.terms = append(m.terms, term{folded: folded})
	}
	return m, nil
}

// match feeds one line and reports whether the current block is now matched.
// line is the escape-stripped original; folded is its comparison copy.
func (m *termMatcher) match(line, folded string) bool {
	if len(m.terms) == 0 {
		return false
	}
	if m.exclusive {
		all := true
		for i, t := range m.terms {
			if !m.seen[i] && t.matches(line, folded) {
				m.seen[i] = true
			}
			if !m.seen[i] {
				all = false
			}
		}
		return all
	}
	for _, t := range m.terms {
		if t.matches(line, folded) {
			return true
		}
	}
	return false
}

// reset clears per-block state. Called at every block boundary.
func (m *termMatcher) reset() {
	for i := range m.seen {
		m.seen[i] = false
	}
}
