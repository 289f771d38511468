package scan

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Recognized UVM marker strings. The message-kind markers match at line
// start; the end-of-test marker matches anywhere in the line.
const (
	// Separator is emitted on its own line between non-adjacent groups of
	// output.
	Separator = "..."

	endOfTestMarker = "# --- UVM Report Summary ---"
	messageMarker   = "# UVM_"
	warningMarker   = "# UVM_WARNING"
	errorMarker     = "# UVM_ERROR"
	fatalMarker     = "# UVM_FATAL"
)

// ansiEscape matches SGR sequences (ESC [ ... m) that simulators embed when
// colorizing their transcripts. They are stripped before matching or output.
var ansiEscape = regexp.MustCompile("\x1b\\[.*?m")

// Options control how a scan interprets lines and reports matches.
type Options struct {
	// CaseSensitive compares terms and markers without case folding.
	// Regex mode forces this on regardless of the flag.
	CaseSensitive bool

	// Regex treats every search term as a regular expression.
	Regex bool

	// Exclusive requires every term to match somewhere within a message
	// block (AND); otherwise any single term match suffices (OR).
	Exclusive bool

	// ShowErrors and ShowWarnings force blocks containing UVM_ERROR or
	// UVM_WARNING lines into the output. UVM_FATAL blocks are always shown.
	ShowErrors   bool
	ShowWarnings bool

	// LineNumbers prefixes each output line with its source line number,
	// left-justified to the width of the file's total line count.
	LineNumbers bool

	// Context is the number of message blocks preceding a match to include.
	// Negative values are treated as zero.
	Context int
}

// entry is one buffered log line with its pre-formatted line number.
type entry struct {
	number string
	line   string
}

// File reads the log at path into memory and scans it with Lines.
func File(path string, terms []string, opts Options) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return Lines(lines, terms, opts)
}

// Lines runs a single forward pass over lines, grouping them into message
// blocks and returning the rendered output for matched blocks and their
// context. Each output line carries a trailing newline so the result can be
// displayed or written to a file verbatim. The scan stops at the UVM report
// summary marker; lines past it are never considered.
//
// An invalid regular expression term aborts the scan before any line is
// read.
func Lines(lines []string, terms []string, opts Options) ([]string, error) {
	if opts.Context < 0 {
		opts.Context = 0
	}
	if opts.Regex {
		// Regex terms carry their own case handling.
		opts.CaseSensitive = true
	}

	matcher, err := newTermMatcher(terms, opts)
	if err != nil {
		return nil, err
	}

	endOfTest := endOfTestMarker
	message := messageMarker
	warning := warningMarker
	errMark := errorMarker
	fatal := fatalMarker
	if !opts.CaseSensitive {
		endOfTest = strings.ToLower(endOfTest)
		message = strings.ToLower(message)
		warning = strings.ToLower(warning)
		errMark = strings.ToLower(errMark)
		fatal = strings.ToLower(fatal)
	}

	numberWidth := len(strconv.Itoa(len(lines)))

	var (
		text       []string
		buffer     []entry
		history    [][]entry
		matched    bool
		contiguous bool
		pending    int
	)

	flush := func(block []entry) {
		for _, e := range block {
			if opts.LineNumbers {
				text = append(text, e.number+": "+e.line+"\n")
			} else {
				text = append(text, e.line+"\n")
			}
		}
	}

	for i, raw := range lines {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		line = ansiEscape.ReplaceAllString(line, "")

		folded := line
		if !opts.CaseSensitive {
			folded = strings.ToLower(line)
		}

		atEnd := strings.Contains(folded, endOfTest)

		if strings.HasPrefix(folded, message) || atEnd {
			// The current buffer is a completed message block.
			if len(buffer) > 0 {
				history = append(history, buffer)
				buffer = nil
			}
			history = trimHistory(history, opts.Context+1)

			if matched || pending > 0 {
				if !contiguous {
					text = append(text, Separator+"\n")
				}
				for _, block := range history {
					flush(block)
				}
				history = nil
				contiguous = true
			} else {
				contiguous = false
			}

			if pending > 0 {
				pending--
			}
			if matched {
				pending = opts.Context
			}
			matched = false
			matcher.reset()
		}

		// Lines past the report summary never reach the output.
		if atEnd {
			return text, nil
		}

		buffer = append(buffer, entry{
			number: fmt.Sprintf("%-*d", numberWidth, i+1),
			line:   line,
		})

		if strings.HasPrefix(folded, fatal) {
			matched = true
		}
		if opts.ShowErrors && strings.HasPrefix(folded, errMark) {
			matched = true
		}
		if opts.ShowWarnings && strings.HasPrefix(folded, warning) {
			matched = true
		}
		if matcher.match(line, folded) {
			matched = true
		}
	}

	// The file ended without a report summary, so the final block is still
	// open in the buffer.
	if matched || pending > 0 {
		if !contiguous {
			text = append(text, Separator+"\n")
		}
		// The oldest history entry was already counted against the previous
		// flush decision; keeping it would emit one block too many.
		if len(history) > 0 {
			history = history[1:]
		}
		history = trimHistory(history, opts.Context+1)
		for _, block := range history {
			flush(block)
		}
		flush(buffer)
	}

	return text, nil
}

// trimHistory bounds the context window to the newest limit blocks.
func trimHistory(history [][]entry, limit int) [][]entry {
	if overflow := len(history) - limit; overflow > 0 {
		return append([][]entry(nil), history[overflow:]...)
	}
	return history
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}
