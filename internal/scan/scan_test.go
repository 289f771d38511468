package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLines_ForceShowError(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello",
		"line X",
		"# UVM_ERROR bad thing",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, nil, Options{ShowErrors: true})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{"...\n", "# UVM_ERROR bad thing\n"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_TermMatchWithTrailingContext(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello",
		"line X",
		"# UVM_ERROR bad thing",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{ShowErrors: true, Context: 1})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO hello\n",
		"line X\n",
		"# UVM_ERROR bad thing\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_MatchModes(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		terms []string
		opts  Options
		want  []string
	}{
		{
			name: "and mode matches across lines of one block",
			lines: []string{
				"# UVM_INFO msg",
				"alpha line",
				"beta line",
				"# UVM_INFO next",
			},
			terms: []string{"alpha", "beta"},
			opts:  Options{Exclusive: true},
			want: []string{
				"...\n",
				"# UVM_INFO msg\n",
				"alpha line\n",
				"beta line\n",
			},
		},
		{
			name: "and mode does not match terms split across blocks",
			lines: []string{
				"# UVM_INFO first",
				"alpha line",
				"# UVM_INFO second",
				"beta line",
				"# UVM_INFO third",
			},
			terms: []string{"alpha", "beta"},
			opts:  Options{Exclusive: true},
			want:  nil,
		},
		{
			name: "or mode matches any single term",
			lines: []string{
				"# UVM_INFO msg",
				"alpha line",
				"beta line",
				"# UVM_INFO next",
			},
			terms: []string{"alpha", "nothere"},
			opts:  Options{},
			want: []string{
				"...\n",
				"# UVM_INFO msg\n",
				"alpha line\n",
				"beta line\n",
			},
		},
		{
			name: "case insensitive folds terms and lines",
			lines: []string{
				"# UVM_INFO note",
				"THE WARNING SIGN",
				"# UVM_INFO next",
			},
			terms: []string{"warn"},
			opts:  Options{},
			want: []string{
				"...\n",
				"# UVM_INFO note\n",
				"THE WARNING SIGN\n",
			},
		},
		{
			name: "case sensitive does not fold",
			lines: []string{
				"# UVM_INFO note",
				"THE WARNING SIGN",
				"# UVM_INFO next",
			},
			terms: []string{"warn"},
			opts:  Options{CaseSensitive: true},
			want:  nil,
		},
		{
			name: "regex matches against original case line",
			lines: []string{
				"# UVM_ERROR bad crc",
				"# UVM_INFO next",
			},
			terms: []string{"UVM_ERR.R"},
			opts:  Options{Regex: true},
			want: []string{
				"...\n",
				"# UVM_ERROR bad crc\n",
			},
		},
		{
			name: "regex forces case sensitivity on",
			lines: []string{
				"# UVM_INFO HELLO",
				"# UVM_INFO next",
			},
			terms: []string{"hello"},
			opts:  Options{Regex: true, CaseSensitive: false},
			want:  nil,
		},
		{
			name: "empty term set matches nothing without force-show",
			lines: []string{
				"# UVM_ERROR bad thing",
				"# UVM_WARNING odd thing",
				"# UVM_INFO next",
			},
			terms: nil,
			opts:  Options{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(tt.lines, tt.terms, tt.opts)
			if err != nil {
				t.Fatalf("Lines returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Lines() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLines_ForceShowRules(t *testing.T) {
	lines := []string{
		"# UVM_FATAL dead",
		"# UVM_ERROR bad",
		"# UVM_WARNING odd",
		"# --- UVM Report Summary ---",
	}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "fatal always shown",
			opts: Options{},
			want: []string{"...\n", "# UVM_FATAL dead\n"},
		},
		{
			name: "errors gated on option",
			opts: Options{ShowErrors: true},
			want: []string{"...\n", "# UVM_FATAL dead\n", "# UVM_ERROR bad\n"},
		},
		{
			name: "warnings gated on option",
			opts: Options{ShowErrors: true, ShowWarnings: true},
			want: []string{
				"...\n",
				"# UVM_FATAL dead\n",
				"# UVM_ERROR bad\n",
				"# UVM_WARNING odd\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(lines, nil, tt.opts)
			if err != nil {
				t.Fatalf("Lines returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Lines() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLines_StopsAtReportSummary(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello",
		"# --- UVM Report Summary ---",
		"# UVM_INFO hello again",
		"# UVM_FATAL never seen",
	}

	got, err := Lines(lines, []string{"hello"}, Options{})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{"...\n", "# UVM_INFO hello\n"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
	for _, line := range got {
		if strings.Contains(line, "again") || strings.Contains(line, "never seen") {
			t.Fatalf("output contains content past the report summary: %q", line)
		}
	}
}

func TestLines_ContextWindow(t *testing.T) {
	lines := []string{
		"# UVM_INFO one",
		"# UVM_INFO two",
		"# UVM_INFO three",
		"# UVM_INFO target hello",
		"# UVM_INFO five",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{Context: 2})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO two\n",
		"# UVM_INFO three\n",
		"# UVM_INFO target hello\n",
		"# UVM_INFO five\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_ContextClippedAtStreamStart(t *testing.T) {
	lines := []string{
		"# UVM_INFO target hello",
		"# UVM_INFO two",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{Context: 5})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO target hello\n",
		"# UVM_INFO two\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_SeparatorBetweenNonAdjacentRuns(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello one",
		"# UVM_INFO filler",
		"# UVM_INFO hello two",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO hello one\n",
		"...\n",
		"# UVM_INFO hello two\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_NoSeparatorBetweenAdjacentRuns(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello one",
		"# UVM_INFO hello two",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO hello one\n",
		"# UVM_INFO hello two\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_LineNumbersPaddedToFileWidth(t *testing.T) {
	lines := []string{
		"# UVM_INFO hello",
		"detail",
		"# UVM_INFO skip",
		"filler", "filler", "filler", "filler",
		"filler", "filler", "filler", "filler",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{LineNumbers: true})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"1 : # UVM_INFO hello\n",
		"2 : detail\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_StripsEscapesAndTrailingWhitespace(t *testing.T) {
	lines := []string{
		"\x1b[31m# UVM_ERROR\x1b[0m bad   \r",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, nil, Options{ShowErrors: true})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{"...\n", "# UVM_ERROR bad\n"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_PostLoopFlushDropsOldestHistoryBlock(t *testing.T) {
	// No report summary: the final block is still open when input ends.
	lines := []string{
		"# UVM_INFO aaa",
		"# UVM_INFO bbb",
		"# UVM_INFO ccc",
		"# UVM_INFO ddd hello",
		"tail detail",
	}

	got, err := Lines(lines, []string{"hello"}, Options{Context: 2})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{
		"...\n",
		"# UVM_INFO bbb\n",
		"# UVM_INFO ccc\n",
		"# UVM_INFO ddd hello\n",
		"tail detail\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_NegativeContextClampedToZero(t *testing.T) {
	lines := []string{
		"# UVM_INFO one",
		"# UVM_INFO target hello",
		"# --- UVM Report Summary ---",
	}

	got, err := Lines(lines, []string{"hello"}, Options{Context: -3})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	want := []string{"...\n", "# UVM_INFO target hello\n"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %#v, want %#v", got, want)
	}
}

func TestLines_InvalidRegexTermFailsScan(t *testing.T) {
	_, err := Lines([]string{"# UVM_INFO hello"}, []string{"["}, Options{Regex: true})
	if err == nil {
		t.Fatal("Lines accepted an invalid regex term")
	}
}

func TestLines_EmptyInput(t *testing.T) {
	got, err := Lines(nil, []string{"hello"}, Options{})
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Lines() = %#v, want empty", got)
	}
}

func TestFile_MatchesLines(t *testing.T) {
	content := "# UVM_INFO hello\nline X\n# UVM_ERROR bad thing\n# --- UVM Report Summary ---\n"
	path := filepath.Join(t.TempDir(), "sim.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts := Options{ShowErrors: true, Context: 1}
	fromFile, err := File(path, []string{"hello"}, opts)
	if err != nil {
		t.Fatalf("File returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	fromLines, err := Lines(lines, []string{"hello"}, opts)
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}

	if !reflect.DeepEqual(fromFile, fromLines) {
		t.Fatalf("File() = %#v, want %#v", fromFile, fromLines)
	}
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.log"), nil, Options{})
	if err == nil {
		t.Fatal("File accepted a missing path")
	}
}
