// Package scan implements the UVM message scanner: a single-pass search over
// a simulation transcript that groups lines into message blocks and reports
// matched blocks together with surrounding block context.
//
// # Overview
//
// UVM simulators emit messages as multi-line blocks. Each block starts with a
// line beginning with "# UVM_" (INFO, WARNING, ERROR, FATAL, ...) and runs
// until the next such line or the report summary. The scanner treats the
// block, not the line, as the unit of matching and display: when any line in
// a block matches, the whole block is shown, optionally preceded by the N
// blocks before it.
//
// # Scanning Model
//
// Lines performs one forward pass with no lookahead:
//
//  1. Trailing whitespace and SGR escape sequences are stripped from each
//     line; the stripped line is both matched and emitted.
//  2. A line starting with the message marker, or containing the end-of-test
//     marker, closes the current block. Completed blocks are kept in a
//     bounded history window of Context+1 entries.
//  3. When the just-closed block matched (or a context countdown from an
//     earlier match is still running), the history window is flushed to the
//     output. A "..." separator line marks each gap between flushed runs.
//  4. The end-of-test marker ("# --- UVM Report Summary ---") terminates the
//     scan immediately; nothing after it is read or considered.
//
// Matching combines three rule sets per line:
//
//   - Force-show: UVM_FATAL lines always match; UVM_ERROR and UVM_WARNING
//     lines match when the corresponding option is enabled.
//   - Inclusive (OR) terms: any term appearing anywhere in the block.
//   - Exclusive (AND) terms: every term appearing somewhere in the block,
//     not necessarily on the same line. Term state resets at each block
//     boundary.
//
// # Case Folding and Regex Mode
//
// With CaseSensitive disabled, the five marker strings and all terms are
// lowercased once before the pass and every line gets a lowercased
// comparison copy. Regex mode compiles each term up front and always matches
// against the original-case line; it forces case sensitivity on, mirroring
// the search dialog that disables the case toggle for regex searches.
//
// # Output
//
// Output preserves source order. Each line carries a trailing newline so the
// slice can be rendered or written to a file verbatim. With LineNumbers
// enabled, lines are prefixed with their 1-based source line number,
// left-justified and space-padded to the digit width of the file's total
// line count, followed by ": ".
//
// # Resource Model
//
// File reads the whole log into memory before scanning. This is a deliberate
// simplicity tradeoff: transcripts are read once, scanned once, and all scan
// state is local to the call. There is no shared or persistent state.
package scan
