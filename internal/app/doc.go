// Package app wires the application together.
//
// Run is the composition root: it loads preferences, applies command-line
// overrides, creates the shared results store, and hands control to the
// terminal UI. Everything below this package is a library; everything
// above it is the command-line entry point.
package app
