// Package ui implements the interactive terminal front end.
//
// # Overview
//
// The UI is a Bubble Tea program with two screens. The search form
// collects the log file path, up to ten search terms, and the scan
// options. The results screen shows the annotated output of the last
// search in a scrollable viewport. A save modal and a help overlay render
// on top of the active screen.
//
// # Model
//
// Model is the root Bubble Tea model. It owns the form state, the results
// viewport, and the shared results store, and routes key messages to
// whichever surface is active. Searches run as commands off the update
// loop; the store records the outcome so the results screen always
// reflects the most recent completed search.
//
// # Form Focus
//
// Focus moves through the file input, the term inputs, and then the
// option toggles in order. Text inputs receive keystrokes directly;
// toggles respond to space and the context spinner to left and right.
// Term fields can be added and removed while the form is open.
//
// # Themes
//
// Colors come from a named Theme. The active theme persists in the
// preferences file and can be cycled at runtime.
package ui
