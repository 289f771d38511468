package app

import (
	"context"
	"fmt"

	"github.com/LucAce/uvm-message-search/internal/prefs"
	"github.com/LucAce/uvm-message-search/internal/results"
	"github.com/LucAce/uvm-message-search/internal/ui"
)

// Options configures an application run.
type Options struct {
	// PrefsPath overrides the default preferences file location.
	PrefsPath string

	// Theme overrides the preferred color theme for this run.
	Theme string

	// FilePath pre-fills the log file input when set.
	FilePath string
}

// Run loads preferences, builds the shared state, and drives the UI until
// the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	p, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	if opts.Theme != "" {
		p.Theme = opts.Theme
	}

	store := &results.Store{}

	return ui.Run(ctx, ui.Options{
		Store:     store,
		Prefs:     p,
		PrefsPath: opts.PrefsPath,
		FilePath:  opts.FilePath,
	})
}
