package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/LucAce/uvm-message-search/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("uvmsearch", pflag.ContinueOnError)
	prefsPath := flags.String("prefs", "", "path to the preferences file")
	theme := flags.String("theme", "", "color theme for this run")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: uvmsearch [flags] [logfile]\n\n")
		fmt.Fprintln(os.Stderr, "Search UVM simulation logs for messages and surrounding context.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "uvmsearch: %v\n", err)
		return 2
	}

	var filePath string
	if args := flags.Args(); len(args) > 0 {
		filePath = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		PrefsPath: *prefsPath,
		Theme:     *theme,
		FilePath:  filePath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "uvmsearch: %v\n", err)
		return 1
	}
	return 0
}
