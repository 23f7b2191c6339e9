package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/marquee"
	"github.com/aretw0/marquee/internal/presentation/tui"
)

// RunWatch executes the console in development mode, reloading the pattern
// table whenever cards under the pack directory change. The session keeps
// running through reloads; a broken card keeps the previous table.
func RunWatch(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	if interactive {
		tui.PrintBanner()
	}

	eng, err := createEngine(opts, logger)
	if err != nil {
		return fmt.Errorf("error initializing marquee: %w", err)
	}

	if opts.APIKey == "" {
		warnMissingKey(os.Stdout)
	}

	// The watcher lives exactly as long as the session.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals, err := eng.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch unavailable: %w", err)
	}

	logger.Info("Starting watcher", "path", opts.PatternsDir)
	printSystemMessage("Watching '%s' for card changes.", opts.PatternsDir)

	go func() {
		for range signals {
			fmt.Println()
			if err := eng.Reload(ctx); err != nil {
				logger.Error("Reload failed", "err", err)
				printSystemMessage("Reload failed: %v (previous patterns kept)", err)
				continue
			}
			logger.Info("Pattern table reloaded")
			printSystemMessage("Pattern table reloaded.")
		}
	}()

	if interactive {
		fmt.Println(tui.Welcome())
		fmt.Println()
	}

	err = marquee.Run(ctx, eng, createRunnerOptions(logger, opts)...)
	return handleExecutionError(err)
}
