package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/marquee"
	"github.com/aretw0/marquee/internal/presentation/tui"
)

// RunSession executes one interactive console session.
func RunSession(opts RunOptions) error {
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
	if interactive {
		fmt.Println(tui.Welcome())
		fmt.Println()
	}

	// Signal handling lives inside the loop; interrupts end the session
	// with a farewell and exit code 0.
	err = marquee.Run(context.Background(), eng, createRunnerOptions(logger, opts)...)
	return handleExecutionError(err)
}
