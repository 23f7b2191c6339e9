package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/marquee/internal/presentation/tui"
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/runner"
)

// ErrNoResult reports that a one-shot question matched nothing or produced
// no answers. The command layer maps it to a nonzero exit code; the user
// already saw the explanation on stdout.
var ErrNoResult = errors.New("no results")

// RunAsk resolves a single question and prints the outcome. The key warning
// goes to stderr here, so piped stdout carries answers only.
func RunAsk(opts RunOptions, question string) error {
	logger := createLogger(opts.Debug)

	eng, err := createEngine(opts, logger)
	if err != nil {
		return fmt.Errorf("error initializing marquee: %w", err)
	}

	if opts.APIKey == "" {
		warnMissingKey(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := runner.NewTextHandler(os.Stdin, os.Stdout,
		runner.WithTextHandlerRenderer(tui.NewRenderer()))

	resp, err := eng.Resolve(ctx, question)
	if err != nil {
		if errors.Is(err, domain.ErrSessionEnd) {
			return handler.SystemOutput(ctx, runner.MsgFarewell)
		}
		return handleExecutionError(err)
	}

	actions, err := eng.Render(ctx, resp, opts.Limit)
	if err != nil {
		return err
	}
	if err := handler.Output(ctx, actions); err != nil {
		return err
	}

	if resp.Kind != domain.KindAnswers {
		return ErrNoResult
	}
	return nil
}
