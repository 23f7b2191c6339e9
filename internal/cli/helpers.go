package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/marquee/internal/config"
	"github.com/aretw0/marquee/internal/logging"
	"github.com/aretw0/marquee/internal/presentation/tui"
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/runner"
)

// createLogger configures the session logger. Interactive surfaces run
// silent unless debug is on; logs go to Stderr either way, so Stdout stays
// clean for answers.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// warnMissingKey prints the startup notice shown when no TMDB key is
// configured. The session still runs; every API-backed query degrades to
// an empty answer set.
func warnMissingKey(w io.Writer) {
	fmt.Fprintf(w, "Warning: %s environment variable not set!\n", config.EnvAPIKey)
	fmt.Fprintln(w, "Get your API key from: https://www.themoviedb.org/settings/api")
	fmt.Fprintf(w, "Set it with: export %s='your_key_here'\n", config.EnvAPIKey)
}

// createRunnerOptions prepares the functional options for the console loop.
func createRunnerOptions(logger *slog.Logger, opts RunOptions) []runner.Option {
	return []runner.Option{
		runner.WithLogger(logger),
		runner.WithLimit(opts.Limit),
		runner.WithRenderer(tui.NewRenderer()),
	}
}

// DebugHooks returns lifecycle hooks that trace every query and API call
// through the given logger at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQueryStart: func(ctx context.Context, e *domain.QueryEvent) {
			logger.Debug("Query Start", "query", e.Query)
		},
		OnQueryEnd: func(ctx context.Context, e *domain.QueryEvent) {
			logger.Debug("Query End", "query", e.Query, "pattern", e.Pattern,
				"kind", e.Kind, "answers", e.Answers, "duration", e.Duration)
		},
		OnAPICall: func(ctx context.Context, e *domain.APIEvent) {
			logger.Debug("API Call", "endpoint", e.Endpoint)
		},
		OnAPIReturn: func(ctx context.Context, e *domain.APIEvent) {
			if e.IsError {
				logger.Debug("API Return (Error)", "endpoint", e.Endpoint, "status", e.Status)
			} else {
				logger.Debug("API Return (Success)", "endpoint", e.Endpoint, "status", e.Status, "duration", e.Duration)
			}
		},
	}
}

// isInterrupted reports whether err is session-ending noise rather than a
// real failure. User interrupts and end of input both qualify.
func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF)
}

// handleExecutionError maps interruptions to a clean exit (code 0). Every
// other error propagates to the command layer.
func handleExecutionError(err error) error {
	if isInterrupted(err) {
		return nil
	}
	return err
}
