package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/ports"
)

// Console messages owned by the loop (everything answer-shaped comes from
// the engine). Wording is part of the console contract.
const (
	MsgLimitUsage    = "Usage: limit <number>"
	MsgLimitPositive = "Limit must be a positive number"
	MsgFarewell      = "👋 So long!"
)

// DefaultLimit caps how many answers a query displays until the user changes
// it with the limit command.
const DefaultLimit = 10

// Runner drives the interactive query loop over an engine using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler is built from
	// Input/Output/Renderer.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Limit is the initial result display cap. Non-positive means DefaultLimit.
	Limit int

	// Fallbacks used when Handler is nil.
	Input    io.Reader
	Output   io.Writer
	Renderer ContentRenderer
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithIOHandler configures a custom IOHandler.
func WithIOHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown).
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithLimit sets the initial result display cap.
func WithLimit(limit int) Option {
	return func(r *Runner) {
		r.Limit = limit
	}
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the query loop until the session ends: bye, end of input, or
// an interrupt. All three end it cleanly with a farewell and a nil error.
func (r *Runner) Run(ctx context.Context, eng ports.QueryEngine) error {
	handler := r.resolveHandler()
	limit := r.resolveLimit()

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	for {
		loopCtx := signals.Context()

		line, err := handler.Input(loopCtx)
		if err != nil {
			signals.CheckRace()
			if isInterrupted(loopCtx, err) || errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("input error: %w", err)
		}

		// The limit command is console grammar, not a pattern.
		if r.handleLimitCommand(loopCtx, handler, line, &limit) {
			continue
		}

		resp, err := eng.Resolve(loopCtx, line)
		if err != nil {
			if errors.Is(err, domain.ErrSessionEnd) || isInterrupted(loopCtx, err) {
				break
			}
			// Contain the failure inside this iteration.
			r.Logger.Error("query failed", "error", err)
			handler.SystemOutput(loopCtx, fmt.Sprintf("Error: %v", err))
			continue
		}

		actions, err := eng.Render(loopCtx, resp, limit)
		if err != nil {
			handler.SystemOutput(loopCtx, fmt.Sprintf("Error: %v", err))
			continue
		}

		if err := handler.Output(loopCtx, actions); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	return r.farewell(handler)
}

// RunOnce resolves a single question and prints the outcome, without starting
// an interactive session.
func (r *Runner) RunOnce(ctx context.Context, eng ports.QueryEngine, question string) error {
	handler := r.resolveHandler()

	resp, err := eng.Resolve(ctx, question)
	if err != nil {
		if errors.Is(err, domain.ErrSessionEnd) {
			return r.farewell(handler)
		}
		return err
	}

	actions, err := eng.Render(ctx, resp, r.resolveLimit())
	if err != nil {
		return err
	}
	return handler.Output(ctx, actions)
}

// handleLimitCommand intercepts "limit <n>". Only lines whose normalized form
// starts with "limit " count; a bare "limit" falls through to the table. The
// limit is unchanged on every malformed use.
func (r *Runner) handleLimitCommand(ctx context.Context, handler IOHandler, line string, limit *int) bool {
	norm := strings.ToLower(strings.ReplaceAll(line, "?", ""))
	if !strings.HasPrefix(norm, "limit ") {
		return false
	}

	fields := strings.Fields(norm)
	if len(fields) < 2 {
		handler.SystemOutput(ctx, MsgLimitUsage)
		return true
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		handler.SystemOutput(ctx, MsgLimitUsage)
		return true
	}
	if n <= 0 {
		handler.SystemOutput(ctx, MsgLimitPositive)
		return true
	}

	*limit = n
	handler.SystemOutput(ctx, fmt.Sprintf("✓ Result limit set to %d", n))
	return true
}

func (r *Runner) farewell(handler IOHandler) error {
	// The session context may already be cancelled; the farewell still prints.
	return handler.SystemOutput(context.Background(), "\n"+MsgFarewell)
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	th := NewTextHandler(r.Input, r.Output, WithTextHandlerRenderer(r.Renderer))
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = th
	return th
}

func (r *Runner) resolveLimit() int {
	if r.Limit > 0 {
		return r.Limit
	}
	return DefaultLimit
}

func isInterrupted(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		ctx.Err() != nil
}
