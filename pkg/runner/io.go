package runner

import (
	"context"

	"github.com/aretw0/marquee/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between plain text, styled TUI, and test doubles.
type IOHandler interface {
	// Output presents resolved actions to the user.
	Output(ctx context.Context, actions []domain.ActionRequest) error

	// Input reads one line from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput shows a session-level message (limit feedback, errors,
	// the farewell) outside the answer stream.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms answer content before output.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
