package marquee

import (
	"context"

	"github.com/aretw0/marquee/pkg/runner"
)

// Run starts an interactive query session on the given engine. It owns
// the prompt loop until the user says bye, the input ends, or the
// context is cancelled. Options configure IO, rendering, and the
// initial result limit.
func Run(ctx context.Context, eng *Engine, opts ...runner.Option) error {
	return runner.NewRunner(opts...).Run(ctx, eng)
}

// Ask resolves a single question and writes the rendered answer,
// without entering the interactive loop.
func Ask(ctx context.Context, eng *Engine, question string, opts ...runner.Option) error {
	return runner.NewRunner(opts...).RunOnce(ctx, eng, question)
}
