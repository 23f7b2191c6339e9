package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/marquee"
)

// createEngine initializes a marquee engine with standard CLI conventions.
func createEngine(opts RunOptions, logger *slog.Logger) (*marquee.Engine, error) {
	engineOpts := []marquee.Option{
		marquee.WithLogger(logger),
		marquee.WithAPIKey(opts.APIKey),
	}

	if opts.BaseURL != "" {
		engineOpts = append(engineOpts, marquee.WithBaseURL(opts.BaseURL))
	}
	if opts.PatternsDir != "" {
		engineOpts = append(engineOpts, marquee.WithPatternsDir(opts.PatternsDir))
	}
	if opts.Debug {
		engineOpts = append(engineOpts, marquee.WithLifecycleHooks(DebugHooks(logger)))
	}

	eng, err := marquee.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return eng, nil
}
