// Package cli wires the marquee engine into the console commands: the
// interactive shell, watch mode, and one-shot questions. It owns the glue
// the cobra layer should not care about (loggers, hooks, warnings, exit
// code semantics).
package cli

import "fmt"

// RunOptions carries the resolved configuration for the console commands.
// Values arrive already layered: defaults, config file, environment, flags.
type RunOptions struct {
	APIKey      string
	BaseURL     string
	PatternsDir string
	Limit       int
	Debug       bool
	Watch       bool
}

// Execute handles the shell command, dispatching to session or watch mode.
func Execute(opts RunOptions) error {
	if opts.Watch {
		if opts.PatternsDir == "" {
			return fmt.Errorf("watch mode needs a pattern directory (--patterns or MARQUEE_PATTERNS)")
		}
		return RunWatch(opts)
	}
	return RunSession(opts)
}
