/*
Package runner implements the interactive console loop around a query engine.

It acts as the bridge between the dispatcher core and the outside world: it
reads lines, intercepts the session-local limit command, resolves everything
else through the engine, and presents the results through a pluggable
IOHandler. Signal handling and input sanitization live here so every surface
built on the runner behaves the same under Ctrl+C and hostile input.

# Key Components

  - Runner: The main loop orchestrator.
  - IOHandler: Decouples how lines are read and results are shown.
  - TextHandler: A standard implementation for interactive CLI usage.

# Usage

	r := runner.NewRunner(runner.WithLimit(10))
	if err := r.Run(ctx, engine); err != nil {
		log.Fatal(err)
	}
*/
package runner
