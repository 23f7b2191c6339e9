/*
Package marquee is a pattern-matching query engine for movie metadata, answering
plain-English questions ("who directed alien?", "what movies were made in 1962?")
against the TMDB API.

It implements a first-match wildcard dispatcher: an ordered table of pattern
cards is walked top to bottom, the first template that matches the tokenized
query binds its wildcards and runs a handler, and the handler's answers are
rendered as a numbered list. No NLP, no scoring. Ordering is the only
disambiguation rule, which keeps every dispatch reproducible.

# Concept

Marquee separates the pattern table (Cards) from the answer logic (Handlers)
and the presentation (Actions). Builtin cards cover the stock TMDB questions;
a directory of Markdown cards can be mounted ahead of them to add or shadow
phrasings without recompiling. This keeps the core embeddable in any
interface: interactive shell, one-shot CLI, HTTP server, or MCP agent.

# Key Features

  - Deterministic dispatch: table order decides, first match is final.
  - Pattern packs: Markdown cards with YAML frontmatter, hot-reloadable.
  - Custom handlers: register your own handler names and wire cards to them.
  - Lifecycle hooks: query and API-call events for logging and metrics.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/marquee"
	)

	func main() {
		// Reads TMDB_API_KEY from the environment.
		eng, err := marquee.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		resp, err := eng.Resolve(ctx, "who directed the matrix?")
		if err != nil {
			log.Fatal(err)
		}

		actions, err := eng.Render(ctx, resp, 10)
		if err != nil {
			log.Fatal(err)
		}
		for _, act := range actions {
			fmt.Println(act.Payload)
		}
	}

For an interactive session use Run, which owns the prompt loop, the limit
command, and Ctrl+C handling:

	eng, _ := marquee.New()
	_ = marquee.Run(context.Background(), eng)
*/
package marquee
