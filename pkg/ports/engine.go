package ports

import (
	"context"

	"github.com/aretw0/marquee/pkg/domain"
)

// QueryEngine defines the interface for query cores that hold no per-session state.
// This is the primary interface used by adapters (e.g., HTTP, MCP) that manage
// presentation concerns externally or per-request.
type QueryEngine interface {
	// Resolve walks the pattern table in order and dispatches the first match.
	// The returned response carries the raw, untruncated answers.
	Resolve(ctx context.Context, line string) (*domain.Response, error)

	// Render calculates the presentation (actions) for a response without
	// re-resolving it. limit caps how many answers are shown; <= 0 means all.
	Render(ctx context.Context, resp *domain.Response, limit int) ([]domain.ActionRequest, error)

	// Patterns returns the active table in match order for introspection
	// and visualization tools (e.g. 'marquee patterns').
	Patterns() []domain.PatternInfo
}
