package ports

import (
	"context"

	"github.com/aretw0/marquee/pkg/domain"
)

// PatternSource defines how the engine retrieves user-supplied pattern cards.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type PatternSource interface {
	// Cards returns every card in the source in deterministic order.
	// Disabled cards are included; the engine decides what to mount.
	Cards(ctx context.Context) ([]domain.Card, error)
}

// Watchable defines an interface for sources that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying cards change.
	// It abstracts away the specific event details, signaling only that a reload
	// is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
