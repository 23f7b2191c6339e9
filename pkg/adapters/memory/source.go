// Package memory provides an in-memory pattern source. It is the simplest
// PatternSource implementation: embedders and tests assemble cards in code
// and swap them at runtime without touching the filesystem.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/ports"
)

// Source implements ports.PatternSource over an in-memory card list.
// Safe for concurrent use.
type Source struct {
	mu    sync.RWMutex
	cards []domain.Card
	watch chan struct{}
}

// NewSource creates a source preloaded with the given cards.
func NewSource(cards ...domain.Card) *Source {
	return &Source{
		cards: append([]domain.Card(nil), cards...),
		watch: make(chan struct{}, 1),
	}
}

// Cards returns a copy of the current card list.
func (s *Source) Cards(ctx context.Context) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Card(nil), s.cards...), nil
}

// SetCards replaces the card list and signals watchers. The caller still
// drives the actual remount through Engine.Reload.
func (s *Source) SetCards(cards ...domain.Card) {
	s.mu.Lock()
	s.cards = append([]domain.Card(nil), cards...)
	s.mu.Unlock()

	select {
	case s.watch <- struct{}{}:
	default:
		// A pending signal already covers this change.
	}
}

// Watch returns the change channel. Every caller shares the same channel
// and signals are coalesced, matching the loam source contract. The channel
// stays open for the life of the source.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	return s.watch, nil
}

var (
	_ ports.PatternSource = (*Source)(nil)
	_ ports.Watchable     = (*Source)(nil)
)
