package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/marquee/pkg/domain"
)

// Source adapts the Loam library to the marquee PatternSource interface.
// Cards live as Markdown files with YAML frontmatter; the body is free-form
// documentation for the card.
type Source struct {
	Repo *loam.TypedRepository[CardMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[CardMetadata]) *Source {
	return &Source{Repo: repo}
}

// Cards loads the whole pack. Results are sorted by card ID so that
// precedence between pack cards does not depend on directory order.
func (s *Source) Cards(ctx context.Context) ([]domain.Card, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	cards := make([]domain.Card, 0, len(docs))
	for _, doc := range docs {
		meta := doc.Data
		if strings.TrimSpace(meta.Template) == "" {
			return nil, fmt.Errorf("card %s: missing template", doc.ID)
		}
		if strings.TrimSpace(meta.Handler) == "" {
			return nil, fmt.Errorf("card %s: missing handler", doc.ID)
		}

		cards = append(cards, domain.Card{
			ID:          trimExtension(doc.ID),
			Template:    meta.Template,
			Handler:     meta.Handler,
			Description: meta.Description,
			Disabled:    meta.Disabled,
			Body:        strings.TrimSpace(doc.Content),
		})
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

// Watch implements ports.Watchable. Events collapse to bare signals: the
// engine remounts the whole pack on change, so the changed ID is irrelevant
// and bursts coalesce into one pending signal.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	events, err := s.Repo.Watch(ctx, "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- struct{}{}:
				default:
					// A pending signal already covers this change.
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	if ext := filepath.Ext(id); ext != "" {
		id = strings.TrimSuffix(id, ext)
	}
	return filepath.ToSlash(id)
}
