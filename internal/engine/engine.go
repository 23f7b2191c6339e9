// Package engine is the query dispatcher core.
//
// It owns the compiled pattern table and walks it in order for every query.
// The first template that matches wins, and its outcome is final: a handler
// that finds nothing does not fall through to later entries. Table order is
// therefore a semantic property, not a tuning detail.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/marquee/internal/logging"
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/match"
	"github.com/aretw0/marquee/pkg/registry"
)

// Entry is one compiled row of the active pattern table.
type Entry struct {
	ID          string
	Pattern     string
	HandlerName string
	Source      string
	Description string
	Body        string
	Template    match.Template
	Handler     registry.Handler
}

// Engine resolves query lines against the mounted pattern table.
type Engine struct {
	reg    *registry.Registry
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	mu    sync.RWMutex
	table []Entry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New creates an engine bound to a handler registry. The table starts empty;
// call Mount before resolving.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		reg:    reg,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mount compiles cards into the active table, replacing whatever was mounted
// before. Pack cards are installed ahead of builtins, so a pack template that
// also exists as a builtin shadows it.
func (e *Engine) Mount(pack, builtins []domain.Card) error {
	table := make([]Entry, 0, len(pack)+len(builtins))

	for _, card := range pack {
		if err := e.appendCard(&table, card, domain.SourcePack); err != nil {
			return err
		}
	}
	for _, card := range builtins {
		if err := e.appendCard(&table, card, domain.SourceBuiltin); err != nil {
			return err
		}
	}

	e.mu.Lock()
	e.table = table
	e.mu.Unlock()
	return nil
}

func (e *Engine) appendCard(table *[]Entry, card domain.Card, source string) error {
	if card.Disabled {
		return nil
	}

	tpl := match.ParseTemplate(card.Template)
	if len(tpl) == 0 {
		return fmt.Errorf("card %s: empty template", card.ID)
	}
	for i := 1; i < len(tpl); i++ {
		if tpl[i].Kind == match.KindMulti && tpl[i-1].Kind == match.KindMulti {
			return fmt.Errorf("card %s: consecutive multi wildcards in %q", card.ID, card.Template)
		}
	}

	handler, err := e.reg.Resolve(card.Handler)
	if err != nil {
		return fmt.Errorf("card %s: %w", card.ID, err)
	}

	*table = append(*table, Entry{
		ID:          card.ID,
		Pattern:     tpl.String(),
		HandlerName: card.Handler,
		Source:      source,
		Description: card.Description,
		Body:        card.Body,
		Template:    tpl,
		Handler:     handler,
	})
	return nil
}

// Tokenize normalizes a raw input line into match tokens: question marks are
// stripped, the line is lowercased, and whitespace splits.
func Tokenize(line string) []string {
	line = strings.ReplaceAll(line, "?", "")
	return strings.Fields(strings.ToLower(line))
}

// Resolve dispatches one query line. A blank line yields KindEmpty without
// touching the table. ErrSessionEnd and context cancellation pass through;
// every other handler failure is downgraded to KindNoAnswer so one bad query
// cannot end a session.
func (e *Engine) Resolve(ctx context.Context, line string) (*domain.Response, error) {
	words := Tokenize(line)
	if len(words) == 0 {
		return &domain.Response{Kind: domain.KindEmpty}, nil
	}

	e.fireQueryStart(ctx, line)
	start := time.Now()

	resp, err := e.dispatch(ctx, words)
	if err != nil {
		return nil, err
	}

	e.fireQueryEnd(ctx, line, resp, time.Since(start))
	return resp, nil
}

func (e *Engine) dispatch(ctx context.Context, words []string) (*domain.Response, error) {
	for _, entry := range e.snapshot() {
		bindings, ok := match.Match(entry.Template, words)
		if !ok {
			continue
		}

		answers, err := entry.Handler(ctx, bindings)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSessionEnd),
			errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			e.logger.Warn("handler failed", "handler", entry.HandlerName, "pattern", entry.Pattern, "error", err)
			return &domain.Response{Kind: domain.KindNoAnswer, Pattern: entry.Pattern, Handler: entry.HandlerName}, nil
		}

		if len(answers) == 0 {
			return &domain.Response{Kind: domain.KindNoAnswer, Pattern: entry.Pattern, Handler: entry.HandlerName}, nil
		}
		return &domain.Response{
			Kind:    domain.KindAnswers,
			Answers: answers,
			Pattern: entry.Pattern,
			Handler: entry.HandlerName,
		}, nil
	}

	return &domain.Response{Kind: domain.KindNoMatch}, nil
}

// Patterns returns the active table in match order.
func (e *Engine) Patterns() []domain.PatternInfo {
	table := e.snapshot()
	infos := make([]domain.PatternInfo, 0, len(table))
	for _, entry := range table {
		infos = append(infos, domain.PatternInfo{
			Template:    entry.Pattern,
			Handler:     entry.HandlerName,
			Source:      entry.Source,
			Description: entry.Description,
			Body:        entry.Body,
		})
	}
	return infos
}

func (e *Engine) snapshot() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table
}

func (e *Engine) fireQueryStart(ctx context.Context, line string) {
	if e.hooks.OnQueryStart == nil {
		return
	}
	e.hooks.OnQueryStart(ctx, &domain.QueryEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventQueryStart},
		Query:     line,
	})
}

func (e *Engine) fireQueryEnd(ctx context.Context, line string, resp *domain.Response, d time.Duration) {
	if e.hooks.OnQueryEnd == nil {
		return
	}
	e.hooks.OnQueryEnd(ctx, &domain.QueryEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventQueryEnd},
		Query:     line,
		Pattern:   resp.Pattern,
		Handler:   resp.Handler,
		Kind:      resp.Kind,
		Answers:   len(resp.Answers),
		Duration:  d,
	})
}
