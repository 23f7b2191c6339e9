package marquee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aretw0/loam"

	"github.com/aretw0/marquee/internal/answer"
	"github.com/aretw0/marquee/internal/config"
	"github.com/aretw0/marquee/internal/engine"
	"github.com/aretw0/marquee/internal/tmdb"
	loamAdapter "github.com/aretw0/marquee/pkg/adapters/loam"
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/ports"
	"github.com/aretw0/marquee/pkg/registry"
)

// Engine is the high-level entry point for the marquee library.
// It wires the TMDB client, the builtin pattern table, and an optional
// card pack into one query engine.
type Engine struct {
	engine *engine.Engine
	source ports.PatternSource
	api    *tmdb.Client

	apiKey     string
	baseURL    string
	httpClient *http.Client
	dir        string
	builtins   []domain.Card
	handlers   map[string]registry.Handler
	hooks      domain.LifecycleHooks
	logger     *slog.Logger

	// Name labels the engine in logs. Set from the pack directory
	// basename when a pack is mounted.
	Name string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithAPIKey sets the TMDB API key. When omitted, the TMDB_API_KEY
// environment variable is consulted. An empty key is legal: queries
// answer with no results and the API client reports ErrNoAPIKey.
func WithAPIKey(key string) Option {
	return func(e *Engine) {
		e.apiKey = key
	}
}

// WithBaseURL overrides the TMDB API root, mainly for tests and proxies.
func WithBaseURL(base string) Option {
	return func(e *Engine) {
		e.baseURL = base
	}
}

// WithHTTPClient injects a custom HTTP client for TMDB calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(e *Engine) {
		e.httpClient = hc
	}
}

// WithPatternsDir mounts a card pack from the given directory ahead of
// the builtin table.
func WithPatternsDir(dir string) Option {
	return func(e *Engine) {
		e.dir = dir
	}
}

// WithSource injects a custom PatternSource, bypassing the default Loam
// initialization. Takes precedence over WithPatternsDir.
func WithSource(src ports.PatternSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithBuiltins replaces the builtin table. Intended for tests and for
// embedders that bring their own handlers.
func WithBuiltins(cards []domain.Card) Option {
	return func(e *Engine) {
		e.builtins = cards
	}
}

// WithHandler registers a custom handler under the given name so cards
// can reference it. Registering a builtin name overrides the builtin.
func WithHandler(name string, h registry.Handler) Option {
	return func(e *Engine) {
		if e.handlers == nil {
			e.handlers = make(map[string]registry.Handler)
		}
		e.handlers[name] = h
	}
}

// WithLifecycleHooks registers observability hooks. Query hooks fire in
// the engine, API hooks in the TMDB client.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a marquee Engine. All options are optional: the zero
// configuration reads TMDB_API_KEY from the environment and mounts the
// builtin table only.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.apiKey == "" {
		eng.apiKey = os.Getenv(config.EnvAPIKey)
	}

	apiOpts := []tmdb.Option{
		tmdb.WithLogger(eng.logger),
		tmdb.WithHooks(eng.hooks),
	}
	if eng.baseURL != "" {
		apiOpts = append(apiOpts, tmdb.WithBaseURL(eng.baseURL))
	}
	if eng.httpClient != nil {
		apiOpts = append(apiOpts, tmdb.WithHTTPClient(eng.httpClient))
	}
	eng.api = tmdb.New(eng.apiKey, apiOpts...)

	reg := registry.New()
	svc := answer.NewService(eng.api)
	svc.Register(reg)
	for name, h := range eng.handlers {
		reg.Register(name, h)
	}

	if eng.builtins == nil {
		eng.builtins = answer.Builtins()
	}

	// Initialize the default Loam source unless one was injected.
	if eng.source == nil && eng.dir != "" {
		absPath, err := filepath.Abs(eng.dir)
		if err != nil {
			return nil, fmt.Errorf("invalid patterns path: %w", err)
		}

		eng.Name = filepath.Base(absPath)

		// Strict mode keeps frontmatter decoding consistent across the
		// Markdown/YAML adapters; read-only avoids Loam's sandbox
		// behavior since the engine never writes cards.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.CardMetadata](repo)
		eng.source = loamAdapter.New(typedRepo)
	}

	if eng.Name != "" {
		eng.logger = eng.logger.With("pack", eng.Name)
	}

	eng.engine = engine.New(reg,
		engine.WithLogger(eng.logger),
		engine.WithLifecycleHooks(eng.hooks),
	)

	// Mount eagerly so a broken pack fails construction, not the first
	// query.
	if err := eng.Reload(context.Background()); err != nil {
		return nil, err
	}

	return eng, nil
}

// Reload re-reads the card pack (when one is configured) and remounts
// the dispatch table. Used by watch mode between queries.
func (e *Engine) Reload(ctx context.Context) error {
	var pack []domain.Card
	if e.source != nil {
		cards, err := e.source.Cards(ctx)
		if err != nil {
			return fmt.Errorf("failed to load pattern pack: %w", err)
		}
		pack = cards
	}
	return e.engine.Mount(pack, e.builtins)
}

// Resolve matches one query line against the mounted table and runs the
// winning handler. See ports.QueryEngine.
func (e *Engine) Resolve(ctx context.Context, line string) (*domain.Response, error) {
	return e.engine.Resolve(ctx, line)
}

// Render converts a response into presentation actions, showing at most
// limit answers.
func (e *Engine) Render(ctx context.Context, resp *domain.Response, limit int) ([]domain.ActionRequest, error) {
	return e.engine.Render(ctx, resp, limit)
}

// Patterns lists the mounted table in match order.
func (e *Engine) Patterns() []domain.PatternInfo {
	return e.engine.Patterns()
}

// Validate reports mounted cards that can never fire because an earlier
// card has the same template.
func (e *Engine) Validate() []string {
	return e.engine.Validate()
}

// Watch returns a channel that signals when the underlying pack changes.
// Returns an error if no pack is mounted or the source does not support
// watching.
func (e *Engine) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := e.source.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current pattern source does not support watching")
}

// Source returns the underlying PatternSource, nil when builtins-only.
func (e *Engine) Source() ports.PatternSource {
	return e.source
}

var _ ports.QueryEngine = (*Engine)(nil)
