package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/runner"
)

// KindFarewell is reported when a query matched the session-end pattern.
// Over HTTP there is no session to end, so the server just labels it.
const KindFarewell = "farewell"

// Engine is the slice of the marquee engine the HTTP adapter consumes.
type Engine interface {
	Resolve(ctx context.Context, line string) (*domain.Response, error)
	Render(ctx context.Context, resp *domain.Response, limit int) ([]domain.ActionRequest, error)
	Patterns() []domain.PatternInfo
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// AskRequest is the POST /v1/ask body.
type AskRequest struct {
	Question string `json:"question"`
	// Limit caps the answers in this response. Omitted means the server
	// default.
	Limit *int `json:"limit,omitempty"`
}

// AskResponse carries the dispatch outcome plus the same rendered text a
// console session would print.
type AskResponse struct {
	Kind    string   `json:"kind"`
	Pattern string   `json:"pattern,omitempty"`
	Handler string   `json:"handler,omitempty"`
	Answers []string `json:"answers,omitempty"`
	Shown   int      `json:"shown"`
	Total   int      `json:"total"`
	Message string   `json:"message,omitempty"`
}

// PatternDTO is one row of GET /v1/patterns.
type PatternDTO struct {
	Template    string `json:"template"`
	Handler     string `json:"handler"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

// Server holds the adapter configuration.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	Limit   int
	Metrics http.Handler
	Version string
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithLimit sets the default result cap for /v1/ask.
func WithLimit(limit int) Option {
	return func(s *Server) {
		s.Limit = limit
	}
}

// WithMetricsHandler mounts a Prometheus exposition handler at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithVersion sets the version string reported by /v1/info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		Logger: slog.Default(),
		Limit:  runner.DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/v1/ask", s.handleAsk)
	r.Get("/v1/patterns", s.handlePatterns)
	r.Get("/v1/events", s.handleEvents)
	r.Get("/v1/info", s.handleInfo)
	r.Get("/healthz", s.handleHealth)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleAsk answers one question. Statelessness means the session-end
// pattern cannot stop anything; it is reported as kind "farewell".
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var body AskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("ask: invalid request body", "error", err)
		return
	}

	question := strings.TrimSpace(body.Question)
	if question == "" {
		http.Error(w, "Question must not be empty", http.StatusBadRequest)
		return
	}

	// Sanitize Input (Global Policy)
	clean, err := runner.SanitizeInput(question)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
		s.Logger.Warn("ask: input rejected", "error", err, "size", len(question))
		return
	}

	limit := s.Limit
	if body.Limit != nil {
		if *body.Limit <= 0 {
			http.Error(w, "Limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = *body.Limit
	}

	resp, err := s.Engine.Resolve(r.Context(), clean)
	if err != nil {
		if errors.Is(err, domain.ErrSessionEnd) {
			s.writeJSON(w, AskResponse{Kind: KindFarewell})
			return
		}
		http.Error(w, fmt.Sprintf("Resolve error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ask: resolve failed", "error", err)
		return
	}

	actions, err := s.Engine.Render(r.Context(), resp, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ask: render failed", "error", err)
		return
	}

	out := AskResponse{
		Kind:    string(resp.Kind),
		Pattern: resp.Pattern,
		Handler: resp.Handler,
		Total:   len(resp.Answers),
	}
	if resp.Kind == domain.KindAnswers {
		shown := resp.Answers
		if len(shown) > limit {
			shown = shown[:limit]
		}
		out.Answers = shown
		out.Shown = len(shown)
	}
	for _, act := range actions {
		if msg, ok := act.Payload.(string); ok {
			out.Message = msg
			break
		}
	}

	s.writeJSON(w, out)
}

// handlePatterns lists the mounted table in match order.
func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	patterns := s.Engine.Patterns()

	rows := make([]PatternDTO, len(patterns))
	for i, p := range patterns {
		rows[i] = PatternDTO{
			Template:    p.Template,
			Handler:     p.Handler,
			Source:      p.Source,
			Description: p.Description,
		}
	}

	s.writeJSON(w, rows)
}

// handleEvents streams pack reload notifications over SSE.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("events: streaming not supported")
		return
	}

	events, err := s.Engine.Watch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: reload\ndata: patterns changed\n\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "marquee-http",
		"version": s.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
