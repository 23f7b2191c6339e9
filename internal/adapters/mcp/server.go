package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/runner"
)

// PatternsURI is the resource URI exposing the mounted table.
const PatternsURI = "marquee://patterns"

// Engine is the slice of the marquee engine the MCP adapter consumes.
type Engine interface {
	Resolve(ctx context.Context, line string) (*domain.Response, error)
	Render(ctx context.Context, resp *domain.Response, limit int) ([]domain.ActionRequest, error)
	Patterns() []domain.PatternInfo
}

// AskArgs is the argument shape of the ask tool.
type AskArgs struct {
	Question string `mapstructure:"question"`
	Limit    int    `mapstructure:"limit"`
}

// AskResult is the structured output of the ask tool.
type AskResult struct {
	Kind    string   `json:"kind" jsonschema_description:"Dispatch outcome: answers, no_answer, no_match, empty, or farewell"`
	Pattern string   `json:"pattern,omitempty" jsonschema_description:"The template that matched"`
	Answers []string `json:"answers" jsonschema_description:"Answers, capped at the requested limit"`
	Total   int      `json:"total" jsonschema_description:"Total answers before the limit was applied"`
	Message string   `json:"message,omitempty" jsonschema_description:"The same text a console session would print"`
}

// Server wraps the marquee engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	limit     int
	version   string
	mcpServer *server.MCPServer
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the logger. MCP servers must log to stderr so stdout
// stays clean for JSON-RPC.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLimit sets the default answer cap for the ask tool.
func WithLimit(limit int) Option {
	return func(s *Server) {
		s.limit = limit
	}
}

// WithVersion sets the advertised server version.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates a new MCP server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		logger:  slog.Default(),
		limit:   runner.DefaultLimit,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer("marquee-mcp", strings.TrimSpace(s.version))
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("mcp server listening (sse)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: ask
	askTool := mcp.NewTool("ask",
		mcp.WithDescription("Answer a natural-language movie question, e.g. 'who directed alien?' or 'what movies were made in 1962?'. Matching is pattern-based: call list_patterns to see the accepted phrasings."),
		mcp.WithString("question", mcp.Required(), mcp.Description("The question to answer")),
		mcp.WithNumber("limit", mcp.Description("Maximum answers to return (default 10)")),
		mcp.WithOutputSchema[AskResult](),
	)
	s.mcpServer.AddTool(askTool, mcp.NewStructuredToolHandler(s.handleAsk))

	// TOOL: list_patterns
	s.mcpServer.AddTool(mcp.NewTool("list_patterns",
		mcp.WithDescription("List the pattern table in match order. '%' binds one or more words, '_' exactly one."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.patternsText()), nil
	})
}

// handleAsk resolves one question. The session-end pattern is reported as
// kind "farewell" since there is no session to end over MCP.
func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AskResult, error) {
	var in AskArgs
	// WeakDecode because JSON-RPC numbers arrive as float64.
	if err := mapstructure.WeakDecode(args, &in); err != nil {
		return AskResult{}, fmt.Errorf("invalid arguments: %w", err)
	}

	question := strings.TrimSpace(in.Question)
	if question == "" {
		return AskResult{}, fmt.Errorf("question is required")
	}

	// Sanitize Input (Global Policy)
	clean, err := runner.SanitizeInput(question)
	if err != nil {
		s.logger.Warn("mcp ask: input rejected", "error", err, "size", len(question))
		return AskResult{}, fmt.Errorf("input rejected: %w", err)
	}

	limit := s.limit
	if in.Limit > 0 {
		limit = in.Limit
	}

	resp, err := s.engine.Resolve(ctx, clean)
	if err != nil {
		if errors.Is(err, domain.ErrSessionEnd) {
			return AskResult{Kind: "farewell"}, nil
		}
		return AskResult{}, fmt.Errorf("resolve failed: %w", err)
	}

	out := AskResult{
		Kind:    string(resp.Kind),
		Pattern: resp.Pattern,
		Total:   len(resp.Answers),
	}
	if resp.Kind == domain.KindAnswers {
		shown := resp.Answers
		if len(shown) > limit {
			shown = shown[:limit]
		}
		out.Answers = shown
	}

	actions, err := s.engine.Render(ctx, resp, limit)
	if err != nil {
		s.logger.Error("mcp ask: render failed", "error", err)
	} else {
		for _, act := range actions {
			if msg, ok := act.Payload.(string); ok {
				out.Message = msg
				break
			}
		}
	}

	return out, nil
}

func (s *Server) patternsText() string {
	var b strings.Builder
	for _, p := range s.engine.Patterns() {
		fmt.Fprintf(&b, "%s -> %s (%s)\n", p.Template, p.Handler, p.Source)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Server) registerResources() {
	// EXPOSE: marquee://patterns
	s.mcpServer.AddResource(mcp.NewResource(PatternsURI, "Mounted Pattern Table",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Patterns())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal patterns: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      PatternsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
