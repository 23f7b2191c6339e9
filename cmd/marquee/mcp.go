package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee"
	mcpAdapter "github.com/aretw0/marquee/internal/adapters/mcp"
	"github.com/aretw0/marquee/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the marquee engine as an MCP server.
This lets AI agents (like Claude Desktop) ask movie questions as tool calls.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Logs must stay on stderr; stdout carries JSON-RPC.
		logger, err := serverLogger(cmd, cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		engineOpts := []marquee.Option{
			marquee.WithAPIKey(cfg.APIKey),
			marquee.WithLogger(logger),
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			engineOpts = append(engineOpts, marquee.WithLifecycleHooks(cli.DebugHooks(logger)))
		}
		if cfg.BaseURL != "" {
			engineOpts = append(engineOpts, marquee.WithBaseURL(cfg.BaseURL))
		}
		if cfg.PatternsDir != "" {
			engineOpts = append(engineOpts, marquee.WithPatternsDir(cfg.PatternsDir))
		}

		eng, err := marquee.New(engineOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing marquee: %v\n", err)
			os.Exit(1)
		}

		if cfg.APIKey == "" {
			logger.Warn("TMDB API key is not set; every query will return no results",
				"env", "TMDB_API_KEY")
		}

		srv := mcpAdapter.NewServer(eng,
			mcpAdapter.WithLogger(logger),
			mcpAdapter.WithLimit(cfg.Limit),
			mcpAdapter.WithVersion(marquee.Version),
		)

		switch transport {
		case "stdio":
			log.SetOutput(os.Stderr)
			logger.Info("Starting marquee MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting marquee MCP server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					logger.Error("MCP server execution failed", "err", err)
					os.Exit(1)
				}
			}
			logger.Info("MCP server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8321, "Port to listen on (only for SSE)")
}
