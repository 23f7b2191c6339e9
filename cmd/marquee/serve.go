package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/marquee"
	httpAdapter "github.com/aretw0/marquee/internal/adapters/http"
	"github.com/aretw0/marquee/internal/cli"
	"github.com/aretw0/marquee/internal/logging"
	"github.com/aretw0/marquee/internal/metrics"
	"github.com/aretw0/marquee/pkg/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the marquee engine in stateless server mode, exposing a JSON API
over HTTP plus Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		port, _ := cmd.Flags().GetString("port")

		logger, err := serverLogger(cmd, cfg.LogLevel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		reg := prometheus.NewRegistry()
		m := metrics.New(reg)

		hooks := m.Hooks()
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			hooks = domain.MergeHooks(hooks, cli.DebugHooks(logger))
		}

		engineOpts := []marquee.Option{
			marquee.WithAPIKey(cfg.APIKey),
			marquee.WithLogger(logger),
			marquee.WithLifecycleHooks(hooks),
		}
		if cfg.BaseURL != "" {
			engineOpts = append(engineOpts, marquee.WithBaseURL(cfg.BaseURL))
		}
		if cfg.PatternsDir != "" {
			engineOpts = append(engineOpts, marquee.WithPatternsDir(cfg.PatternsDir))
		}

		eng, err := marquee.New(engineOpts...)
		if err != nil {
			fmt.Printf("Error initializing marquee: %v\n", err)
			os.Exit(1)
		}

		if cfg.APIKey == "" {
			logger.Warn("TMDB API key is not set; every query will return no results",
				"env", "TMDB_API_KEY")
		}

		handler := httpAdapter.NewHandler(eng,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithLimit(cfg.Limit),
			httpAdapter.WithVersion(marquee.Version),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting marquee server on %s\n", srv.Addr)
			if cfg.PatternsDir != "" {
				fmt.Printf("Pattern cards from: %s\n", cfg.PatternsDir)
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Marquee server stopped gracefully")
		}
	},
}

// serverLogger builds the stderr logger for server surfaces. Debug forces
// LevelDebug; otherwise the configured level applies.
func serverLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug), nil
	}
	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(parsed), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
