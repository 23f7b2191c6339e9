package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee/internal/cli"
	"github.com/aretw0/marquee/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Marquee is a natural-language movie database shell",
	Long: `Marquee answers plain-English questions about movies by matching them
against a pattern table and resolving the answers through The Movie Database
(TMDB) API. Running it without a subcommand starts the interactive shell.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("patterns", "", "Directory of pattern cards mounted ahead of the builtins")
	rootCmd.PersistentFlags().Int("limit", config.DefaultLimit, "Result display limit")
	rootCmd.PersistentFlags().String("base-url", "", "Override the TMDB API base URL")
}

// resolveConfig layers defaults, the config file, environment variables, and
// command flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("limit") {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("patterns") {
		cfg.PatternsDir, _ = cmd.Flags().GetString("patterns")
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL, _ = cmd.Flags().GetString("base-url")
	}

	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	return cfg, nil
}

// runOptionsFrom converts a resolved config into options for the cli layer.
func runOptionsFrom(cmd *cobra.Command, cfg *config.Config) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		PatternsDir: cfg.PatternsDir,
		Limit:       cfg.Limit,
		Debug:       debug,
	}
}
