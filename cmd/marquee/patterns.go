package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee"
	"github.com/aretw0/marquee/internal/logging"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the active pattern table",
	Long: `Prints the active pattern table in match order: pack cards first, then
the builtins. --verbose adds each card's documentation body. With --check the
table is also validated for entries shadowed by an earlier duplicate.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		engineOpts := []marquee.Option{
			marquee.WithAPIKey(cfg.APIKey),
			marquee.WithLogger(logging.NewNop()),
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

		verbose, _ := cmd.Flags().GetBool("verbose")

		for _, p := range eng.Patterns() {
			fmt.Printf("%-45s -> %s (%s)\n", p.Template, p.Handler, p.Source)
			if p.Description != "" {
				fmt.Printf("%-45s    %s\n", "", p.Description)
			}
			if verbose && p.Body != "" {
				for _, line := range strings.Split(p.Body, "\n") {
					fmt.Printf("    %s\n", line)
				}
			}
		}

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return
		}

		warnings := eng.Validate()
		if len(warnings) == 0 {
			fmt.Println("\nPattern table is valid! ✅")
			return
		}
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().Bool("check", false, "Validate the table and exit nonzero on warnings")
	patternsCmd.Flags().BoolP("verbose", "v", false, "Show each card's documentation body")
}
