package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee/internal/cli"
)

// askCmd resolves a single question and exits. Exit code 0 means answers
// were found; 1 means no match or no results.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and exit",
	Long: `Dispatches one question through the pattern table, prints the answers,
and exits. Quoting is optional; all arguments are joined into one question.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		question := strings.Join(args, " ")

		if err := cli.RunAsk(runOptionsFrom(cmd, cfg), question); err != nil {
			// The explanation already printed; the code is the signal.
			if errors.Is(err, cli.ErrNoResult) {
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
