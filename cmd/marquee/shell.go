package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee/internal/cli"
)

// shellCmd represents the interactive console, the primary surface.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive movie shell",
	Long: `Starts the interactive console loop. Type questions in plain English,
"limit <n>" to cap how many results are shown, and "bye" to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := runOptionsFrom(cmd, cfg)
		opts.Watch, _ = cmd.Flags().GetBool("watch")

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().BoolP("watch", "w", false, "Reload the pattern table when cards change")

	// Running marquee with no subcommand starts the shell.
	rootCmd.Run = shellCmd.Run
	rootCmd.Flags().AddFlagSet(shellCmd.Flags())
}
