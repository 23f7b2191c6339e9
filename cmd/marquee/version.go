package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/marquee"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of marquee",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("marquee version %s\n", strings.TrimSpace(marquee.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
