package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file.

Save it to ~/.term2048/config.yaml or ./configs/term2048.yaml and edit
the keys you want to change.

Examples:
  term2048 config > ~/.term2048/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
	},
}
