// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048                 - Play a game
//	term2048 play            - Play a game
//	term2048 config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Use a specific config file
//	--ui <mode>          - Front-end: auto, tui or line
//	--no-color           - Disable tile colours
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagUI       string
	flagNoColor  bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Each turn, enter a direction as a word or a single letter:
  up/w  down/s  left/a  right/d

Equal tiles that slide into each other merge. A new tile appears after
every move. Reach 2048 to win; the game ends when no move is left.

Examples:
  term2048
  term2048 --seed 42
  term2048 --ui line --no-color
  term2048 --config ./term2048.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagUI, "ui", "", "Front-end: auto, tui or line (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable tile background colours")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
