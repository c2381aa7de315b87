// flounder is a seeded 2D platformer played in the terminal.
//
// Usage:
//
//	flounder list              - List available games
//	flounder play              - Play, optionally from a given level
//	flounder menu              - Pick a starting level interactively
//	flounder sim               - Run a headless autopilot session
//	flounder levels [n]        - Inspect generated levels
//	flounder runs              - Show the run log
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flounder/runs.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flounder/internal/games/flounder"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flounder",
	Short: "Flounder - a seeded platformer in your terminal",
	Long: `Flounder is a side-scrolling platformer with twelve generated levels,
two boss arenas and a developer console, played directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play from level 1 or a chosen level
  menu     - Interactive level picker
  sim      - Headless autopilot run
  levels   - Inspect the level generator
  runs     - View the run log

Examples:
  flounder play
  flounder play --level 6 --config ./flounder.yaml --watch
  flounder sim --level 3 --ticks 5000 --record
  flounder levels 12 --dump
  flounder runs --best`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flounder/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
}
