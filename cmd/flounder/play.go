package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/games/flounder"
	"github.com/vovakirdan/flounder/internal/levelgen"
	"github.com/vovakirdan/flounder/internal/platform/tui"
	"github.com/vovakirdan/flounder/internal/registry"
	"github.com/vovakirdan/flounder/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flounder",
	Long: `Start playing, from level 1 or the level given with --level.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump (press again in the air to double jump)
  P/Esc            - Pause
  R                - Restart the level after game over, new run after victory
  ` + "`" + `                - Developer console (level.set <n>, heal, help, clear)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  flounder play
  flounder play --level 6
  flounder play --config ./flounder.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     runSeed(),
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagLevel < 1 || flagLevel > levelgen.TotalLevels {
		return fmt.Errorf("--level must be between 1 and %d", levelgen.TotalLevels)
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			return fmt.Errorf("--watch needs --config")
		}
		watcher, err = config.Watch(flagConfig)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return playLevel(flagLevel, terminalConfig(), store, logger, watcher)
}

// playLevel runs one interactive session starting at level.
func playLevel(level int, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger, watcher *config.Watcher) error {
	flounder.SetConfigPath(flagConfig)
	flounder.SetStartLevel(level)
	flounder.SetLogger(logger)

	game, err := registry.Create("flounder")
	if err != nil {
		return err
	}

	logger.Info("starting", "level", level, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, store, cfg, tui.WithLogger(logger), tui.WithWatcher(watcher)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openStore opens the run log. Play continues without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		return nil
	}
	return store
}
