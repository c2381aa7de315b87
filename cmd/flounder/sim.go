package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/games/flounder"
	"github.com/vovakirdan/flounder/internal/levelgen"
)

var (
	flagSimLevel  int
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without a terminal UI. A simple autopilot runs
towards the exit, jumps gaps and enemies and restarts after game over.
Every gameplay event is logged; the final state and a state hash are
printed so two runs with the same seed can be compared.

Examples:
  flounder sim --seed 42
  flounder sim --level 6 --ticks 10000 --log-level debug
  flounder sim --ticks 20000 --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to start on")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the run log")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimLevel < 1 || flagSimLevel > levelgen.TotalLevels {
		return fmt.Errorf("--level must be between 1 and %d", levelgen.TotalLevels)
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive")
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := runSeed()
	flounder.SetConfigPath(flagConfig)
	flounder.SetStartLevel(flagSimLevel)
	flounder.SetLogger(logger)

	game := flounder.New()
	game.Reset(core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
		ViewW:    cfg.Camera.ViewW,
		ViewH:    cfg.Camera.ViewH,
	})

	logger.Info("sim started", "level", flagSimLevel, "seed", seed, "ticks", flagSimTicks)

	var pilot flounder.Autopilot
	frame := time.Second / time.Duration(flagFPS)
	session := game.Session()
	ticks := 0
	for ; ticks < flagSimTicks; ticks++ {
		result := game.Step(frame, pilot.Input(session))
		for _, e := range game.DrainEvents() {
			logger.Debug(e.Kind.String(), "level", e.Level, "x", int(e.Pos.X), "y", int(e.Pos.Y), "detail", e.Detail)
		}
		if result.State.Victory {
			ticks++
			break
		}
	}

	state := game.State()
	stats := game.Stats()
	snap := session.Snapshot()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Frames:     %d\n", ticks)
	fmt.Fprintf(out, "Seed:       %d\n", seed)
	fmt.Fprintf(out, "Level:      %d (%s)\n", state.Level, session.Level().Name)
	fmt.Fprintf(out, "Health:     %d\n", state.Health)
	fmt.Fprintf(out, "Result:     %s\n", simResult(state))
	fmt.Fprintf(out, "Kills:      %d\n", stats.Kills)
	fmt.Fprintf(out, "Collected:  %d\n", stats.Collected)
	fmt.Fprintf(out, "Deaths:     %d\n", stats.Deaths)
	fmt.Fprintf(out, "Boss hits:  %d\n", stats.BossHits)
	fmt.Fprintf(out, "State hash: %016x\n", snap.Hash())

	if !flagSimRecord {
		return nil
	}

	store := openStore(logger)
	if store == nil {
		return fmt.Errorf("cannot record run")
	}
	defer store.Close()

	id, err := store.SaveRun(game.RunRecord())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recorded:   %s\n", id)
	return nil
}

func simResult(s core.GameState) string {
	switch {
	case s.Victory:
		return "victory"
	case s.GameOver:
		return "game over"
	default:
		return "in progress"
	}
}
