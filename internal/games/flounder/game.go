package flounder

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/registry"
	"github.com/vovakirdan/flounder/internal/storage"
)

// World units covered by one terminal cell. A 40x40 player is roughly
// 2.5 cells wide and 1.25 rows tall, and an 80x24 terminal shows about
// the default 1280x720 viewport.
const (
	CellW = 16
	CellH = 32

	hudRows = 1
	minW    = 40
	minH    = 12
)

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath string
	startLevel int
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level the next Reset starts on. 0 means level 1.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register("flounder", func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the registry.Game interface so the terminal
// host can drive it.
type Game struct {
	session  *Session
	cfg      config.Config
	runtime  core.RuntimeConfig
	tooSmall bool
	started  time.Time
}

// New creates an unstarted game; call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flounder"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flounder"
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.started = time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.Default()
	}
	g.cfg = cfg

	viewW, viewH := rc.ViewW, rc.ViewH
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = g.viewportFor(rc.ScreenW, rc.ScreenH)
	}
	// A zero screen means a headless host, which is never too small.
	headless := rc.ScreenW == 0 && rc.ScreenH == 0
	g.tooSmall = !headless && (rc.ScreenW < minW || rc.ScreenH < minH)

	g.session = NewSession(cfg,
		WithLogger(logger),
		WithSeed(rc.Seed),
		WithViewport(viewW, viewH),
	)
	if startLevel > 0 {
		if err := g.session.SetLevel(startLevel); err != nil {
			logger.Warn("ignoring start level", "level", startLevel, "err", err)
		}
	}
}

func (g *Game) viewportFor(cols, rows int) (float64, float64) {
	if cols <= 0 || rows <= hudRows {
		return 0, 0
	}
	return float64(cols * CellW), float64((rows - hudRows) * CellH)
}

// Resize adapts the camera to a new terminal size.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.tooSmall = cols < minW || rows < minH
	if g.session != nil {
		g.session.SetViewport(g.viewportFor(cols, rows))
	}
}

// Step advances the session by the elapsed wall-clock time.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	return g.session.Update(elapsed, in)
}

// State returns the session state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}

// Exec runs a console command.
func (g *Game) Exec(line string) (string, error) {
	return g.session.Exec(line)
}

// SetConsoleOpen freezes or resumes the simulation for the console overlay.
func (g *Game) SetConsoleOpen(open bool) {
	g.session.SetConsoleOpen(open)
}

// ConsoleOpen reports whether the console overlay is open.
func (g *Game) ConsoleOpen() bool {
	return g.session.ConsoleOpen()
}

// ApplyConfig forwards a reloaded configuration to the session.
func (g *Game) ApplyConfig(cfg config.Config) {
	g.cfg = cfg
	g.session.ApplyConfig(cfg)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Stats returns the run counters.
func (g *Game) Stats() Stats {
	return g.session.Stats()
}

// DrainEvents returns the events queued since the last call.
func (g *Game) DrainEvents() []Event {
	return g.session.DrainEvents()
}

// RunRecord summarises the session for the run log. The outcome reflects
// the current state, so a run recorded mid-level counts as quit.
func (g *Game) RunRecord() storage.Run {
	st := g.session.Stats()
	outcome := storage.OutcomeQuit
	switch {
	case g.session.Victory():
		outcome = storage.OutcomeVictory
	case g.session.GameOver():
		outcome = storage.OutcomeGameOver
	}
	return storage.Run{
		GameID:       g.ID(),
		Seed:         g.session.Seed(),
		Outcome:      outcome,
		LevelReached: max(st.MaxLevel, g.session.LevelIndex()),
		Ticks:        int64(st.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		Kills:        st.Kills,
		Collected:    st.Collected,
		Deaths:       st.Deaths,
		BossHits:     st.BossHits,
		StartedAt:    g.started,
		EndedAt:      time.Now(),
	}
}
