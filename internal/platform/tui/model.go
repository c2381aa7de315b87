package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/games/flounder"
	"github.com/vovakirdan/flounder/internal/registry"
	"github.com/vovakirdan/flounder/internal/storage"
)

// Optional capabilities a hosted game may provide.
type (
	resizer interface {
		Resize(cols, rows int)
	}
	configApplier interface {
		ApplyConfig(cfg config.Config)
	}
	runRecorder interface {
		RunRecord() storage.Run
	}
	eventSource interface {
		DrainEvents() []flounder.Event
	}
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	watcher   *config.Watcher
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	console   consoleOverlay
	gameState core.GameState
	lastTick  time.Time
	quitting  bool
	runSaved  bool // Whether the current run has been written to the log
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes host logging to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithWatcher applies configs delivered by w to the running game.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		logger:  log.New(io.Discard),
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(),
		console: newConsoleOverlay(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

type (
	configMsg    struct{ cfg config.Config }
	configErrMsg struct{ err error }
)

// waitForConfig blocks until the watcher delivers a reload or an error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.console.open {
			return m.handleConsoleKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configMsg:
		if a, ok := m.game.(configApplier); ok {
			a.ApplyConfig(msg.cfg)
			m.logger.Info("config reloaded", "path", m.watcher.Path())
		}
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	if m.console.open {
		var cmd tea.Cmd
		m.console, cmd = m.console.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	if action == core.ActionConsole {
		c, ok := m.game.(registry.Console)
		if !ok {
			return m, nil
		}
		m.held.Release()
		c.SetConsoleOpen(true)
		return m, m.console.show()
	}

	m.held.Press(action, time.Now())
	return m, nil
}

// handleConsoleKey routes keys to the console prompt while it is open.
func (m Model) handleConsoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, ok := m.game.(registry.Console)
	if !ok {
		m.console.hide()
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	case "esc", "`":
		m.console.hide()
		c.SetConsoleOpen(false)
		return m, nil
	case "enter":
		line := m.console.submit()
		if line == "" {
			return m, nil
		}
		m.console.print("> " + line)
		if line == "clear" {
			m.console.clearHistory()
			return m, nil
		}
		out, err := c.Exec(line)
		if err != nil {
			m.console.printErr(err)
		} else if out != "" {
			m.console.print(out)
		}
		// Some commands close the console themselves.
		if !c.ConsoleOpen() {
			m.console.hide()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.console, cmd = m.console.update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without resize support restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := m.held.Frame(now)

	// A finished run starts over with a fresh seed
	if frame.Has(core.ActionRestart) && m.gameState.Victory {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(elapsed, frame)
	m.gameState = result.State

	if src, ok := m.game.(eventSource); ok {
		for _, e := range src.DrainEvents() {
			m.logger.Debug("event", "kind", e.Kind, "level", e.Level, "detail", e.Detail)
		}
	}

	// Save the run once it is won
	if m.gameState.Victory && !m.runSaved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the current run to the log once. Runs that never
// advanced are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	rec, ok := m.game.(runRecorder)
	if !ok {
		return
	}
	run := rec.RunRecord()
	if run.Ticks == 0 {
		return
	}
	m.runSaved = true
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "outcome", run.Outcome, "level", run.LevelReached)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flounder", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.console.open {
		out = overlayBottom(out, m.console.view(m.screen.Width()))
	}
	return out
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
