// Package flounder implements the platformer session: level progression,
// the per-frame physics and behaviour update, the damage model, console
// commands and a terminal renderer for the arcade host.
package flounder

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flounder/internal/camera"
	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/levelgen"
	"github.com/vovakirdan/flounder/internal/world"
)

// ErrLevelOutOfRange is returned when a level outside 1..TotalLevels is
// requested.
var ErrLevelOutOfRange = errors.New("flounder: level out of range")

// Stats accumulates counters for the current run. They survive level
// transitions and restarts and are what the run log records.
type Stats struct {
	Ticks     uint64
	Kills     int
	Collected int
	Deaths    int
	BossHits  int
	Jumps     int
	Damage    int
	MaxLevel  int
}

// Session owns all mutable simulation state. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type Session struct {
	cfg    config.Config
	logger *log.Logger
	rng    *rand.Rand
	seed   int64

	levelIndex int
	level      *world.Level
	player     *world.Player
	particles  []world.Particle
	cam        *camera.Camera

	paused      bool
	gameOver    bool
	victory     bool
	consoleOpen bool

	// Edge-trigger memory for held inputs.
	prevJump    bool
	prevPause   bool
	prevRestart bool

	projectileSeq int
	events        eventQueue
	stats         Stats
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the randomness used outside level generation
// (particles, patroller turns, camera shake).
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithViewport overrides the camera viewport in world units.
func WithViewport(w, h float64) Option {
	return func(s *Session) {
		if w > 0 {
			s.cfg.Camera.ViewW = w
		}
		if h > 0 {
			s.cfg.Camera.ViewH = h
		}
	}
}

// NewSession creates a session and starts level 1.
func NewSession(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		seed:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	s.cam = camera.New(s.cfg.Camera, s.rng)
	s.player = world.NewPlayer(s.cfg.Physics.MaxHealth)
	s.StartLevel(1)
	return s
}

// StartLevel generates level n and resets the player onto its start
// position with full health. n is not range checked; use SetLevel for
// untrusted input.
func (s *Session) StartLevel(n int) {
	s.levelIndex = n
	s.level = levelgen.Generate(n)
	s.tuneEnemies()

	p := s.player
	p.X, p.Y = s.level.StartPos.X, s.level.StartPos.Y
	p.VX, p.VY = 0, 0
	p.JumpCount = 0
	p.InvincibleTimer = 0
	p.Grounded = false
	p.FacingRight = true
	p.State = world.StateIdle
	p.MaxHealth = s.cfg.Physics.MaxHealth
	p.Health = p.MaxHealth

	s.particles = s.particles[:0]
	s.projectileSeq = 0
	s.paused = false
	s.gameOver = false
	s.victory = false

	s.cam.Reset()
	s.cam.Snap(p.Rect, s.level.Width, s.level.Height)

	if n > s.stats.MaxLevel {
		s.stats.MaxLevel = n
	}
	s.emit(Event{Kind: EventLevelStarted, Pos: s.level.StartPos, Detail: s.level.Name})
	s.logger.Info("level started", "level", n, "name", s.level.Name, "width", s.level.Width, "boss", s.level.Boss != nil)
}

// Restart replays the current level from the start. It counts as a death
// when the run had ended in game over.
func (s *Session) Restart() {
	if s.gameOver {
		s.stats.Deaths++
	}
	s.logger.Debug("restart", "level", s.levelIndex)
	s.StartLevel(s.levelIndex)
}

// SetLevel jumps to level n. Out-of-range values leave the session
// untouched.
func (s *Session) SetLevel(n int) error {
	if n < 1 || n > levelgen.TotalLevels {
		return ErrLevelOutOfRange
	}
	s.StartLevel(n)
	return nil
}

// Heal restores the player to full health.
func (s *Session) Heal() {
	s.player.Health = s.player.MaxHealth
}

// TogglePause flips the pause flag. It has no effect once the run ended.
func (s *Session) TogglePause() {
	if s.gameOver || s.victory {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.emit(Event{Kind: EventPaused})
	} else {
		s.emit(Event{Kind: EventResumed})
	}
}

// SetConsoleOpen marks the console overlay open or closed. While open the
// simulation does not advance.
func (s *Session) SetConsoleOpen(open bool) {
	s.consoleOpen = open
}

// ConsoleOpen reports whether the console overlay is open.
func (s *Session) ConsoleOpen() bool {
	return s.consoleOpen
}

// ApplyConfig swaps the tunables in place, for hot reload. The current
// level keeps its layout; enemy parameters are retuned.
func (s *Session) ApplyConfig(cfg config.Config) {
	view := s.cfg.Camera
	s.cfg = cfg
	// Viewport follows the host, not the file.
	s.cfg.Camera.ViewW, s.cfg.Camera.ViewH = view.ViewW, view.ViewH
	s.cam.SetConfig(s.cfg.Camera)
	s.player.MaxHealth = cfg.Physics.MaxHealth
	if s.player.Health > s.player.MaxHealth {
		s.player.Health = s.player.MaxHealth
	}
	s.tuneEnemies()
	s.logger.Info("config applied", "particles", cfg.Settings.Particles)
}

// SetViewport resizes the camera viewport in world units.
func (s *Session) SetViewport(w, h float64) {
	if w > 0 {
		s.cfg.Camera.ViewW = w
	}
	if h > 0 {
		s.cfg.Camera.ViewH = h
	}
	s.cam.SetViewport(s.cfg.Camera.ViewW, s.cfg.Camera.ViewH)
}

// Update advances the simulation by the wall-clock time since the last
// frame. The elapsed time is converted to a tick scale and clamped so a
// long stall cannot tunnel bodies through platforms.
func (s *Session) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	ms := float64(elapsed) / float64(time.Millisecond)
	dt := core.ClampF(ms/s.cfg.Physics.TickMillis, 0, s.cfg.Physics.MaxTickScale)
	return s.Step(dt, in)
}

// tuneEnemies copies configured behaviour parameters onto the level's
// enemies.
func (s *Session) tuneEnemies() {
	if s.level == nil {
		return
	}
	for _, e := range s.level.Enemies {
		switch b := e.Behavior.(type) {
		case *world.Flyer:
			b.Radius = s.cfg.Enemies.FlyerRadius
		case *world.Turret:
			b.Range = s.cfg.Enemies.TurretRange
		case *world.Patroller:
			b.Speed = s.cfg.Enemies.PatrolSpeed
		}
	}
}

func (s *Session) emit(e Event) {
	if e.Level == 0 {
		e.Level = s.levelIndex
	}
	s.events.push(e)
}

// DrainEvents returns and clears the events queued since the last call.
func (s *Session) DrainEvents() []Event {
	return s.events.drain()
}

// Level returns the live level.
func (s *Session) Level() *world.Level { return s.level }

// Player returns the player entity.
func (s *Session) Player() *world.Player { return s.player }

// Particles returns the live particles.
func (s *Session) Particles() []world.Particle { return s.particles }

// Camera returns the session camera.
func (s *Session) Camera() *camera.Camera { return s.cam }

// Config returns the active configuration.
func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) Health() int      { return s.player.Health }
func (s *Session) LevelIndex() int  { return s.levelIndex }
func (s *Session) Paused() bool     { return s.paused }
func (s *Session) GameOver() bool   { return s.gameOver }
func (s *Session) Victory() bool    { return s.victory }
func (s *Session) Stats() Stats     { return s.stats }
func (s *Session) TotalLevels() int { return levelgen.TotalLevels }
func (s *Session) Seed() int64      { return s.seed }

// State summarises the session for the platform layer.
func (s *Session) State() core.GameState {
	return core.GameState{
		Level:    s.levelIndex,
		Health:   s.player.Health,
		GameOver: s.gameOver,
		Victory:  s.victory,
		Paused:   s.paused,
	}
}
