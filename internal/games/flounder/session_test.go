package flounder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/levelgen"
	"github.com/vovakirdan/flounder/internal/world"
)

const groundY = 1250

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.Default(), WithSeed(1))
}

// useFlatLevel swaps in a hand-built level with a single floor so tests
// control every entity.
func useFlatLevel(s *Session) *world.Level {
	lvl := &world.Level{
		ID:     1,
		Name:   "test",
		Width:  4000,
		Height: 1400,
		Platforms: []world.Platform{
			{Rect: core.NewRect(0, groundY, 4000, 500), Type: world.PlatformSolid, Render: world.RenderGround},
		},
		StartPos: core.Vec2{X: 200, Y: 1000},
		EndPos:   core.Vec2{X: 3800, Y: 1000},
	}
	s.level = lvl
	s.events.drain()
	return lvl
}

// standOnFloor puts the player at rest on the floor at x.
func standOnFloor(s *Session, x float64) {
	p := s.player
	p.X, p.Y = x, groundY-p.H
	p.VX, p.VY = 0, 0
	p.Grounded = true
	p.JumpCount = 0
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestNewSessionStartsLevelOne(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, 5, s.Health())
	assert.Equal(t, s.Level().StartPos, s.Player().Pos())
	assert.False(t, s.GameOver())
	assert.Contains(t, kinds(s.DrainEvents()), EventLevelStarted)
}

func TestStartLevelResetsPlayer(t *testing.T) {
	s := newTestSession(t)
	p := s.Player()
	p.Health = 2
	p.VX, p.VY = 4, 9
	p.JumpCount = 2
	p.InvincibleTimer = 1.5
	s.Camera().Impact(20)

	s.StartLevel(3)

	assert.Equal(t, 3, s.LevelIndex())
	assert.Equal(t, 5, p.Health)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
	assert.Zero(t, p.JumpCount)
	assert.Zero(t, p.InvincibleTimer)
	assert.Empty(t, s.Particles())
	impact, damage := s.Camera().Shake()
	assert.Zero(t, impact)
	assert.Zero(t, damage)
	assert.Equal(t, levelgen.Generate(3).Name, s.Level().Name)
}

func TestDamageRespectsInvincibility(t *testing.T) {
	s := newTestSession(t)
	useFlatLevel(s)
	standOnFloor(s, 500)
	p := s.Player()

	p.InvincibleTimer = 0.5
	assert.False(t, s.damage(600, 3, 10, "enemy"))
	assert.Equal(t, 5, p.Health)

	p.InvincibleTimer = 0
	require.True(t, s.damage(600, 3, 10, "enemy"))
	assert.Equal(t, 4, p.Health)
	assert.Equal(t, -3.0, p.VX)
	assert.Equal(t, -5.0, p.VY)
	assert.Equal(t, 2.0, p.InvincibleTimer)

	// Immediately after, the same hit is ignored.
	assert.False(t, s.damage(600, 3, 10, "enemy"))
	assert.Equal(t, 4, p.Health)

	_, damage := s.Camera().Shake()
	assert.Equal(t, 10.0, damage)
}

func TestKnockbackAwayFromSource(t *testing.T) {
	s := newTestSession(t)
	useFlatLevel(s)
	standOnFloor(s, 500)

	require.True(t, s.damage(100, 5, 15, "boss"))
	assert.Equal(t, 5.0, s.Player().VX)
	assert.Less(t, s.Player().VX, s.Config().Physics.MaxSpeed)
}

func TestInvincibilityCountsDown(t *testing.T) {
	s := newTestSession(t)
	useFlatLevel(s)
	standOnFloor(s, 500)
	s.Player().InvincibleTimer = 2.0

	// 120 ticks at 60 Hz is two seconds.
	for i := 0; i < 120; i++ {
		s.Step(1, idle())
	}
	assert.InDelta(t, 0, s.Player().InvincibleTimer, 0.01)
	assert.GreaterOrEqual(t, s.Player().InvincibleTimer, 0.0)
}

func TestHealthStaysInBounds(t *testing.T) {
	s := newTestSession(t)
	lvl := useFlatLevel(s)
	standOnFloor(s, 500)
	p := s.Player()

	heart := func(id string) *world.Collectible {
		return &world.Collectible{
			ID:    id,
			Body:  world.Body{Rect: core.NewRect(505, groundY-35, 30, 30), Health: 1, MaxHealth: 1},
			Color: core.ColorHeart,
		}
	}

	lvl.Collectibles = []*world.Collectible{heart("a")}
	s.Step(1, idle())
	assert.Equal(t, 5, p.Health, "healing at full health is capped")
	assert.Empty(t, lvl.Collectibles)
	assert.Equal(t, 1, s.Stats().Collected)

	p.Health = 3
	lvl.Collectibles = []*world.Collectible{heart("b")}
	s.Step(1, idle())
	assert.Equal(t, 4, p.Health)
	assert.Contains(t, kinds(s.DrainEvents()), EventCollectiblePicked)
}

func TestUpdateClampsTickScale(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	right := core.Held(core.ActionRight)

	a.Update(time.Second, right)
	b.Step(3, right)

	sa, sb := a.Snapshot(), b.Snapshot()
	assert.Equal(t, sb.Hash(), sa.Hash())
	assert.Equal(t, sb.PlayerX, sa.PlayerX)
}

func TestUpdateZeroElapsedIsNoop(t *testing.T) {
	s := newTestSession(t)
	before := s.Snapshot()
	s.Update(0, core.Held(core.ActionRight))
	assert.Equal(t, before, s.Snapshot())
}

func TestDeterministicRuns(t *testing.T) {
	script := func(i int) core.InputFrame {
		in := core.NewInputFrame()
		if i%90 < 70 {
			in.Set(core.ActionRight)
		}
		if i%40 == 0 || i%40 == 12 {
			in.Set(core.ActionJump)
		}
		return in
	}
	run := func() Snapshot {
		s := NewSession(config.Default(), WithSeed(99))
		for i := 0; i < 900; i++ {
			s.Update(time.Duration(14+i%5)*time.Millisecond, script(i))
			if s.GameOver() {
				s.Step(1, core.Held(core.ActionRestart))
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEventQueueIsBounded(t *testing.T) {
	var q eventQueue
	for i := 0; i < maxEvents+44; i++ {
		q.push(Event{Level: i})
	}
	events := q.drain()
	require.Len(t, events, maxEvents)
	assert.Equal(t, 44, events[0].Level)
	assert.Equal(t, maxEvents+43, events[len(events)-1].Level)
	assert.Zero(t, q.len())
}

func TestApplyConfigKeepsViewport(t *testing.T) {
	s := NewSession(config.Default(), WithViewport(640, 480))
	cfg := config.Default()
	cfg.Physics.Gravity = 1.2
	cfg.Enemies.FlyerRadius = 300

	s.ApplyConfig(cfg)

	assert.Equal(t, 1.2, s.Config().Physics.Gravity)
	w, h := s.Camera().Viewport()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 480.0, h)
	for _, e := range s.Level().Enemies {
		if f, ok := e.Behavior.(*world.Flyer); ok {
			assert.Equal(t, 300.0, f.Radius)
		}
	}
}
