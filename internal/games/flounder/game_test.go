package flounder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/registry"
	"github.com/vovakirdan/flounder/internal/storage"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	SetConfigPath("")
	SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 7})
	return g
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("flounder"))
	g, err := registry.Create("flounder")
	require.NoError(t, err)
	assert.Equal(t, "Flounder", g.Title())

	_, ok := g.(registry.Console)
	assert.True(t, ok)
}

func TestGameViewportFollowsTerminal(t *testing.T) {
	g := newTestGame(t, 80, 24)
	w, h := g.Session().Camera().Viewport()
	assert.Equal(t, 80.0*CellW, w)
	assert.Equal(t, 23.0*CellH, h)

	g.Resize(100, 30)
	w, h = g.Session().Camera().Viewport()
	assert.Equal(t, 100.0*CellW, w)
	assert.Equal(t, 29.0*CellH, h)
}

func TestGameStartLevel(t *testing.T) {
	SetStartLevel(5)
	defer SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	assert.Equal(t, 5, g.State().Level)
}

func TestGameStep(t *testing.T) {
	g := newTestGame(t, 80, 24)
	x := g.Session().Player().X

	for i := 0; i < 30; i++ {
		g.Step(16*time.Millisecond, core.Held(core.ActionRight))
	}
	assert.Greater(t, g.Session().Player().X, x)
	assert.NotZero(t, g.Stats().Ticks)
}

func TestRenderDrawsPlayerAndHUD(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, string(GlyphPlayer))
	assert.Contains(t, out, "Zone 1")
	assert.Contains(t, screen.Row(0), "♥♥♥♥♥")
	assert.Contains(t, out, string(GlyphGround))
}

func TestRenderBanners(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Session().TogglePause()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
	mid := hudRows + (24-hudRows)/2
	assert.Contains(t, screen.Row(mid-1), "┌────────┐")
	assert.Contains(t, screen.Row(mid), "PAUSED")
	assert.Contains(t, screen.Row(mid+1), "└────────┘")

	g.Session().TogglePause()
	g.Session().player.Y = 2100
	g.Step(16*time.Millisecond, core.NewInputFrame())
	require.True(t, g.State().GameOver)
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.Row(mid+1), "R to retry")
	assert.Contains(t, screen.Row(mid+2), "└")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 20, 8)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "small"))
}

func TestBossBar(t *testing.T) {
	assert.Equal(t, "BOSS ["+strings.Repeat("█", 10)+"]", bossBar(5, 5, 10))
	assert.Equal(t, "BOSS ["+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"]", bossBar(50, 100, 10))
	assert.Equal(t, "", bossBar(1, 0, 10))
}

func TestGameRunRecord(t *testing.T) {
	g := newTestGame(t, 80, 24)
	for i := 0; i < 10; i++ {
		g.Step(16*time.Millisecond, core.Held(core.ActionRight))
	}

	rec := g.RunRecord()
	assert.Equal(t, "flounder", rec.GameID)
	assert.Equal(t, int64(7), rec.Seed)
	assert.Equal(t, storage.OutcomeQuit, rec.Outcome)
	assert.Equal(t, 1, rec.LevelReached)
	assert.Equal(t, int64(10), rec.Ticks)
	assert.False(t, rec.EndedAt.Before(rec.StartedAt))

	g.Session().gameOver = true
	assert.Equal(t, storage.OutcomeGameOver, g.RunRecord().Outcome)

	g.Session().victory = true
	assert.Equal(t, storage.OutcomeVictory, g.RunRecord().Outcome)
}

func TestGameHeadlessSteps(t *testing.T) {
	SetConfigPath("")
	SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3, ViewW: 1280, ViewH: 720})

	w, h := g.Session().Camera().Viewport()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)

	g.Step(16*time.Millisecond, core.Held(core.ActionRight))
	assert.Equal(t, uint64(1), g.Stats().Ticks)
}
