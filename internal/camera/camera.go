// Package camera implements the smoothed follow camera with look-ahead,
// level-bounds clamping and two decaying screen-shake channels.
package camera

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flounder/internal/config"
	"github.com/vovakirdan/flounder/internal/core"
)

// Camera tracks the top-left corner of the viewport in world units.
type Camera struct {
	cfg  config.Camera
	rng  *rand.Rand
	pos  core.Vec2
	view core.Vec2 // pos plus this frame's shake jitter, clamped

	viewW, viewH   float64
	levelW, levelH float64

	impact float64
	damage float64
}

// New returns a camera at the origin. rng drives shake jitter and must not
// be shared with another goroutine.
func New(cfg config.Camera, rng *rand.Rand) *Camera {
	return &Camera{
		cfg:   cfg,
		rng:   rng,
		viewW: cfg.ViewW,
		viewH: cfg.ViewH,
	}
}

// SetConfig swaps the tunables without moving the camera.
func (c *Camera) SetConfig(cfg config.Camera) {
	c.cfg = cfg
}

// SetViewport sets the visible area in world units.
func (c *Camera) SetViewport(w, h float64) {
	if w > 0 {
		c.viewW = w
	}
	if h > 0 {
		c.viewH = h
	}
	c.pos = c.clamp(c.pos)
	c.view = c.clamp(c.view)
}

// Viewport returns the visible area in world units.
func (c *Camera) Viewport() (w, h float64) {
	return c.viewW, c.viewH
}

// Snap centres the camera on target with no smoothing.
func (c *Camera) Snap(target core.Rect, levelW, levelH float64) {
	c.levelW, c.levelH = levelW, levelH
	ctr := target.Center()
	c.pos = c.clamp(core.Vec2{X: ctr.X - c.viewW/2, Y: ctr.Y - c.viewH/2})
	c.view = c.pos
}

// Follow eases toward target, leading by its velocity, then applies and
// decays shake. dt is the tick scale (1 at 60 Hz).
func (c *Camera) Follow(target core.Rect, vx, vy, levelW, levelH, dt float64) {
	c.levelW, c.levelH = levelW, levelH
	ctr := target.Center()
	goal := core.Vec2{
		X: ctr.X - c.viewW/2 + vx*c.cfg.LookAheadX,
		Y: ctr.Y - c.viewH/2 + vy*c.cfg.LookAheadY,
	}

	k := 1 - math.Pow(1-c.cfg.Lerp, dt)
	c.pos.X += (goal.X - c.pos.X) * k
	c.pos.Y += (goal.Y - c.pos.Y) * k
	c.pos = c.clamp(c.pos)

	view := c.pos
	for _, s := range []*float64{&c.impact, &c.damage} {
		if *s <= 0 {
			continue
		}
		view.X += (c.rng.Float64() - 0.5) * *s
		view.Y += (c.rng.Float64() - 0.5) * *s
		*s *= math.Pow(c.cfg.ShakeDecay, dt)
		if *s < c.cfg.ShakeCutoff {
			*s = 0
		}
	}
	c.view = c.clamp(view)
}

// Impact starts an impact shake of magnitude m, keeping a stronger one.
func (c *Camera) Impact(m float64) {
	c.impact = math.Max(c.impact, m)
}

// Damage starts a damage shake of magnitude m, keeping a stronger one.
func (c *Camera) Damage(m float64) {
	c.damage = math.Max(c.damage, m)
}

// Shake returns the current impact and damage magnitudes.
func (c *Camera) Shake() (impact, damage float64) {
	return c.impact, c.damage
}

// Reset zeroes both shakes.
func (c *Camera) Reset() {
	c.impact, c.damage = 0, 0
	c.view = c.pos
}

// Position returns the smoothed position without shake.
func (c *Camera) Position() core.Vec2 {
	return c.pos
}

// View returns the position to render from, shake included.
func (c *Camera) View() core.Vec2 {
	return c.view
}

// Rect returns the visible world rectangle.
func (c *Camera) Rect() core.Rect {
	return core.NewRect(c.view.X, c.view.Y, c.viewW, c.viewH)
}

func (c *Camera) clamp(p core.Vec2) core.Vec2 {
	maxX := math.Max(0, c.levelW-c.viewW)
	maxY := math.Max(c.cfg.MinY, c.levelH-c.viewH+c.cfg.OvershootBottom)
	return core.Vec2{
		X: core.ClampF(p.X, 0, maxX),
		Y: core.ClampF(p.Y, c.cfg.MinY, maxY),
	}
}
