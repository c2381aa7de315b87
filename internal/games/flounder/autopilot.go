package flounder

import (
	"math"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

const (
	pilotLookahead = 120
	pilotDropLimit = 300
	pilotThreatX   = 160
	pilotThreatY   = 100
)

// Autopilot drives a session without a human: it runs towards the exit,
// jumps over gaps and enemies and restarts after game over. Jump and
// restart are edge-triggered, so the pilot releases them between presses.
type Autopilot struct {
	jumpHeld    bool
	restartHeld bool
}

// Input returns the actions to hold this frame.
func (a *Autopilot) Input(s *Session) core.InputFrame {
	if s.GameOver() {
		a.restartHeld = !a.restartHeld
		if a.restartHeld {
			return core.Held(core.ActionRestart)
		}
		return core.NewInputFrame()
	}
	a.restartHeld = false
	if s.Victory() || s.Paused() {
		return core.NewInputFrame()
	}

	p := s.Player()
	lvl := s.Level()
	dir := 1.0
	move := core.ActionRight
	if lvl.EndPos.X < p.X {
		dir, move = -1, core.ActionLeft
	}

	frame := core.Held(move)

	want := false
	switch {
	case p.Grounded:
		want = !groundAhead(lvl, p, dir) || threatAhead(lvl, p, dir)
	case p.VY > 0 && p.JumpCount < s.cfg.Physics.MaxJumps:
		// Falling with a jump to spare and nothing to land on
		want = !groundAhead(lvl, p, 0)
	}

	if want && !a.jumpHeld {
		frame.Set(core.ActionJump)
		a.jumpHeld = true
	} else {
		a.jumpHeld = false
	}
	return frame
}

// groundAhead reports whether a solid top lies below the point
// pilotLookahead units ahead of the player.
func groundAhead(lvl *world.Level, p *world.Player, dir float64) bool {
	x := p.Center().X + dir*pilotLookahead
	feet := p.Bottom()
	for _, pl := range lvl.Platforms {
		if !pl.Solid() {
			continue
		}
		if x < pl.X || x >= pl.Right() {
			continue
		}
		if pl.Y >= feet-10 && pl.Y <= feet+pilotDropLimit {
			return true
		}
	}
	return false
}

func threatAhead(lvl *world.Level, p *world.Player, dir float64) bool {
	c := p.Center()
	near := func(r core.Rect) bool {
		o := r.Center()
		dx := (o.X - c.X) * dir
		return dx > 0 && dx < pilotThreatX && math.Abs(o.Y-c.Y) < pilotThreatY
	}
	for _, e := range lvl.Enemies {
		if near(e.Rect) {
			return true
		}
	}
	for _, pr := range lvl.Projectiles {
		if near(pr.Rect) {
			return true
		}
	}
	return lvl.Boss != nil && lvl.Boss.Alive() && near(lvl.Boss.Rect)
}
