package flounder

import (
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

// enemyContact applies the stomp rule to an enemy overlapping the player
// and reports whether the enemy died.
func (s *Session) enemyContact(e *world.Enemy) bool {
	p := s.player
	c := s.cfg.Combat

	if p.VY > 0 && p.Bottom() < e.Y+e.H*c.StompDepth {
		ctr := e.Center()
		s.burst(ctr, e.Color, 8, 8, 12)
		p.VY = c.StompBounce
		p.JumpCount = 0
		s.cam.Impact(c.StompShake)
		s.stats.Kills++
		s.emit(Event{Kind: EventEnemyKilled, Pos: ctr, Color: e.Color, Detail: string(e.Subtype())})
		return true
	}

	if s.damage(e.Center().X, c.EnemyKnockback, c.EnemyShake, "enemy") {
		s.burst(p.Pos(), core.ColorWhite, 5, 2, 5)
	}
	return false
}

// damage applies one point of damage unless the player is invincible.
// The player is knocked away from sourceX. It reports whether damage was
// taken.
func (s *Session) damage(sourceX, knockback, shake float64, source string) bool {
	p := s.player
	if p.Invincible() || p.Health <= 0 {
		return false
	}

	p.Health--
	p.VX = knockback * core.Sign(p.Center().X-sourceX)
	p.VY = s.cfg.Combat.KnockbackY
	p.InvincibleTimer = s.cfg.Combat.InvincibleSeconds
	p.State = world.StateHit
	s.cam.Damage(shake)
	s.stats.Damage++
	s.emit(Event{Kind: EventDamaged, Pos: p.Pos(), Color: core.ColorDanger, Detail: source})
	s.logger.Debug("player damaged", "source", source, "health", p.Health)
	return true
}

// burst spawns count particles at at, unless particles are disabled.
func (s *Session) burst(at core.Vec2, color core.Color, speed, size float64, count int) {
	if !s.cfg.Settings.Particles {
		return
	}
	limit := s.cfg.Physics.ParticleLimit
	for i := 0; i < count; i++ {
		if limit > 0 && len(s.particles) >= limit {
			return
		}
		s.particles = append(s.particles, world.Particle{
			X:       at.X,
			Y:       at.Y,
			VX:      (s.rng.Float64() - 0.5) * speed,
			VY:      (s.rng.Float64() - 0.5) * speed,
			Life:    1,
			MaxLife: 1,
			Size:    s.rng.Float64()*size + 1,
			Color:   color,
			Decay:   0.02 + s.rng.Float64()*0.03,
		})
	}
}

func (s *Session) updateParticles(dt float64) {
	live := s.particles[:0]
	for _, pt := range s.particles {
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Life -= pt.Decay * dt
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	s.particles = live
}
