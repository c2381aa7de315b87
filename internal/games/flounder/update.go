package flounder

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/levelgen"
	"github.com/vovakirdan/flounder/internal/physics"
	"github.com/vovakirdan/flounder/internal/world"
)

// Step advances the simulation by tick scale dt (1 = one 60 Hz tick).
// Pause and restart are handled even when the world is frozen.
func (s *Session) Step(dt float64, in core.InputFrame) core.StepResult {
	pause := in.Has(core.ActionPause)
	if pause && !s.prevPause && !s.consoleOpen {
		s.TogglePause()
	}
	s.prevPause = pause

	restart := in.Has(core.ActionRestart)
	if restart && !s.prevRestart && s.gameOver {
		s.Restart()
	}
	s.prevRestart = restart

	if s.paused || s.gameOver || s.victory || s.consoleOpen || s.level == nil {
		return core.StepResult{State: s.State()}
	}
	if dt <= 0 {
		return core.StepResult{State: s.State()}
	}

	s.stats.Ticks++
	s.updateInvincibility(dt)
	s.updatePlayer(dt, in)
	s.updateCollectibles(dt)
	s.updateEnemies(dt)
	s.updateProjectiles(dt)
	s.updateBoss(dt)
	s.updateParticles(dt)
	p := s.player
	s.cam.Follow(p.Rect, p.VX, p.VY, s.level.Width, s.level.Height, dt)
	s.checkTermination()

	return core.StepResult{State: s.State()}
}

func (s *Session) updateInvincibility(dt float64) {
	p := s.player
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer -= dt * s.cfg.Physics.TickMillis / 1000
		if p.InvincibleTimer < 0 {
			p.InvincibleTimer = 0
		}
	}
}

func (s *Session) updatePlayer(dt float64, in core.InputFrame) {
	p := s.player
	ph := s.cfg.Physics

	if in.Has(core.ActionRight) {
		p.VX += ph.MoveAccel * dt
		p.FacingRight = true
	}
	if in.Has(core.ActionLeft) {
		p.VX -= ph.MoveAccel * dt
		p.FacingRight = false
	}
	p.VX *= math.Pow(ph.Friction, dt)
	p.VY += ph.Gravity * dt
	p.VX = core.ClampF(p.VX, -ph.MaxSpeed, ph.MaxSpeed)

	jump := in.Has(core.ActionJump)
	if p.Grounded {
		p.JumpCount = 0
	}
	if jump && !s.prevJump && (p.Grounded || p.JumpCount < ph.MaxJumps) {
		s.jump()
	}
	s.prevJump = jump

	p.X += p.VX * dt
	p.Y += p.VY * dt

	wasGrounded := p.Grounded
	physics.ResolveAll(&p.Body, s.level.Platforms, ph.BroadPhaseX, ph.BroadPhaseY)
	if p.Grounded && !wasGrounded {
		s.emit(Event{Kind: EventLanded, Pos: bottomCentre(p.Rect)})
	}
	p.State = playerState(p)

	if p.Y > ph.FallDeathY && p.Health > 0 {
		p.Health = 0
		p.State = world.StateDead
		s.cam.Impact(s.cfg.Combat.FallShake)
		s.emit(Event{Kind: EventFellOut, Pos: p.Pos()})
	}
}

func (s *Session) jump() {
	p := s.player
	p.VY = s.cfg.Physics.JumpForce
	p.Grounded = false
	p.JumpCount++
	s.stats.Jumps++

	at := bottomCentre(p.Rect)
	if p.JumpCount >= 2 {
		s.burst(at, s.level.Theme.AccentColor, 8, 4, 10)
		s.emit(Event{Kind: EventDoubleJump, Pos: at, Color: s.level.Theme.AccentColor})
		return
	}
	s.burst(at, core.ColorWhite, 5, 5, 5)
	s.emit(Event{Kind: EventJump, Pos: at, Color: core.ColorWhite})
}

func playerState(p *world.Player) world.State {
	switch {
	case p.Health <= 0:
		return world.StateDead
	case p.Invincible():
		return world.StateHit
	case !p.Grounded:
		return world.StateJump
	case math.Abs(p.VX) > 0.5:
		return world.StateRun
	default:
		return world.StateIdle
	}
}

func (s *Session) updateCollectibles(dt float64) {
	ph := s.cfg.Physics
	live := s.level.Collectibles[:0]
	for _, c := range s.level.Collectibles {
		c.Phase += ph.BobPhaseStep * dt
		c.Y += math.Sin(c.Phase) * ph.BobAmplitude * dt

		if physics.Overlap(s.player.Rect, c.Rect) {
			ctr := c.Center()
			s.burst(ctr, s.level.Theme.AccentColor, 6, 4, 12)
			if s.player.Health < s.player.MaxHealth {
				s.player.Health++
			}
			s.stats.Collected++
			s.emit(Event{Kind: EventCollectiblePicked, Pos: ctr, Color: c.Color, Detail: c.ID})
			continue
		}
		live = append(live, c)
	}
	clearTail(s.level.Collectibles, len(live))
	s.level.Collectibles = live
}

func (s *Session) updateEnemies(dt float64) {
	live := s.level.Enemies[:0]
	for _, e := range s.level.Enemies {
		switch b := e.Behavior.(type) {
		case *world.Flyer:
			s.updateFlyer(e, b, dt)
		case *world.Turret:
			s.updateTurret(e, b, dt)
		case *world.Patroller:
			s.updatePatroller(e, b, dt)
		}
		e.FacingRight = e.VX > 0

		if e.Y > s.cfg.Physics.FallDeathY {
			s.logger.Debug("enemy fell out", "id", e.ID)
			continue
		}
		if physics.Overlap(s.player.Rect, e.Rect) && s.enemyContact(e) {
			continue
		}
		live = append(live, e)
	}
	clearTail(s.level.Enemies, len(live))
	s.level.Enemies = live
}

func (s *Session) updateFlyer(e *world.Enemy, b *world.Flyer, dt float64) {
	en := s.cfg.Enemies
	d := s.player.Pos().Sub(e.Pos())
	if dist := d.Len(); dist < b.Radius && dist > 0 {
		e.VX += d.X / dist * en.FlyerAccel * dt
		e.VY += d.Y / dist * en.FlyerAccel * dt
		damp := math.Pow(en.FlyerDamping, dt)
		e.VX *= damp
		e.VY *= damp
	}
	e.X += e.VX * dt
	e.Y += e.VY * dt
	e.State = world.StateRun
}

func (s *Session) updateTurret(e *world.Enemy, b *world.Turret, dt float64) {
	en := s.cfg.Enemies
	b.Cooldown += dt
	if b.Cooldown <= en.TurretCooldown {
		e.State = world.StateIdle
		return
	}
	b.Cooldown = 0

	d := s.player.Pos().Sub(e.Pos())
	dist := d.Len()
	if dist >= b.Range || dist == 0 {
		return
	}
	e.State = world.StateAttack
	s.fire(e.Center(), d.X/dist*en.ProjectileSpeed, d.Y/dist*en.ProjectileSpeed)
}

func (s *Session) fire(from core.Vec2, vx, vy float64) {
	size := s.cfg.Enemies.ProjectileSize
	s.projectileSeq++
	proj := &world.Projectile{
		ID: fmt.Sprintf("proj-%d-%d", s.levelIndex, s.projectileSeq),
		Body: world.Body{
			Rect:        core.NewRect(from.X, from.Y, size, size),
			VX:          vx,
			VY:          vy,
			Health:      1,
			MaxHealth:   1,
			FacingRight: vx > 0,
			State:       world.StateIdle,
		},
		Color: core.ColorAmber,
	}
	s.level.Projectiles = append(s.level.Projectiles, proj)
	s.emit(Event{Kind: EventProjectileFired, Pos: from, Color: proj.Color, Detail: proj.ID})
}

func (s *Session) updatePatroller(e *world.Enemy, b *world.Patroller, dt float64) {
	en := s.cfg.Enemies
	if e.VX == 0 {
		if e.FacingRight {
			e.VX = b.Speed
		} else {
			e.VX = -b.Speed
		}
	}
	e.X += e.VX * dt
	if s.rng.Float64() < 1-math.Pow(1-en.PatrolTurnChance, dt) {
		e.VX = -e.VX
	}
	e.VY += s.cfg.Physics.Gravity * dt
	e.Y += e.VY * dt

	// Resolve zeroes VX on a wall hit; walk back the way we came.
	switch physics.ResolveAll(&e.Body, s.level.Platforms, en.PatrolBroadPhase, en.PatrolBroadPhase).Wall {
	case physics.ContactLeft:
		e.VX = -b.Speed
	case physics.ContactRight:
		e.VX = b.Speed
	}
	e.State = world.StateRun
}

func (s *Session) updateProjectiles(dt float64) {
	live := s.level.Projectiles[:0]
	for _, pr := range s.level.Projectiles {
		pr.X += pr.VX * dt
		pr.Y += pr.VY * dt

		if math.Abs(pr.X-s.player.X) > s.cfg.Enemies.ProjectileRange {
			continue
		}
		if physics.Overlap(pr.Rect, s.player.Rect) {
			c := s.cfg.Combat
			if s.damage(pr.Center().X, c.EnemyKnockback, c.ProjectileShake, "projectile") {
				s.burst(s.player.Pos(), s.level.Theme.HazardColor, 5, 3, 8)
			}
			continue
		}
		if s.hitsPlatform(pr.Rect) {
			s.burst(pr.Pos(), pr.Color, 3, 2, 4)
			s.emit(Event{Kind: EventProjectileBlocked, Pos: pr.Pos(), Color: pr.Color, Detail: pr.ID})
			continue
		}
		live = append(live, pr)
	}
	clearTail(s.level.Projectiles, len(live))
	s.level.Projectiles = live
}

func (s *Session) hitsPlatform(r core.Rect) bool {
	for _, p := range s.level.Platforms {
		if p.Solid() && physics.Overlap(r, p.Rect) {
			return true
		}
	}
	return false
}

func (s *Session) updateBoss(dt float64) {
	b := s.level.Boss
	if b == nil || !b.Alive() {
		return
	}
	d := s.player.Pos().Sub(b.Pos())
	k := s.cfg.Enemies.BossPursuit * dt
	b.X += d.X * k
	b.Y += d.Y * k
	b.FacingRight = d.X > 0

	if !physics.Overlap(s.player.Rect, b.Rect) {
		b.State = world.StateIdle
		return
	}
	p := s.player
	if p.VY > 0 && p.Y < b.Y {
		b.Health--
		b.State = world.StateHit
		p.VY = s.cfg.Combat.StompBounce
		s.stats.BossHits++
		s.cam.Impact(s.cfg.Combat.StompShake)
		s.emit(Event{Kind: EventBossHit, Pos: b.Center(), Color: b.Color, Detail: fmt.Sprint(b.Health)})
		if !b.Alive() {
			b.State = world.StateDead
			s.burst(b.Center(), b.Color, 10, 10, 30)
			s.emit(Event{Kind: EventBossDefeated, Pos: b.Center(), Color: b.Color, Detail: b.ID})
			s.logger.Info("boss defeated", "level", s.levelIndex, "id", b.ID)
		}
		return
	}
	b.State = world.StateAttack
	c := s.cfg.Combat
	s.damage(b.Center().X, c.BossKnockback, c.BossShake, "boss")
}

func (s *Session) checkTermination() {
	p := s.player
	if p.Health <= 0 {
		p.Health = 0
		s.gameOver = true
		s.emit(Event{Kind: EventGameOver, Pos: p.Pos()})
		s.logger.Info("game over", "level", s.levelIndex, "ticks", s.stats.Ticks)
		return
	}

	if core.Dist(p.Pos(), s.level.EndPos) >= s.cfg.Physics.EndRadius || s.level.BossAlive() {
		return
	}
	if s.levelIndex >= levelgen.TotalLevels {
		s.victory = true
		s.emit(Event{Kind: EventVictory, Pos: p.Pos()})
		s.logger.Info("victory", "ticks", s.stats.Ticks, "kills", s.stats.Kills)
		return
	}
	next := s.levelIndex + 1
	s.logger.Debug("level complete", "level", s.levelIndex, "next", next)
	s.emit(Event{Kind: EventLevelAdvanced, Pos: p.Pos(), Detail: fmt.Sprint(next)})
	s.StartLevel(next)
}

func bottomCentre(r core.Rect) core.Vec2 {
	return core.Vec2{X: r.X + r.W/2, Y: r.Bottom()}
}

// clearTail nils out the slots past n so filtered-out entities can be
// collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
