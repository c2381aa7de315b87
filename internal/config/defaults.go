package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/vovakirdan/flounder/internal/core"
)

// HealthCap is the most hearts a player can ever have.
const HealthCap = 5

//go:embed defaults/flounder.yaml
var defaultYAML []byte

// ErrInvalid is returned by Validate for out-of-range tunables.
var ErrInvalid = errors.New("config: invalid value")

// Default returns the hard-coded configuration, tuned for a 60 Hz tick.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:       0.6,
			Friction:      0.85,
			MoveAccel:     0.8,
			MaxSpeed:      6,
			JumpForce:     -14,
			MaxJumps:      2,
			FallDeathY:    2000,
			BroadPhaseX:   100,
			BroadPhaseY:   1000,
			MaxTickScale:  3,
			TickMillis:    16.67,
			EndRadius:     150,
			MaxHealth:     5,
			BobPhaseStep:  0.05,
			BobAmplitude:  0.3,
			ParticleLimit: 400,
		},
		Combat: Combat{
			InvincibleSeconds: 2.0,
			StompBounce:       -12,
			StompDepth:        0.8,
			KnockbackY:        -5,
			EnemyKnockback:    3,
			EnemyShake:        10,
			ProjectileShake:   8,
			BossKnockback:     5,
			BossShake:         15,
			StompShake:        3,
			FallShake:         20,
		},
		Enemies: Enemies{
			FlyerRadius:      600,
			FlyerAccel:       0.2,
			FlyerDamping:     0.95,
			TurretRange:      800,
			TurretCooldown:   150,
			ProjectileSpeed:  8,
			ProjectileSize:   15,
			ProjectileRange:  1500,
			PatrolSpeed:      2,
			PatrolTurnChance: 0.01,
			PatrolBroadPhase: 500,
			BossPursuit:      0.01,
		},
		Camera: Camera{
			ViewW:           1280,
			ViewH:           720,
			Lerp:            0.08,
			LookAheadX:      20,
			LookAheadY:      10,
			MinY:            -500,
			OvershootBottom: 200,
			ShakeDecay:      0.9,
			ShakeCutoff:     0.5,
		},
		Settings: Settings{
			Particles:   true,
			SFXVolume:   0.5,
			MusicVolume: 0.3,
		},
	}
}

// Validate rejects values the simulation cannot run with and clamps the
// volume settings into [0, 1].
func (c *Config) Validate() error {
	switch {
	case c.Camera.ViewW <= 0 || c.Camera.ViewH <= 0:
		return fmt.Errorf("%w: camera viewport %vx%v", ErrInvalid, c.Camera.ViewW, c.Camera.ViewH)
	case c.Physics.TickMillis <= 0:
		return fmt.Errorf("%w: tick_millis %v", ErrInvalid, c.Physics.TickMillis)
	case c.Physics.MaxTickScale <= 0:
		return fmt.Errorf("%w: max_tick_scale %v", ErrInvalid, c.Physics.MaxTickScale)
	case c.Physics.MaxHealth <= 0 || c.Physics.MaxHealth > HealthCap:
		return fmt.Errorf("%w: max_health %d", ErrInvalid, c.Physics.MaxHealth)
	case c.Physics.MaxJumps < 1:
		return fmt.Errorf("%w: max_jumps %d", ErrInvalid, c.Physics.MaxJumps)
	case c.Combat.EnemyKnockback >= c.Physics.MaxSpeed || c.Combat.BossKnockback >= c.Physics.MaxSpeed:
		return fmt.Errorf("%w: knockback must stay below max_speed %v", ErrInvalid, c.Physics.MaxSpeed)
	}
	c.Settings.SFXVolume = core.ClampF(c.Settings.SFXVolume, 0, 1)
	c.Settings.MusicVolume = core.ClampF(c.Settings.MusicVolume, 0, 1)
	return nil
}
