// Package config provides YAML-based tunables and player settings for the
// simulation, with embedded defaults and optional hot reload.
package config

// Config contains every tunable the simulation reads. Missing keys in a
// loaded file keep their default values.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Combat   Combat   `yaml:"combat"`
	Enemies  Enemies  `yaml:"enemies"`
	Camera   Camera   `yaml:"camera"`
	Settings Settings `yaml:"settings"`
}

// Physics defines player movement and world integration parameters.
// Velocities are in world units per 60 Hz tick.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`
	MoveAccel     float64 `yaml:"move_accel"`
	MaxSpeed      float64 `yaml:"max_speed"`
	JumpForce     float64 `yaml:"jump_force"`
	MaxJumps      int     `yaml:"max_jumps"`
	FallDeathY    float64 `yaml:"fall_death_y"`
	BroadPhaseX   float64 `yaml:"broad_phase_x"`
	BroadPhaseY   float64 `yaml:"broad_phase_y"`
	MaxTickScale  float64 `yaml:"max_tick_scale"`
	TickMillis    float64 `yaml:"tick_millis"`
	EndRadius     float64 `yaml:"end_radius"`
	MaxHealth     int     `yaml:"max_health"`
	BobPhaseStep  float64 `yaml:"bob_phase_step"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	ParticleLimit int     `yaml:"particle_limit"`
}

// Combat defines damage, knockback and feedback parameters.
type Combat struct {
	InvincibleSeconds float64 `yaml:"invincible_seconds"`
	StompBounce       float64 `yaml:"stomp_bounce"`
	StompDepth        float64 `yaml:"stomp_depth"`
	KnockbackY        float64 `yaml:"knockback_y"`
	EnemyKnockback    float64 `yaml:"enemy_knockback"`
	EnemyShake        float64 `yaml:"enemy_shake"`
	ProjectileShake   float64 `yaml:"projectile_shake"`
	BossKnockback     float64 `yaml:"boss_knockback"`
	BossShake         float64 `yaml:"boss_shake"`
	StompShake        float64 `yaml:"stomp_shake"`
	FallShake         float64 `yaml:"fall_shake"`
}

// Enemies defines per-archetype behaviour.
type Enemies struct {
	FlyerRadius      float64 `yaml:"flyer_radius"`
	FlyerAccel       float64 `yaml:"flyer_accel"`
	FlyerDamping     float64 `yaml:"flyer_damping"`
	TurretRange      float64 `yaml:"turret_range"`
	TurretCooldown   float64 `yaml:"turret_cooldown"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileSize   float64 `yaml:"projectile_size"`
	ProjectileRange  float64 `yaml:"projectile_range"`
	PatrolSpeed      float64 `yaml:"patrol_speed"`
	PatrolTurnChance float64 `yaml:"patrol_turn_chance"`
	PatrolBroadPhase float64 `yaml:"patrol_broad_phase"`
	BossPursuit      float64 `yaml:"boss_pursuit"`
}

// Camera defines the follow camera.
type Camera struct {
	ViewW           float64 `yaml:"view_w"`
	ViewH           float64 `yaml:"view_h"`
	Lerp            float64 `yaml:"lerp"`
	LookAheadX      float64 `yaml:"look_ahead_x"`
	LookAheadY      float64 `yaml:"look_ahead_y"`
	MinY            float64 `yaml:"min_y"`
	OvershootBottom float64 `yaml:"overshoot_bottom"`
	ShakeDecay      float64 `yaml:"shake_decay"`
	ShakeCutoff     float64 `yaml:"shake_cutoff"`
}

// Settings are player preferences. Volumes are forwarded to hosts and are
// not read by the simulation.
type Settings struct {
	Particles   bool    `yaml:"particles"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}
