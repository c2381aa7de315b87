package flounder

import "math"

// Snapshot is a flat copy of the session state used by determinism tests
// and the headless simulator. Entities are reduced to counts and the
// player to its kinematic state.
type Snapshot struct {
	Tick       uint64
	Level      int
	Health     int
	PlayerX    float64
	PlayerY    float64
	PlayerVX   float64
	PlayerVY   float64
	JumpCount  int
	Grounded   bool
	Invincible float64

	Enemies      int
	Collectibles int
	Projectiles  int
	BossHealth   int // -1 when the level has no boss
	Particles    int

	CameraX float64
	CameraY float64

	Paused   bool
	GameOver bool
	Victory  bool

	Stats Stats
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	view := s.cam.View()
	snap := Snapshot{
		Tick:       s.stats.Ticks,
		Level:      s.levelIndex,
		Health:     p.Health,
		PlayerX:    p.X,
		PlayerY:    p.Y,
		PlayerVX:   p.VX,
		PlayerVY:   p.VY,
		JumpCount:  p.JumpCount,
		Grounded:   p.Grounded,
		Invincible: p.InvincibleTimer,

		Enemies:      len(s.level.Enemies),
		Collectibles: len(s.level.Collectibles),
		Projectiles:  len(s.level.Projectiles),
		BossHealth:   -1,
		Particles:    len(s.particles),

		CameraX: view.X,
		CameraY: view.Y,

		Paused:   s.paused,
		GameOver: s.gameOver,
		Victory:  s.victory,
		Stats:    s.stats,
	}
	if s.level.Boss != nil {
		snap.BossHealth = s.level.Boss.Health
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + uint64(snap.JumpCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Invincible)
	h = h*31 + uint64(snap.Enemies)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collectibles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CameraX)
	h = h*31 + math.Float64bits(snap.CameraY)
	for _, b := range []bool{snap.Grounded, snap.Paused, snap.GameOver, snap.Victory} {
		h *= 31
		if b {
			h++
		}
	}
	h = h*31 + uint64(snap.Stats.Kills) //#nosec G115 -- hash computation
	return h
}
