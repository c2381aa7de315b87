package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flounder/internal/core"
)

// PlatformType is the physical behaviour of a platform.
// Only PlatformSolid is resolved by the collision step.
type PlatformType string

const (
	PlatformSolid  PlatformType = "solid"
	PlatformOneWay PlatformType = "oneway"
	PlatformHazard PlatformType = "hazard"
)

// RenderType is a presentation hint.
type RenderType string

const (
	RenderGround    RenderType = "ground"
	RenderPlatform  RenderType = "platform"
	RenderWall      RenderType = "wall"
	RenderInvisible RenderType = "invisible"
)

// Platform is static level geometry.
type Platform struct {
	core.Rect `yaml:",inline"`
	Type      PlatformType `yaml:"type"`
	Render    RenderType   `yaml:"render"`
}

// Solid reports whether the collision step resolves against this platform.
func (p Platform) Solid() bool {
	return p.Type == PlatformSolid
}

// Particle is a visual-only record; the core only decides when to spawn them.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color
	Decay   float64
}

// Theme is a palette; it has no effect on physics.
type Theme struct {
	Name             string     `yaml:"name"`
	BackgroundTop    core.Color `yaml:"background_top"`
	BackgroundBottom core.Color `yaml:"background_bottom"`
	PlatformColor    core.Color `yaml:"platform_color"`
	PlatformDetail   core.Color `yaml:"platform_detail"`
	AccentColor      core.Color `yaml:"accent_color"`
	HazardColor      core.Color `yaml:"hazard_color"`
}

// Level is the aggregate produced once per level by the generator.
type Level struct {
	ID           int            `yaml:"id"`
	Name         string         `yaml:"name"`
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height"`
	Theme        Theme          `yaml:"theme"`
	Platforms    []Platform     `yaml:"platforms"`
	Enemies      []*Enemy       `yaml:"enemies"`
	Collectibles []*Collectible `yaml:"collectibles"`
	Projectiles  []*Projectile  `yaml:"projectiles"`
	Boss         *Boss          `yaml:"boss,omitempty"`
	StartPos     core.Vec2      `yaml:"start_pos"`
	EndPos       core.Vec2      `yaml:"end_pos"`
}

// ErrInvalidLevel is returned by Validate.
var ErrInvalidLevel = errors.New("world: invalid level")

// Validate checks the structural invariants of a level.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidLevel, l.Width, l.Height)
	}
	bounds := core.NewRect(0, 0, l.Width, l.Height)
	for name, p := range map[string]core.Vec2{"start": l.StartPos, "end": l.EndPos} {
		if p.X < bounds.X || p.X > bounds.Right() || p.Y < bounds.Y || p.Y > bounds.Bottom() {
			return fmt.Errorf("%w: %s position (%v, %v) out of bounds", ErrInvalidLevel, name, p.X, p.Y)
		}
	}
	return nil
}

// BossAlive reports whether the level has a boss that still has health.
func (l *Level) BossAlive() bool {
	return l.Boss != nil && l.Boss.Alive()
}

// Entities returns every live non-player entity, for renderers.
func (l *Level) Entities() []Entity {
	out := make([]Entity, 0, len(l.Enemies)+len(l.Collectibles)+len(l.Projectiles)+1)
	for _, e := range l.Enemies {
		out = append(out, e)
	}
	for _, c := range l.Collectibles {
		out = append(out, c)
	}
	for _, p := range l.Projectiles {
		out = append(out, p)
	}
	if l.BossAlive() {
		out = append(out, l.Boss)
	}
	return out
}

// CountEnemies returns enemy counts per archetype.
func (l *Level) CountEnemies() map[Subtype]int {
	counts := make(map[Subtype]int, 3)
	for _, e := range l.Enemies {
		counts[e.Subtype()]++
	}
	return counts
}
