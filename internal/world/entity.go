// Package world holds the entity and level data model shared by the
// generator, the physics step and the hosts that render it.
package world

import "github.com/vovakirdan/flounder/internal/core"

// Kind discriminates the entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindProjectile
	KindCollectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindProjectile:
		return "projectile"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// State is a behavioural tag used mostly by renderers.
type State string

const (
	StateIdle   State = "idle"
	StateRun    State = "run"
	StateJump   State = "jump"
	StateAttack State = "attack"
	StateHit    State = "hit"
	StateDead   State = "dead"
)

// Entity is implemented by every variant so hosts can iterate them uniformly.
type Entity interface {
	EntityID() string
	Kind() Kind
	Bounds() core.Rect
}

// Body is the rectangle + velocity base shared by all variants.
type Body struct {
	core.Rect   `yaml:",inline"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
	Health      int     `yaml:"health"`
	MaxHealth   int     `yaml:"max_health"`
	Grounded    bool    `yaml:"grounded"`
	FacingRight bool    `yaml:"facing_right"`
	State       State   `yaml:"state"`
}

// Bounds returns the collision rectangle.
func (b *Body) Bounds() core.Rect {
	return b.Rect
}

// Alive reports whether health is above zero.
func (b *Body) Alive() bool {
	return b.Health > 0
}

// Player is the controlled entity. It is owned by the session, not the level.
type Player struct {
	ID              string `yaml:"id"`
	Body            `yaml:",inline"`
	JumpCount       int     `yaml:"jump_count"`       // 0..2, reset on landing
	InvincibleTimer float64 `yaml:"invincible_timer"` // seconds of damage immunity left
}

// NewPlayer creates the player with full health.
func NewPlayer(maxHealth int) *Player {
	return &Player{
		ID: "player",
		Body: Body{
			Rect:        core.NewRect(0, 0, PlayerSize, PlayerSize),
			Health:      maxHealth,
			MaxHealth:   maxHealth,
			FacingRight: true,
			State:       StateIdle,
		},
	}
}

// PlayerSize is the player's width and height in world units.
const PlayerSize = 40

func (p *Player) EntityID() string { return p.ID }
func (p *Player) Kind() Kind       { return KindPlayer }

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool {
	return p.InvincibleTimer > 0
}

// Boss is the single large enemy of a boss level.
type Boss struct {
	ID    string `yaml:"id"`
	Body  `yaml:",inline"`
	Color core.Color `yaml:"color"`
}

func (b *Boss) EntityID() string { return b.ID }
func (b *Boss) Kind() Kind       { return KindBoss }

// Projectile is a straight-line shot fired by turrets.
type Projectile struct {
	ID    string `yaml:"id"`
	Body  `yaml:",inline"`
	Color core.Color `yaml:"color"`
}

func (p *Projectile) EntityID() string { return p.ID }
func (p *Projectile) Kind() Kind       { return KindProjectile }

// Collectible is a heart that heals the player on pickup.
type Collectible struct {
	ID    string `yaml:"id"`
	Body  `yaml:",inline"`
	Color core.Color `yaml:"color"`
	Phase float64    `yaml:"phase"` // bob animation phase
}

func (c *Collectible) EntityID() string { return c.ID }
func (c *Collectible) Kind() Kind       { return KindCollectible }
