package world

import "github.com/vovakirdan/flounder/internal/core"

// Subtype names an enemy archetype.
type Subtype string

const (
	SubtypePatroller Subtype = "patroller"
	SubtypeFlyer     Subtype = "flyer"
	SubtypeTurret    Subtype = "turret"
)

// Behavior is the archetype-specific payload of an Enemy.
// It is implemented by *Patroller, *Flyer and *Turret only.
type Behavior interface {
	Subtype() Subtype
	behavior()
}

// Patroller walks along the ground and turns around at random.
type Patroller struct {
	Speed float64 `yaml:"speed"`
}

// Flyer steers toward the player once it is within Radius.
type Flyer struct {
	Radius float64 `yaml:"radius"`
}

// Turret stands still and fires at the player within Range.
type Turret struct {
	Range    float64 `yaml:"range"`
	Cooldown float64 `yaml:"cooldown"` // accumulated ticks since last shot
}

func (*Patroller) Subtype() Subtype { return SubtypePatroller }
func (*Flyer) Subtype() Subtype     { return SubtypeFlyer }
func (*Turret) Subtype() Subtype    { return SubtypeTurret }

func (*Patroller) behavior() {}
func (*Flyer) behavior()     {}
func (*Turret) behavior()    {}

// Enemy is a regular enemy of one of the three archetypes.
type Enemy struct {
	ID       string `yaml:"id"`
	Body     `yaml:",inline"`
	Color    core.Color `yaml:"color"`
	Behavior Behavior   `yaml:"-"`
}

func (e *Enemy) EntityID() string { return e.ID }
func (e *Enemy) Kind() Kind       { return KindEnemy }

// Subtype returns the archetype, or "" when no behaviour is attached.
func (e *Enemy) Subtype() Subtype {
	if e.Behavior == nil {
		return ""
	}
	return e.Behavior.Subtype()
}

// MarshalYAML flattens the behaviour into a subtype tag for dumps.
func (e *Enemy) MarshalYAML() (any, error) {
	return struct {
		ID       string     `yaml:"id"`
		Subtype  Subtype    `yaml:"subtype"`
		Body     Body       `yaml:",inline"`
		Color    core.Color `yaml:"color"`
		Behavior Behavior   `yaml:"behavior"`
	}{e.ID, e.Subtype(), e.Body, e.Color, e.Behavior}, nil
}
