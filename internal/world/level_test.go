package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flounder/internal/core"
)

func TestLevelValidate(t *testing.T) {
	lvl := &Level{
		Width:    1000,
		Height:   500,
		StartPos: core.Vec2{X: 10, Y: 10},
		EndPos:   core.Vec2{X: 990, Y: 400},
	}
	require.NoError(t, lvl.Validate())

	lvl.EndPos.X = 1200
	err := lvl.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLevel))

	lvl.EndPos.X = 900
	lvl.Width = 0
	assert.ErrorIs(t, lvl.Validate(), ErrInvalidLevel)
}

func TestLevelEntitiesSkipsDeadBoss(t *testing.T) {
	lvl := &Level{
		Enemies: []*Enemy{
			{ID: "a", Behavior: &Flyer{Radius: 600}},
			{ID: "b", Behavior: &Turret{Range: 800}},
			{ID: "c", Behavior: &Flyer{Radius: 600}},
		},
		Collectibles: []*Collectible{{ID: "h"}},
		Boss:         &Boss{ID: "boss", Body: Body{Health: 0}},
	}

	assert.Len(t, lvl.Entities(), 4)
	assert.False(t, lvl.BossAlive())

	lvl.Boss.Health = 3
	assert.Len(t, lvl.Entities(), 5)

	counts := lvl.CountEnemies()
	assert.Equal(t, 2, counts[SubtypeFlyer])
	assert.Equal(t, 1, counts[SubtypeTurret])
	assert.Zero(t, counts[SubtypePatroller])
}

func TestEnemySubtype(t *testing.T) {
	var e Enemy
	assert.Equal(t, Subtype(""), e.Subtype())

	e.Behavior = &Patroller{Speed: 2}
	assert.Equal(t, SubtypePatroller, e.Subtype())
	assert.Equal(t, KindEnemy, e.Kind())
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(5)
	assert.Equal(t, 5, p.Health)
	assert.Equal(t, 5, p.MaxHealth)
	assert.Equal(t, float64(PlayerSize), p.W)
	assert.True(t, p.FacingRight)
	assert.False(t, p.Invincible())
}
