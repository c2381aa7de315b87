// Package levelgen builds levels from a level index. Generation is pure:
// the same index always produces the same layout.
package levelgen

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

const (
	// TotalLevels is the number of levels in a run.
	TotalLevels = 12

	levelHeight   = 1400
	groundOffset  = 150
	groundDepth   = 500
	zoneWidth     = 800
	seedMultiple  = 12345
	bossWidth     = 2000
	baseWidth     = 4000
	widthPerLevel = 600
)

// Behaviour parameters attached to generated enemies. Sessions may retune
// them from configuration after generation.
const (
	DefaultFlyerRadius = 600
	DefaultTurretRange = 800
	DefaultPatrolSpeed = 2
)

var bossLevels = map[int]bool{6: true, 12: true}

// IsBossLevel reports whether level n is a boss arena.
func IsBossLevel(n int) bool {
	return bossLevels[n]
}

// BossHealth returns the boss's starting health on level n.
func BossHealth(n int) int {
	return 40 + 10*n
}

// LevelName returns the display name of level n.
func LevelName(n int) string {
	name := ThemeFor(n).Name
	if IsBossLevel(n) {
		return "BOSS: " + name
	}
	return fmt.Sprintf("%s - Zone %d", name, n)
}

// Generate builds level n. It never fails for n >= 1; range checking is
// left to the caller.
func Generate(n int) *world.Level {
	boss := IsBossLevel(n)
	theme := ThemeFor(n)

	width := float64(baseWidth + n*widthPerLevel)
	if boss {
		width = bossWidth
	}
	height := float64(levelHeight)

	lvl := &world.Level{
		ID:           n,
		Name:         LevelName(n),
		Width:        width,
		Height:       height,
		Theme:        theme,
		Enemies:      []*world.Enemy{},
		Collectibles: []*world.Collectible{},
		Projectiles:  []*world.Projectile{},
		StartPos:     core.Vec2{X: 200, Y: height - 400},
		EndPos:       core.Vec2{X: width - 200, Y: height - 400},
	}

	lvl.Platforms = append(lvl.Platforms,
		platform(-200, -2000, 200, 4000, world.RenderInvisible),
		platform(width, -2000, 200, 4000, world.RenderWall),
	)

	groundY := height - groundOffset
	if boss {
		buildArena(lvl, n, groundY)
	} else {
		b := builder{lvl: lvl, rng: NewRandom(float64(n * seedMultiple)), groundY: groundY}
		b.build()
	}
	return lvl
}

func buildArena(lvl *world.Level, n int, groundY float64) {
	w, h := lvl.Width, lvl.Height
	lvl.Platforms = append(lvl.Platforms,
		platform(0, groundY, w, groundDepth, world.RenderGround),
		platform(200, h-400, 300, 30, world.RenderPlatform),
		platform(w-500, h-400, 300, 30, world.RenderPlatform),
		platform(w/2-150, h-600, 300, 30, world.RenderPlatform),
	)
	hp := BossHealth(n)
	lvl.Boss = &world.Boss{
		ID: fmt.Sprintf("boss-%d", n),
		Body: world.Body{
			Rect:      core.NewRect(w-400, h-300, 180, 180),
			Health:    hp,
			MaxHealth: hp,
			State:     world.StateIdle,
		},
		Color: lvl.Theme.HazardColor,
	}
}

type builder struct {
	lvl     *world.Level
	rng     *Random
	groundY float64
	cx      float64
}

func (b *builder) build() {
	b.ground(b.cx, zoneWidth)
	b.cx += zoneWidth

	for b.cx < b.lvl.Width-zoneWidth {
		section := b.rng.Range(0, 10)
		switch {
		case section < 3:
			b.pit()
		case section < 6:
			b.split()
		default:
			b.broken()
		}
		b.floating()
	}

	b.ground(b.cx, zoneWidth)
}

// pit is a gap with no ground, crossed on floating platforms.
func (b *builder) pit() {
	gap := b.rng.Range(600, 1200)
	count := int(gap / 300)
	for i := 0; i < count; i++ {
		x := b.cx + float64(i*250) + b.rng.Range(0, 50)
		y := b.groundY - b.rng.Range(100, 400)
		w := b.rng.Range(120, 200)
		b.lvl.Platforms = append(b.lvl.Platforms, platform(x, y, w, 30, world.RenderPlatform))

		if b.rng.Bool(0.4) {
			b.lvl.Enemies = append(b.lvl.Enemies, &world.Enemy{
				ID:       "flyer-" + formatCoord(x),
				Body:     enemyBody(x, y-200, 50, 40, 2, false),
				Color:    b.lvl.Theme.AccentColor,
				Behavior: &world.Flyer{Radius: DefaultFlyerRadius},
			})
		}
	}
	b.cx += gap
}

// split is low ground with a raised platform guarded by a turret.
func (b *builder) split() {
	length := b.rng.Range(500, 900)
	b.ground(b.cx, length)

	platY := b.groundY - 300
	b.lvl.Platforms = append(b.lvl.Platforms, platform(b.cx+100, platY, length-200, 40, world.RenderPlatform))

	body := enemyBody(b.cx+length/2, platY-50, 50, 50, 4, false)
	body.Grounded = true
	b.lvl.Enemies = append(b.lvl.Enemies, &world.Enemy{
		ID:       "turret-" + formatCoord(b.cx),
		Body:     body,
		Color:    b.lvl.Theme.HazardColor,
		Behavior: &world.Turret{Range: DefaultTurretRange},
	})
	b.cx += length
}

// broken is a ground strip followed by a short gap; long strips get a
// patroller.
func (b *builder) broken() {
	length := b.rng.Range(300, 700)
	b.ground(b.cx, length)

	if length > 400 {
		body := enemyBody(b.cx+200, b.groundY-60, 60, 60, 3, false)
		body.Grounded = true
		body.FacingRight = b.rng.Bool(0.5)
		b.lvl.Enemies = append(b.lvl.Enemies, &world.Enemy{
			ID:       "patrol-" + formatCoord(b.cx),
			Body:     body,
			Color:    core.ColorWhite,
			Behavior: &world.Patroller{Speed: DefaultPatrolSpeed},
		})
	}
	b.cx += length + b.rng.Range(50, 200)
}

// floating maybe adds a platform near the section end, sometimes with a
// heart on top.
func (b *builder) floating() {
	if !b.rng.Bool(0.3) {
		return
	}
	x := b.cx - 100
	y := b.groundY - b.rng.Range(200, 500)
	w := b.rng.Range(100, 150)
	b.lvl.Platforms = append(b.lvl.Platforms, platform(x, y, w, 20, world.RenderPlatform))

	if b.rng.Bool(0.5) {
		b.lvl.Collectibles = append(b.lvl.Collectibles, &world.Collectible{
			ID: "heart-" + formatCoord(x),
			Body: world.Body{
				Rect:        core.NewRect(x+20, y-50, 30, 30),
				Health:      1,
				MaxHealth:   1,
				FacingRight: true,
				State:       world.StateIdle,
			},
			Color: core.ColorHeart,
		})
	}
}

func (b *builder) ground(x, w float64) {
	b.lvl.Platforms = append(b.lvl.Platforms, platform(x, b.groundY, w, groundDepth, world.RenderGround))
}

func platform(x, y, w, h float64, r world.RenderType) world.Platform {
	return world.Platform{Rect: core.NewRect(x, y, w, h), Type: world.PlatformSolid, Render: r}
}

func enemyBody(x, y, w, h float64, hp int, facingRight bool) world.Body {
	return world.Body{
		Rect:        core.NewRect(x, y, w, h),
		Health:      hp,
		MaxHealth:   hp,
		FacingRight: facingRight,
		State:       world.StateIdle,
	}
}

// formatCoord renders a coordinate the shortest way that round-trips, which
// keeps entity IDs stable between runs.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
