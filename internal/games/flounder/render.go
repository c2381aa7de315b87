package flounder

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

// Glyphs used by the terminal renderer.
const (
	GlyphGround     = '▓'
	GlyphPlatform   = '='
	GlyphWall       = '█'
	GlyphPlayer     = '@'
	GlyphPatroller  = '■'
	GlyphFlyer      = '◆'
	GlyphTurret     = '╦'
	GlyphBoss       = '█'
	GlyphProjectile = '•'
	GlyphHeart      = '♥'
	GlyphParticle   = '·'
	GlyphExit       = '⚑'
)

// Render draws the camera view and HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", minW, minH), core.ColorDanger)
		return
	}
	s := g.session
	v := viewport{origin: s.cam.View(), top: hudRows, rows: dst.Height() - hudRows, cols: dst.Width()}
	lvl := s.level

	for _, p := range lvl.Platforms {
		switch p.Render {
		case world.RenderInvisible:
			continue
		case world.RenderGround:
			v.fill(dst, p.Rect, GlyphGround, lvl.Theme.PlatformDetail)
		case world.RenderWall:
			v.fill(dst, p.Rect, GlyphWall, lvl.Theme.PlatformDetail)
		default:
			v.fill(dst, p.Rect, GlyphPlatform, lvl.Theme.AccentColor)
		}
	}

	if !lvl.BossAlive() {
		v.point(dst, lvl.EndPos, GlyphExit, core.ColorGold)
	}
	for _, c := range lvl.Collectibles {
		v.fill(dst, c.Rect, GlyphHeart, c.Color)
	}
	for _, e := range lvl.Enemies {
		v.fill(dst, e.Rect, enemyGlyph(e), e.Color)
	}
	if lvl.BossAlive() {
		v.fill(dst, lvl.Boss.Rect, GlyphBoss, core.ColorBoss)
	}
	for _, pr := range lvl.Projectiles {
		v.point(dst, pr.Center(), GlyphProjectile, pr.Color)
	}
	for _, pt := range s.particles {
		if pt.Life > 0.3 {
			v.point(dst, core.Vec2{X: pt.X, Y: pt.Y}, GlyphParticle, pt.Color)
		}
	}

	p := s.player
	// Blink while invincible.
	if !p.Invincible() || int(p.InvincibleTimer*10)%2 == 0 {
		v.fill(dst, p.Rect, GlyphPlayer, core.ColorPlayer)
	}

	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	p := s.player

	hearts := strings.Repeat("♥", p.Health) + strings.Repeat("♡", max(0, p.MaxHealth-p.Health))
	dst.DrawText(0, 0, fmt.Sprintf(" %d/%d %s", s.levelIndex, s.TotalLevels(), s.level.Name), core.ColorAccent)
	dst.DrawText(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorHeart)

	if b := s.level.Boss; b != nil && b.Alive() {
		bar := bossBar(b.Health, b.MaxHealth, 20)
		dst.DrawTextCentered(0, bar, core.ColorBoss)
	}

	mid := hudRows + (dst.Height()-hudRows)/2
	switch {
	case s.victory:
		banner(dst, mid, core.ColorGold, "VICTORY",
			fmt.Sprintf("%d enemies, %d hearts, %d deaths", s.stats.Kills, s.stats.Collected, s.stats.Deaths))
	case s.gameOver:
		banner(dst, mid, core.ColorDanger, "GAME OVER", "R to retry")
	case s.paused:
		banner(dst, mid, core.ColorWhite, "PAUSED")
	}
}

// banner draws a framed block of centred lines starting at row y. The first
// line takes the frame colour.
func banner(dst *core.Screen, y int, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	x := (dst.Width() - w) / 2
	dst.DrawBox(x, y-1, w, len(lines)+2, c)
	for i, l := range lines {
		lc := core.ColorWhite
		if i == 0 {
			lc = c
		}
		dst.DrawTextCentered(y+i, l, lc)
	}
}

func bossBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		return ""
	}
	filled := int(math.Ceil(float64(hp) / float64(maxHP) * float64(width)))
	filled = core.Clamp(filled, 0, width)
	return "BOSS [" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func enemyGlyph(e *world.Enemy) rune {
	switch e.Subtype() {
	case world.SubtypeFlyer:
		return GlyphFlyer
	case world.SubtypeTurret:
		return GlyphTurret
	default:
		return GlyphPatroller
	}
}

// viewport maps world coordinates to screen cells below the HUD.
type viewport struct {
	origin     core.Vec2
	top        int
	rows, cols int
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x - v.origin.X) / CellW)), int(math.Floor((y-v.origin.Y)/CellH)) + v.top
}

// fill paints every cell r touches, at least one.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right()-0.001, r.Bottom()-0.001)
	x0, x1 = max(x0, 0), min(x1, v.cols-1)
	y0, y1 = max(y0, v.top), min(y1, v.top+v.rows-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, glyph, c)
		}
	}
}

func (v viewport) point(dst *core.Screen, at core.Vec2, glyph rune, c core.Color) {
	x, y := v.cell(at.X, at.Y)
	if y < v.top || y >= v.top+v.rows {
		return
	}
	dst.SetCell(x, y, glyph, c)
}
