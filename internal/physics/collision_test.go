package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

func solid(x, y, w, h float64) world.Platform {
	return world.Platform{Rect: core.NewRect(x, y, w, h), Type: world.PlatformSolid, Render: world.RenderGround}
}

func body(x, y, w, h, vx, vy float64) *world.Body {
	return &world.Body{Rect: core.NewRect(x, y, w, h), VX: vx, VY: vy}
}

func TestOverlapTouchingEdges(t *testing.T) {
	a := core.NewRect(0, 0, 10, 10)
	assert.False(t, Overlap(a, core.NewRect(10, 0, 10, 10)))
	assert.False(t, Overlap(a, core.NewRect(0, 10, 10, 10)))
	assert.True(t, Overlap(a, core.NewRect(9.9, 9.9, 10, 10)))
}

func TestResolveLanding(t *testing.T) {
	floor := solid(0, 100, 400, 50)
	b := body(50, 65, 40, 40, 0, 5)

	c := Resolve(b, floor)

	assert.Equal(t, ContactTop, c)
	assert.Equal(t, 60.0, b.Y)
	assert.Zero(t, b.VY)
	assert.True(t, b.Grounded)
	assert.False(t, Overlap(b.Rect, floor.Rect))
}

func TestResolveUnderside(t *testing.T) {
	ceiling := solid(0, 0, 400, 30)
	b := body(50, 25, 40, 40, 0, -8)

	c := Resolve(b, ceiling)

	assert.Equal(t, ContactBottom, c)
	assert.Equal(t, 30.0, b.Y)
	assert.Zero(t, b.VY)
	assert.False(t, b.Grounded)
}

func TestResolveHorizontal(t *testing.T) {
	wall := solid(100, 0, 50, 400)

	left := body(65, 100, 40, 40, 4, 0)
	assert.Equal(t, ContactLeft, Resolve(left, wall))
	assert.Equal(t, 60.0, left.X)
	assert.Zero(t, left.VX)

	right := body(145, 100, 40, 40, -4, 0)
	assert.Equal(t, ContactRight, Resolve(right, wall))
	assert.Equal(t, 150.0, right.X)
	assert.Zero(t, right.VX)
}

func TestResolveSeamPrefersVertical(t *testing.T) {
	// Falling body clipping the corner of a tile: horizontal penetration is
	// smaller, but the vertical one is under the seam threshold.
	tile := solid(100, 100, 200, 50)
	b := body(65, 70, 40, 40, 3, 6)

	c := Resolve(b, tile)

	require.Equal(t, ContactTop, c)
	assert.Equal(t, 60.0, b.Y)
	assert.Equal(t, 3.0, b.VX)
	assert.True(t, b.Grounded)

	// Moving upward with the same geometry resolves horizontally.
	up := body(65, 70, 40, 40, 3, -6)
	assert.Equal(t, ContactLeft, Resolve(up, tile))
}

func TestResolveIgnoresNonSolid(t *testing.T) {
	p := solid(0, 0, 100, 100)
	p.Type = world.PlatformOneWay
	b := body(10, 10, 40, 40, 0, 3)

	assert.Equal(t, ContactNone, Resolve(b, p))
	assert.Equal(t, 10.0, b.Y)
	assert.Equal(t, 3.0, b.VY)
}

func TestResolveNoOverlap(t *testing.T) {
	b := body(0, 0, 40, 40, 1, 1)
	assert.Equal(t, ContactNone, Resolve(b, solid(40, 0, 10, 10)))
	assert.Equal(t, 1.0, b.VX)
}

// After a single resolve the body no longer overlaps the platform on the
// resolved axis.
func TestResolveSeparates(t *testing.T) {
	p := solid(200, 200, 120, 60)
	for x := 150.0; x <= 310; x += 7 {
		for y := 150.0; y <= 250; y += 5 {
			for _, vy := range []float64{-4, 0, 4} {
				b := body(x, y, 40, 40, 0, vy)
				before := b.Rect
				c := Resolve(b, p)
				if !Overlap(before, p.Rect) {
					assert.Equal(t, ContactNone, c)
					continue
				}
				assert.NotEqual(t, ContactNone, c)
				assert.False(t, Overlap(b.Rect, p.Rect), "x=%v y=%v vy=%v contact=%v", x, y, vy, c)
			}
		}
	}
}

func TestNear(t *testing.T) {
	r := core.NewRect(0, 0, 40, 40)
	assert.True(t, Near(r, solid(120, 0, 10, 10), 100, 0))
	assert.False(t, Near(r, solid(141, 0, 10, 10), 100, 0))
	assert.True(t, Near(r, solid(0, 900, 10, 10), 0, 1000))
}

func TestResolveAll(t *testing.T) {
	platforms := []world.Platform{
		solid(0, 100, 200, 50),
		solid(200, 100, 200, 50),
		solid(300, 0, 50, 100),
		solid(5000, 100, 200, 50),
	}

	b := body(180, 65, 40, 40, 0, 5)
	b.Grounded = true
	st := ResolveAll(b, platforms, 100, 1000)
	assert.True(t, st.Grounded)
	assert.Equal(t, ContactNone, st.Wall)
	assert.Equal(t, 60.0, b.Y)

	w := body(265, 40, 40, 40, 2, 0)
	st = ResolveAll(w, platforms, 100, 1000)
	assert.Equal(t, ContactLeft, st.Wall)
	assert.False(t, st.Grounded)
	assert.Equal(t, 260.0, w.X)
}
