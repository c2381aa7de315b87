// Package physics implements AABB overlap tests and the platform collision
// resolver. It is the only place that sets Body.Grounded.
package physics

import (
	"math"

	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

// SeamThreshold is the vertical penetration under which a falling body is
// always resolved vertically, so it does not snag on joints between tiles.
const SeamThreshold = 20

// Contact describes which side of a platform a body was pushed out of.
type Contact int

const (
	ContactNone Contact = iota
	ContactTop
	ContactBottom
	ContactLeft
	ContactRight
)

func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	case ContactLeft:
		return "left"
	case ContactRight:
		return "right"
	default:
		return "none"
	}
}

// Horizontal reports whether the contact was against a side of the platform.
func (c Contact) Horizontal() bool {
	return c == ContactLeft || c == ContactRight
}

// Overlap is a strict AABB test; touching edges do not overlap.
func Overlap(a, b core.Rect) bool {
	return a.Intersects(b)
}

// Near is the broad phase: it reports whether p lies within r grown by
// (mx, my) on each side.
func Near(r core.Rect, p world.Platform, mx, my float64) bool {
	return r.Expand(mx, my).Intersects(p.Rect)
}

// Resolve pushes b out of p along the axis of least penetration and
// updates its velocity and ground flag. Non-solid platforms are ignored.
//
// ContactTop means b landed on top of p; ContactBottom means b hit the
// underside; ContactLeft and ContactRight name the side of p that was hit.
func Resolve(b *world.Body, p world.Platform) Contact {
	if !p.Solid() {
		return ContactNone
	}

	bc := b.Center()
	pc := p.Center()
	dx := bc.X - pc.X
	dy := bc.Y - pc.Y
	minX := b.W/2 + p.W/2
	minY := b.H/2 + p.H/2

	if math.Abs(dx) >= minX || math.Abs(dy) >= minY {
		return ContactNone
	}

	overlapX := minX - math.Abs(dx)
	overlapY := minY - math.Abs(dy)

	if overlapY < overlapX || (b.VY > 0 && overlapY < SeamThreshold) {
		b.VY = 0
		if dy > 0 {
			b.Y += overlapY
			return ContactBottom
		}
		b.Y -= overlapY
		b.Grounded = true
		return ContactTop
	}

	b.VX = 0
	if dx > 0 {
		b.X += overlapX
		return ContactRight
	}
	b.X -= overlapX
	return ContactLeft
}

// Step summarises one ResolveAll pass.
type Step struct {
	Grounded bool
	Wall     Contact // last horizontal contact, or ContactNone
}

// ResolveAll runs the broad phase and resolver against every platform in
// order. Grounded is cleared first so that the resolver alone decides it.
func ResolveAll(b *world.Body, platforms []world.Platform, mx, my float64) Step {
	b.Grounded = false
	var st Step
	for _, p := range platforms {
		if !Near(b.Rect, p, mx, my) {
			continue
		}
		if c := Resolve(b, p); c.Horizontal() {
			st.Wall = c
		}
	}
	st.Grounded = b.Grounded
	return st
}
