package game

import (
	"math"

	"github.com/vovikan/tui-platformer/internal/core"
)

// pushEpsilon keeps a resolved body just clear of the tile boundary so
// floating-point rounding cannot re-collide it on the next tick.
const pushEpsilon = 1e-3

// circleHitsSolid reports whether a circle at (cx, cy) overlaps any solid
// tile. It enumerates the cells under the circle's bounding box and tests
// exact circle-vs-AABB distance (closest point on the unit square to the
// center), avoiding false positives at tile corners.
func circleHitsSolid(l *Level, cx, cy, r float64) bool {
	minX := int(math.Floor(cx - r))
	maxX := int(math.Floor(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Floor(cy + r))

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if l.TileAt(tx, ty) != TileSolid {
				continue
			}
			nx := core.ClampF(cx, float64(tx), float64(tx+1))
			ny := core.ClampF(cy, float64(ty), float64(ty+1))
			dx := cx - nx
			dy := cy - ny
			if dx*dx+dy*dy <= r*r {
				return true
			}
		}
	}
	return false
}

// resolveMove applies the body's velocity one axis at a time, snapping out of
// solids and adjusting velocity on impact. Walls and ceilings reflect a
// fraction of the incoming speed; floors stop vertical motion and set ground
// contact. Separating the axes prevents tunneling and diagonal-corner
// ambiguity for sub-tile per-tick motion.
func (p *Player) resolveMove(l *Level, dt float64, tn Tuning) {
	r := tn.Radius

	newX := p.Pos.X + p.Vel.X*dt
	if circleHitsSolid(l, newX, p.Pos.Y, r) {
		switch {
		case p.Vel.X > 0:
			newX = math.Floor(p.Pos.X+r) + (1 - r) - pushEpsilon
		case p.Vel.X < 0:
			newX = math.Floor(p.Pos.X-r) + r + pushEpsilon
		}
		p.Vel.X = -p.Vel.X * tn.Bounce
	}
	p.Pos.X = newX

	newY := p.Pos.Y + p.Vel.Y*dt
	if circleHitsSolid(l, p.Pos.X, newY, r) {
		switch {
		case p.Vel.Y > 0:
			// Landing: full vertical stop, grounded.
			newY = math.Floor(p.Pos.Y+r) + (1 - r) - pushEpsilon
			p.Vel.Y = 0
			p.OnGround = true
		case p.Vel.Y < 0:
			// Ceiling: partial reflection, like walls.
			newY = math.Floor(p.Pos.Y-r) + r + pushEpsilon
			p.Vel.Y = -p.Vel.Y * tn.Bounce
		}
	} else {
		p.OnGround = false
	}
	p.Pos.Y = newY
}
