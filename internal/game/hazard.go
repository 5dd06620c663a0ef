package game

import (
	"math"

	"github.com/vovikan/tui-platformer/internal/core"
)

// exitRadius is the pickup radius of an exit, centered in its cell.
const exitRadius = 0.6

// hazardEpsilon widens the spike tests so exact tangency (a body resting
// one radius off the apex) is not lost to float rounding.
const hazardEpsilon = 1e-9

// intersectsHazard reports whether the player circle touches a spike.
// A spike occupies the lower portion of its cell, rising to an apex at the
// top-center with its base spanning the full cell width.
//
// The hit test is approximate and errs toward detection near the base: the
// local coordinate must fall under the spike's slanted edges (expanded by the
// body radius), and then either the body reaches the apex point or its center
// sits within a near-base band scaled by the radius. The second branch
// catches shallow grazes along the base that the apex distance misses.
func intersectsHazard(l *Level, pos core.Vec2, r float64) bool {
	minX := int(math.Floor(pos.X - r))
	maxX := int(math.Floor(pos.X + r))
	minY := int(math.Floor(pos.Y - r))
	maxY := int(math.Floor(pos.Y + r))

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if l.TileAt(tx, ty) != TileSpike {
				continue
			}

			lx := pos.X - float64(tx)
			ly := pos.Y - float64(ty)

			// Under the hypotenuse, expanded by the body radius so a
			// circle resting on the slope still counts.
			under := ly >= 1.0-2.0*math.Min(lx, 1.0-lx)-r-hazardEpsilon
			if !under {
				continue
			}

			// Branch (a): body reaches the apex at the cell's top-center.
			adx := lx - 0.5
			if adx*adx+ly*ly <= r*r+hazardEpsilon {
				return true
			}
			// Branch (b): center within the near-base band.
			if ly >= 1.0-1.5*r {
				return true
			}
		}
	}
	return false
}

// intersectsExit reports whether the player circle touches a level exit,
// treated as a circle of radius exitRadius centered in its cell.
func intersectsExit(l *Level, pos core.Vec2, r float64) bool {
	reach := r + exitRadius
	minX := int(math.Floor(pos.X - reach))
	maxX := int(math.Floor(pos.X + reach))
	minY := int(math.Floor(pos.Y - reach))
	maxY := int(math.Floor(pos.Y + reach))

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if l.TileAt(tx, ty) != TileExit {
				continue
			}
			center := core.V(float64(tx)+0.5, float64(ty)+0.5)
			if pos.DistSq(center) <= reach*reach {
				return true
			}
		}
	}
	return false
}
