// Package geometry provides the axis-aligned collision kernel used by the
// word-cloud placement strategies.
//
// All functions are pure and allocation-free. Boxes are stored center-based
// because every placement strategy reasons about item centers; edge accessors
// derive the corners on demand.
package geometry

// Point is a position in container-local coordinates.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Box is an axis-aligned bounding box identified by its center point.
type Box struct {
	X, Y float64 // center
	W, H float64
}

// Left returns the minimum x coordinate of the box.
func (b Box) Left() float64 { return b.X - b.W/2 }

// Right returns the maximum x coordinate of the box.
func (b Box) Right() float64 { return b.X + b.W/2 }

// Top returns the minimum y coordinate of the box.
func (b Box) Top() float64 { return b.Y - b.H/2 }

// Bottom returns the maximum y coordinate of the box.
func (b Box) Bottom() float64 { return b.Y + b.H/2 }

// Center returns the center point of the box.
func (b Box) Center() Point { return Point{X: b.X, Y: b.Y} }

// Overlaps reports whether a and b come closer than minSpacing to each other.
//
// The clearance requirement is symmetric: both boxes are grown by
// minSpacing/2 on every side before the intersection test, so
// Overlaps(a, b, s) == Overlaps(b, a, s) holds by construction. Touching
// exactly at the required gap does not count as an overlap.
func Overlaps(a, b Box, minSpacing float64) bool {
	half := minSpacing / 2
	return a.Left()-half < b.Right()+half &&
		a.Right()+half > b.Left()-half &&
		a.Top()-half < b.Bottom()+half &&
		a.Bottom()+half > b.Top()-half
}

// WithinBounds reports whether the box lies fully inside
// [0, width] x [0, height].
func WithinBounds(b Box, width, height float64) bool {
	return b.Left() >= 0 && b.Right() <= width &&
		b.Top() >= 0 && b.Bottom() <= height
}

// Gap returns the separating distance between a and b under the same per-axis
// convention Overlaps uses: the larger of the two axis gaps. It is negative
// when the boxes intersect, and Overlaps(a, b, s) == (Gap(a, b) < s).
func Gap(a, b Box) float64 {
	dx := axisGap(a.Left(), a.Right(), b.Left(), b.Right())
	dy := axisGap(a.Top(), a.Bottom(), b.Top(), b.Bottom())
	return max(dx, dy)
}

func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	// Intervals intersect; negative depth.
	return -min(aMax-bMin, bMax-aMin)
}
