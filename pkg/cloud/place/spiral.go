package place

import (
	"math"
	"slices"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/geometry"
)

// Spiral places items one at a time, most important first, searching outward
// from the container center along a widening spiral for the first slot that
// is in bounds and clear of everything already placed.
//
// Items are sorted by descending value before placement: the most important
// word claims the center, and earlier items win the contested inner ring.
// Ties keep their input order, so the algorithm is fully deterministic.
//
// An item whose search exhausts cfg.MaxRadius is dropped, not placed; the
// result may therefore be shorter than the input. Callers detect degradation
// by comparing lengths.
func Spiral(items []cloud.SizedItem, container cloud.Container, cfg cloud.Config) []cloud.PlacedItem {
	if len(items) == 0 {
		return nil
	}

	ordered := make([]cloud.SizedItem, len(items))
	copy(ordered, items)
	slices.SortStableFunc(ordered, func(a, b cloud.SizedItem) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})

	center := container.Center()
	placed := make([]cloud.PlacedItem, 0, len(ordered))

	for _, it := range ordered {
		if pos, ok := searchSpiral(it, center, container, cfg, placed); ok {
			placed = append(placed, cloud.PlacedItem{SizedItem: it, X: pos.X, Y: pos.Y})
		}
	}
	return placed
}

// searchSpiral walks candidate points for one item: the exact center first,
// then an Archimedean-like spiral whose radius growth accelerates as the
// angle accumulates.
func searchSpiral(it cloud.SizedItem, center geometry.Point, container cloud.Container, cfg cloud.Config, placed []cloud.PlacedItem) (geometry.Point, bool) {
	if fits(it, center, container, cfg.MinSpacing, placed) {
		return center, true
	}

	angle, radius := 0.0, 0.0
	for {
		angle += cfg.AngleIncrement
		radius += cfg.RadiusIncrement * (angle / (2 * math.Pi))
		if radius > cfg.MaxRadius {
			return geometry.Point{}, false
		}

		p := geometry.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		if fits(it, p, container, cfg.MinSpacing, placed) {
			return p, true
		}
	}
}

// fits reports whether the item centered at p is fully inside the container
// and clear of all previously placed items.
func fits(it cloud.SizedItem, p geometry.Point, container cloud.Container, minSpacing float64, placed []cloud.PlacedItem) bool {
	box := geometry.Box{X: p.X, Y: p.Y, W: it.Width, H: it.Height}
	if !geometry.WithinBounds(box, container.Width, container.Height) {
		return false
	}
	for _, other := range placed {
		if geometry.Overlaps(box, other.Box(), minSpacing) {
			return false
		}
	}
	return true
}
