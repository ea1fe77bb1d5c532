package place

import (
	"math"
	"math/rand/v2"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/geometry"
)

// Force relaxation tuning. Values chosen for settling within the default
// 100-iteration budget on typical quiz-sized inputs.
const (
	forceTimeStep   = 1.0
	forceDamping    = 0.85
	forceRepulsion  = 0.35
	forceCentering  = 0.02
	forceBoundary   = 0.5
	forceJitter     = 10.0
	convergedSpeed  = 0.1
	minPairDistance = 0.01
)

type vec struct{ x, y float64 }

// Force places every item via damped force relaxation: items start jittered
// around the container center and are pushed apart pairwise while being
// pulled back toward the center and into bounds, integrating a damped
// velocity until the system settles or cfg.MaxIterations runs out.
//
// Unlike Spiral this never drops an item: the result always has exactly one
// entry per input. The trade-off is that convergence is probabilistic; when
// the budget is exhausted residual overlaps may remain, which the validation
// step reports rather than hides.
//
// The initial jitter comes from a PCG generator seeded with cfg.Seed, so runs
// with a pinned seed are reproducible.
func Force(items []cloud.SizedItem, container cloud.Container, cfg cloud.Config) []cloud.PlacedItem {
	if len(items) == 0 {
		return nil
	}

	center := container.Center()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))

	pos := make([]vec, len(items))
	vel := make([]vec, len(items))
	for i := range items {
		pos[i] = vec{
			x: center.X + (rng.Float64()*2-1)*forceJitter,
			y: center.Y + (rng.Float64()*2-1)*forceJitter,
		}
	}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		forces := make([]vec, len(items))

		applyRepulsion(items, pos, forces, cfg.MinSpacing)
		for i, it := range items {
			applyCentering(&forces[i], pos[i], center)
			applyBoundary(&forces[i], pos[i], it, container)
		}

		totalSpeed := 0.0
		for i := range items {
			vel[i].x = (vel[i].x + forces[i].x*forceTimeStep) * forceDamping
			vel[i].y = (vel[i].y + forces[i].y*forceTimeStep) * forceDamping
			pos[i].x += vel[i].x
			pos[i].y += vel[i].y
			totalSpeed += math.Hypot(vel[i].x, vel[i].y)
		}

		if totalSpeed/float64(len(items)) < convergedSpeed {
			break
		}
	}

	placed := make([]cloud.PlacedItem, len(items))
	for i, it := range items {
		x, y := clampToBounds(pos[i], it, container)
		placed[i] = cloud.PlacedItem{SizedItem: it, X: x, Y: y}
	}
	return placed
}

// applyRepulsion adds equal-and-opposite forces for every pair whose boxes
// come closer than the required clearance, pushing along the line between
// centers with magnitude proportional to the penetration depth.
func applyRepulsion(items []cloud.SizedItem, pos []vec, forces []vec, minSpacing float64) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a := geometry.Box{X: pos[i].x, Y: pos[i].y, W: items[i].Width, H: items[i].Height}
			b := geometry.Box{X: pos[j].x, Y: pos[j].y, W: items[j].Width, H: items[j].Height}
			if !geometry.Overlaps(a, b, minSpacing) {
				continue
			}

			depth := minSpacing - geometry.Gap(a, b)
			dx := pos[i].x - pos[j].x
			dy := pos[i].y - pos[j].y
			dist := math.Hypot(dx, dy)
			if dist < minPairDistance {
				// Coincident centers: separate along x deterministically.
				dx, dy, dist = 1, 0, 1
			}

			f := forceRepulsion * depth / dist
			forces[i].x += f * dx
			forces[i].y += f * dy
			forces[j].x -= f * dx
			forces[j].y -= f * dy
		}
	}
}

// applyCentering pulls an item toward the container center.
func applyCentering(f *vec, p vec, center geometry.Point) {
	f.x += (center.X - p.x) * forceCentering
	f.y += (center.Y - p.y) * forceCentering
}

// applyBoundary pushes an item back when its box extends past a container
// edge, proportionally to the penetration depth.
func applyBoundary(f *vec, p vec, it cloud.SizedItem, container cloud.Container) {
	if over := it.Width/2 - p.x; over > 0 {
		f.x += forceBoundary * over
	}
	if over := p.x + it.Width/2 - container.Width; over > 0 {
		f.x -= forceBoundary * over
	}
	if over := it.Height/2 - p.y; over > 0 {
		f.y += forceBoundary * over
	}
	if over := p.y + it.Height/2 - container.Height; over > 0 {
		f.y -= forceBoundary * over
	}
}

// clampToBounds snaps a final position so the item's box lies inside the
// container. When the box is larger than the container itself the item is
// centered on the overflowing axis; nothing can make it fit.
func clampToBounds(p vec, it cloud.SizedItem, container cloud.Container) (x, y float64) {
	x = clampAxis(p.x, it.Width, container.Width)
	y = clampAxis(p.y, it.Height, container.Height)
	return x, y
}

func clampAxis(pos, size, bound float64) float64 {
	if size >= bound {
		return bound / 2
	}
	return min(max(pos, size/2), bound-size/2)
}
