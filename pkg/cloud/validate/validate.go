// Package validate provides post-hoc checks and timing for layout results.
//
// Validation is exhaustive and independent of the strategy that produced the
// placement; the hybrid driver uses it to judge a spiral attempt, and the
// pipeline uses it to surface residual overlaps the force strategy may leave
// behind.
package validate

import (
	"time"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/geometry"
)

// SoftBudget is the soft per-pass performance budget. Exceeding it is a
// warning surfaced to the caller, never a failure: the layout result is still
// returned and used.
const SoftBudget = 500 * time.Millisecond

// Report is the outcome of an overlap check.
type Report struct {
	HasOverlaps      bool        `json:"has_overlaps" bson:"has_overlaps"`
	OverlappingPairs [][2]string `json:"overlapping_pairs,omitempty" bson:"overlapping_pairs,omitempty"`
}

// NoOverlaps checks every pair of placed items against the minimum clearance.
// O(n²), which is fine at word-cloud scale. The check is idempotent: the same
// input always yields the same report, pairs listed in input order.
func NoOverlaps(placed []cloud.PlacedItem, minSpacing float64) Report {
	var r Report
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			if geometry.Overlaps(placed[i].Box(), placed[j].Box(), minSpacing) {
				r.HasOverlaps = true
				r.OverlappingPairs = append(r.OverlappingPairs, [2]string{placed[i].ID, placed[j].ID})
			}
		}
	}
	return r
}

// Measure runs fn and reports its wall-clock duration alongside the result.
func Measure[T any](fn func() T) (T, time.Duration) {
	start := time.Now()
	result := fn()
	return result, time.Since(start)
}

// OverBudget reports whether a measured duration exceeded the soft budget.
func OverBudget(d time.Duration) bool { return d > SoftBudget }
