package place

import (
	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
)

// Hybrid runs the spiral strategy optimistically and keeps its result only
// when it is perfect: every item placed and zero clearance violations.
// Otherwise the spiral attempt is discarded and the force strategy runs from
// scratch, whose result is returned unconditionally. Residual overlaps, if
// any, are for the validation step to report, not for another retry here.
//
// Because the fallback never drops items, Hybrid always returns exactly one
// placed item per input item. The returned Strategy names the attempt that
// actually produced the result.
func Hybrid(items []cloud.SizedItem, container cloud.Container, cfg cloud.Config) ([]cloud.PlacedItem, Strategy) {
	placed := Spiral(items, container, cfg)
	if len(placed) == len(items) && !validate.NoOverlaps(placed, cfg.MinSpacing).HasOverlaps {
		return placed, StrategySpiral
	}
	return Force(items, container, cfg), StrategyForce
}
