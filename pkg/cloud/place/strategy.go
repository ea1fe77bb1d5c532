// Package place implements the word-cloud placement strategies and the policy
// that selects between them.
//
// # Strategies
//
// Three strategies share one contract (sized items in, placed items out):
//
//   - Spiral: greedy center-out search. Guarantees zero overlaps but may drop
//     items that find no slot within the radius budget.
//   - Force: damped physics relaxation. Never drops items but may finish with
//     residual overlaps when the iteration budget runs out.
//   - Hybrid: optimistic spiral with a force fallback, trading the two
//     failure modes off against each other.
//
// Strategies are plain data (a string constant) selected by Select and
// dispatched by Run; there is no interface hierarchy. This keeps each
// algorithm independently testable and the policy a pure function.
package place

import (
	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/errors"
)

// Strategy identifies a placement algorithm.
type Strategy string

// Available strategies. StrategyAuto defers the choice to Select.
const (
	StrategySpiral Strategy = "spiral"
	StrategyForce  Strategy = "force"
	StrategyHybrid Strategy = "hybrid"
	StrategyAuto   Strategy = "auto"
)

// ValidStrategies is the set of strategies accepted from CLI and API input.
var ValidStrategies = map[Strategy]bool{
	StrategySpiral: true,
	StrategyForce:  true,
	StrategyHybrid: true,
	StrategyAuto:   true,
}

// ParseStrategy validates a strategy name from user input.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !ValidStrategies[st] {
		return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want spiral, force, hybrid, or auto)", s)
	}
	return st, nil
}

// Selection thresholds. Reproduced exactly by the test suite; change with care.
const (
	// selectSmallCount: at or below this many items, spiral always wins.
	selectSmallCount = 10

	// selectSparseDensity: below this items-per-area, spiral wins regardless
	// of count.
	selectSparseDensity = 0.001

	// selectLargeCount / selectDenseDensity: beyond either, force wins.
	selectLargeCount   = 50
	selectDenseDensity = 0.01
)

// Select picks a strategy from item count and container area.
//
// Policy, checked in order:
//   - count <= 10 → spiral
//   - count > 50 or density > 0.01 → force
//   - density < 0.001 → spiral (sparse)
//   - otherwise → hybrid
//
// The large-count check outranks the sparse check: past ~50 items the greedy
// spiral degrades regardless of how much room there is, while force handles
// big inputs without drops. A zero-area container yields infinite density and
// therefore force, the only strategy that cannot lose items to an
// unplaceable frame.
func Select(itemCount int, containerArea float64) Strategy {
	if itemCount <= selectSmallCount {
		return StrategySpiral
	}
	density := float64(itemCount) / containerArea
	if itemCount > selectLargeCount || density > selectDenseDensity {
		return StrategyForce
	}
	if density < selectSparseDensity {
		return StrategySpiral
	}
	return StrategyHybrid
}

// Run dispatches to the named strategy, resolving StrategyAuto via Select.
// It returns the placed items and the strategy actually used.
func Run(strategy Strategy, items []cloud.SizedItem, container cloud.Container, cfg cloud.Config) ([]cloud.PlacedItem, Strategy) {
	if strategy == StrategyAuto || strategy == "" {
		strategy = Select(len(items), container.Area())
	}
	switch strategy {
	case StrategyForce:
		return Force(items, container, cfg), StrategyForce
	case StrategyHybrid:
		return Hybrid(items, container, cfg)
	default:
		return Spiral(items, container, cfg), StrategySpiral
	}
}
