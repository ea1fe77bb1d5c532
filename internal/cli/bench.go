package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/cloud/sizing"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
)

// benchCommand creates the bench command for strategy comparison on
// synthetic input.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		counts []int
		width  float64
		height float64
		trials int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark placement strategies on synthetic input",
		Long: `Benchmark placement strategies on synthetic input.

For each item count, runs every strategy against generated items and reports
placement rate, residual overlaps, and timing against the soft performance
budget. Useful for tuning the selection policy thresholds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(counts, cloud.Container{Width: width, Height: height}, trials)
		},
	}

	cmd.Flags().IntSliceVar(&counts, "counts", []int{8, 20, 40, 60}, "item counts to benchmark")
	cmd.Flags().Float64Var(&width, "width", 800, "container width")
	cmd.Flags().Float64Var(&height, "height", 500, "container height")
	cmd.Flags().IntVar(&trials, "trials", 5, "trials per strategy (seeds vary per trial)")

	return cmd
}

func (c *CLI) runBench(counts []int, container cloud.Container, trials int) error {
	strategies := []place.Strategy{place.StrategySpiral, place.StrategyForce, place.StrategyHybrid}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Container %.0fx%.0f, %d trials", container.Width, container.Height, trials)))

	for _, n := range counts {
		items := syntheticItems(n)
		selected := place.Select(n, container.Area())
		printInfo("%d items (policy picks %s)", n, selected)

		for _, st := range strategies {
			placedSum, overlapTrials := 0, 0
			var total time.Duration

			for trial := 0; trial < trials; trial++ {
				cfg := cloud.DefaultConfig()
				cfg.Seed = cloud.DefaultSeed + uint64(trial)
				sized := sizing.ComputeSizes(items, cfg.FontSize, cfg.MinTapTarget)

				placed, elapsed := validate.Measure(func() []cloud.PlacedItem {
					p, _ := place.Run(st, sized, container, cfg)
					return p
				})
				total += elapsed
				placedSum += len(placed)
				if validate.NoOverlaps(placed, cfg.MinSpacing).HasOverlaps {
					overlapTrials++
				}
			}

			avg := total / time.Duration(trials)
			line := fmt.Sprintf("%-7s placed %5.1f/%d  overlap trials %d/%d  avg %s",
				st, float64(placedSum)/float64(trials), n, overlapTrials, trials, avg.Round(time.Microsecond))
			if validate.OverBudget(avg) {
				printWarning("%s (over budget)", line)
			} else {
				fmt.Println("  " + StyleDim.Render(line))
			}
		}
	}
	return nil
}

// syntheticItems generates a deterministic item list with a skewed value
// distribution, approximating real category counts.
func syntheticItems(n int) []cloud.Item {
	items := make([]cloud.Item, n)
	for i := range items {
		items[i] = cloud.Item{
			ID:    fmt.Sprintf("item-%d", i),
			Text:  fmt.Sprintf("Wort %d", i),
			Value: float64((n - i) * (n - i)),
		}
	}
	return items
}
