package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/cloud/sizing"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
)

// previewCommand creates the preview command rendering a layout in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "preview [items.json]",
		Short: "Preview a word-cloud layout in the terminal",
		Long: `Preview a word-cloud layout in the terminal.

Renders the placed words on a character grid scaled to the terminal. Keys:
s/f/h/a switch between the spiral, force, hybrid, and auto strategies;
r advances the force seed; q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := cloud.ReadItemsFile(args[0])
			if err != nil {
				return err
			}
			m := newPreviewModel(items, cloud.Container{Width: width, Height: height})
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "container width")
	cmd.Flags().Float64Var(&height, "height", 500, "container height")

	return cmd
}

var (
	previewWordStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewWarnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// previewModel is the bubbletea model for the layout preview.
type previewModel struct {
	items     []cloud.Item
	container cloud.Container
	strategy  place.Strategy
	seed      uint64

	layout cloud.Layout
	width  int
	height int
}

func newPreviewModel(items []cloud.Item, container cloud.Container) previewModel {
	m := previewModel{
		items:     items,
		container: container,
		strategy:  place.StrategyAuto,
		seed:      cloud.DefaultSeed,
	}
	m.compute()
	return m
}

// compute runs a synchronous layout pass; word-cloud inputs are small enough
// that recomputing on every key press stays well under a frame.
func (m *previewModel) compute() {
	cfg := cloud.DefaultConfig()
	cfg.Seed = m.seed
	sized := sizing.ComputeSizes(m.items, cfg.FontSize, cfg.MinTapTarget)

	placed, elapsed := validate.Measure(func() []cloud.PlacedItem {
		p, _ := place.Run(m.strategy, sized, m.container, cfg)
		return p
	})
	report := validate.NoOverlaps(placed, cfg.MinSpacing)
	used := m.strategy
	if used == place.StrategyAuto {
		used = place.Select(len(m.items), m.container.Area())
	}

	m.layout = cloud.Layout{
		Container: m.container,
		Placed:    placed,
		Diagnostics: cloud.Diagnostics{
			Algorithm:        string(used),
			DurationMs:       float64(elapsed.Microseconds()) / 1000,
			PlacedCount:      len(placed),
			TotalCount:       len(m.items),
			HasOverlaps:      report.HasOverlaps,
			OverlappingPairs: report.OverlappingPairs,
			Seed:             m.seed,
		},
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.strategy = place.StrategySpiral
		case "f":
			m.strategy = place.StrategyForce
		case "h":
			m.strategy = place.StrategyHybrid
		case "a":
			m.strategy = place.StrategyAuto
		case "r":
			m.seed++
		default:
			return m, nil
		}
		m.compute()
		return m, nil
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.width == 0 || m.height < 3 {
		return "loading..."
	}

	gridW, gridH := m.width, m.height-2
	grid := renderGrid(m.layout, gridW, gridH)

	d := m.layout.Diagnostics
	status := fmt.Sprintf(" %s  placed %d/%d  seed %d  %.1fms  [s]piral [f]orce [h]ybrid [a]uto [r]eseed [q]uit",
		d.Algorithm, d.PlacedCount, d.TotalCount, d.Seed, d.DurationMs)
	line := previewStatusStyle.Render(status)
	if d.HasOverlaps || d.Degraded() {
		line = previewWarnStyle.Render(status)
	}

	return grid + "\n" + line
}

// renderGrid paints placed words onto a rune grid scaled from container to
// terminal coordinates. Later (less important) words never overwrite earlier
// ones; with a collision-free layout that case only occurs from rounding.
func renderGrid(l cloud.Layout, gridW, gridH int) string {
	if l.Container.Width <= 0 || l.Container.Height <= 0 {
		return strings.Repeat("\n", gridH-1)
	}
	scaleX := float64(gridW) / l.Container.Width
	scaleY := float64(gridH) / l.Container.Height

	cells := make([][]rune, gridH)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", gridW))
	}

	for _, p := range l.Placed {
		label := []rune(p.Text)
		row := int(p.Y * scaleY)
		col := int(p.X*scaleX) - len(label)/2
		if row < 0 || row >= gridH {
			continue
		}
		for i, r := range label {
			x := col + i
			if x < 0 || x >= gridW || cells[row][x] != ' ' {
				continue
			}
			cells[row][x] = r
		}
	}

	lines := make([]string, gridH)
	for y, runes := range cells {
		lines[y] = previewWordStyle.Render(string(runes))
	}
	return strings.Join(lines, "\n")
}
