// Package dot renders collision diagnostics as a Graphviz graph.
//
// Each placed item becomes a node and each clearance violation an edge, which
// makes a failed force convergence legible at a glance: isolated nodes are
// fine, connected clusters show exactly which words are still fighting for
// space. Intended for debug output alongside the SVG sink, not for end users.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
)

// ToDOT converts a layout and its overlap report to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(l cloud.Layout, report validate.Report) string {
	var buf bytes.Buffer
	buf.WriteString("graph collisions {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [color=red, penwidth=2];\n")
	buf.WriteString("\n")

	overlapping := make(map[string]bool)
	for _, pair := range report.OverlappingPairs {
		overlapping[pair[0]] = true
		overlapping[pair[1]] = true
	}

	for _, p := range l.Placed {
		attrs := fmt.Sprintf("label=%q, pos=\"%.0f,%.0f\"", p.Text, p.X, l.Container.Height-p.Y)
		if overlapping[p.ID] {
			attrs += `, fillcolor=mistyrose`
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, attrs)
	}

	buf.WriteString("\n")
	for _, pair := range report.OverlappingPairs {
		fmt.Fprintf(&buf, "  %q -- %q;\n", pair[0], pair[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT string to SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT string to PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
