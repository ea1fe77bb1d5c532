package dot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
)

func sampleLayout() cloud.Layout {
	return cloud.Layout{
		Container: cloud.Container{Width: 800, Height: 500},
		Placed: []cloud.PlacedItem{
			{SizedItem: cloud.SizedItem{Item: cloud.Item{ID: "museen", Text: "Museen"}}, X: 400, Y: 250},
			{SizedItem: cloud.SizedItem{Item: cloud.Item{ID: "kino", Text: "Kino"}}, X: 410, Y: 255},
			{SizedItem: cloud.SizedItem{Item: cloud.Item{ID: "oper", Text: "Oper"}}, X: 100, Y: 100},
		},
	}
}

func TestToDOTCleanLayout(t *testing.T) {
	out := ToDOT(sampleLayout(), validate.Report{})

	if !strings.HasPrefix(out, "graph collisions {") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, want := range []string{"layout=neato", `"museen"`, `"kino"`, `"oper"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "--") {
		t.Error("clean layout contains edges")
	}
	if strings.Contains(out, "mistyrose") {
		t.Error("clean layout highlights nodes")
	}
}

func TestToDOTHighlightsViolations(t *testing.T) {
	report := validate.Report{
		HasOverlaps:      true,
		OverlappingPairs: [][2]string{{"museen", "kino"}},
	}
	out := ToDOT(sampleLayout(), report)

	if !strings.Contains(out, `"museen" -- "kino";`) {
		t.Errorf("violation edge missing:\n%s", out)
	}
	if strings.Count(out, "mistyrose") != 2 {
		t.Errorf("want both violating nodes highlighted:\n%s", out)
	}
}

func TestRenderSVG(t *testing.T) {
	report := validate.Report{
		HasOverlaps:      true,
		OverlappingPairs: [][2]string{{"museen", "kino"}},
	}
	out, err := RenderSVG(context.Background(), ToDOT(sampleLayout(), report))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") {
		t.Errorf("output is not an SVG document:\n%.200s", svg)
	}
	for _, label := range []string{"Museen", "Kino", "Oper"} {
		if !strings.Contains(svg, label) {
			t.Errorf("rendered SVG missing node label %q", label)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	out, err := RenderPNG(context.Background(), ToDOT(sampleLayout(), validate.Report{}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Errorf("output missing PNG signature, got %d bytes", len(out))
	}
}

func TestRenderRejectsMalformedDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph { unclosed"); err == nil {
		t.Error("malformed DOT accepted")
	}
}

func TestToDOTFlipsYAxis(t *testing.T) {
	// Graphviz y grows upward, layout y grows downward; node positions must
	// be mirrored against the container height.
	out := ToDOT(sampleLayout(), validate.Report{})
	if !strings.Contains(out, `pos="400,250"`) {
		t.Errorf("center item position not mirrored:\n%s", out)
	}
	if !strings.Contains(out, `pos="100,400"`) {
		t.Errorf("corner item position not mirrored:\n%s", out)
	}
}
