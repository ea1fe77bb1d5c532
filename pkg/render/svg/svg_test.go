package svg

import (
	"strings"
	"testing"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

func placedWord(id, text string, value, x, y, w, h float64) cloud.PlacedItem {
	return cloud.PlacedItem{
		SizedItem: cloud.SizedItem{
			Item:     cloud.Item{ID: id, Text: text, Value: value},
			FontSize: 24,
			Width:    w,
			Height:   h,
		},
		X: x,
		Y: y,
	}
}

func TestRenderDocumentShape(t *testing.T) {
	l := cloud.Layout{
		Container: cloud.Container{Width: 800, Height: 500},
		Placed: []cloud.PlacedItem{
			placedWord("museen", "Museen", 120, 400, 250, 120, 48),
		},
	}

	out := string(Render(l))
	for _, want := range []string{
		`viewBox="0 0 800.0 500.0"`,
		`role="group" aria-label="word cloud"`,
		`<style>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderWordAccessibility(t *testing.T) {
	l := cloud.Layout{
		Container: cloud.Container{Width: 800, Height: 500},
		Placed: []cloud.PlacedItem{
			placedWord("konzerte", "Konzerte", 80, 400, 250, 120, 48),
		},
	}

	out := string(Render(l))
	for _, want := range []string{
		`id="word-konzerte"`,
		`tabindex="0"`,
		`role="button"`,
		`aria-label="Konzerte, 80 events"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHitAreaMinimum(t *testing.T) {
	// A small box still gets a 48x48 hit rectangle centered on the word.
	l := cloud.Layout{
		Container: cloud.Container{Width: 800, Height: 500},
		Placed: []cloud.PlacedItem{
			placedWord("kino", "Kino", 5, 100, 100, 30, 20),
		},
	}

	out := string(Render(l))
	if !strings.Contains(out, `<rect x="76.0" y="76.0" width="48.0" height="48.0"/>`) {
		t.Errorf("minimum hit rectangle not applied:\n%s", out)
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	l := cloud.Layout{
		Container: cloud.Container{Width: 800, Height: 500},
		Placed: []cloud.PlacedItem{
			placedWord("x", `Kunst & <Design>`, 3, 100, 100, 60, 48),
		},
	}

	out := string(Render(l))
	if strings.Contains(out, "<Design>") {
		t.Error("markup not escaped in text content")
	}
	if !strings.Contains(out, "Kunst &amp; &lt;Design&gt;") {
		t.Errorf("escaped text missing:\n%s", out)
	}
}

func TestRenderOptions(t *testing.T) {
	l := cloud.Layout{Container: cloud.Container{Width: 400, Height: 300}}

	out := string(Render(l, WithBackground("#fdf6ec"), WithFontFamily("Wien Pro")))
	if !strings.Contains(out, `fill="#fdf6ec"`) {
		t.Error("background option not applied")
	}

	l.Placed = []cloud.PlacedItem{placedWord("a", "Oper", 9, 200, 150, 80, 48)}
	out = string(Render(l, WithFontFamily("Wien Pro")))
	if !strings.Contains(out, `font-family="Wien Pro"`) {
		t.Error("font family option not applied")
	}
}

func TestRenderEmptyLayout(t *testing.T) {
	out := string(Render(cloud.Layout{Container: cloud.Container{Width: 800, Height: 500}}))
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("empty layout produced malformed document:\n%s", out)
	}
	if strings.Contains(out, `class="word"`) {
		t.Error("empty layout contains word groups")
	}
}
