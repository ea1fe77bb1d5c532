// Package svg renders a computed word-cloud layout as an interactive SVG.
//
// Every placed word becomes a focusable control: a transparent hit rectangle
// of at least the minimum tap-target size, the label text centered on the
// item position, and an accessible name of the form "<text>, <value> events".
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

// minHitArea is the minimum interactive hit rectangle edge, applied
// regardless of the computed box so small words stay tappable.
const minHitArea = 48.0

const wordInteractionCSS = `
    .word { cursor: pointer; }
    .word text { transition: transform 0.15s ease; transform-origin: center; transform-box: fill-box; }
    .word:hover text, .word:focus text { transform: scale(1.08); font-weight: bold; }
    .word rect { fill: transparent; }`

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	fontFamily string
	background string
}

// WithFontFamily overrides the CSS font stack used for labels.
func WithFontFamily(family string) Option {
	return func(r *renderer) { r.fontFamily = family }
}

// WithBackground sets a background fill; default is transparent.
func WithBackground(color string) Option {
	return func(r *renderer) { r.background = color }
}

// Render produces the SVG document for a layout.
func Render(l cloud.Layout, opts ...Option) []byte {
	r := renderer{fontFamily: "system-ui, sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" role="group" aria-label="word cloud">`+"\n",
		l.Container.Width, l.Container.Height, l.Container.Width, l.Container.Height)

	fmt.Fprintf(&buf, "  <style>%s</style>\n", wordInteractionCSS)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escape(r.background))
	}

	for _, p := range l.Placed {
		renderWord(&buf, p, r.fontFamily)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderWord(buf *bytes.Buffer, p cloud.PlacedItem, fontFamily string) {
	hitW := max(p.Width, minHitArea)
	hitH := max(p.Height, minHitArea)
	label := fmt.Sprintf("%s, %.0f events", p.Text, p.Value)

	fmt.Fprintf(buf, `  <g class="word" id="word-%s" tabindex="0" role="button" aria-label="%s">`+"\n",
		escape(p.ID), escape(label))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		p.X-hitW/2, p.Y-hitH/2, hitW, hitH)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f">%s</text>`+"\n",
		p.X, p.Y, escape(fontFamily), p.FontSize, escape(p.Text))
	buf.WriteString("  </g>\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
