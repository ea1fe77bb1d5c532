// Package sizing maps raw item importance values to font sizes and estimated
// bounding boxes.
//
// Text metrics are approximations: a character-count heuristic with a
// per-font-size width factor, matching what the rendering layer's font stack
// produces closely enough for placement. Callers needing pixel-perfect boxes
// must measure text themselves and bypass this stage.
package sizing

import (
	"unicode/utf8"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

const (
	// fontCharWidth approximates average glyph width as a fraction of the
	// font size for the UI's sans-serif stack.
	fontCharWidth = 0.55

	// lineHeightRatio converts a font size to a single-line box height.
	lineHeightRatio = 1.3

	// padX is horizontal breathing room added around the text run.
	padX = 12.0
)

// ComputeSizes derives a font size and estimated bounding box for every item.
//
// Font sizes interpolate linearly between fontRange.Min and fontRange.Max by
// normalized value. When all items share the same value the normalization is
// degenerate; every item then gets the mid-range size.
//
// Guarantee: every returned item has Width >= minTapTarget and
// Height >= minTapTarget, regardless of value or text length.
func ComputeSizes(items []cloud.Item, fontRange cloud.FontRange, minTapTarget float64) []cloud.SizedItem {
	if len(items) == 0 {
		return nil
	}

	lo, hi := valueRange(items)
	span := hi - lo

	sized := make([]cloud.SizedItem, len(items))
	for i, it := range items {
		norm := 0.5 // all-equal values: constant mid-range size
		if span > 0 {
			norm = (it.Value - lo) / span
		}
		fontSize := fontRange.Min + norm*(fontRange.Max-fontRange.Min)

		sized[i] = cloud.SizedItem{
			Item:     it,
			FontSize: fontSize,
			Width:    max(estimateTextWidth(it.Text, fontSize)+2*padX, minTapTarget),
			Height:   max(fontSize*lineHeightRatio, minTapTarget),
		}
	}
	return sized
}

// estimateTextWidth approximates the rendered width of text at fontSize.
func estimateTextWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * fontCharWidth
}

func valueRange(items []cloud.Item) (lo, hi float64) {
	lo, hi = items[0].Value, items[0].Value
	for _, it := range items[1:] {
		lo = min(lo, it.Value)
		hi = max(hi, it.Value)
	}
	return lo, hi
}
