package sizing

import (
	"testing"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

var testFontRange = cloud.FontRange{Min: 16, Max: 40}

func TestComputeSizesEmpty(t *testing.T) {
	if got := ComputeSizes(nil, testFontRange, 48); got != nil {
		t.Errorf("ComputeSizes(nil) = %v, want nil", got)
	}
}

func TestComputeSizesMinTapTarget(t *testing.T) {
	items := []cloud.Item{
		{ID: "tiny", Text: "x", Value: 0},
		{ID: "small", Text: "ab", Value: 1},
		{ID: "big", Text: "a rather long label", Value: 100},
	}

	for _, s := range ComputeSizes(items, testFontRange, 48) {
		if s.Width < 48 {
			t.Errorf("item %q width = %g, want >= 48", s.ID, s.Width)
		}
		if s.Height < 48 {
			t.Errorf("item %q height = %g, want >= 48", s.ID, s.Height)
		}
	}
}

func TestComputeSizesInterpolation(t *testing.T) {
	items := []cloud.Item{
		{ID: "lo", Text: "low", Value: 0},
		{ID: "mid", Text: "mid", Value: 50},
		{ID: "hi", Text: "high", Value: 100},
	}

	sized := ComputeSizes(items, testFontRange, 48)
	if sized[0].FontSize != 16 {
		t.Errorf("min-value font size = %g, want 16", sized[0].FontSize)
	}
	if sized[1].FontSize != 28 {
		t.Errorf("mid-value font size = %g, want 28", sized[1].FontSize)
	}
	if sized[2].FontSize != 40 {
		t.Errorf("max-value font size = %g, want 40", sized[2].FontSize)
	}
}

func TestComputeSizesAllEqualValues(t *testing.T) {
	// All items share value 10: normalization is degenerate and every item
	// must get the mid-range size without a divide-by-zero.
	items := []cloud.Item{
		{ID: "a", Text: "Theater", Value: 10},
		{ID: "b", Text: "Musik", Value: 10},
		{ID: "c", Text: "Film", Value: 10},
	}

	sized := ComputeSizes(items, testFontRange, 48)
	for _, s := range sized {
		if s.FontSize != 28 {
			t.Errorf("item %q font size = %g, want mid-range 28", s.ID, s.FontSize)
		}
	}
}

func TestComputeSizesLongerTextWiderBox(t *testing.T) {
	items := []cloud.Item{
		{ID: "short", Text: "Ballhausplatz", Value: 5},
		{ID: "long", Text: "Ballhausplatz und Umgebung", Value: 5},
	}

	sized := ComputeSizes(items, testFontRange, 48)
	if sized[1].Width <= sized[0].Width {
		t.Errorf("longer text width %g should exceed shorter text width %g", sized[1].Width, sized[0].Width)
	}
}
