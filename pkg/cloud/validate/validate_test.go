package validate

import (
	"reflect"
	"testing"
	"time"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

func placedAt(id string, x, y, w, h float64) cloud.PlacedItem {
	return cloud.PlacedItem{
		SizedItem: cloud.SizedItem{Item: cloud.Item{ID: id}, Width: w, Height: h},
		X:         x,
		Y:         y,
	}
}

func TestNoOverlapsEmpty(t *testing.T) {
	r := NoOverlaps(nil, 8)
	if r.HasOverlaps || len(r.OverlappingPairs) != 0 {
		t.Errorf("empty input reported overlaps: %+v", r)
	}
}

func TestNoOverlapsCleanLayout(t *testing.T) {
	placed := []cloud.PlacedItem{
		placedAt("a", 50, 50, 40, 20),
		placedAt("b", 150, 50, 40, 20),
		placedAt("c", 50, 150, 40, 20),
	}
	if r := NoOverlaps(placed, 8); r.HasOverlaps {
		t.Errorf("well-spaced layout reported overlaps: %v", r.OverlappingPairs)
	}
}

func TestNoOverlapsDetectsViolations(t *testing.T) {
	// a and b violate clearance, c sits far away; a and b also each clear c.
	placed := []cloud.PlacedItem{
		placedAt("a", 50, 50, 40, 20),
		placedAt("b", 90, 50, 40, 20),
		placedAt("c", 300, 300, 40, 20),
	}
	r := NoOverlaps(placed, 8)
	if !r.HasOverlaps {
		t.Fatal("clearance violation not detected")
	}
	want := [][2]string{{"a", "b"}}
	if !reflect.DeepEqual(r.OverlappingPairs, want) {
		t.Errorf("pairs = %v, want %v", r.OverlappingPairs, want)
	}
}

func TestNoOverlapsTouchingAtClearanceIsClean(t *testing.T) {
	// Horizontal gap of exactly the clearance: boxes 40 wide centered 48 apart.
	placed := []cloud.PlacedItem{
		placedAt("a", 50, 50, 40, 20),
		placedAt("b", 98, 50, 40, 20),
	}
	if r := NoOverlaps(placed, 8); r.HasOverlaps {
		t.Errorf("exact clearance reported as violation: %v", r.OverlappingPairs)
	}
}

func TestNoOverlapsIdempotent(t *testing.T) {
	placed := []cloud.PlacedItem{
		placedAt("a", 50, 50, 40, 20),
		placedAt("b", 55, 52, 40, 20),
		placedAt("c", 60, 54, 40, 20),
	}
	first := NoOverlaps(placed, 8)
	second := NoOverlaps(placed, 8)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks disagree: %+v vs %+v", first, second)
	}
}

func TestMeasure(t *testing.T) {
	got, d := Measure(func() int {
		time.Sleep(5 * time.Millisecond)
		return 42
	})
	if got != 42 {
		t.Errorf("Measure result = %d, want 42", got)
	}
	if d < 5*time.Millisecond {
		t.Errorf("measured duration %v shorter than the work itself", d)
	}
}

func TestOverBudget(t *testing.T) {
	if OverBudget(SoftBudget) {
		t.Error("exact budget should not count as over")
	}
	if !OverBudget(SoftBudget + time.Millisecond) {
		t.Error("budget excess not reported")
	}
	if OverBudget(10 * time.Millisecond) {
		t.Error("fast pass reported as over budget")
	}
}
