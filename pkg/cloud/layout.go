package cloud

import (
	"encoding/json"
	"fmt"
	"os"
)

// Diagnostics describes how a layout pass went. Partial placement and
// residual overlaps are data here, not errors: callers inspect the counts
// and decide whether to degrade gracefully or retry with another strategy.
type Diagnostics struct {
	Algorithm        string      `json:"algorithm" bson:"algorithm"`
	DurationMs       float64     `json:"duration_ms" bson:"duration_ms"`
	PlacedCount      int         `json:"placed_count" bson:"placed_count"`
	TotalCount       int         `json:"total_count" bson:"total_count"`
	HasOverlaps      bool        `json:"has_overlaps" bson:"has_overlaps"`
	OverlappingPairs [][2]string `json:"overlapping_pairs,omitempty" bson:"overlapping_pairs,omitempty"`
	Seed             uint64      `json:"seed,omitempty" bson:"seed,omitempty"`
	Cached           bool        `json:"cached,omitempty" bson:"cached,omitempty"`
}

// Degraded reports whether some items were dropped during placement.
func (d Diagnostics) Degraded() bool { return d.PlacedCount < d.TotalCount }

// Layout is the serializable result of one layout pass.
type Layout struct {
	Container   Container    `json:"container" bson:"container"`
	Placed      []PlacedItem `json:"placed" bson:"placed"`
	Diagnostics Diagnostics  `json:"diagnostics" bson:"diagnostics"`
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that counts are consistent with the placed slice.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Diagnostics.PlacedCount != len(l.Placed) {
		return Layout{}, fmt.Errorf("layout reports %d placed items but contains %d",
			l.Diagnostics.PlacedCount, len(l.Placed))
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

// ReadItemsFile reads an item list from a JSON file. The file holds either a
// bare array of items or an object with an "items" field.
func ReadItemsFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, ValidateItems(items)
	}

	var wrapped struct {
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wrapped.Items, ValidateItems(wrapped.Items)
}
