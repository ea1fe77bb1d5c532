package cloud

import (
	"github.com/kulturkompass/wortwolke/pkg/cloud/geometry"
	"github.com/kulturkompass/wortwolke/pkg/errors"
)

// Item is one word supplied by the caller. Value drives the rendered size:
// on the discovery quiz this is the number of events behind the word.
type Item struct {
	ID    string  `json:"id" bson:"id"`
	Text  string  `json:"text" bson:"text"`
	Value float64 `json:"value" bson:"value"`
}

// SizedItem is an Item with a computed font size and estimated bounding box.
// Width and Height are never below the configured minimum tap target.
type SizedItem struct {
	Item
	FontSize float64 `json:"font_size" bson:"font_size"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
}

// PlacedItem is a SizedItem positioned inside the container. X and Y are the
// center point of its bounding box in container-local coordinates.
type PlacedItem struct {
	SizedItem
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Box returns the item's axis-aligned bounding box.
func (p PlacedItem) Box() geometry.Box {
	return geometry.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Container is the bounded frame items are placed into. It is recomputed by
// the caller on every resize; zero-area containers are legal degenerate input.
type Container struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Center returns the container's center point.
func (c Container) Center() geometry.Point {
	return geometry.Point{X: c.Width / 2, Y: c.Height / 2}
}

// Area returns the container area.
func (c Container) Area() float64 { return c.Width * c.Height }

// ValidateItems checks caller contract requirements: unique non-empty IDs and
// non-negative values. Violations are programming errors on the caller side
// and produce coded errors; degenerate but legal input (empty list, all-equal
// values) passes.
func ValidateItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ID == "" {
			return errors.New(errors.ErrCodeInvalidItem, "item with empty id (text %q)", it.Text)
		}
		if _, dup := seen[it.ID]; dup {
			return errors.New(errors.ErrCodeDuplicateItem, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Value < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "item %q has negative value %g", it.ID, it.Value)
		}
	}
	return nil
}

// ValidateContainer rejects negative dimensions. Zero dimensions are allowed:
// placement then degrades (spiral drops everything, force collapses to a
// point) without erroring.
func ValidateContainer(c Container) error {
	if c.Width < 0 || c.Height < 0 {
		return errors.New(errors.ErrCodeInvalidContainer, "negative container dimensions %gx%g", c.Width, c.Height)
	}
	return nil
}
