// Package analytics publishes layout diagnostics as fire-and-forget events.
//
// The quiz front-end surfaces degraded layouts (dropped words, residual
// overlaps) in its debug panel; this package is the server-side counterpart,
// recording the same signals so strategy thresholds can be tuned against real
// traffic. Publishing must never block or fail a layout: sinks swallow their
// own errors, reporting them only through observability hooks and logs.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/observability"
)

// EventLayoutComputed is the event name for a completed layout pass.
const EventLayoutComputed = "layout_computed"

// Event is one analytics record.
type Event struct {
	ID     string         `json:"id" bson:"_id"`
	Name   string         `json:"name" bson:"name"`
	Time   time.Time      `json:"time" bson:"time"`
	Fields map[string]any `json:"fields" bson:"fields"`
}

// Sink accepts events. Publish is fire-and-forget: implementations must not
// return errors to callers or block the layout path.
type Sink interface {
	Publish(ctx context.Context, e Event)
	Close(ctx context.Context) error
}

// LayoutComputed builds the standard event for a finished layout pass.
func LayoutComputed(d cloud.Diagnostics) Event {
	return Event{
		ID:   uuid.NewString(),
		Name: EventLayoutComputed,
		Time: time.Now().UTC(),
		Fields: map[string]any{
			"algorithm":    d.Algorithm,
			"duration_ms":  d.DurationMs,
			"placed_count": d.PlacedCount,
			"total_count":  d.TotalCount,
			"has_overlaps": d.HasOverlaps,
			"cached":       d.Cached,
		},
	}
}

// NullSink drops all events. The default when no analytics store is
// configured.
type NullSink struct{}

// NewNullSink creates a null sink.
func NewNullSink() Sink { return &NullSink{} }

// Publish records the event with the observability hooks and discards it.
func (NullSink) Publish(ctx context.Context, e Event) {
	observability.Analytics().OnPublish(ctx, e.Name)
}

// Close does nothing.
func (NullSink) Close(context.Context) error { return nil }

// Ensure NullSink implements Sink.
var _ Sink = (*NullSink)(nil)
