// Package cloud defines the word-cloud domain model shared by the sizing,
// placement, validation, and rendering packages.
//
// # Data Model
//
// The model mirrors the lifecycle of one layout pass:
//
//	Item        caller-supplied: id, label text, importance value
//	SizedItem   Item plus a computed font size and bounding box
//	PlacedItem  SizedItem plus a center position inside the container
//	Layout      the placed items plus diagnostics for one pass
//
// All values are transient: a layout pass recomputes them from scratch and
// shares no mutable state with other passes.
//
// # Serialization
//
// Layout has a stable JSON form (with matching BSON tags for the analytics
// store). Use MarshalLayout/UnmarshalLayout or the file helpers for
// round-tripping; UnmarshalLayout validates structural requirements.
package cloud
