package cache

import (
	"github.com/kulturkompass/wortwolke/pkg/cloud"
)

// Keyer generates cache keys for layout results.
type Keyer interface {
	// LayoutKey generates a key for a layout computed from the given inputs.
	LayoutKey(items []cloud.Item, container cloud.Container, cfg cloud.Config, strategy string) string
}

// DefaultKeyer hashes the full layout input into a namespaced key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key of the form "layout:<sha256>". Items are hashed
// in input order: order affects spiral tie-breaking, so it is part of the
// input, not noise to normalize away.
func (k *DefaultKeyer) LayoutKey(items []cloud.Item, container cloud.Container, cfg cloud.Config, strategy string) string {
	return hashKey("layout", items, container, cfg, strategy)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(items []cloud.Item, container cloud.Container, cfg cloud.Config, strategy string) string {
	return k.prefix + k.inner.LayoutKey(items, container, cfg, strategy)
}
