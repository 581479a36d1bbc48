// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layers

// Layer is a named read-only configuration source. Any backing
// implementation (in-memory map, process environment, remote snapshot)
// satisfies it; the scanning code in this module only ever does a linear
// search over a slice of this interface type.
type Layer interface {
	// Name identifies the layer within a List. Names are unique per List.
	Name() string

	// Contains reports whether the layer defines the given key.
	Contains(key string) bool

	// Get returns the value stored under key. The second return value is
	// false when the key is absent.
	Get(key string) (any, bool)
}

// Enumerable is implemented by layers that can list their keys. Layers
// that are not enumerable still participate in lookups but are skipped
// when the list is collapsed into a single map.
type Enumerable interface {
	Layer

	// Keys returns the layer's keys in iteration order.
	Keys() []string
}

// MapLayer is an immutable, insertion-ordered map-backed layer.
// Construct one with NewMapLayer or through a MapBuilder.
type MapLayer struct {
	name   string
	keys   []string
	values map[string]any
}

// NewMapLayer builds a layer from a plain map. Key iteration order is
// unspecified; use a MapBuilder when order matters.
func NewMapLayer(name string, values map[string]any) *MapLayer {
	b := NewMapBuilder(name)
	for k, v := range values {
		b.Put(k, v)
	}
	return b.Build()
}

// Name implements Layer.
func (l *MapLayer) Name() string { return l.name }

// Contains implements Layer.
func (l *MapLayer) Contains(key string) bool {
	_, ok := l.values[key]
	return ok
}

// Get implements Layer.
func (l *MapLayer) Get(key string) (any, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Keys implements Enumerable. The returned slice is a copy.
func (l *MapLayer) Keys() []string {
	keys := make([]string, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Len returns the number of entries in the layer.
func (l *MapLayer) Len() int { return len(l.keys) }

// MapBuilder accumulates entries for a MapLayer while preserving insertion
// order. Put on an existing key overwrites the value but keeps the key's
// original position, matching ordered-map semantics.
type MapBuilder struct {
	name   string
	keys   []string
	values map[string]any
}

// NewMapBuilder returns an empty builder for a layer with the given name.
func NewMapBuilder(name string) *MapBuilder {
	return &MapBuilder{
		name:   name,
		values: make(map[string]any),
	}
}

// Put records key → value. Last write wins for duplicate keys.
func (b *MapBuilder) Put(key string, value any) *MapBuilder {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

// Len returns the number of distinct keys recorded so far.
func (b *MapBuilder) Len() int { return len(b.keys) }

// Build freezes the accumulated entries into a MapLayer. The builder must
// not be reused afterwards.
func (b *MapBuilder) Build() *MapLayer {
	return &MapLayer{
		name:   b.name,
		keys:   b.keys,
		values: b.values,
	}
}
