// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layers

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-conf-layers/origin"
)

// Errors returned by List insertion operations.
var (
	// ErrLayerNotFound indicates that a named anchor layer is not present
	// in the list.
	ErrLayerNotFound = errors.New("layer not found")
	// ErrSelfAnchor indicates an attempt to insert a layer relative to
	// itself.
	ErrSelfAnchor = errors.New("layer cannot be anchored to itself")
)

// List is a mutable ordered sequence of layers. Position encodes priority:
// the layer at index 0 wins key lookups over every layer after it.
//
// List is not safe for concurrent mutation; it is meant to be exclusively
// owned by the startup sequence while post-processors run.
type List struct {
	layers []Layer
}

// NewList returns a list holding the given layers in order, highest
// priority first.
func NewList(ls ...Layer) *List {
	list := &List{layers: make([]Layer, 0, len(ls))}
	for _, l := range ls {
		list.AddLast(l)
	}
	return list
}

// Len returns the number of layers in the list.
func (l *List) Len() int { return len(l.layers) }

// Contains reports whether a layer with the given name is present.
func (l *List) Contains(name string) bool {
	return l.indexOf(name) >= 0
}

// Get returns the layer with the given name.
func (l *List) Get(name string) (Layer, bool) {
	if i := l.indexOf(name); i >= 0 {
		return l.layers[i], true
	}
	return nil, false
}

// Names returns the layer names in priority order.
func (l *List) Names() []string {
	names := make([]string, len(l.layers))
	for i, layer := range l.layers {
		names[i] = layer.Name()
	}
	return names
}

// Slice returns a copy of the underlying layer sequence in priority order.
func (l *List) Slice() []Layer {
	ls := make([]Layer, len(l.layers))
	copy(ls, l.layers)
	return ls
}

// AddFirst puts layer at the highest-priority position. An existing layer
// with the same name is removed first.
func (l *List) AddFirst(layer Layer) {
	l.removeIfPresent(layer.Name())
	l.layers = append([]Layer{layer}, l.layers...)
}

// AddLast puts layer at the lowest-priority position. An existing layer
// with the same name is removed first.
func (l *List) AddLast(layer Layer) {
	l.removeIfPresent(layer.Name())
	l.layers = append(l.layers, layer)
}

// InsertBefore places layer immediately ahead of the layer named anchor,
// giving it higher priority than the anchor. An existing layer with the
// same name as the inserted one is removed first.
func (l *List) InsertBefore(anchor string, layer Layer) error {
	i, err := l.anchorIndex(anchor, layer)
	if err != nil {
		return err
	}
	l.insertAt(i, layer)
	return nil
}

// InsertAfter places layer immediately behind the layer named anchor,
// giving it lower priority than the anchor.
func (l *List) InsertAfter(anchor string, layer Layer) error {
	i, err := l.anchorIndex(anchor, layer)
	if err != nil {
		return err
	}
	l.insertAt(i+1, layer)
	return nil
}

// Replace swaps the layer named name for the given layer at the same
// position.
func (l *List) Replace(name string, layer Layer) error {
	i := l.indexOf(name)
	if i < 0 {
		return fmt.Errorf("replace %q: %w", name, ErrLayerNotFound)
	}
	l.layers[i] = layer
	return nil
}

// Remove deletes the layer with the given name and returns it, or nil if
// no such layer exists.
func (l *List) Remove(name string) Layer {
	i := l.indexOf(name)
	if i < 0 {
		return nil
	}
	removed := l.layers[i]
	l.layers = append(l.layers[:i], l.layers[i+1:]...)
	return removed
}

// Resolve looks key up across the list in priority order. The first layer
// containing the key supplies the value; origin-tracked values are
// unwrapped before being returned.
func (l *List) Resolve(key string) (any, bool) {
	for _, layer := range l.layers {
		if v, ok := layer.Get(key); ok {
			return origin.Unwrap(v), true
		}
	}
	return nil, false
}

// anchorIndex resolves the insertion anchor, removing any same-named layer
// beforehand so the returned index stays valid.
func (l *List) anchorIndex(anchor string, layer Layer) (int, error) {
	if anchor == layer.Name() {
		return -1, fmt.Errorf("insert %q relative to %q: %w", layer.Name(), anchor, ErrSelfAnchor)
	}
	l.removeIfPresent(layer.Name())
	i := l.indexOf(anchor)
	if i < 0 {
		return -1, fmt.Errorf("insert relative to %q: %w", anchor, ErrLayerNotFound)
	}
	return i, nil
}

func (l *List) insertAt(i int, layer Layer) {
	l.layers = append(l.layers, nil)
	copy(l.layers[i+1:], l.layers[i:])
	l.layers[i] = layer
}

func (l *List) indexOf(name string) int {
	for i, layer := range l.layers {
		if layer.Name() == name {
			return i
		}
	}
	return -1
}

func (l *List) removeIfPresent(name string) {
	if i := l.indexOf(name); i >= 0 {
		l.layers = append(l.layers[:i], l.layers[i+1:]...)
	}
}
