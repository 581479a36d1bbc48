// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package origin provides provenance tagging for configuration values.
//
// A configuration value derived from another value (for example a key
// expanded out of a JSON blob) can be wrapped in a [Value] that records
// which layer and which property the derived value came from. The wrapper
// exists for diagnostics only: lookup paths unwrap it with [Unwrap] before
// handing the value to callers, so equality and comparison semantics of
// the plain value are never affected.
package origin

import "fmt"

// Value is a configuration value tagged with its provenance.
type Value struct {
	// Value is the plain scalar value (string, bool, json.Number or nil).
	Value any

	// Layer is the name of the configuration layer the value was derived
	// from.
	Layer string

	// Key is the property name within that layer the value was derived
	// from.
	Key string
}

// New wraps v with the given provenance.
func New(v any, layer, key string) Value {
	return Value{Value: v, Layer: layer, Key: key}
}

// String renders the value together with its provenance, e.g.
// `"8080" from "systemEnvironment":"SPRING_APPLICATION_JSON"`.
func (v Value) String() string {
	return fmt.Sprintf("%q from %q:%q", fmt.Sprint(v.Value), v.Layer, v.Key)
}

// Unwrap returns the plain value inside v if v is a [Value], and v itself
// otherwise.
func Unwrap(v any) any {
	if tracked, ok := v.(Value); ok {
		return tracked.Value
	}
	return v
}
