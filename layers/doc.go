// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package layers models configuration as an ordered list of named layers.
//
// A [Layer] is a named read-only key/value source. Layers are held in a
// [List] where position encodes priority: layers earlier in the list win
// key lookups over later ones. The standard startup list (see
// [NewStandardList]) orders command-line arguments ahead of system
// properties ahead of the process environment.
//
// [MapLayer] is the canonical in-memory layer: immutable after
// construction and insertion-ordered, so iterating its keys reproduces the
// order values were recorded in.
package layers
