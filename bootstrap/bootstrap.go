// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap runs environment post-processors against a layer list
// during process startup.
//
// A post-processor declares an integer order; lower values run earlier.
// Run sorts the given processors by order and invokes them once each, in
// sequence, against the same list. Post-processors never fail startup:
// anything recoverable is handled (and logged) inside the processor.
package bootstrap

import (
	"math"
	"sort"

	"github.com/MKhiriev/go-conf-layers/layers"
)

// Precedence bounds for post-processor ordering.
const (
	// HighestPrecedence is the order value of a processor that runs before
	// every other.
	HighestPrecedence = math.MinInt32

	// LowestPrecedence is the order value of a processor that runs after
	// every other.
	LowestPrecedence = math.MaxInt32
)

// PostProcessor mutates a layer list during startup, before
// configuration-dependent initialization reads from it.
type PostProcessor interface {
	// Order determines when the processor runs relative to others; lower
	// means earlier.
	Order() int

	// PostProcess inspects and mutates the list. It must not panic and
	// has no error path: failures degrade to no-ops.
	PostProcess(list *layers.List)
}

// Run executes the processors against list in ascending order. Processors
// with equal order run in the order given.
func Run(list *layers.List, processors ...PostProcessor) {
	sorted := make([]PostProcessor, len(processors))
	copy(sorted, processors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	for _, p := range sorted {
		p.PostProcess(list)
	}
}
