// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appjson

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-layers/bootstrap"
	"github.com/MKhiriev/go-conf-layers/layers"
	"github.com/MKhiriev/go-conf-layers/origin"
)

const (
	// LayerName is the name of the injected configuration layer. It is
	// the same string as the property-style trigger key.
	LayerName = "spring.application.json"

	// DefaultOrder places the post-processor just after the earliest
	// possible slot, leaving a small gap for processors that must run
	// even before JSON expansion.
	DefaultOrder = bootstrap.HighestPrecedence + 5
)

// The two equivalent trigger keys, checked in this order within a layer.
const (
	triggerProperty = "spring.application.json"
	triggerEnvVar   = "SPRING_APPLICATION_JSON"
)

// CapabilityProbe reports whether the hosting process provides a given
// runtime capability. The post-processor consults a probe once per run to
// decide whether the servlet-context marker layer is a valid insertion
// anchor.
type CapabilityProbe func() bool

// PostProcessor locates inline JSON configuration in a layer list,
// flattens it and injects the result as a new high-priority layer.
// The zero options are usable: default order, no web capability, no
// logging.
type PostProcessor struct {
	order      int
	webCapable CapabilityProbe
	log        zerolog.Logger
}

// Option configures a PostProcessor.
type Option func(*PostProcessor)

// WithOrder overrides the processor's startup order. Lower runs earlier.
func WithOrder(order int) Option {
	return func(p *PostProcessor) { p.order = order }
}

// WithLogger sets the logger used for parse-failure warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(p *PostProcessor) { p.log = log }
}

// WithWebCapability installs the probe that decides whether the
// servlet-context marker layer may serve as the insertion anchor.
func WithWebCapability(probe CapabilityProbe) Option {
	return func(p *PostProcessor) { p.webCapable = probe }
}

// New constructs a PostProcessor with the given options applied.
func New(opts ...Option) *PostProcessor {
	p := &PostProcessor{
		order:      DefaultOrder,
		webCapable: func() bool { return false },
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Order implements bootstrap.PostProcessor.
func (p *PostProcessor) Order() int { return p.order }

// PostProcess implements bootstrap.PostProcessor. It scans list in
// priority order for the first layer defining a trigger key, expands that
// layer's JSON string and injects the flattened result. Absent trigger
// keys are a no-op; an unparseable value is logged and skipped.
func (p *PostProcessor) PostProcess(list *layers.List) {
	source, triggerKey, raw, found := findTrigger(list)
	if !found {
		return
	}
	p.processJSON(list, source, triggerKey, raw)
}

// findTrigger returns the first layer exposing a trigger key together
// with the matched key and its raw value. The property spelling shadows
// the environment spelling within a single layer.
func findTrigger(list *layers.List) (source layers.Layer, triggerKey, raw string, found bool) {
	for _, layer := range list.Slice() {
		for _, key := range []string{triggerProperty, triggerEnvVar} {
			v, ok := layer.Get(key)
			if !ok {
				continue
			}
			unwrapped := origin.Unwrap(v)
			s, ok := unwrapped.(string)
			if !ok {
				// Keeps the offending value visible in the warning; a
				// non-string trigger never parses as a JSON object.
				s = fmt.Sprint(unwrapped)
			}
			return layer, key, s, true
		}
	}
	return nil, "", "", false
}

func (p *PostProcessor) processJSON(list *layers.List, source layers.Layer, triggerKey, raw string) {
	members, err := decodeObject(raw)
	if err != nil {
		p.log.Warn().
			Err(err).
			Str("json", raw).
			Msg("cannot parse JSON for spring.application.json")
		return
	}

	if len(members) == 0 {
		return
	}

	p.insert(list, flattenObject(members, source.Name(), triggerKey))
}

// insert places layer ahead of the servlet-context marker when the web
// capability is available and the marker exists, otherwise ahead of the
// system properties layer. With neither anchor present the layer goes to
// the front of the list.
func (p *PostProcessor) insert(list *layers.List, layer *layers.MapLayer) {
	anchor := layers.SystemPropertiesLayerName
	if p.webCapable() && list.Contains(layers.JNDILayerName) {
		anchor = layers.JNDILayerName
	}

	if list.Contains(anchor) {
		if err := list.InsertBefore(anchor, layer); err == nil {
			return
		}
	}
	list.AddFirst(layer)
}
