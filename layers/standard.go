// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layers

import (
	"os"
	"strings"
)

// Well-known layer names. A standard startup list carries the system
// properties and system environment layers; the command-line and JNDI
// layers exist only when the hosting process provides them.
const (
	// CommandLineLayerName names the layer backed by command-line
	// arguments, the highest-priority standard layer.
	CommandLineLayerName = "commandLineArgs"

	// JNDILayerName names the servlet-context property layer. It is
	// present only in web-context-capable processes and serves as an
	// insertion anchor for injected layers.
	JNDILayerName = "jndiProperties"

	// SystemPropertiesLayerName names the JVM-style system properties
	// layer, always present in a standard list.
	SystemPropertiesLayerName = "systemProperties"

	// SystemEnvironmentLayerName names the layer backed by the process
	// environment.
	SystemEnvironmentLayerName = "systemEnvironment"
)

// NewStandardList builds the standard startup layer list:
// commandLineArgs (only when args are given) → systemProperties →
// systemEnvironment. The properties layer is populated from props; the
// environment layer snapshots os.Environ at call time.
func NewStandardList(args map[string]any, props map[string]any) *List {
	list := NewList(
		NewMapLayer(SystemPropertiesLayerName, props),
		EnvironLayer(),
	)
	if len(args) > 0 {
		list.AddFirst(NewMapLayer(CommandLineLayerName, args))
	}
	return list
}

// EnvironLayer snapshots the current process environment into a layer
// named systemEnvironment.
func EnvironLayer() *MapLayer {
	b := NewMapBuilder(SystemEnvironmentLayerName)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			b.Put(k, v)
		}
	}
	return b.Build()
}
