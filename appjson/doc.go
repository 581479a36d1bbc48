// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appjson expands inline JSON configuration into a
// high-priority configuration layer.
//
// The post-processor scans the layer list for a raw JSON string under
// spring.application.json (or the environment-variable spelling
// SPRING_APPLICATION_JSON), flattens the nested structure into
// dotted/indexed keys — {"a":{"b":[1,2]}} becomes a.b[0]=1, a.b[1]=2 —
// and inserts the result as a new layer ahead of system-level
// configuration. Every flattened value carries origin metadata naming the
// layer and trigger key it was expanded from.
//
// Nothing in this package fails startup: a malformed trigger value is
// logged as a warning and skipped, and absence of the trigger keys is a
// plain no-op.
package appjson
