package layers

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-conf-layers/origin"
)

// Merged collapses the list into a single effective key→value map.
//
// Layers are merged from lowest priority to highest with override, so a
// key defined in several layers ends up with the highest-priority value —
// the same answer Resolve gives, but for every enumerable key at once.
// Layers that do not implement Enumerable are skipped: their keys cannot
// be listed. Origin-tracked values are unwrapped.
func (l *List) Merged() (map[string]any, error) {
	result := make(map[string]any)
	for i := len(l.layers) - 1; i >= 0; i-- {
		enum, ok := l.layers[i].(Enumerable)
		if !ok {
			continue
		}

		flat := make(map[string]any)
		for _, key := range enum.Keys() {
			if v, found := enum.Get(key); found {
				flat[key] = origin.Unwrap(v)
			}
		}

		// WithOverwriteWithEmptyValue rather than WithOverride: a
		// higher-priority nil or empty value must still shadow a lower
		// layer's entry, the same answer Resolve gives.
		if err := mergo.Merge(&result, flat, mergo.WithOverwriteWithEmptyValue); err != nil {
			return nil, fmt.Errorf("error merging layer %q: %w", enum.Name(), err)
		}
	}
	return result, nil
}
