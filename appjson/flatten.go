package appjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-conf-layers/layers"
	"github.com/MKhiriev/go-conf-layers/origin"
)

var (
	errNotAnObject    = errors.New("JSON value is not an object")
	errTrailingTokens = errors.New("unexpected content after JSON object")
)

// member is one key/value pair of a decoded JSON object. Object values
// decode to []member and array values to []any, so a decoded tree keeps
// the source definition order that map[string]any would lose. Numbers
// decode to json.Number to keep their textual form.
type member struct {
	key   string
	value any
}

// decodeObject decodes raw into an ordered member tree. It fails for
// malformed JSON and for any top-level value that is not an object.
func decodeObject(raw string) ([]member, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error reading JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotAnObject
	}

	members, err := decodeMembers(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingTokens
	}
	return members, nil
}

// decodeMembers reads object members up to and including the closing
// brace. The opening brace has already been consumed.
func decodeMembers(dec *json.Decoder) ([]member, error) {
	var members []member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error reading object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		members = append(members, member{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("error reading object end: %w", err)
	}
	return members, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error reading JSON value: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeMembers(dec)
	case '[':
		var elems []any
		for dec.More() {
			elem, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("error reading array end: %w", err)
		}
		return elems, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

// flattenObject collapses a decoded member tree into a layer of
// dotted/indexed keys. Every scalar is tagged with the layer and trigger
// key the JSON blob came from. Traversal is depth-first in source order,
// so the layer's key order mirrors the order of the JSON text.
func flattenObject(members []member, sourceLayer, triggerKey string) *layers.MapLayer {
	b := layers.NewMapBuilder(LayerName)
	flattenMembers(b, "", members, sourceLayer, triggerKey)
	return b.Build()
}

func flattenMembers(b *layers.MapBuilder, prefix string, members []member, sourceLayer, triggerKey string) {
	for _, m := range members {
		name := m.key
		if prefix != "" {
			name = prefix + "." + m.key
		}
		extract(b, name, m.value, sourceLayer, triggerKey)
	}
}

func extract(b *layers.MapBuilder, name string, value any, sourceLayer, triggerKey string) {
	switch v := value.(type) {
	case []member:
		flattenMembers(b, name, v, sourceLayer, triggerKey)
	case []any:
		for i, elem := range v {
			extract(b, fmt.Sprintf("%s[%d]", name, i), elem, sourceLayer, triggerKey)
		}
	default:
		b.Put(name, origin.New(v, sourceLayer, triggerKey))
	}
}
