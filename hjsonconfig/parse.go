// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hjson/hjson-go/v4"
)

// Parse decodes Hjson text into a tree, preserving key order. Comments,
// unquoted keys, quoteless strings, trailing commas and a root object without
// braces are accepted. Integral numbers become int64, others float64.
func Parse(data []byte) (*Tree, error) {
	opts := hjson.DefaultDecoderOptions()
	opts.UseJSONNumber = true

	root := hjson.NewOrderedMap()
	if err := hjson.UnmarshalWithOptions(data, root, opts); err != nil {
		var probe any
		if perr := hjson.UnmarshalWithOptions(data, &probe, opts); perr == nil {
			if _, isMap := probe.(map[string]any); !isMap {
				return nil, fmt.Errorf("%w: got %T", ErrNotObject, probe)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return fromOrderedMap(root), nil
}

func fromOrderedMap(om *hjson.OrderedMap) *Tree {
	t := New()
	for _, k := range om.Keys {
		t.set(k, fromHjson(om.Map[k]), "")
	}
	return t
}

// fromHjson converts one decoded value. Nested objects may arrive either as
// ordered maps or as plain maps; plain maps are sorted by key so the result
// stays deterministic.
func fromHjson(v any) any {
	switch val := v.(type) {
	case *hjson.OrderedMap:
		return fromOrderedMap(val)
	case hjson.OrderedMap:
		return fromOrderedMap(&val)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		t := New()
		for _, k := range keys {
			t.set(k, fromHjson(val[k]), "")
		}
		return t
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromHjson(item)
		}
		return out
	case json.Number:
		return numberValue(val)
	default:
		return normalize(v)
	}
}
