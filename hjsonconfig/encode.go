// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v3"
)

// Format selects the text representation produced by [Encode].
type Format string

// Supported output formats.
const (
	FormatHjson Format = "hjson"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a case-insensitive name ("hjson", "json", "yaml", "yml")
// onto a [Format].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hjson":
		return FormatHjson, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode renders t in the requested format, keeping key order.
func Encode(t *Tree, format Format) ([]byte, error) {
	switch format {
	case FormatHjson:
		return EncodeHjson(t)
	case FormatJSON:
		return EncodeJSON(t)
	case FormatYAML:
		return EncodeYAML(t)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// MarshalJSON implements json.Marshaler with keys in insertion order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalJSONValue(t.values[k])
		if err != nil {
			return nil, fmt.Errorf("error encoding key %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSONValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, fmt.Errorf("unsupported float value %v", val)
		}
		return []byte(formatFloat(val)), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := marshalJSONValue(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}

// formatFloat writes f in its shortest form, keeping a fraction or exponent
// so the value reads back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// EncodeJSON renders t as indented JSON followed by a newline.
func EncodeJSON(t *Tree) ([]byte, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("error encoding json: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("error indenting json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// EncodeHjson renders t as Hjson.
func EncodeHjson(t *Tree) ([]byte, error) {
	out, err := hjson.MarshalWithOptions(toOrderedMap(t), hjson.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("error encoding hjson: %w", err)
	}
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

func toOrderedMap(t *Tree) *hjson.OrderedMap {
	om := hjson.NewOrderedMap()
	for _, k := range t.keys {
		om.Set(k, toHjson(t.values[k]))
	}
	return om
}

func toHjson(v any) any {
	switch val := v.(type) {
	case *Tree:
		return toOrderedMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toHjson(item)
		}
		return out
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return val
		}
		return json.Number(formatFloat(val))
	default:
		return v
	}
}

// EncodeYAML renders t as a YAML document.
func EncodeYAML(t *Tree) ([]byte, error) {
	node, err := toYAMLNode(t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Tree:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range val.keys {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			child, err := toYAMLNode(val.values[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			n.Content = append(n.Content, key, child)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: val.String()}, nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			break
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(val)}, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("error encoding yaml scalar: %w", err)
	}
	return n, nil
}
