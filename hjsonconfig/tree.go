// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Reserved keys driving config-file expansion.
const (
	// KeyConfigFile names the file (or list of files) providing the base layer.
	KeyConfigFile = "config-file"
	// KeyImportedConfigFile is the audit trail of expanded config-file values.
	KeyImportedConfigFile = "imported-config-file"
)

// Tree is an ordered key/value container that remembers where it came from.
//
// Values are one of: string, int64, float64, bool, nil, *Tree or []any
// holding values of the same kinds. Integers too large for int64 are held as
// json.Number. Key insertion order is preserved by every
// operation, including [Merge] and the encoders.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	keys   []string
	values map[string]any

	// origins maps a top-level key to the file that supplied its value.
	origins map[string]string

	sourcePath   string
	importedFrom []string
	verbose      bool
}

// New returns an empty tree with no source path.
func New() *Tree {
	return &Tree{
		values:  make(map[string]any),
		origins: make(map[string]string),
	}
}

func newTreeWithVerbose(verbose bool) *Tree {
	t := New()
	t.verbose = verbose
	return t
}

// SourcePath returns the path the tree was loaded from, or "" when the tree
// was built in code.
func (t *Tree) SourcePath() string {
	return t.sourcePath
}

// setSourcePath records path unless a source path is already known.
func (t *Tree) setSourcePath(path string) {
	if t.sourcePath == "" {
		t.sourcePath = path
	}
}

// ImportedFrom returns the paths merged into the tree as base layers, in the
// order they were imported.
func (t *Tree) ImportedFrom() []string {
	return slices.Clone(t.importedFrom)
}

// Verbose reports whether diagnostic tracing is enabled for the tree.
func (t *Tree) Verbose() bool {
	return t.verbose
}

// SetVerbose toggles diagnostic tracing for the tree.
func (t *Tree) SetVerbose(verbose bool) {
	t.verbose = verbose
}

// Len returns the number of top-level entries.
func (t *Tree) Len() int {
	return len(t.keys)
}

// Keys returns the top-level keys in insertion order.
func (t *Tree) Keys() []string {
	return slices.Clone(t.keys)
}

// Has reports whether key is present, even with a nil value.
func (t *Tree) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended at the end; an existing
// key keeps its position. Go maps, slices and integer kinds are normalised to
// the tree's value kinds.
func (t *Tree) Set(key string, value any) {
	t.set(key, normalize(value), t.sourcePath)
}

func (t *Tree) set(key string, value any, origin string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	if origin != "" {
		t.origins[key] = origin
	} else {
		delete(t.origins, key)
	}
}

// Delete removes key and reports whether it was present.
func (t *Tree) Delete(key string) bool {
	if _, ok := t.values[key]; !ok {
		return false
	}
	delete(t.values, key)
	delete(t.origins, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
	return true
}

// Range calls fn for every entry in order until fn returns false.
func (t *Tree) Range(fn func(key string, value any) bool) {
	for _, k := range t.keys {
		if !fn(k, t.values[k]) {
			return
		}
	}
}

// Origin returns the source path of the file that supplied key's current
// value. It reports false for unknown keys and for values set in code on a
// tree without a source path.
func (t *Tree) Origin(key string) (string, bool) {
	o, ok := t.origins[key]
	return o, ok
}

// stampOrigin marks every top-level entry as coming from path.
func (t *Tree) stampOrigin(path string) {
	for _, k := range t.keys {
		t.origins[k] = path
	}
}

// replaceEntries swaps t's entries for src's, keeping t's own metadata.
func (t *Tree) replaceEntries(src *Tree) {
	t.keys = slices.Clone(src.keys)
	t.values = make(map[string]any, len(src.values))
	for k, v := range src.values {
		t.values[k] = v
	}
	t.origins = make(map[string]string, len(src.origins))
	for k, o := range src.origins {
		t.origins[k] = o
	}
}

// Lookup walks nested trees along path and returns the value found there.
func (t *Tree) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return t, true
	}
	cur := t
	for i, key := range path {
		v, ok := cur.values[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := v.(*Tree)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// GetString returns the string stored under key.
func (t *Tree) GetString(key string) (string, bool) {
	s, ok := t.values[key].(string)
	return s, ok
}

// GetInt returns the integer stored under key.
func (t *Tree) GetInt(key string) (int64, bool) {
	i, ok := t.values[key].(int64)
	return i, ok
}

// GetFloat returns the number stored under key; integers are widened.
func (t *Tree) GetFloat(key string) (float64, bool) {
	switch v := t.values[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// GetBool returns the boolean stored under key.
func (t *Tree) GetBool(key string) (bool, bool) {
	b, ok := t.values[key].(bool)
	return b, ok
}

// GetTree returns the nested tree stored under key.
func (t *Tree) GetTree(key string) (*Tree, bool) {
	sub, ok := t.values[key].(*Tree)
	return sub, ok
}

// GetList returns the list stored under key.
func (t *Tree) GetList(key string) ([]any, bool) {
	l, ok := t.values[key].([]any)
	return l, ok
}

// Clone returns a deep copy of t, metadata included.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{
		keys:         slices.Clone(t.keys),
		values:       make(map[string]any, len(t.values)),
		origins:      make(map[string]string, len(t.origins)),
		sourcePath:   t.sourcePath,
		importedFrom: slices.Clone(t.importedFrom),
		verbose:      t.verbose,
	}
	for k, v := range t.values {
		out.values[k] = cloneValue(v)
	}
	for k, o := range t.origins {
		out.origins[k] = o
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Tree:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether t and other hold the same entries in the same order.
// Metadata (source path, imports, origins, verbosity) is not compared.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.keys, other.keys) {
		return false
	}
	for _, k := range t.keys {
		if !valuesEqual(t.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case *Tree:
		bv, ok := b.(*Tree)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// ToMap converts the tree into plain Go maps and slices. Key order is lost.
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any, len(t.keys))
	for _, k := range t.keys {
		out[k] = plainValue(t.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch val := v.(type) {
	case *Tree:
		return val.ToMap()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// Decode stores the tree into the value pointed to by v, following
// encoding/json field rules.
func (t *Tree) Decode(v any) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("error encoding config tree: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding config tree: %w", err)
	}
	return nil
}

// normalize maps arbitrary Go values set in code onto the tree's value kinds.
func normalize(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int64, float64, *Tree:
		return val
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case float32:
		return float64(val)
	case json.Number:
		return numberValue(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sub := New()
		for _, k := range keys {
			sub.set(k, normalize(val[k]), "")
		}
		return sub
	default:
		return v
	}
}

// numberValue maps a decoded number onto int64 or float64. An integer literal
// outside the int64 range is kept as the json.Number it was read as, so it is
// written back unchanged.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return n
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
