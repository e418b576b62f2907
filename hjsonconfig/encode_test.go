package hjsonconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resolvedSample mirrors a tree after expansion: bookkeeping keys included,
// nested keys in alphabetical order.
func resolvedSample(t *testing.T) *Tree {
	t.Helper()
	return treeOf(t,
		"test1", "from-A",
		"count", 3,
		"ratio", 0.25,
		"whole", 2.0,
		"exp", 1e3,
		"enabled", true,
		"db", treeOf(t, "host", "localhost", "port", 5432),
		"tags", []any{"a", "b"},
		"config-file", nil,
		"imported-config-file", []any{"B.hjson"},
	)
}

func TestMarshalJSON_KeepsOrder(t *testing.T) {
	tree := treeOf(t, "z", 1, "a", "x", "n", nil)

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","n":null}`, string(out))
}

func TestMarshalJSON_Nested(t *testing.T) {
	tree := treeOf(t, "outer", treeOf(t, "y", 1, "x", 2), "list", []any{treeOf(t, "k", "v")})

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, `{"outer":{"y":1,"x":2},"list":[{"k":"v"}]}`, string(out))
}

func TestMarshalJSON_FloatsKeepFraction(t *testing.T) {
	tree := treeOf(t, "a", 2.0, "b", 0.25, "c", 1e21, "l", []any{1.0, 3})

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2.0,"b":0.25,"c":1e+21,"l":[1.0,3]}`, string(out))
}

// TestEncode_LargeIntegers verifies that integers beyond int64 are written
// back exactly as they were read.
func TestEncode_LargeIntegers(t *testing.T) {
	tree, err := Parse([]byte(`{big: 12345678901234567890, small: 1}`))
	require.NoError(t, err)

	v, ok := tree.Get("big")
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890"), v)

	for _, format := range []Format{FormatJSON, FormatHjson, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			out, err := Encode(tree, format)
			require.NoError(t, err)
			assert.Contains(t, string(out), "12345678901234567890")
		})
	}

	for _, format := range []Format{FormatJSON, FormatHjson} {
		t.Run(string(format)+" round trip", func(t *testing.T) {
			out, err := Encode(tree, format)
			require.NoError(t, err)

			back, err := Parse(out)
			require.NoError(t, err)
			assert.True(t, tree.Equal(back), "round trip changed the tree:\n%s", out)
		})
	}
}

// TestEncode_RoundTrip verifies that JSON and Hjson output parse back into an
// equal ordered tree.
func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatHjson} {
		t.Run(string(format), func(t *testing.T) {
			original := resolvedSample(t)

			out, err := Encode(original, format)
			require.NoError(t, err)

			parsed, err := Parse(out)
			require.NoError(t, err)
			assert.True(t, original.Equal(parsed), "round trip changed the tree:\n%s", out)
		})
	}
}

func TestEncodeYAML_KeepsOrder(t *testing.T) {
	out, err := EncodeYAML(resolvedSample(t))
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Content, 1)
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)

	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{
		"test1", "count", "ratio", "whole", "exp", "enabled", "db", "tags", "config-file", "imported-config-file",
	}, keys)

	var plain map[string]any
	require.NoError(t, yaml.Unmarshal(out, &plain))
	assert.Equal(t, "from-A", plain["test1"])
	assert.Equal(t, 3, plain["count"])
	assert.Equal(t, 2.0, plain["whole"])
	assert.Equal(t, 1000.0, plain["exp"])
	assert.Nil(t, plain["config-file"])
	assert.Equal(t, map[string]any{"host": "localhost", "port": 5432}, plain["db"])
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(New(), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "hjson", expected: FormatHjson},
		{input: "JSON", expected: FormatJSON},
		{input: " yml ", expected: FormatYAML},
		{input: "yaml", expected: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}
