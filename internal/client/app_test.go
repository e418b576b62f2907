package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
	"github.com/MKhiriev/go-hjson-config/internal/app"
	"github.com/MKhiriev/go-hjson-config/internal/config"
	"github.com/MKhiriev/go-hjson-config/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig, clip Clipboard) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a, err := NewApp(cfg, logger.Nop(), &stdout, &stderr, clip)
	require.NoError(t, err)
	return a, &stdout, &stderr
}

func TestApp_Run_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.hjson", `{level: "info", port: 8080}`)
	top := writeFile(t, dir, "app.hjson", fmt.Sprintf(`{"config-file": %q, "level": "debug"}`, base))

	cfg := &config.StructuredConfig{
		Inputs: []string{top},
		Output: config.Output{Format: "json"},
	}
	a, stdout, _ := newTestApp(t, cfg, nil)

	require.NoError(t, a.Run())

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "debug", got["level"])
	assert.Equal(t, float64(8080), got["port"])
	assert.Nil(t, got["config-file"])
	assert.Equal(t, []any{base}, got["imported-config-file"])
}

func TestApp_Run_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "app.hjson", `{name: "svc"}`)
	out := filepath.Join(dir, "out.yaml")

	cfg := &config.StructuredConfig{
		Inputs: []string{in},
		Output: config.Output{Format: "yaml", Path: out},
	}
	a, stdout, _ := newTestApp(t, cfg, nil)

	require.NoError(t, a.Run())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name: svc\n", string(data))
}

func TestApp_Run_FallbackDir(t *testing.T) {
	dir := t.TempDir()
	fallback := t.TempDir()
	writeFile(t, fallback, "shared.hjson", `{shared: true}`)
	in := writeFile(t, dir, "app.hjson", `{"config-file": "shared.hjson"}`)

	cfg := &config.StructuredConfig{
		Inputs:  []string{in},
		Output:  config.Output{Format: "json"},
		Resolve: config.Resolve{FallbackDir: fallback, Strict: true},
	}
	a, stdout, _ := newTestApp(t, cfg, nil)

	require.NoError(t, a.Run())
	assert.Contains(t, stdout.String(), `"shared": true`)
}

func TestApp_Run_StrictMissingReference(t *testing.T) {
	in := writeFile(t, t.TempDir(), "app.hjson", `{"config-file": "nowhere.hjson"}`)

	cfg := &config.StructuredConfig{
		Inputs:  []string{in},
		Output:  config.Output{Format: "json"},
		Resolve: config.Resolve{Strict: true},
	}
	a, _, _ := newTestApp(t, cfg, nil)

	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, hjsonconfig.ErrNotFound)

	code, _ := app.Classify(err)
	assert.Equal(t, app.ExitNotFound, code)
}

func TestApp_Run_Explain(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.hjson", `{port: 8080}`)
	top := writeFile(t, dir, "app.hjson", fmt.Sprintf(`{"config-file": %q, "level": "debug"}`, base))

	cfg := &config.StructuredConfig{
		Inputs: []string{top},
		Output: config.Output{Format: "hjson", Explain: true, NoColor: true},
	}
	a, _, stderr := newTestApp(t, cfg, nil)

	require.NoError(t, a.Run())

	report := stderr.String()
	assert.Contains(t, report, "KEY")
	assert.Contains(t, report, "port")
	assert.Contains(t, report, base)
	assert.Contains(t, report, "level")
	assert.Contains(t, report, "imported: "+base)
}

func TestApp_Run_Clipboard(t *testing.T) {
	in := writeFile(t, t.TempDir(), "app.hjson", `{"name": "svc"}`)
	clip := &fakeClipboard{}

	cfg := &config.StructuredConfig{
		Inputs: []string{in},
		Output: config.Output{Format: "json", Clipboard: true},
	}
	a, stdout, _ := newTestApp(t, cfg, clip)

	require.NoError(t, a.Run())
	assert.Equal(t, stdout.String(), clip.text)
}

func TestApp_Run_ClipboardError(t *testing.T) {
	in := writeFile(t, t.TempDir(), "app.hjson", `{"name": "svc"}`)

	cfg := &config.StructuredConfig{
		Inputs: []string{in},
		Output: config.Output{Format: "json", Clipboard: true},
	}
	a, _, _ := newTestApp(t, cfg, &fakeClipboard{err: assert.AnError})

	err := a.Run()
	assert.ErrorIs(t, err, app.ErrOutput)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewApp_Errors(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, nil)
	assert.Error(t, err)

	cfg := &config.StructuredConfig{Output: config.Output{Clipboard: true}}
	_, err = NewApp(cfg, nil, nil, nil, nil)
	assert.ErrorIs(t, err, app.ErrOutput)
}

func TestResolverFor(t *testing.T) {
	assert.Nil(t, resolverFor(config.Resolve{}))

	p, err := resolverFor(config.Resolve{FallbackDir: "/etc/app"}).Resolve("a.hjson")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/etc/app", "a.hjson"), p)

	p, err = resolverFor(config.Resolve{PackageRoot: "/opt/app"}).Resolve("a.hjson")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/app", "config", "a.hjson"), p)

	root := t.TempDir()
	writeFile(t, root, "config/a.hjson", `{}`)
	p, err = resolverFor(config.Resolve{FallbackDir: t.TempDir(), PackageRoot: root}).Resolve("a.hjson")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "a.hjson"), p)
}
