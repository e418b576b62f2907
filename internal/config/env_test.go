// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"HJSONCONFIG_CONFIG": "/path/to/settings.hjson",
		"HJSONCONFIG_INPUTS": "a.hjson,b.hjson",

		"HJSONCONFIG_RESOLVE_STRICT":       "true",
		"HJSONCONFIG_RESOLVE_MAX_DEPTH":    "12",
		"HJSONCONFIG_RESOLVE_FALLBACK_DIR": "/etc/app",
		"HJSONCONFIG_RESOLVE_PACKAGE_ROOT": "/opt/app",

		"HJSONCONFIG_OUTPUT_FORMAT":    "json",
		"HJSONCONFIG_OUTPUT_PATH":      "out.json",
		"HJSONCONFIG_OUTPUT_EXPLAIN":   "true",
		"HJSONCONFIG_OUTPUT_CLIPBOARD": "true",
		"HJSONCONFIG_OUTPUT_NO_COLOR":  "true",

		"HJSONCONFIG_LOG_VERBOSE": "true",
		"HJSONCONFIG_LOG_JSON":    "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/settings.hjson", cfg.SettingsFilePath)
	assert.Equal(t, []string{"a.hjson", "b.hjson"}, cfg.Inputs)

	assert.True(t, cfg.Resolve.Strict)
	assert.Equal(t, 12, cfg.Resolve.MaxDepth)
	assert.Equal(t, "/etc/app", cfg.Resolve.FallbackDir)
	assert.Equal(t, "/opt/app", cfg.Resolve.PackageRoot)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "out.json", cfg.Output.Path)
	assert.True(t, cfg.Output.Explain)
	assert.True(t, cfg.Output.Clipboard)
	assert.True(t, cfg.Output.NoColor)

	assert.True(t, cfg.Log.Verbose)
	assert.True(t, cfg.Log.JSON)
}

// TestParseEnv_IgnoresUnprefixed verifies that variables without the
// HJSONCONFIG_ prefix are not picked up.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"OUTPUT_FORMAT": "yaml",
		"CONFIG":        "/elsewhere.hjson",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Output.Format)
	assert.Empty(t, cfg.SettingsFilePath)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("HJSONCONFIG_RESOLVE_MAX_DEPTH", "not-a-number")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
