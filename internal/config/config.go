// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "io"

// EnvPrefix prefixes every environment variable read by [parseEnv].
const EnvPrefix = "HJSONCONFIG_"

// StructuredConfig is the top-level settings container of the hjsonconfig
// command. It is populated by merging values from command-line flags,
// environment variables, an optional settings file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key in the settings file.
type StructuredConfig struct {
	// Resolve controls how config-file references are followed.
	Resolve Resolve `envPrefix:"RESOLVE_" json:"resolve"`

	// Output controls how the resolved tree is rendered.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Log controls diagnostic output on stderr.
	Log Log `envPrefix:"LOG_" json:"log"`

	// Inputs are the config files to resolve, merged left to right.
	// Flags: positional arguments. Env: HJSONCONFIG_INPUTS (comma separated).
	Inputs []string `env:"INPUTS" envSeparator:"," json:"inputs"`

	// SettingsFilePath is the optional path to an Hjson settings file.
	// Populated via HJSONCONFIG_CONFIG or the -c / -config flag.
	SettingsFilePath string `env:"CONFIG" json:"-"`

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool `json:"-"`
}

// Resolve holds the loader settings.
type Resolve struct {
	// Strict makes a missing referenced file fatal.
	// Env: HJSONCONFIG_RESOLVE_STRICT
	Strict bool `env:"STRICT" json:"strict"`

	// MaxDepth bounds the config-file chain length; zero means default.
	// Env: HJSONCONFIG_RESOLVE_MAX_DEPTH
	MaxDepth int `env:"MAX_DEPTH" json:"max_depth"`

	// FallbackDir is the secondary directory searched for files that cannot
	// be opened. Empty disables the fallback.
	// Env: HJSONCONFIG_RESOLVE_FALLBACK_DIR
	FallbackDir string `env:"FALLBACK_DIR" json:"fallback_dir"`

	// PackageRoot, when set, adds PackageRoot/config as a fallback location
	// searched after FallbackDir.
	// Env: HJSONCONFIG_RESOLVE_PACKAGE_ROOT
	PackageRoot string `env:"PACKAGE_ROOT" json:"package_root"`
}

// Output holds rendering settings.
type Output struct {
	// Format is one of hjson, json or yaml.
	// Env: HJSONCONFIG_OUTPUT_FORMAT
	Format string `env:"FORMAT" json:"format"`

	// Path is the file the result is written to; empty means stdout.
	// Env: HJSONCONFIG_OUTPUT_PATH
	Path string `env:"PATH" json:"path"`

	// Explain prints the origin of every top-level key to stderr.
	// Env: HJSONCONFIG_OUTPUT_EXPLAIN
	Explain bool `env:"EXPLAIN" json:"explain"`

	// Clipboard copies the rendered result to the system clipboard.
	// Env: HJSONCONFIG_OUTPUT_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD" json:"clipboard"`

	// NoColor disables styling of diagnostic output.
	// Env: HJSONCONFIG_OUTPUT_NO_COLOR
	NoColor bool `env:"NO_COLOR" json:"no_color"`
}

// Log holds logging settings.
type Log struct {
	// Verbose traces every lookup and import on stderr.
	// Env: HJSONCONFIG_LOG_VERBOSE
	Verbose bool `env:"VERBOSE" json:"verbose"`

	// JSON switches stderr logging from console to JSON lines.
	// Env: HJSONCONFIG_LOG_JSON
	JSON bool `env:"JSON" json:"json"`
}

// defaults returns the lowest-priority settings layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Output: Output{Format: "hjson"},
	}
}

// GetStructuredConfig loads, merges, and validates the command settings from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. Settings file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Flag usage and parse errors are printed to output.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final settings fail validation.
func GetStructuredConfig(args []string, output io.Writer) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args, output).
		withEnv().
		withFile().
		withDefaults().
		build()
}
