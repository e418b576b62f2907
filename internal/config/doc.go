// Package config provides loading, merging, and validation of the
// hjsonconfig command's own settings.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (HJSONCONFIG_ prefix)
//  3. Settings file (Hjson, may itself use config-file)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
