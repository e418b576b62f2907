// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages and process exit codes of the
// hjsonconfig command.
//
// All Msg* constants are human-readable message strings printed on stderr to
// describe why a run failed. Keeping them in one place ensures consistent
// wording throughout the command.
package app

const (
	// MsgInvalidSettings is printed when flags, environment or the settings
	// file cannot be turned into a valid run configuration.
	MsgInvalidSettings = "invalid settings"

	// MsgConfigNotFound is printed when a requested config file, or a
	// referenced one in strict mode, cannot be opened.
	MsgConfigNotFound = "config file not found"

	// MsgMalformedConfig is printed when a config file is not valid Hjson or
	// its root is not an object.
	MsgMalformedConfig = "malformed config file"

	// MsgCircularReference is printed when config-file references loop back
	// onto a file already being resolved.
	MsgCircularReference = "circular config-file reference"

	// MsgChainTooDeep is printed when the config-file chain exceeds the
	// configured maximum depth.
	MsgChainTooDeep = "config-file chain too deep"

	// MsgInvalidReference is printed when a config-file value is neither a
	// path nor a list of paths.
	MsgInvalidReference = "invalid config-file value"

	// MsgOutputFailed is printed when the result cannot be rendered, written
	// or copied.
	MsgOutputFailed = "could not write result"

	// MsgInternalError is printed for failures that match no other class.
	MsgInternalError = "internal error"
)
