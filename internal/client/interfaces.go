// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for runnable command
// applications.
type Client interface {
	// Run executes the command once and returns when done.
	Run() error
}

// Clipboard receives the rendered result when clipboard output is enabled.
type Clipboard interface {
	// WriteAll replaces the clipboard contents with text.
	WriteAll(text string) error
}
