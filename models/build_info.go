// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds plain value types shared by the command packages.
package models

import (
	"fmt"
	"strings"
)

// BuildInfo carries build-time metadata injected through linker flags.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]. Empty values are reported as N/A.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: valueOrNA(version),
		date:    valueOrNA(date),
		commit:  valueOrNA(commit),
	}
}

// Version returns the release version of the build.
func (b BuildInfo) Version() string {
	return b.version
}

// Date returns the build timestamp.
func (b BuildInfo) Date() string {
	return b.date
}

// Commit returns the source commit hash used for the build.
func (b BuildInfo) Commit() string {
	return b.commit
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.version, b.date, b.commit)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
