// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/hjsonconfig_mock.go -package=mock

// FileReader reads whole files. The loader reads every config file through
// it, so tests and embedders can serve files from memory.
type FileReader interface {
	// ReadFile returns the full contents of name or an error when the file
	// cannot be opened or read.
	ReadFile(name string) ([]byte, error)
}

// Resolver maps a config file name that could not be opened onto a path in a
// secondary search location. It is consulted at most once per failed read.
type Resolver interface {
	// Resolve returns the fallback path for name. An error means no fallback
	// location exists for it.
	Resolve(name string) (string, error)
}
