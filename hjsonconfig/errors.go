// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the loader, parser and encoders. Callers should
// use [errors.Is] to match against these values; most of them arrive wrapped
// in a [*LoadError] carrying the offending path.
var (
	// ErrParse indicates malformed Hjson input. Always fatal.
	ErrParse = errors.New("malformed config file")

	// ErrNotFound indicates that neither the requested path nor its fallback
	// location could be read.
	ErrNotFound = errors.New("config file not found")

	// ErrCircularReference indicates that a file appears twice in the active
	// config-file chain.
	ErrCircularReference = errors.New("circular config-file reference")

	// ErrChainTooDeep indicates that the config-file chain exceeds the
	// loader's maximum depth.
	ErrChainTooDeep = errors.New("config-file reference chain too deep")

	// ErrInvalidReference indicates a config-file value that is neither a
	// string nor a list of strings.
	ErrInvalidReference = errors.New("invalid config-file reference")

	// ErrNotObject is returned by [Parse] when the document root is not an
	// object.
	ErrNotObject = errors.New("config root is not an object")

	// ErrUnknownFormat is returned by [Encode] for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// LoadError describes a failure to load one file of a config-file chain.
type LoadError struct {
	// Path is the file that failed, as it was requested.
	Path string
	// Chain lists the files being resolved when the failure happened,
	// outermost first.
	Chain []string
	// Err is the underlying cause, usually one of the sentinels above.
	Err error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %q: %v", e.Path, e.Err)
	if len(e.Chain) > 0 {
		fmt.Fprintf(&b, " (via %s)", strings.Join(e.Chain, " -> "))
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(path string, chain []string, err error) error {
	return &LoadError{
		Path:  path,
		Chain: append([]string(nil), chain...),
		Err:   err,
	}
}
