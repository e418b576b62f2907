// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResolverFunc adapts an ordinary function to the [Resolver] interface.
type ResolverFunc func(name string) (string, error)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (string, error) {
	return f(name)
}

// DirResolver resolves names inside dir.
func DirResolver(dir string) Resolver {
	return ResolverFunc(func(name string) (string, error) {
		return filepath.Join(dir, name), nil
	})
}

// PackageResolver resolves names inside the conventional "config" directory
// below root, i.e. root/config/name.
func PackageResolver(root string) Resolver {
	return DirResolver(filepath.Join(root, "config"))
}

// ChainResolver tries each resolver in order and returns the first candidate
// path that exists on disk.
func ChainResolver(resolvers ...Resolver) Resolver {
	return ResolverFunc(func(name string) (string, error) {
		var errs error
		for _, r := range resolvers {
			candidate, err := r.Resolve(name)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if _, err := os.Stat(candidate); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			return candidate, nil
		}
		if errs == nil {
			return "", fmt.Errorf("%w: no fallback for %q", ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: no fallback for %q: %w", ErrNotFound, name, errs)
	})
}

// OSFileReader reads files from the local filesystem.
type OSFileReader struct{}

// ReadFile opens name, reads it fully and closes it on every path.
func (OSFileReader) ReadFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return data, nil
}
