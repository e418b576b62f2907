// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds the length of a config-file chain.
const DefaultMaxDepth = 32

// Loader reads config files and expands their config-file references.
// A Loader holds no per-load state and may be reused.
type Loader struct {
	reader   FileReader
	resolver Resolver
	strict   bool
	verbose  bool
	maxDepth int
	log      zerolog.Logger
}

// Option configures a [Loader].
type Option func(*Loader)

// WithVerbose enables debug tracing of every lookup, merge and import on the
// loader's logger. Trees built by the loader inherit the flag.
func WithVerbose(verbose bool) Option {
	return func(l *Loader) {
		l.verbose = verbose
	}
}

// WithResolver sets the fallback location consulted when a file cannot be
// opened. Without a resolver there is no fallback.
func WithResolver(r Resolver) Option {
	return func(l *Loader) {
		l.resolver = r
	}
}

// WithStrict makes a missing file referenced through config-file fatal
// instead of silently contributing nothing.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithMaxDepth bounds the config-file chain length. Values below 1 restore
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(l *Loader) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		l.maxDepth = depth
	}
}

// WithLogger sets the logger used for verbose tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithFileReader replaces the filesystem reader.
func WithFileReader(r FileReader) Option {
	return func(l *Loader) {
		if r != nil {
			l.reader = r
		}
	}
}

// NewLoader builds a loader reading from the local filesystem, lenient about
// missing referenced files, with no fallback resolver and silent logging.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		reader:   OSFileReader{},
		maxDepth: DefaultMaxDepth,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path, expands its config-file references and returns the
// resolved tree using a default [Loader].
func Load(path string, verbose bool) (*Tree, error) {
	return NewLoader(WithVerbose(verbose)).Load(path)
}

// Load reads path and expands its config-file references. A path that cannot
// be read directly or through the resolver fails with [ErrNotFound].
func (l *Loader) Load(path string) (*Tree, error) {
	t, err := l.loadFile(path, true, l.verbose, chain{})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadAll loads every path as [Loader.Load] does and merges the results
// left to right, so later files win. The result keeps the source path of the
// first file.
func (l *Loader) LoadAll(paths ...string) (*Tree, error) {
	out := newTreeWithVerbose(l.verbose)
	var first string
	for i, p := range paths {
		t, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			first = t.sourcePath
		}
		out = Merge(out, t)
	}
	out.sourcePath = first
	return out, nil
}

// Expand resolves t's config-file entry in place. It is a no-op when the
// entry is absent or null, so expanding a resolved tree twice changes
// nothing.
func (l *Loader) Expand(t *Tree) error {
	var c chain
	if t.sourcePath != "" {
		c = c.push(t.sourcePath)
	}
	return l.expand(t, c)
}

// loadFile reads, parses and expands a single file of a chain.
func (l *Loader) loadFile(path string, allowFallback, verbose bool, c chain) (*Tree, error) {
	data, used, err := l.read(path, allowFallback, verbose)
	if err != nil {
		return nil, newLoadError(path, c.display, err)
	}

	if c.contains(used) {
		return nil, newLoadError(path, c.display, ErrCircularReference)
	}
	if len(c.display) >= l.maxDepth {
		return nil, newLoadError(path, c.display, fmt.Errorf("%w: limit is %d", ErrChainTooDeep, l.maxDepth))
	}
	c = c.push(used)

	t, err := Parse(data)
	if err != nil {
		return nil, newLoadError(used, c.display[:len(c.display)-1], err)
	}
	t.verbose = verbose
	t.setSourcePath(used)
	t.stampOrigin(used)
	l.debug(verbose).Str("file", used).Strs("keys", t.Keys()).Msg("config file parsed")

	if err := l.expand(t, c); err != nil {
		return nil, err
	}
	return t, nil
}

// read returns the contents of path, falling back to the resolver at most
// once. The returned string is the path actually read.
func (l *Loader) read(path string, allowFallback, verbose bool) ([]byte, string, error) {
	data, err := l.reader.ReadFile(path)
	if err == nil {
		return data, path, nil
	}
	l.debug(verbose).Str("file", path).Err(err).Msg("could not open config file")

	if !allowFallback || l.resolver == nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	alt, rerr := l.resolver.Resolve(path)
	if rerr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, errors.Join(err, rerr))
	}
	if filepath.Clean(alt) == filepath.Clean(path) {
		l.debug(verbose).Str("file", path).Msg("fallback resolves to the same file")
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	l.debug(verbose).Str("file", path).Str("fallback", alt).Msg("trying fallback location")
	data, ferr := l.reader.ReadFile(alt)
	if ferr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, errors.Join(err, ferr))
	}
	return data, alt, nil
}

func (l *Loader) debug(verbose bool) *zerolog.Event {
	if !verbose {
		return nil
	}
	return l.log.Debug()
}

// chain is the list of files being resolved in the active call path. It is
// passed by value and never shared between sibling references.
type chain struct {
	canonical []string
	display   []string
}

func (c chain) push(path string) chain {
	return chain{
		canonical: append(slices.Clone(c.canonical), canonicalPath(path)),
		display:   append(slices.Clone(c.display), path),
	}
}

func (c chain) contains(path string) bool {
	return slices.Contains(c.canonical, canonicalPath(path))
}

func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
