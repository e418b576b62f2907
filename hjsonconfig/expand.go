// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import (
	"errors"
	"fmt"
)

// expand merges the files named by t's config-file entry underneath t.
func (l *Loader) expand(t *Tree, c chain) error {
	raw, ok := t.Get(KeyConfigFile)
	if !ok || raw == nil {
		return nil
	}

	refs, err := references(raw)
	if err != nil {
		return newLoadError(t.sourcePath, c.display, err)
	}
	l.debug(t.verbose).Str("file", t.sourcePath).Strs("imports", refs).Msg("importing config files")

	// Only a tree with a known origin may look for its references in the
	// fallback location.
	allowFallback := t.sourcePath != ""

	base := newTreeWithVerbose(t.verbose)
	for _, ref := range refs {
		sub, err := l.loadReference(ref, allowFallback, t.verbose, c)
		if err != nil {
			return err
		}
		if sub == nil {
			continue
		}
		base = Merge(base, sub)
	}

	t.Set(KeyConfigFile, nil)
	appendImported(t, raw)
	t.importedFrom = append(t.importedFrom, refs...)

	t.replaceEntries(Merge(base, t))
	return nil
}

// loadReference loads one referenced file. A missing file yields a nil tree
// unless the loader is strict.
func (l *Loader) loadReference(ref string, allowFallback, verbose bool, c chain) (*Tree, error) {
	sub, err := l.loadFile(ref, allowFallback, verbose, c)
	if err == nil {
		return sub, nil
	}
	if errors.Is(err, ErrNotFound) && !l.strict {
		l.debug(verbose).Str("file", ref).Msg("referenced config file not found, skipping")
		return nil, nil
	}
	return nil, err
}

// references validates a config-file value and returns the paths it names.
func references(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []any:
		refs := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d is %T, want string", ErrInvalidReference, i, item)
			}
			refs = append(refs, s)
		}
		return refs, nil
	}
	return nil, fmt.Errorf("%w: got %T, want string or list of strings", ErrInvalidReference, raw)
}

// appendImported records an expanded config-file value in the audit trail.
// The value is appended as given, so a list reference becomes one entry.
func appendImported(t *Tree, raw any) {
	entry := cloneValue(raw)
	switch prev := t.values[KeyImportedConfigFile].(type) {
	case []any:
		t.Set(KeyImportedConfigFile, append(cloneValue(prev).([]any), entry))
	case nil:
		t.Set(KeyImportedConfigFile, []any{entry})
	default:
		t.Set(KeyImportedConfigFile, []any{prev, entry})
	}
}
