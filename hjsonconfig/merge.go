// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hjsonconfig

import "slices"

// Merge deep-merges overlay on top of base and returns a new tree. Neither
// input is modified.
//
// Nested trees are merged recursively. Base key order is kept; keys that only
// exist in overlay are appended in overlay order. Any other overlay value,
// including nil and lists, replaces the base value.
//
// The result is verbose when either input is. It carries overlay's source
// path (base's when overlay has none) and the import lists of both inputs.
func Merge(base, overlay *Tree) *Tree {
	switch {
	case base == nil && overlay == nil:
		return New()
	case base == nil:
		return overlay.Clone()
	case overlay == nil:
		return base.Clone()
	}

	out := mergeTrees(base, overlay)
	out.verbose = base.verbose || overlay.verbose
	out.sourcePath = overlay.sourcePath
	if out.sourcePath == "" {
		out.sourcePath = base.sourcePath
	}
	out.importedFrom = append(slices.Clone(base.importedFrom), overlay.importedFrom...)
	return out
}

func mergeTrees(base, overlay *Tree) *Tree {
	out := New()
	for _, k := range base.keys {
		out.set(k, cloneValue(base.values[k]), base.origins[k])
	}
	for _, k := range overlay.keys {
		ov := overlay.values[k]
		if bt, ok := out.values[k].(*Tree); ok {
			if ot, ok := ov.(*Tree); ok {
				merged := mergeTrees(bt, ot)
				merged.sourcePath = ot.sourcePath
				out.set(k, merged, overlay.origins[k])
				continue
			}
		}
		out.set(k, cloneValue(ov), overlay.origins[k])
	}
	return out
}
