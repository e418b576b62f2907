// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hjsonconfig loads layered configuration from Hjson files.
//
// A file may name other files in its "config-file" entry, either as a single
// path or as a list. Those files are loaded (and expanded in turn), merged
// left to right into a base layer, and the referencing file's own entries are
// merged on top:
//
//	// base.hjson
//	{ level: info, listen: ":8080" }
//
//	// app.hjson
//	{
//	  config-file: base.hjson
//	  level: debug
//	}
//
// Loading app.hjson yields level=debug and listen=":8080". The expanded
// reference is cleared to null and recorded under "imported-config-file".
//
// Relative paths are opened relative to the working directory. When a file
// cannot be opened the [Loader] asks its [Resolver], if any, for a fallback
// location once. Files referenced from other files that cannot be found are
// skipped unless the loader is strict. Cycles and overly long chains are
// reported as [ErrCircularReference] and [ErrChainTooDeep].
package hjsonconfig
