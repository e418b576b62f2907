// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the hjsonconfig command.
//
// It wires the validated settings into an [hjsonconfig.Loader], resolves the
// input files, renders the result and produces the optional provenance report
// and clipboard copy.
package client
