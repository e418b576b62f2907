// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
)

// validate checks that the final merged [StructuredConfig] can drive a run.
// A version request needs nothing else.
func (cfg *StructuredConfig) validate() error {
	if cfg.ShowVersion {
		return nil
	}

	if len(cfg.Inputs) == 0 {
		return ErrNoInputs
	}

	if _, err := hjsonconfig.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	if cfg.Resolve.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidResolveConfigs, cfg.Resolve.MaxDepth)
	}

	return nil
}

// OutputFormat returns the validated output format.
func (cfg *StructuredConfig) OutputFormat() hjsonconfig.Format {
	f, err := hjsonconfig.ParseFormat(cfg.Output.Format)
	if err != nil {
		return hjsonconfig.FormatHjson
	}
	return f
}
