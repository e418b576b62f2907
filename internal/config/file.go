// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
)

// parseSettingsFile reads an Hjson settings file. The file is resolved like
// any other config, so it may pull shared settings in through config-file;
// missing referenced files are errors here.
func parseSettingsFile(path string) (*StructuredConfig, error) {
	tree, err := hjsonconfig.NewLoader(hjsonconfig.WithStrict(true)).Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := tree.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding settings file: %w", err)
	}

	return cfg, nil
}
