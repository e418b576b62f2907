// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"flag"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
	"github.com/MKhiriev/go-hjson-config/internal/config"
)

// Process exit codes. Zero means success.
const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitMalformed   = 4
	ExitReference   = 5
	ExitOutputError = 6
)

// ErrOutput marks failures while rendering, writing or copying the result.
var ErrOutput = errors.New("output error")

// Classify maps an error returned while running the command onto an exit
// code and the message to print.
func Classify(err error) (int, string) {
	switch {
	case err == nil:
		return ExitOK, ""
	case errors.Is(err, flag.ErrHelp):
		return ExitOK, ""
	case errors.Is(err, config.ErrInvalidFlags),
		errors.Is(err, config.ErrNoInputs),
		errors.Is(err, config.ErrInvalidOutputConfigs),
		errors.Is(err, config.ErrInvalidResolveConfigs),
		errors.Is(err, hjsonconfig.ErrUnknownFormat):
		return ExitUsage, MsgInvalidSettings
	case errors.Is(err, hjsonconfig.ErrCircularReference):
		return ExitReference, MsgCircularReference
	case errors.Is(err, hjsonconfig.ErrChainTooDeep):
		return ExitReference, MsgChainTooDeep
	case errors.Is(err, hjsonconfig.ErrInvalidReference):
		return ExitReference, MsgInvalidReference
	case errors.Is(err, hjsonconfig.ErrParse), errors.Is(err, hjsonconfig.ErrNotObject):
		return ExitMalformed, MsgMalformedConfig
	case errors.Is(err, hjsonconfig.ErrNotFound):
		return ExitNotFound, MsgConfigNotFound
	case errors.Is(err, ErrOutput):
		return ExitOutputError, MsgOutputFailed
	default:
		return ExitInternal, MsgInternalError
	}
}
