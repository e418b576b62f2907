package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when settings
// are incomplete or invalid.
var (
	// ErrInvalidFlags indicates command-line arguments that could not be
	// parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrNoInputs indicates that no config file to resolve was given.
	ErrNoInputs = errors.New("no input config files given")
	// ErrInvalidOutputConfigs indicates invalid output settings (for
	// example, an unsupported format).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidResolveConfigs indicates invalid resolution settings (for
	// example, a negative max depth).
	ErrInvalidResolveConfigs = errors.New("invalid resolve configuration")
)
