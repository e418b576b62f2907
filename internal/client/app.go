// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
	"github.com/MKhiriev/go-hjson-config/internal/app"
	"github.com/MKhiriev/go-hjson-config/internal/config"
	"github.com/MKhiriev/go-hjson-config/internal/logger"
)

var errClipboardUnsupported = errors.New("clipboard is not supported on this system")

var _ Client = (*App)(nil)

// App resolves the configured input files and writes the result.
type App struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
	clip   Clipboard
	loader *hjsonconfig.Loader
}

// NewApp builds an App from validated settings. stdout receives the result
// unless an output path is set; stderr receives the provenance report.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger, stdout, stderr io.Writer, clip Clipboard) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil settings")
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Output.Clipboard && clip == nil {
		return nil, fmt.Errorf("%w: %w", app.ErrOutput, errClipboardUnsupported)
	}

	opts := []hjsonconfig.Option{
		hjsonconfig.WithVerbose(cfg.Log.Verbose),
		hjsonconfig.WithStrict(cfg.Resolve.Strict),
		hjsonconfig.WithMaxDepth(cfg.Resolve.MaxDepth),
		hjsonconfig.WithLogger(log.GetChildLogger().Logger),
	}
	if r := resolverFor(cfg.Resolve); r != nil {
		opts = append(opts, hjsonconfig.WithResolver(r))
	}

	return &App{
		cfg:    cfg,
		log:    log,
		stdout: stdout,
		stderr: stderr,
		clip:   clip,
		loader: hjsonconfig.NewLoader(opts...),
	}, nil
}

// resolverFor builds the fallback lookup: the fallback directory first, then
// the package config directory.
func resolverFor(r config.Resolve) hjsonconfig.Resolver {
	var resolvers []hjsonconfig.Resolver
	if r.FallbackDir != "" {
		resolvers = append(resolvers, hjsonconfig.DirResolver(r.FallbackDir))
	}
	if r.PackageRoot != "" {
		resolvers = append(resolvers, hjsonconfig.PackageResolver(r.PackageRoot))
	}

	switch len(resolvers) {
	case 0:
		return nil
	case 1:
		return resolvers[0]
	default:
		return hjsonconfig.ChainResolver(resolvers...)
	}
}

// Run resolves, renders and writes the configured inputs.
func (a *App) Run() error {
	tree, err := a.loader.LoadAll(a.cfg.Inputs...)
	if err != nil {
		return fmt.Errorf("error resolving configs: %w", err)
	}
	a.log.Debug().
		Strs("inputs", a.cfg.Inputs).
		Strs("imported", tree.ImportedFrom()).
		Int("keys", tree.Len()).
		Msg("configs resolved")

	out, err := hjsonconfig.Encode(tree, a.cfg.OutputFormat())
	if err != nil {
		return fmt.Errorf("%w: %w", app.ErrOutput, err)
	}

	if err := a.write(out); err != nil {
		return fmt.Errorf("%w: %w", app.ErrOutput, err)
	}

	if a.cfg.Output.Explain {
		if _, err := io.WriteString(a.stderr, renderExplain(tree, a.cfg.Inputs, a.cfg.Output.NoColor)); err != nil {
			return fmt.Errorf("%w: %w", app.ErrOutput, err)
		}
	}

	if a.cfg.Output.Clipboard {
		if err := a.clip.WriteAll(string(out)); err != nil {
			return fmt.Errorf("%w: error copying to clipboard: %w", app.ErrOutput, err)
		}
		a.log.Info().Msg("result copied to clipboard")
	}

	return nil
}

func (a *App) write(out []byte) error {
	if a.cfg.Output.Path == "" {
		_, err := a.stdout.Write(out)
		return err
	}

	if err := os.WriteFile(a.cfg.Output.Path, out, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", a.cfg.Output.Path, err)
	}
	a.log.ForFile(a.cfg.Output.Path).Info().Msg("result written")
	return nil
}
