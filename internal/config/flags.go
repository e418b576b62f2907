package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-hjson-config/hjsonconfig"
)

// FormatValue holds an output format chosen on the command line.
// It implements the flag.Value interface.
type FormatValue struct {
	Format hjsonconfig.Format
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-f/-format output format: hjson, json or yaml
//	-o output file path (stdout when empty)
//	-v/-verbose trace lookups and imports on stderr
//	-log-json log as JSON lines instead of console text
//	-strict fail on missing referenced files
//	-max-depth maximum config-file chain length
//	-fallback-dir secondary directory for files that cannot be opened
//	-package-root add <root>/config as a secondary directory
//	-c/-config settings file path
//	-explain print the origin of every top-level key
//	-clipboard copy the rendered result to the clipboard
//	-no-color disable styled diagnostics
//	-version print build information and exit
//
// Remaining arguments are the config files to resolve. Usage and parse
// errors are printed to output; nil discards them.
func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var format FormatValue
	var outputPath string
	var verbose, logJSON bool
	var strict bool
	var maxDepth int
	var fallbackDir, packageRoot string
	var settingsPath string
	var explain, clipboard, noColor bool
	var showVersion bool

	if output == nil {
		output = io.Discard
	}

	fs := flag.NewFlagSet("hjsonconfig", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&format, "f", "Output format: hjson, json or yaml")
	fs.Var(&format, "format", "Output format (alias)")
	fs.StringVar(&outputPath, "o", "", "Output file path")
	fs.BoolVar(&verbose, "v", false, "Verbose tracing")
	fs.BoolVar(&verbose, "verbose", false, "Verbose tracing (alias)")
	fs.BoolVar(&logJSON, "log-json", false, "Log as JSON lines")
	fs.BoolVar(&strict, "strict", false, "Fail on missing referenced files")
	fs.IntVar(&maxDepth, "max-depth", 0, "Maximum config-file chain length")
	fs.StringVar(&fallbackDir, "fallback-dir", "", "Secondary directory for config files")
	fs.StringVar(&packageRoot, "package-root", "", "Search <root>/config for config files")
	fs.StringVar(&settingsPath, "c", "", "Settings file path")
	fs.StringVar(&settingsPath, "config", "", "Settings file path (alias)")
	fs.BoolVar(&explain, "explain", false, "Print the origin of every top-level key")
	fs.BoolVar(&clipboard, "clipboard", false, "Copy the result to the clipboard")
	fs.BoolVar(&noColor, "no-color", false, "Disable styled diagnostics")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: error parsing flags: %w", ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		Resolve: Resolve{
			Strict:      strict,
			MaxDepth:    maxDepth,
			FallbackDir: fallbackDir,
			PackageRoot: packageRoot,
		},
		Output: Output{
			Format:    format.String(),
			Path:      outputPath,
			Explain:   explain,
			Clipboard: clipboard,
			NoColor:   noColor,
		},
		Log: Log{
			Verbose: verbose,
			JSON:    logJSON,
		},
		Inputs:           fs.Args(),
		SettingsFilePath: settingsPath,
		ShowVersion:      showVersion,
	}, nil
}

// String returns the chosen format name, or "" when none was set.
func (f *FormatValue) String() string {
	return string(f.Format)
}

// Set validates the format name and stores it.
func (f *FormatValue) Set(s string) error {
	format, err := hjsonconfig.ParseFormat(s)
	if err != nil {
		return err
	}

	f.Format = format
	return nil
}
