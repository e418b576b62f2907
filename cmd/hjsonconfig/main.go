package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-hjson-config/internal/app"
	"github.com/MKhiriev/go-hjson-config/internal/client"
	"github.com/MKhiriev/go-hjson-config/internal/config"
	"github.com/MKhiriev/go-hjson-config/internal/logger"
	"github.com/MKhiriev/go-hjson-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.GetStructuredConfig(args, stderr)
	if err != nil {
		return report(stderr, err)
	}

	if cfg.ShowVersion {
		fmt.Fprint(stdout, models.NewBuildInfo(buildVersion, buildDate, buildCommit))
		return app.ExitOK
	}

	var log *logger.Logger
	if cfg.Log.JSON {
		log = logger.NewLogger("hjsonconfig", stderr, cfg.Log.Verbose)
	} else {
		log = logger.NewConsoleLogger("hjsonconfig", stderr, cfg.Log.Verbose, cfg.Output.NoColor)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	var clip client.Clipboard
	if cfg.Output.Clipboard {
		clip = client.SystemClipboard()
	}

	a, err := client.NewApp(cfg, log, stdout, stderr, clip)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		code, _ := app.Classify(err)
		return code
	}

	if err = a.Run(); err != nil {
		code, msg := app.Classify(err)
		log.Error().Err(err).Int("exit_code", code).Msg(msg)
		return code
	}
	return app.ExitOK
}

// report prints errors raised before the logger exists.
func report(w io.Writer, err error) int {
	code, msg := app.Classify(err)
	if code != app.ExitOK {
		fmt.Fprintf(w, "%s: %v\n", msg, err)
	}
	return code
}
