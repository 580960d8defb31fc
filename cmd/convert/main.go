// Package main provides the entry point for the convert CLI tool.
package main

import (
	"context"
	"os"

	"github.com/fabric8-launcher/boosterconv/cmd/convert/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling so an interrupted clone is killed
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Debug().Err(err).Msg("Conversion failed")
		app.ExitOnError(err)
	}
}
