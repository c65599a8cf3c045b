// Package main is the entry point for the rolodex CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mrz1836/rolodex/internal/cli"
)

// Set by -ldflags at release time.
//
//nolint:gochecknoglobals // Link-time build metadata
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	cli.SetBuildInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
