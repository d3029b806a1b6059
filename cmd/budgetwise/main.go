package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/SscSPs/budgetwise/internal/cli"
)

var app struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := kong.Parse(&app,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("budgetwise"),
		kong.Description("Envelope budgeting ledger."),
		kong.UsageOnError(),
	)

	interactive := ctx.Command() != "serve"
	budget, err := cli.NewApp(context.Background(), app.Globals, interactive, os.Stderr)
	if err != nil {
		cli.PrintError(ctx.Stderr, err.Error())
		return 1
	}
	defer func() {
		if cerr := budget.Close(); cerr != nil {
			cli.PrintError(ctx.Stderr, cerr.Error())
		}
	}()

	ctx.Bind(budget)
	if err := ctx.Run(); err != nil {
		cli.PrintError(ctx.Stderr, err.Error())
		return 1
	}
	return 0
}

func buildVersion() string {
	version := cli.Version
	if version == "" {
		version = "dev"
	}
	if cli.CommitSHA == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, cli.CommitSHA)
}
