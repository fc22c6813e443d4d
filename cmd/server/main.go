package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:   "starwars-api",
		Usage:  "REST API for Star Wars people, planets, users and favorites",
		Flags:  serveFlags(),
		Action: serve,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
