package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"starwars-api/internal/seed"
	"starwars-api/internal/server"
	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"
	applog "starwars-api/internal/shared/logger"
	"starwars-api/internal/shared/metrics"

	"github.com/urfave/cli/v3"
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "seed",
			Usage: "Load the sample dataset into an empty store before serving",
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run migrations and start the HTTP server",
		Flags:  serveFlags(),
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "Apply pending database migrations and exit",
		Action: migrate,
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the sample dataset into an empty store and exit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML dataset to load instead of the embedded one",
			},
		},
		Action: seedStore,
	}
}

// bootstrap loads configuration, initializes logging and opens a migrated store
func bootstrap(ctx context.Context) (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	applog.Init(cfg.Logging)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := db.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return cfg, db, nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	_, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

func seedStore(ctx context.Context, cmd *cli.Command) error {
	cfg, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	file := cmd.String("file")
	if file == "" {
		file = cfg.Seed.File
	}

	return runSeed(ctx, db, file)
}

func runSeed(ctx context.Context, db *database.DB, file string) error {
	ds, err := seed.LoadFile(file)
	if err != nil {
		return err
	}

	svc := server.NewServices(db, slog.Default())
	_, err = seed.NewSeeder(db, svc.People, svc.Planets, svc.Users, slog.Default()).Run(ctx, ds)
	return err
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	logger := slog.With("component", "main")

	if cfg.Seed.Enabled || cmd.Bool("seed") {
		if err := runSeed(ctx, db, cfg.Seed.File); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	m := metrics.New()
	if err := m.RegisterDB(db.DB.DB, "starwars"); err != nil {
		return fmt.Errorf("failed to register database metrics: %w", err)
	}

	appLogger := slog.Default()
	routes := server.NewRoutes(db, server.NewServices(db, appLogger), m, cfg, appLogger)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      routes.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
			"driver", db.DriverName(),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
