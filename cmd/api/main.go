package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/pageza/recipebook/backend/internal/logging"
	"github.com/pageza/recipebook/backend/internal/server"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/spoonacular"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		slog.Error("recipebook failed", "error", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "recipebook",
		Usage:  "Recipe search, user recipes and favorites backend",
		Action: serve,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "How long to wait for in-flight requests on shutdown",
				Value: 10 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply schema migrations before serving",
				Value: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Apply schema migrations and exit",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "Create demo users with one recipe each",
				Action: seed,
			},
		},
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Info("configuration loaded", "environment", config.GetEnvironment(), "db_type", cfg.DBType)
	return cfg, logger, nil
}

func migrate(ctx context.Context, _ *cli.Command) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.Migrate(ctx, db, logger)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Bool("migrate") {
		if err := database.Migrate(ctx, db, logger); err != nil {
			return err
		}
	}

	var tokens service.TokenStore
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		tokens = service.NewRedisTokenStore(client)
	} else {
		logger.Warn("redis not configured, revoked tokens are kept in memory")
		tokens = service.NewMemoryTokenStore()
	}

	var storage service.ObjectStorage
	if cfg.S3Enabled() {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return err
		}
		storage = s3cfg
	} else {
		logger.Warn("S3 not configured, profile picture uploads are disabled")
	}

	provider := spoonacular.NewClient(spoonacular.Config{
		APIKey:      cfg.SpoonacularAPIKey,
		BaseURL:     cfg.SpoonacularBaseURL,
		Timeout:     cfg.ProviderTimeout,
		Concurrency: cfg.ProviderConcurrency,
	}, logger)

	srv := server.New(cfg, server.Dependencies{
		Executor: database.NewExecutor(db, logger),
		Provider: provider,
		Tokens:   tokens,
		Storage:  storage,
	}, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cmd.Duration("shutdown-timeout"))
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
