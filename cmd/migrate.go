package main

import (
	"context"
	root "countervalidator"
	"database/sql"
	"fmt"
	"strconv"

	"countervalidator/internal/config"
	"countervalidator/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	return nil
}

// migrateQueue brings the river job tables up to date.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river tables: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "river migration applied", zap.Int("version", v.Version))
	}

	return nil
}

// withDB opens the database for a single migrate subcommand.
func withDB(cfg *config.Config, fn func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		strg, closeStrg := getPostgres(ctx, cfg)
		defer closeStrg()

		if err := setupGoose(); err != nil {
			logger.Fatal(ctx, "could not set up migrations", zap.Error(err))
		}
		if err := fn(ctx, strg.DB.(*sql.DB)); err != nil {
			logger.Fatal(ctx, "migration failed", zap.Error(err))
		}
	}
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database and job queue tables to the latest version",
		Run: withDB(cfg, func(ctx context.Context, db *sql.DB) error {
			if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
				return fmt.Errorf("could not apply migrations: %w", err)
			}

			return migrateQueue(ctx, db)
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Prints applied and pending migrations",
		Run: withDB(cfg, func(ctx context.Context, db *sql.DB) error {
			return goose.StatusContext(ctx, db, migrationsDir) //nolint: wrapcheck
		}),
	}, &cobra.Command{
		Use:   "down-to VERSION",
		Short: "Rolls the schema back to VERSION",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			version, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				logger.Fatal(cmd.Context(), "invalid version", zap.String("version", args[0]))
			}
			withDB(cfg, func(ctx context.Context, db *sql.DB) error {
				return goose.DownToContext(ctx, db, migrationsDir, version) //nolint: wrapcheck
			})(cmd, args)
		},
	})

	return cmd
}
