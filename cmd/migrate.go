package main

import (
	"context"
	"database/sql"
	"fmt"
	root "shortener"
	"shortener/internal/config"
	"shortener/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// migrateCommand constructs the 'migrate' subcommand. Without a subcommand it
// applies the shortener schema and the River job tables up to the latest
// version; 'down' rolls back the last schema migration and 'status' prints
// the applied ones.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrationDB(cfg, func(ctx context.Context, db *sql.DB) error {
				if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
					return fmt.Errorf("could not migrate pgsql: %w", err)
				}

				return migrateRiver(ctx, db)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Rolls back the most recent schema migration",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrationDB(cfg, func(ctx context.Context, db *sql.DB) error {
				return goose.DownContext(ctx, db, migrationsDir)
			})
		},
	}, &cobra.Command{
		Use:   "status",
		Short: "Prints the status of every schema migration",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrationDB(cfg, func(ctx context.Context, db *sql.DB) error {
				return goose.StatusContext(ctx, db, migrationsDir)
			})
		},
	})

	return cmd
}

func withMigrationDB(cfg *config.Config, fn func(ctx context.Context, db *sql.DB) error) {
	ctx := context.Background()

	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
	}

	db, ok := strg.DB.(*sql.DB)
	if !ok {
		logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
	}
	if err := fn(ctx, db); err != nil {
		logger.Fatal(ctx, "migration failed", zap.Error(err))
	}
}

// migrateRiver brings the River job tables up to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		return fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return nil
}
