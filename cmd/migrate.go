package main

import (
	"fmt"
	"log/slog"

	"go_lingua_path/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfigAndLogger()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := repository.NewDB(cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := repository.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("Schema migrated", slog.Int("tables", len(repository.Models())))
		return nil
	},
}
