package main

import (
	"fmt"
	"log/slog"

	"go_lingua_path/internal/model"
	"go_lingua_path/internal/repository"
	"go_lingua_path/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// recomputeCmd rebuilds one learner's module aggregate, e.g. after catalog thresholds changed.
var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute a learner's module progress from level progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		var key model.ModuleKey
		for flag, dst := range map[string]*uuid.UUID{
			"learner":  &key.LearnerID,
			"language": &key.LanguageID,
			"module":   &key.ModuleID,
		} {
			raw, _ := cmd.Flags().GetString(flag)
			id, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", flag, err)
			}
			*dst = id
		}

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

		svc := service.NewProgressionService(db,
			repository.NewGormCatalogRepository(),
			repository.NewGormLearnerRepository(),
			repository.NewGormAttemptRepository(),
			repository.NewGormLevelProgressRepository(),
			repository.NewGormModuleProgressRepository(),
			cfg,
		)
		progress, err := svc.RecomputeModule(cmd.Context(), key)
		if err != nil {
			return err
		}
		logger.Info("Module progress recomputed",
			slog.String("module_id", key.ModuleID.String()),
			slog.Int("completed_levels", progress.CompletedLevels),
			slog.Int("total_levels", progress.TotalLevels),
			slog.Float64("total_score", progress.TotalScore),
			slog.Any("achievements", progress.Achievements),
		)
		return nil
	},
}

func init() {
	recomputeCmd.Flags().String("learner", "", "learner id")
	recomputeCmd.Flags().String("language", "", "language id")
	recomputeCmd.Flags().String("module", "", "module id")
	recomputeCmd.MarkFlagRequired("learner")
	recomputeCmd.MarkFlagRequired("language")
	recomputeCmd.MarkFlagRequired("module")
}
