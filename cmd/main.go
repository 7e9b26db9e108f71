// cmd/main.go
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"go_lingua_path/internal/config"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Progression engine for vocabulary learning",
	Long:          "lingua-path grades card answers and unlocks levels and modules as learners progress.",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(recomputeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfigAndLogger reads the configuration and installs the application logger as the slog default.
func loadConfigAndLogger() (*config.Config, *slog.Logger, error) {
	// Temporary logger used while the config file is read.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, err
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}

	logger := slog.New(handler).With(slog.String("app", config.AppName))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
