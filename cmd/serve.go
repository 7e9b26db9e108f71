package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_lingua_path/internal/config"
	"go_lingua_path/internal/handlers"
	"go_lingua_path/internal/middleware"
	"go_lingua_path/internal/repository"
	"go_lingua_path/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		autoMigrate, _ := cmd.Flags().GetBool("migrate")

		cfg, logger, err := loadConfigAndLogger()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Info("Application starting...", slog.String("version", config.AppVersion))

		db, err := repository.NewDB(cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Error closing database connection", slog.Any("error", err))
			} else {
				logger.Info("Database connection closed.")
			}
		}()

		if autoMigrate {
			if err := repository.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		server := &http.Server{
			Addr:         cfg.Server.Port,
			Handler:      newRouter(cfg, db, logger),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}
		return runServer(cmd.Context(), server, logger)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "run schema migration before serving")
}

func newRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) http.Handler {
	catalogRepo := repository.NewGormCatalogRepository()
	learnerRepo := repository.NewGormLearnerRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	levelRepo := repository.NewGormLevelProgressRepository()
	moduleRepo := repository.NewGormModuleProgressRepository()

	progressionService := service.NewProgressionService(db, catalogRepo, learnerRepo, attemptRepo, levelRepo, moduleRepo, cfg)
	progressQueryService := service.NewProgressQueryService(db, catalogRepo, learnerRepo, levelRepo, moduleRepo)
	progressionHandler := handlers.NewProgressionHandler(progressionService, progressQueryService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			logger.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.JWT.SecretKey))
		} else {
			logger.Warn("Authentication disabled; learner identity is read from the X-Learner-ID header")
			r.Use(middleware.DevLearnerContextMiddleware)
		}

		r.Post("/cards/{card_id}/submit", progressionHandler.SubmitCard)
		r.Get("/language-progress", progressionHandler.GetLanguageProgress)
	})

	r.Get("/health", healthHandler(db))
	return r
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := middleware.GetLogger(ctx)
		sqlDB, err := db.DB()
		if err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// runServer serves until SIGINT/SIGTERM or ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}
