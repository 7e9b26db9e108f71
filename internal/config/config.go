// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" or "sqlite"
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// ProgressionConfig tunes the progression engine.
type ProgressionConfig struct {
	// AtomicSubmit runs every write of one submission in a single transaction.
	// When false each step commits on its own.
	AtomicSubmit bool `mapstructure:"atomic_submit"`
}

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Auth        AuthConfig        `mapstructure:"auth"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Progression ProgressionConfig `mapstructure:"progression"`
}

// LoadConfig reads config.yaml from path (or the working directory), an optional .env file and
// APP_* environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.")
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return nil, err
	}

	if cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}
	if cfg.Auth.Enabled && cfg.JWT.SecretKey == "" {
		slog.Warn("Auth is enabled but jwt.secret_key is empty; every token will be rejected.")
	}

	slog.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Bool("atomic_submit", cfg.Progression.AtomicSubmit),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("progression.atomic_submit", DefaultAtomicSubmit)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Learner-ID", "X-Request-Id"})
	v.SetDefault("cors.max_age", 300)
}
