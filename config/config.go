package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFile is read when no other file is requested.
const DefaultEnvFile = ".env"

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrDuplicateEnvKey    = errors.New("env file sets the same key more than once")
)

type Config struct {
	AppName     string   `envconfig:"APP_NAME"     default:"FastAPI Shop"`
	Debug       bool     `envconfig:"DEBUG"        default:"true"`
	DatabaseURL string   `envconfig:"DATABASE_URL"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	StaticDir   string   `envconfig:"STATIC_DIR"   default:"static"`
	ImagesDir   string   `envconfig:"IMAGES_DIR"   default:"static/images"`
	HTTPPort    string   `envconfig:"HTTP_PORT"    default:":8081"`
	GrpcPort    string   `envconfig:"GRPC_PORT"    default:":50051"` // gRPC health port
	LogLevel    string   `envconfig:"LOG_LEVEL"    default:"info"`
	AutoMigrate bool     `envconfig:"AUTO_MIGRATE" default:"true"`
}

// Load reads envFile (if it exists) into the process environment and decodes
// the environment into a Config. Variables already set in the environment take
// precedence over the file. An empty envFile skips the file entirely.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := loadEnvFile(envFile); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile behaves like godotenv.Load but accepts keys in any case, so
// `database_url=...` and `DATABASE_URL=...` are equivalent.
func loadEnvFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}

	normalized := make(map[string]string, len(values))
	for key, value := range values {
		upper := strings.ToUpper(strings.TrimSpace(key))
		if _, dup := normalized[upper]; dup {
			return fmt.Errorf("env file %s: %w: %s", path, ErrDuplicateEnvKey, upper)
		}
		normalized[upper] = value
	}

	for key, value := range normalized {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("could not export %s from env file: %w", key, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("configuration error: %w", ErrMissingDatabaseURL)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("configuration error: invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if len(c.CorsOrigins) == 0 {
		return errors.New("configuration error: CORS_ORIGINS must contain at least one origin")
	}
	if c.HTTPPort == "" {
		return errors.New("configuration error: HTTP_PORT is not set")
	}
	return nil
}

// AllowAllOrigins reports whether CORS is configured with the wildcard origin.
func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.CorsOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
