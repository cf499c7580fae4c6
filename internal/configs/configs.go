package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"todo-tracker.com/todo-tracker/internal/snapshot"
	"todo-tracker.com/todo-tracker/pkg/constants"
)

type Config struct {
	AppURL                 string
	SnapshotDriver         string
	SnapshotKey            string
	DatabaseDSN            string
	RedisAddr              string
	RedisKeyPrefix         string
	PostgresDSN            string
	RateLimit              int
	CORSAllowedOrigins     []string
	ShutdownTimeoutSeconds int
}

// fileConfig mirrors the environment keys for the optional TOML file.
type fileConfig struct {
	AppHost                string   `toml:"app_host"`
	AppPort                string   `toml:"app_port"`
	SnapshotDriver         string   `toml:"snapshot_driver"`
	SnapshotKey            string   `toml:"snapshot_key"`
	DatabaseDSN            string   `toml:"database_dsn"`
	RedisHost              string   `toml:"redis_host"`
	RedisPort              string   `toml:"redis_port"`
	RedisKeyPrefix         string   `toml:"redis_key_prefix"`
	PostgresDSN            string   `toml:"postgres_dsn"`
	RateLimit              int      `toml:"rate_limit_per_minute"`
	CORSAllowedOrigins     []string `toml:"cors_allowed_origins"`
	ShutdownTimeoutSeconds int      `toml:"shutdown_timeout_seconds"`
}

// Load reads .env from the working directory when present, then builds the
// Config from TODO_CONFIG_FILE and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}
	return Parse(os.Getenv)
}

// Parse builds a Config from getenv. Environment values override the TOML
// file, which overrides the defaults.
func Parse(getenv func(string) string) (Config, error) {
	var file fileConfig
	if path := getenv("TODO_CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	env := envReader{getenv: getenv}

	appHost := env.getEnv("APP_HOST", orDefault(file.AppHost, "127.0.0.1"))
	appPort := env.getEnv("APP_PORT", orDefault(file.AppPort, "8080"))
	redisHost := env.getEnv("REDIS_HOST", orDefault(file.RedisHost, "127.0.0.1"))
	redisPort := env.getEnv("REDIS_PORT", orDefault(file.RedisPort, "6379"))

	origins := file.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		SnapshotDriver:         env.getEnv("SNAPSHOT_DRIVER", orDefault(file.SnapshotDriver, snapshot.DriverSQLite)),
		SnapshotKey:            env.getEnv("SNAPSHOT_KEY", orDefault(file.SnapshotKey, constants.DefaultSnapshotKey)),
		DatabaseDSN:            env.getEnv("DATABASE_DSN", orDefault(file.DatabaseDSN, "todos.db")),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         env.getEnv("REDIS_KEY_PREFIX", orDefault(file.RedisKeyPrefix, "todo-tracker:")),
		PostgresDSN:            env.getEnv("POSTGRES_DSN", file.PostgresDSN),
		RateLimit:              env.getEnvAsInt("RATE_LIMIT_PER_MINUTE", orDefaultInt(file.RateLimit, 60)),
		CORSAllowedOrigins:     env.getEnvAsList("CORS_ALLOWED_ORIGINS", origins),
		ShutdownTimeoutSeconds: env.getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", orDefaultInt(file.ShutdownTimeoutSeconds, 20)),
	}

	if err := env.err(); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if !snapshot.ValidDriver(cfg.SnapshotDriver) {
		return fmt.Errorf("SNAPSHOT_DRIVER must be one of memory, sqlite, redis, postgres (got %q)", cfg.SnapshotDriver)
	}
	if cfg.SnapshotKey == "" {
		return errors.New("SNAPSHOT_KEY must not be empty")
	}
	if cfg.SnapshotDriver == snapshot.DriverSQLite && cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.SnapshotDriver == snapshot.DriverPostgres && cfg.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN must be set when SNAPSHOT_DRIVER=postgres")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (e *envReader) getEnv(key, defaultVal string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func (e *envReader) getEnvAsInt(key string, defaultVal int) int {
	v := e.getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid integer value for %s", key))
		return defaultVal
	}
	return i
}

func (e *envReader) getEnvAsList(key string, defaultVal []string) []string {
	v := e.getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (e *envReader) err() error {
	return errors.Join(e.errs...)
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func orDefaultInt(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}
