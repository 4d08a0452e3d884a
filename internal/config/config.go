package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite DatabaseDriver = "sqlite"
	DriverMongo  DatabaseDriver = "mongo"
)

type (
	Config struct {
		HTTP
		Global
		Database
		News
		Weather
		NumberReset
		Log
	}

	HTTP struct {
		Port      int32
		Host      string
		APIPrefix string // All resource routes are mounted under it
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   DatabaseDriver
		Path     string // SQLite file
		MongoURL string
		Name     string // Mongo database name
	}
	News struct {
		DefaultFeedURL string        // Used until an app config exists
		FetchTimeout   time.Duration // Total budget of one feed fetch
		MaxItems       int
	}
	Weather struct {
		DefaultCity string
	}
	NumberReset struct {
		Enabled  bool
		Schedule string // Cron format: "0 4 * * *" = daily at 04:00
	}
	Log struct {
		Level      string
		Format     string
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
		Compress   bool
	}
)

// Validate reports settings that would keep the server from starting.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH must be set for the sqlite driver")
		}
	case DriverMongo:
		if c.Database.MongoURL == "" {
			return fmt.Errorf("MONGO_URL must be set for the mongo driver")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME must be set for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q (expected sqlite or mongo)", c.Database.Driver)
	}
	if c.News.MaxItems <= 0 {
		return fmt.Errorf("NEWS_MAX_ITEMS must be positive")
	}
	if c.News.FetchTimeout <= 0 {
		return fmt.Errorf("NEWS_FETCH_TIMEOUT must be positive")
	}
	return nil
}

// loadEnvFile reads ENV_FILE (or .env) into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func NewConfig() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8001)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("api_prefix", "/api")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("mongo_url", "")
	v.SetDefault("db_name", "queueboard")

	v.SetDefault("default_rss_feed_url", DefaultRSSFeedURL)
	v.SetDefault("news_fetch_timeout", "10s")
	v.SetDefault("news_max_items", 20)
	v.SetDefault("default_city", DefaultCity)

	v.SetDefault("number_reset_enabled", false)
	v.SetDefault("number_reset_schedule", DefaultNumberResetSchedule)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_max_age_days", 30)
	v.SetDefault("log_compress", true)

	cfg := &Config{
		HTTP: HTTP{
			Port:      v.GetInt32("PORT"),
			Host:      v.GetString("HOST"),
			APIPrefix: normalizePrefix(v.GetString("API_PREFIX")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   DatabaseDriver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			MongoURL: v.GetString("MONGO_URL"),
			Name:     v.GetString("DB_NAME"),
		},
		News: News{
			DefaultFeedURL: v.GetString("DEFAULT_RSS_FEED_URL"),
			FetchTimeout:   v.GetDuration("NEWS_FETCH_TIMEOUT"),
			MaxItems:       v.GetInt("NEWS_MAX_ITEMS"),
		},
		Weather: Weather{
			DefaultCity: v.GetString("DEFAULT_CITY"),
		},
		NumberReset: NumberReset{
			Enabled:  v.GetBool("NUMBER_RESET_ENABLED"),
			Schedule: v.GetString("NUMBER_RESET_SCHEDULE"),
		},
		Log: Log{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
			Compress:   v.GetBool("LOG_COMPRESS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api". An empty
// prefix or "/" mounts the routes at the root.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
