package config

import "github.com/mrlokans/queueboard/internal/entities"

const (
	// DefaultDatabasePath is the SQLite file used when DATABASE_PATH is unset
	DefaultDatabasePath = "./queueboard.db"

	// DefaultEnvFile is loaded before reading the environment when ENV_FILE is unset
	DefaultEnvFile = ".env"

	DefaultNumberResetSchedule = "0 4 * * *" // Every day at 04:00

	DefaultRSSFeedURL = entities.DefaultRSSFeedURL
	DefaultCity       = entities.DefaultCity
)
