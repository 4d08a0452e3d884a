package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/queueboard/internal/entities"
)

// newLogger routes gorm warnings through w. Lazy-create lookups miss on
// purpose, so record-not-found is not reported.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath and migrates the six kiosk tables.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger(logrus.StandardLogger()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// SQLite allows a single writer; one shared connection serializes the
	// read-modify-write transactions instead of failing with SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entities.AppConfig{},
		&entities.SlideImage{},
		&entities.SlideSettings{},
		&entities.CurrentNumber{},
		&entities.BluetoothRemote{},
		&entities.VoiceSettings{},
	)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.WithField("path", dbPath).Info("Database initialized")

	return &Database{DB: db}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
