// Package appconfig provides database operations for the kiosk's app configuration.
//
// # Interface Implementation
//
//	var _ http.AppConfigStore = (*Repository)(nil)
package appconfig

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/entities"
)

// Repository handles the app configuration singleton.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new app configuration repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAppConfig returns the configuration, creating it with defaults on first access.
func (r *Repository) GetAppConfig(ctx context.Context) (*entities.AppConfig, bool, error) {
	return database.FirstOrCreate(ctx, r.db, entities.AppConfigID, entities.DefaultAppConfig)
}

// FindAppConfig returns the configuration or entities.ErrNotFound. It never creates it.
func (r *Repository) FindAppConfig(ctx context.Context) (*entities.AppConfig, error) {
	return database.Find[entities.AppConfig](ctx, r.db, entities.AppConfigID)
}

// UpdateAppConfig merges the supplied fields and refreshes updated_at.
func (r *Repository) UpdateAppConfig(ctx context.Context, update entities.AppConfigUpdate) (*entities.AppConfig, error) {
	return database.Upsert(ctx, r.db, entities.AppConfigID, entities.DefaultAppConfig, update.Fields(time.Now().UTC()))
}
