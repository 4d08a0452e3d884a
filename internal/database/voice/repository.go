// Package voice provides database operations for the announcement voice settings.
package voice

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetVoiceSettings returns the voice settings, creating defaults on first access.
func (r *Repository) GetVoiceSettings(ctx context.Context) (*entities.VoiceSettings, bool, error) {
	return database.FirstOrCreate(ctx, r.db, entities.VoiceSettingsID, entities.DefaultVoiceSettings)
}

func (r *Repository) UpdateVoiceSettings(ctx context.Context, update entities.VoiceSettingsUpdate) (*entities.VoiceSettings, error) {
	return database.Upsert(ctx, r.db, entities.VoiceSettingsID, entities.DefaultVoiceSettings, update.Fields())
}
