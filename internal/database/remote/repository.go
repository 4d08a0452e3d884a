// Package remote provides database operations for the Bluetooth remote
// button mapping.
package remote

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

// GetBluetoothRemote returns the remote mapping, creating defaults on first access.
func (r *Repository) GetBluetoothRemote(ctx context.Context) (*entities.BluetoothRemote, bool, error) {
	return database.FirstOrCreate(ctx, r.db, entities.BluetoothRemoteID, entities.DefaultBluetoothRemote)
}

func (r *Repository) UpdateBluetoothRemote(ctx context.Context, update entities.BluetoothRemoteUpdate) (*entities.BluetoothRemote, error) {
	return database.Upsert(ctx, r.db, entities.BluetoothRemoteID, entities.DefaultBluetoothRemote, update.Fields())
}
