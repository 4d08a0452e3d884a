// Package counter provides database operations for the "now serving" number.
//
// Increment and decrement run as a single SQL expression inside a
// transaction, so concurrent callers never lose an update.
package counter

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/entities"
)

// Repository handles the current number singleton.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new counter repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetNumber returns the current number, creating it at entities.MinNumber on first access.
func (r *Repository) GetNumber(ctx context.Context) (*entities.CurrentNumber, bool, error) {
	return database.FirstOrCreate(ctx, r.db, entities.CurrentNumberID, entities.DefaultCurrentNumber)
}

// SetNumber stores n as is. Values below entities.MinNumber are accepted.
func (r *Repository) SetNumber(ctx context.Context, n int) (*entities.CurrentNumber, error) {
	return database.Upsert(ctx, r.db, entities.CurrentNumberID, entities.DefaultCurrentNumber, entities.Fields{
		"number":     n,
		"updated_at": time.Now().UTC(),
	})
}

// IncrementNumber adds one to the current number.
func (r *Repository) IncrementNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return r.adjust(ctx, gorm.Expr("number + 1"))
}

// DecrementNumber subtracts one, never going below entities.MinNumber.
func (r *Repository) DecrementNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return r.adjust(ctx, gorm.Expr("CASE WHEN number - 1 < ? THEN ? ELSE number - 1 END", entities.MinNumber, entities.MinNumber))
}

// ResetNumber sets the number back to entities.MinNumber.
func (r *Repository) ResetNumber(ctx context.Context) (*entities.CurrentNumber, error) {
	return r.SetNumber(ctx, entities.MinNumber)
}

func (r *Repository) adjust(ctx context.Context, expr any) (*entities.CurrentNumber, error) {
	return database.Upsert(ctx, r.db, entities.CurrentNumberID, entities.DefaultCurrentNumber, entities.Fields{
		"number":     expr,
		"updated_at": time.Now().UTC(),
	})
}
