package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/queueboard/internal/entities"
)

// FirstOrCreate loads the row with the given id, inserting the defaults when
// it does not exist yet. The returned flag reports whether this call created it.
func FirstOrCreate[T any](ctx context.Context, db *gorm.DB, id string, defaults func() *T) (*T, bool, error) {
	doc := new(T)
	err := db.WithContext(ctx).Where("id = ?", id).First(doc).Error
	if err == nil {
		return doc, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	doc = defaults()
	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(doc)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 1 {
		return doc, true, nil
	}

	// Another request inserted it between our read and write.
	doc = new(T)
	if err := db.WithContext(ctx).Where("id = ?", id).First(doc).Error; err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

// Upsert merges fields into the row with the given id, creating it from the
// defaults first when missing. Columns absent from fields keep their values.
func Upsert[T any](ctx context.Context, db *gorm.DB, id string, defaults func() *T, fields entities.Fields) (*T, error) {
	var doc *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, _, err := FirstOrCreate(ctx, tx, id, defaults); err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(map[string]any(fields)).Error; err != nil {
				return err
			}
		}
		doc = new(T)
		return tx.Where("id = ?", id).First(doc).Error
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Find loads the row with the given id without creating it.
func Find[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	doc := new(T)
	err := db.WithContext(ctx).Where("id = ?", id).First(doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
