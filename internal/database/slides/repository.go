// Package slides provides database operations for the slideshow images and
// their playback settings.
//
// # Interface Implementation
//
//	var _ http.SlideStore = (*Repository)(nil)
package slides

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/entities"
)

// Repository handles slide images and the slide settings singleton.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new slides repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListSlides returns at most entities.MaxSlidesListed slides by ascending order.
// Equal order values fall back to creation time.
func (r *Repository) ListSlides(ctx context.Context) ([]entities.SlideImage, error) {
	slides := make([]entities.SlideImage, 0)
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "sort_order"}},
			{Column: clause.Column{Name: "created_at"}},
			{Column: clause.Column{Name: "id"}},
		}}).
		Limit(entities.MaxSlidesListed).
		Find(&slides).Error
	return slides, err
}

// CreateSlide stores a new slide and returns it as persisted.
func (r *Repository) CreateSlide(ctx context.Context, imageBase64 string, order int) (*entities.SlideImage, error) {
	slide := entities.NewSlideImage(imageBase64, order)
	if err := r.db.WithContext(ctx).Create(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

// DeleteSlide removes one slide. Returns entities.ErrNotFound for unknown ids.
func (r *Repository) DeleteSlide(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.SlideImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// ReorderSlides applies each order change on its own. Unknown ids are skipped
// and earlier changes are kept when a later one fails. Returns how many slides
// matched.
func (r *Repository) ReorderSlides(ctx context.Context, orders []entities.SlideOrder) (int, error) {
	updated := 0
	for _, item := range orders {
		if item.Order == nil {
			continue
		}
		result := r.db.WithContext(ctx).Model(&entities.SlideImage{}).
			Where("id = ?", item.ID).
			Update("sort_order", *item.Order)
		if result.Error != nil {
			return updated, result.Error
		}
		updated += int(result.RowsAffected)
	}
	return updated, nil
}

// GetSlideSettings returns the playback settings, creating defaults on first access.
func (r *Repository) GetSlideSettings(ctx context.Context) (*entities.SlideSettings, bool, error) {
	return database.FirstOrCreate(ctx, r.db, entities.SlideSettingsID, entities.DefaultSlideSettings)
}

// UpdateSlideSettings merges the supplied settings.
func (r *Repository) UpdateSlideSettings(ctx context.Context, update entities.SlideSettingsUpdate) (*entities.SlideSettings, error) {
	return database.Upsert(ctx, r.db, entities.SlideSettingsID, entities.DefaultSlideSettings, update.Fields())
}
