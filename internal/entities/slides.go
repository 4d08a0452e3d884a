package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SlideSettingsID = "slide_settings"

	// MaxSlidesListed caps the slide listing; images past it are not returned.
	MaxSlidesListed = 100
)

type TransitionEffect string

const (
	TransitionFade  TransitionEffect = "fade"
	TransitionSlide TransitionEffect = "slide"
	TransitionZoom  TransitionEffect = "zoom"
)

func (t TransitionEffect) Valid() bool {
	switch t {
	case TransitionFade, TransitionSlide, TransitionZoom:
		return true
	}
	return false
}

// SlideImage is one image of the rotating slideshow. Order values are not
// unique; several slides may share one.
type SlideImage struct {
	ID          string    `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	ImageBase64 string    `gorm:"column:image_base64;type:text" json:"image_base64" bson:"image_base64"`
	Order       int       `gorm:"column:sort_order;index" json:"order" bson:"order"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at" bson:"created_at"`
}

func (SlideImage) TableName() string {
	return "slide_images"
}

// NewSlideImage builds a slide with a freshly generated id.
func NewSlideImage(imageBase64 string, order int) *SlideImage {
	return &SlideImage{
		ID:          uuid.New().String(),
		ImageBase64: imageBase64,
		Order:       order,
		CreatedAt:   time.Now().UTC(),
	}
}

// SlideImageCreate requires image_base64 to be present. An empty string is stored as given.
type SlideImageCreate struct {
	ImageBase64 *string `json:"image_base64" binding:"required"`
	Order       *int   `json:"order"`
}

// SlideOrder assigns a new order value to one slide.
type SlideOrder struct {
	ID    string `json:"id" binding:"required"`
	Order *int   `json:"order" binding:"required"`
}

// SlideSettings controls slideshow playback.
type SlideSettings struct {
	ID               string           `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	IntervalSeconds  int              `gorm:"column:interval_seconds" json:"interval_seconds" bson:"interval_seconds"`
	TransitionEffect TransitionEffect `gorm:"column:transition_effect;size:20" json:"transition_effect" bson:"transition_effect"`
	AutoPlay         bool             `gorm:"column:auto_play" json:"auto_play" bson:"auto_play"`
}

func (SlideSettings) TableName() string {
	return "slide_settings"
}

func DefaultSlideSettings() *SlideSettings {
	return &SlideSettings{
		ID:               SlideSettingsID,
		IntervalSeconds:  10,
		TransitionEffect: TransitionFade,
		AutoPlay:         true,
	}
}

type SlideSettingsUpdate struct {
	IntervalSeconds  *int              `json:"interval_seconds" binding:"omitempty,gt=0"`
	TransitionEffect *TransitionEffect `json:"transition_effect" binding:"omitempty,oneof=fade slide zoom"`
	AutoPlay         *bool             `json:"auto_play"`
}

func (u SlideSettingsUpdate) Fields() Fields {
	f := Fields{}
	put(f, "interval_seconds", u.IntervalSeconds)
	put(f, "transition_effect", u.TransitionEffect)
	put(f, "auto_play", u.AutoPlay)
	return f
}
