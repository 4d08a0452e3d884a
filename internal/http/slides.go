package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

// SlideStore defines database operations for the slideshow.
type SlideStore interface {
	ListSlides(ctx context.Context) ([]entities.SlideImage, error)
	CreateSlide(ctx context.Context, imageBase64 string, order int) (*entities.SlideImage, error)
	DeleteSlide(ctx context.Context, id string) error
	ReorderSlides(ctx context.Context, orders []entities.SlideOrder) (int, error)
	GetSlideSettings(ctx context.Context) (*entities.SlideSettings, bool, error)
	UpdateSlideSettings(ctx context.Context, update entities.SlideSettingsUpdate) (*entities.SlideSettings, error)
}

// ReorderResponse reports how many of the submitted ids matched a slide.
type ReorderResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

type SlidesController struct {
	store SlideStore
}

func NewSlidesController(store SlideStore) *SlidesController {
	return &SlidesController{store: store}
}

// ListSlides returns the slides in display order
// GET /api/slides
func (sc *SlidesController) ListSlides(c *gin.Context) {
	slides, err := sc.store.ListSlides(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list slides")
		return
	}
	c.JSON(http.StatusOK, slides)
}

// CreateSlide adds an image to the slideshow
// POST /api/slides
func (sc *SlidesController) CreateSlide(c *gin.Context) {
	var req entities.SlideImageCreate
	if !bindJSON(c, &req) {
		return
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	slide, err := sc.store.CreateSlide(c.Request.Context(), *req.ImageBase64, order)
	if err != nil {
		respondInternalError(c, err, "create slide")
		return
	}
	c.JSON(http.StatusOK, slide)
}

// DeleteSlide removes one slide
// DELETE /api/slides/:id
func (sc *SlidesController) DeleteSlide(c *gin.Context) {
	err := sc.store.DeleteSlide(c.Request.Context(), c.Param("id"))
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "slide")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete slide")
		return
	}
	respondSuccess(c, "Slide deleted successfully")
}

// ReorderSlides sets new order values. Unknown ids are ignored.
// PUT /api/slides/reorder
func (sc *SlidesController) ReorderSlides(c *gin.Context) {
	var req []entities.SlideOrder
	if !bindJSONList(c, &req) {
		return
	}

	updated, err := sc.store.ReorderSlides(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err, "reorder slides")
		return
	}
	if updated < len(req) {
		log.WithFields(log.Fields{"submitted": len(req), "updated": updated}).Debug("Reorder skipped unknown slides")
	}
	c.JSON(http.StatusOK, ReorderResponse{Message: "Slides reordered successfully", Updated: updated})
}

// GetSettings returns the slideshow playback settings
// GET /api/slides/settings
func (sc *SlidesController) GetSettings(c *gin.Context) {
	settings, created, err := sc.store.GetSlideSettings(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get slide settings")
		return
	}
	if created {
		log.Info("Created default slide settings")
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the supplied playback settings
// PUT /api/slides/settings
func (sc *SlidesController) UpdateSettings(c *gin.Context) {
	var req entities.SlideSettingsUpdate
	if !bindJSON(c, &req) {
		return
	}

	settings, err := sc.store.UpdateSlideSettings(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err, "update slide settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
