package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

// AppConfigStore defines database operations for the kiosk configuration.
type AppConfigStore interface {
	AppConfigGetter
	GetAppConfig(ctx context.Context) (*entities.AppConfig, bool, error)
	UpdateAppConfig(ctx context.Context, update entities.AppConfigUpdate) (*entities.AppConfig, error)
}

type AppConfigController struct {
	store AppConfigStore
}

func NewAppConfigController(store AppConfigStore) *AppConfigController {
	return &AppConfigController{store: store}
}

// GetConfig returns the app config, creating the defaults on first access
// GET /api/config
func (ac *AppConfigController) GetConfig(c *gin.Context) {
	cfg, created, err := ac.store.GetAppConfig(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get app config")
		return
	}
	if created {
		log.Info("Created default app config")
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig merges the supplied fields into the app config
// PUT /api/config
func (ac *AppConfigController) UpdateConfig(c *gin.Context) {
	var req entities.AppConfigUpdate
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := ac.store.UpdateAppConfig(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err, "update app config")
		return
	}
	c.JSON(http.StatusOK, cfg)
}
