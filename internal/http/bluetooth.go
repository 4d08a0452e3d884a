package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

type BluetoothRemoteStore interface {
	GetBluetoothRemote(ctx context.Context) (*entities.BluetoothRemote, bool, error)
	UpdateBluetoothRemote(ctx context.Context, update entities.BluetoothRemoteUpdate) (*entities.BluetoothRemote, error)
}

type BluetoothController struct {
	store BluetoothRemoteStore
}

func NewBluetoothController(store BluetoothRemoteStore) *BluetoothController {
	return &BluetoothController{store: store}
}

// GET /api/bluetooth
func (bc *BluetoothController) GetRemote(c *gin.Context) {
	remote, created, err := bc.store.GetBluetoothRemote(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get bluetooth remote")
		return
	}
	if created {
		log.Info("Created default bluetooth remote mapping")
	}
	c.JSON(http.StatusOK, remote)
}

// PUT /api/bluetooth
func (bc *BluetoothController) UpdateRemote(c *gin.Context) {
	var req entities.BluetoothRemoteUpdate
	if !bindJSON(c, &req) {
		return
	}

	remote, err := bc.store.UpdateBluetoothRemote(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err, "update bluetooth remote")
		return
	}
	c.JSON(http.StatusOK, remote)
}
