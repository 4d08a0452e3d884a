package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

// NumberStore defines the counter operations. Increment and decrement must be
// atomic in the backend.
type NumberStore interface {
	NumberGetter
	SetNumber(ctx context.Context, n int) (*entities.CurrentNumber, error)
	IncrementNumber(ctx context.Context) (*entities.CurrentNumber, error)
	DecrementNumber(ctx context.Context) (*entities.CurrentNumber, error)
	ResetNumber(ctx context.Context) (*entities.CurrentNumber, error)
}

type NumberController struct {
	store NumberStore
}

func NewNumberController(store NumberStore) *NumberController {
	return &NumberController{store: store}
}

// GetNumber returns the number being served
// GET /api/number
func (nc *NumberController) GetNumber(c *gin.Context) {
	current, created, err := nc.store.GetNumber(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get number")
		return
	}
	if created {
		log.Info("Created current number")
	}
	c.JSON(http.StatusOK, current)
}

// SetNumber overwrites the number. No floor is applied.
// PUT /api/number
func (nc *NumberController) SetNumber(c *gin.Context) {
	var req entities.NumberUpdate
	if !bindJSON(c, &req) {
		return
	}

	current, err := nc.store.SetNumber(c.Request.Context(), *req.Number)
	if err != nil {
		respondInternalError(c, err, "set number")
		return
	}
	c.JSON(http.StatusOK, current)
}

// Increment advances to the next customer
// POST /api/number/increment
func (nc *NumberController) Increment(c *gin.Context) {
	nc.respond(c, "increment number", nc.store.IncrementNumber)
}

// Decrement goes back one, stopping at 1
// POST /api/number/decrement
func (nc *NumberController) Decrement(c *gin.Context) {
	nc.respond(c, "decrement number", nc.store.DecrementNumber)
}

// Reset starts counting from 1 again
// POST /api/number/reset
func (nc *NumberController) Reset(c *gin.Context) {
	nc.respond(c, "reset number", nc.store.ResetNumber)
}

func (nc *NumberController) respond(c *gin.Context, operation string, op func(context.Context) (*entities.CurrentNumber, error)) {
	current, err := op(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, operation)
		return
	}
	c.JSON(http.StatusOK, current)
}
