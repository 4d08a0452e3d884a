package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
)

type VoiceSettingsStore interface {
	GetVoiceSettings(ctx context.Context) (*entities.VoiceSettings, bool, error)
	UpdateVoiceSettings(ctx context.Context, update entities.VoiceSettingsUpdate) (*entities.VoiceSettings, error)
}

// PhraseResponse is the announcement for the number currently served.
type PhraseResponse struct {
	Number  int    `json:"number"`
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
}

type VoiceController struct {
	store   VoiceSettingsStore
	numbers NumberGetter
}

func NewVoiceController(store VoiceSettingsStore, numbers NumberGetter) *VoiceController {
	return &VoiceController{store: store, numbers: numbers}
}

// GET /api/voice
func (vc *VoiceController) GetSettings(c *gin.Context) {
	settings, created, err := vc.store.GetVoiceSettings(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "get voice settings")
		return
	}
	if created {
		log.Info("Created default voice settings")
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/voice
func (vc *VoiceController) UpdateSettings(c *gin.Context) {
	var req entities.VoiceSettingsUpdate
	if !bindJSON(c, &req) {
		return
	}

	settings, err := vc.store.UpdateVoiceSettings(c.Request.Context(), req)
	if err != nil {
		respondInternalError(c, err, "update voice settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Phrase renders the phrase template with the current number
// GET /api/voice/phrase
func (vc *VoiceController) Phrase(c *gin.Context) {
	ctx := c.Request.Context()

	settings, _, err := vc.store.GetVoiceSettings(ctx)
	if err != nil {
		respondInternalError(c, err, "get voice settings")
		return
	}
	current, _, err := vc.numbers.GetNumber(ctx)
	if err != nil {
		respondInternalError(c, err, "get number")
		return
	}

	c.JSON(http.StatusOK, PhraseResponse{
		Number:  current.Number,
		Text:    settings.Phrase(current.Number),
		Enabled: settings.Enabled,
	})
}
