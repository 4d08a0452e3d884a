package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/queueboard/internal/entities"
	"github.com/mrlokans/queueboard/internal/weather"
)

type WeatherController struct {
	config      AppConfigGetter
	provider    weather.Provider
	defaultCity string
}

func NewWeatherController(config AppConfigGetter, provider weather.Provider, defaultCity string) *WeatherController {
	return &WeatherController{
		config:      config,
		provider:    provider,
		defaultCity: defaultCity,
	}
}

// GetWeather returns the forecast for the configured city
// GET /api/weather
func (wc *WeatherController) GetWeather(c *gin.Context) {
	ctx := c.Request.Context()

	city := wc.defaultCity
	cfg, err := wc.config.FindAppConfig(ctx)
	switch {
	case errors.Is(err, entities.ErrNotFound):
	case err != nil:
		respondInternalError(c, err, "get app config")
		return
	default:
		city = cfg.City
	}

	report, err := wc.provider.Report(ctx, city)
	if err != nil {
		respondInternalError(c, err, "get weather")
		return
	}
	c.JSON(http.StatusOK, report)
}
