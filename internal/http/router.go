package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/queueboard/internal/logger"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(logger.Middleware())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(SecurityHeadersMiddleware())

	healthController := NewHealthController(cfg.Pinger, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	api := router.Group(cfg.APIPrefix)

	appConfigController := NewAppConfigController(cfg.Store)
	api.GET("/config", appConfigController.GetConfig)
	api.PUT("/config", appConfigController.UpdateConfig)

	slidesController := NewSlidesController(cfg.Store)
	api.GET("/slides", slidesController.ListSlides)
	api.POST("/slides", slidesController.CreateSlide)
	api.PUT("/slides/reorder", slidesController.ReorderSlides)
	api.GET("/slides/settings", slidesController.GetSettings)
	api.PUT("/slides/settings", slidesController.UpdateSettings)
	api.DELETE("/slides/:id", slidesController.DeleteSlide)

	numberController := NewNumberController(cfg.Store)
	api.GET("/number", numberController.GetNumber)
	api.PUT("/number", numberController.SetNumber)
	api.POST("/number/increment", numberController.Increment)
	api.POST("/number/decrement", numberController.Decrement)
	api.POST("/number/reset", numberController.Reset)

	bluetoothController := NewBluetoothController(cfg.Store)
	api.GET("/bluetooth", bluetoothController.GetRemote)
	api.PUT("/bluetooth", bluetoothController.UpdateRemote)

	voiceController := NewVoiceController(cfg.Store, cfg.Store)
	api.GET("/voice", voiceController.GetSettings)
	api.PUT("/voice", voiceController.UpdateSettings)
	api.GET("/voice/phrase", voiceController.Phrase)

	newsController := NewNewsController(cfg.Store, cfg.NewsFetcher, cfg.DefaultFeedURL)
	api.GET("/news", newsController.GetNews)

	weatherController := NewWeatherController(cfg.Store, cfg.Weather, cfg.DefaultCity)
	api.GET("/weather", weatherController.GetWeather)

	return router
}
