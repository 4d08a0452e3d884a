package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/config"
	"github.com/mrlokans/queueboard/internal/database/mongodb"
	"github.com/mrlokans/queueboard/internal/database/sqlstore"
	http_controllers "github.com/mrlokans/queueboard/internal/http"
	"github.com/mrlokans/queueboard/internal/logger"
	"github.com/mrlokans/queueboard/internal/news"
	"github.com/mrlokans/queueboard/internal/scheduler"
	"github.com/mrlokans/queueboard/internal/weather"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Backend is a storage handle serving every resource.
type Backend interface {
	http_controllers.Store
	http_controllers.Pinger
	Close() error
}

// OpenBackend connects to the storage selected by DATABASE_DRIVER.
func OpenBackend(ctx context.Context, cfg config.Database) (Backend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlstore.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.Name)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server Shutdown")
	}

	// Stop background work and close storage once no request is in flight.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logCloser, err := logger.Setup(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logCloser.Close()

	gin.SetMode(gin.ReleaseMode)
	log.Infof("Starting QueueBoard v%s", version)

	backend, err := OpenBackend(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.WithField("driver", cfg.Database.Driver).Info("Storage backend ready")

	// Nightly counter reset
	var resetScheduler *scheduler.NumberResetScheduler
	if cfg.NumberReset.Enabled {
		resetScheduler = scheduler.NewNumberResetScheduler(backend, cfg.NumberReset.Schedule)
		if err := resetScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start number reset scheduler: %v", err)
		}
	} else {
		log.Info("Number reset scheduler: disabled")
	}

	routerCfg := http_controllers.RouterConfig{
		Store:          backend,
		Pinger:         backend,
		NewsFetcher:    news.NewClient(cfg.News.FetchTimeout, cfg.News.MaxItems),
		DefaultFeedURL: cfg.News.DefaultFeedURL,
		Weather:        weather.NewMockProvider(),
		DefaultCity:    cfg.Weather.DefaultCity,
		APIPrefix:      cfg.HTTP.APIPrefix,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if resetScheduler != nil {
			resetScheduler.Stop()
		}
		if err := backend.Close(); err != nil {
			log.WithError(err).Error("Error closing database")
		}
	}

	Serve(router, cfg, onShutdown)
}
