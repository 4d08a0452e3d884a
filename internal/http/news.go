package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/queueboard/internal/entities"
	"github.com/mrlokans/queueboard/internal/news"
)

// NewsFetcher loads the headlines of one feed.
type NewsFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]news.Item, error)
}

// NewsResponse always carries a list. Error is set when the feed could not be read.
type NewsResponse struct {
	News  []news.Item `json:"news"`
	Error string      `json:"error,omitempty"`
}

type NewsController struct {
	config         AppConfigGetter
	fetcher        NewsFetcher
	defaultFeedURL string
}

func NewNewsController(config AppConfigGetter, fetcher NewsFetcher, defaultFeedURL string) *NewsController {
	return &NewsController{
		config:         config,
		fetcher:        fetcher,
		defaultFeedURL: defaultFeedURL,
	}
}

// GetNews proxies the configured feed. Failures never change the status code.
// GET /api/news
func (nc *NewsController) GetNews(c *gin.Context) {
	ctx := c.Request.Context()

	feedURL, err := nc.feedURL(ctx)
	if err != nil {
		nc.degrade(c, err)
		return
	}

	items, err := nc.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		nc.degrade(c, err)
		return
	}
	if items == nil {
		items = []news.Item{}
	}
	c.JSON(http.StatusOK, NewsResponse{News: items})
}

// feedURL uses the stored URL as is, even when empty. The default applies
// only while no app config exists.
func (nc *NewsController) feedURL(ctx context.Context) (string, error) {
	cfg, err := nc.config.FindAppConfig(ctx)
	if errors.Is(err, entities.ErrNotFound) {
		return nc.defaultFeedURL, nil
	}
	if err != nil {
		return "", err
	}
	return cfg.RSSFeedURL, nil
}

func (nc *NewsController) degrade(c *gin.Context, err error) {
	log.WithError(err).Error("Error fetching news")
	c.JSON(http.StatusOK, NewsResponse{News: []news.Item{}, Error: err.Error()})
}
