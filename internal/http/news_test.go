package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/queueboard/internal/entities"
	"github.com/mrlokans/queueboard/internal/news"
)

func TestNewsController_GetNews(t *testing.T) {
	t.Run("uses the default feed while no config exists", func(t *testing.T) {
		fetcher := &fakeFetcher{items: []news.Item{{Title: "Ciao", Link: "https://example.com", Published: "today"}}}
		router := setupTestRouter(t, setupTestStore(t), fetcher)

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, entities.DefaultRSSFeedURL, fetcher.lastURL)

		resp := decode[NewsResponse](t, w)
		assert.Equal(t, fetcher.items, resp.News)
		assert.Empty(t, resp.Error)
		assert.NotContains(t, w.Body.String(), `"error"`)
	})

	t.Run("does not create the config", func(t *testing.T) {
		store := setupTestStore(t)
		router := setupTestRouter(t, store, &fakeFetcher{})

		doRequest(t, router, http.MethodGet, "/api/news", nil)
		_, err := store.FindAppConfig(context.Background())
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("uses the stored feed url even when empty", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("feed URL is empty")}
		router := setupTestRouter(t, setupTestStore(t), fetcher)
		doRequest(t, router, http.MethodPut, "/api/config", map[string]any{"rss_feed_url": ""})

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", fetcher.lastURL)

		resp := decode[NewsResponse](t, w)
		assert.Empty(t, resp.News)
		assert.Equal(t, "feed URL is empty", resp.Error)
	})

	t.Run("fetch failure degrades to an empty list", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("connection refused")}
		router := setupTestRouter(t, setupTestStore(t), fetcher)

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"news":[]`)
		assert.Equal(t, "connection refused", decode[NewsResponse](t, w).Error)
	})

	t.Run("config read failure degrades too", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		router := setupTestRouter(t, failingStore{Store: setupTestStore(t)}, fetcher)

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, fetcher.calls)
		assert.Equal(t, errStoreDown.Error(), decode[NewsResponse](t, w).Error)
	})

	t.Run("nil items render as an empty list", func(t *testing.T) {
		router := setupTestRouter(t, setupTestStore(t), &fakeFetcher{})

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		assert.Contains(t, w.Body.String(), `"news":[]`)
	})
}

func TestNewsController_WithFeedClient(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`+
			`<item><title>Prima</title><link>https://example.com/1</link><pubDate>Tue, 10 Jun 2025 09:00:00 GMT</pubDate></item>`+
			`</channel></rss>`)
	}))
	defer feed.Close()

	router := setupTestRouter(t, setupTestStore(t), news.NewClient(5*time.Second, 20))
	doRequest(t, router, http.MethodPut, "/api/config", map[string]any{"rss_feed_url": feed.URL})

	t.Run("returns parsed items", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[NewsResponse](t, w)
		require.Len(t, resp.News, 1)
		assert.Equal(t, "Prima", resp.News[0].Title)
		assert.Equal(t, "https://example.com/1", resp.News[0].Link)
		assert.Equal(t, "Tue, 10 Jun 2025 09:00:00 GMT", resp.News[0].Published)
	})

	t.Run("unreachable feed is still a 200", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		deadURL := dead.URL
		dead.Close()
		doRequest(t, router, http.MethodPut, "/api/config", map[string]any{"rss_feed_url": deadURL})

		w := doRequest(t, router, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[NewsResponse](t, w)
		assert.Empty(t, resp.News)
		assert.NotEmpty(t, resp.Error)
	})
}
