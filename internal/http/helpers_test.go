package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/queueboard/internal/database/sqlstore"
	"github.com/mrlokans/queueboard/internal/entities"
	"github.com/mrlokans/queueboard/internal/news"
	"github.com/mrlokans/queueboard/internal/weather"
)

func setupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// fakeFetcher records the requested URL and returns canned items or an error.
type fakeFetcher struct {
	items   []news.Item
	err     error
	calls   int
	lastURL string
}

func (f *fakeFetcher) Fetch(_ context.Context, feedURL string) ([]news.Item, error) {
	f.calls++
	f.lastURL = feedURL
	return f.items, f.err
}

// failingStore fails every operation that reaches the database.
type failingStore struct {
	Store
}

var errStoreDown = errors.New("store down")

func (failingStore) FindAppConfig(context.Context) (*entities.AppConfig, error) {
	return nil, errStoreDown
}

func (failingStore) GetNumber(context.Context) (*entities.CurrentNumber, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) IncrementNumber(context.Context) (*entities.CurrentNumber, error) {
	return nil, errStoreDown
}

func setupTestRouter(t *testing.T, store Store, fetcher NewsFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		Store:          store,
		NewsFetcher:    fetcher,
		DefaultFeedURL: entities.DefaultRSSFeedURL,
		Weather:        weather.NewMockProvider(),
		DefaultCity:    entities.DefaultCity,
		APIPrefix:      "/api",
		Version:        "test",
	})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestValidationDetails(t *testing.T) {
	router := setupTestRouter(t, setupTestStore(t), &fakeFetcher{})

	t.Run("malformed json has no details", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/config", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "invalid request body", resp.Error)
		assert.Equal(t, codeValidationFailed, resp.Code)
		assert.Nil(t, resp.Details)
	})

	t.Run("wrong json type", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/number", `{"number": "seven"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, codeValidationFailed, decode[ErrorResponse](t, w).Code)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/voice", map[string]any{
			"voice_type": "robot",
			"language":   "not a language",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error   string       `json:"error"`
			Code    string       `json:"code"`
			Details []FieldError `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed", resp.Error)
		assert.ElementsMatch(t, []FieldError{
			{Field: "voice_type", Rule: "oneof"},
			{Field: "language", Rule: "bcp47_language_tag"},
		}, resp.Details)
	})

	t.Run("slice items are indexed", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/slides/reorder", []map[string]any{
			{"id": "a", "order": 1},
			{"id": "b"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Details []FieldError `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []FieldError{{Field: "[1].order", Rule: "required"}}, resp.Details)
	})
}

func TestInternalErrorsAreHidden(t *testing.T) {
	router := setupTestRouter(t, failingStore{Store: setupTestStore(t)}, &fakeFetcher{})

	w := doRequest(t, router, http.MethodPost, "/api/number/increment", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, w.Body.String(), errStoreDown.Error())
}
