package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/queueboard/internal/entities"
)

func TestBluetoothController(t *testing.T) {
	t.Run("returns the default mapping", func(t *testing.T) {
		router := setupTestRouter(t, setupTestStore(t), &fakeFetcher{})

		w := doRequest(t, router, http.MethodGet, "/api/bluetooth", nil)
		require.Equal(t, http.StatusOK, w.Code)

		remote := decode[entities.BluetoothRemote](t, w)
		assert.Equal(t, entities.BluetoothRemoteID, remote.ID)
		assert.Equal(t, entities.ActionIncrement, remote.ButtonAAction)
		assert.Equal(t, entities.ActionDecrement, remote.ButtonBAction)
		assert.Equal(t, entities.ActionReset, remote.ButtonCAction)
		assert.Equal(t, entities.ActionNone, remote.ButtonDAction)
		assert.False(t, remote.IsPaired)
		assert.Contains(t, w.Body.String(), `"device_name":null`)
	})

	t.Run("stores pairing details verbatim", func(t *testing.T) {
		router := setupTestRouter(t, setupTestStore(t), &fakeFetcher{})

		w := doRequest(t, router, http.MethodPut, "/api/bluetooth", map[string]any{
			"device_name":     "AB Shutter3",
			"device_id":       "opaque-id-123",
			"is_paired":       true,
			"button_d_action": "increment",
		})
		require.Equal(t, http.StatusOK, w.Code)

		remote := decode[entities.BluetoothRemote](t, w)
		require.NotNil(t, remote.DeviceName)
		assert.Equal(t, "AB Shutter3", *remote.DeviceName)
		assert.True(t, remote.IsPaired)
		assert.Equal(t, entities.ActionIncrement, remote.ButtonDAction)
		assert.Equal(t, entities.ActionDecrement, remote.ButtonBAction)

		again := decode[entities.BluetoothRemote](t, doRequest(t, router, http.MethodGet, "/api/bluetooth", nil))
		assert.Equal(t, remote, again)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		router := setupTestRouter(t, setupTestStore(t), &fakeFetcher{})

		w := doRequest(t, router, http.MethodPut, "/api/bluetooth", map[string]any{"button_a_action": "explode"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"button_a_action"`)
	})
}
