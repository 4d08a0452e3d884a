package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDefaults(t *testing.T) {
	t.Run("app config", func(t *testing.T) {
		cfg := DefaultAppConfig()
		assert.Equal(t, AppConfigID, cfg.ID)
		assert.Equal(t, "Number ONE", cfg.RestaurantName)
		assert.Equal(t, "ROMA", cfg.City)
		assert.Equal(t, "#FF0000", cfg.ThemePrimaryColor)
		assert.Equal(t, "#2C3E50", cfg.ThemeSecondaryColor)
		assert.Equal(t, "#FFFFFF", cfg.ThemeTextColor)
		assert.Equal(t, DefaultRSSFeedURL, cfg.RSSFeedURL)
		assert.Nil(t, cfg.LogoBase64)
		assert.Nil(t, cfg.WeatherAPIKey)
		assert.False(t, cfg.CreatedAt.IsZero())
	})

	t.Run("slide settings", func(t *testing.T) {
		s := DefaultSlideSettings()
		assert.Equal(t, 10, s.IntervalSeconds)
		assert.Equal(t, TransitionFade, s.TransitionEffect)
		assert.True(t, s.AutoPlay)
	})

	t.Run("current number", func(t *testing.T) {
		assert.Equal(t, 1, DefaultCurrentNumber().Number)
	})

	t.Run("bluetooth remote", func(t *testing.T) {
		r := DefaultBluetoothRemote()
		assert.Equal(t, ActionIncrement, r.ButtonAAction)
		assert.Equal(t, ActionDecrement, r.ButtonBAction)
		assert.Equal(t, ActionReset, r.ButtonCAction)
		assert.Equal(t, ActionNone, r.ButtonDAction)
		assert.False(t, r.IsPaired)
		assert.Nil(t, r.DeviceName)
	})

	t.Run("voice settings", func(t *testing.T) {
		v := DefaultVoiceSettings()
		assert.True(t, v.Enabled)
		assert.Equal(t, VoiceFemale, v.VoiceType)
		assert.Equal(t, 1.0, v.Pitch)
		assert.Equal(t, 1.0, v.Rate)
		assert.Equal(t, "Numero {number}", v.PhraseTemplate)
		assert.Equal(t, "it-IT", v.Language)
	})
}

func TestNewSlideImage(t *testing.T) {
	a := NewSlideImage("aGVsbG8=", 3)
	b := NewSlideImage("aGVsbG8=", 3)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 3, a.Order)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestAppConfigUpdate_Fields(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("empty update only stamps updated_at", func(t *testing.T) {
		f := AppConfigUpdate{}.Fields(now)
		assert.Equal(t, Fields{"updated_at": now}, f)
	})

	t.Run("supplied fields are included verbatim", func(t *testing.T) {
		f := AppConfigUpdate{
			City:              ptr("MILANO"),
			ThemePrimaryColor: ptr("not-a-color"),
		}.Fields(now)

		require.Len(t, f, 3)
		assert.Equal(t, "MILANO", f["city"])
		assert.Equal(t, "not-a-color", f["theme_primary_color"])
		assert.NotContains(t, f, "restaurant_name")
	})
}

func TestUpdateFields_OmitNil(t *testing.T) {
	assert.Empty(t, SlideSettingsUpdate{}.Fields())
	assert.Empty(t, BluetoothRemoteUpdate{}.Fields())
	assert.Empty(t, VoiceSettingsUpdate{}.Fields())

	f := BluetoothRemoteUpdate{IsPaired: ptr(false), ButtonDAction: ptr(ActionReset)}.Fields()
	assert.Equal(t, Fields{"is_paired": false, "button_d_action": ActionReset}, f)

	v := VoiceSettingsUpdate{Pitch: ptr(1.5)}.Fields()
	assert.Equal(t, Fields{"pitch": 1.5}, v)
}

func TestEnumValid(t *testing.T) {
	assert.True(t, TransitionZoom.Valid())
	assert.False(t, TransitionEffect("spin").Valid())
	assert.True(t, ActionNone.Valid())
	assert.False(t, ButtonAction("explode").Valid())
	assert.True(t, VoiceMale.Valid())
	assert.False(t, VoiceType("robot").Valid())
}

func TestVoiceSettings_Phrase(t *testing.T) {
	v := DefaultVoiceSettings()
	assert.Equal(t, "Numero 42", v.Phrase(42))

	v.PhraseTemplate = "Ticket {number}, ticket {number}"
	assert.Equal(t, "Ticket 7, ticket 7", v.Phrase(7))

	v.PhraseTemplate = "No placeholder"
	assert.Equal(t, "No placeholder", v.Phrase(7))
}
