package database

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/queueboard/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"app_config", "slide_images", "slide_settings", "current_number", "bluetooth_remote", "voice_settings"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "table %s should exist", table)
	}

	assert.NoError(t, db.Ping(context.Background()))
}

func TestDatabase_PingAfterClose(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.Ping(context.Background()))
}

func TestFirstOrCreate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("creates defaults on first read", func(t *testing.T) {
		doc, created, err := FirstOrCreate(ctx, db.DB, entities.SlideSettingsID, entities.DefaultSlideSettings)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 10, doc.IntervalSeconds)

		var count int64
		db.DB.Model(&entities.SlideSettings{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("second read returns the stored row", func(t *testing.T) {
		doc, created, err := FirstOrCreate(ctx, db.DB, entities.SlideSettingsID, entities.DefaultSlideSettings)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, entities.TransitionFade, doc.TransitionEffect)
	})
}

func TestFirstOrCreate_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := FirstOrCreate(ctx, db.DB, entities.VoiceSettingsID, entities.DefaultVoiceSettings)
			assert.NoError(t, err)
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, createdCount)
}

func TestUpsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("creates with defaults and applies fields", func(t *testing.T) {
		doc, err := Upsert(ctx, db.DB, entities.SlideSettingsID, entities.DefaultSlideSettings, entities.Fields{"auto_play": false})
		require.NoError(t, err)
		assert.False(t, doc.AutoPlay)
		assert.Equal(t, 10, doc.IntervalSeconds)
		assert.Equal(t, entities.TransitionFade, doc.TransitionEffect)
	})

	t.Run("leaves other columns untouched", func(t *testing.T) {
		doc, err := Upsert(ctx, db.DB, entities.SlideSettingsID, entities.DefaultSlideSettings, entities.Fields{"interval_seconds": 30})
		require.NoError(t, err)
		assert.Equal(t, 30, doc.IntervalSeconds)
		assert.False(t, doc.AutoPlay)
	})

	t.Run("empty fields returns current row", func(t *testing.T) {
		doc, err := Upsert(ctx, db.DB, entities.SlideSettingsID, entities.DefaultSlideSettings, entities.Fields{})
		require.NoError(t, err)
		assert.Equal(t, 30, doc.IntervalSeconds)
	})
}

func TestFind(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := Find[entities.AppConfig](ctx, db.DB, entities.AppConfigID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, _, err = FirstOrCreate(ctx, db.DB, entities.AppConfigID, entities.DefaultAppConfig)
	require.NoError(t, err)

	cfg, err := Find[entities.AppConfig](ctx, db.DB, entities.AppConfigID)
	require.NoError(t, err)
	assert.Equal(t, "ROMA", cfg.City)
}

func TestLogger_SkipsRecordNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var buf bytes.Buffer
	quiet := db.DB.Session(&gorm.Session{Logger: newLogger(log.New(&buf, "", 0))})

	_, err := Find[entities.AppConfig](ctx, quiet, entities.AppConfigID)
	require.ErrorIs(t, err, entities.ErrNotFound)
	_, _, err = FirstOrCreate(ctx, quiet, entities.CurrentNumberID, entities.DefaultCurrentNumber)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "record not found")

	err = quiet.WithContext(ctx).Exec("SELECT * FROM missing_table").Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), "no such table")
}
