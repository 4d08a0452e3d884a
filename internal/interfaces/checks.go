package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/database/appconfig"
	"github.com/mrlokans/queueboard/internal/database/counter"
	"github.com/mrlokans/queueboard/internal/database/mongodb"
	"github.com/mrlokans/queueboard/internal/database/remote"
	"github.com/mrlokans/queueboard/internal/database/slides"
	"github.com/mrlokans/queueboard/internal/database/sqlstore"
	"github.com/mrlokans/queueboard/internal/database/voice"
	"github.com/mrlokans/queueboard/internal/http"
	"github.com/mrlokans/queueboard/internal/news"
	"github.com/mrlokans/queueboard/internal/scheduler"
	"github.com/mrlokans/queueboard/internal/weather"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Per-resource SQLite repositories
var _ http.AppConfigStore = (*appconfig.Repository)(nil)
var _ http.SlideStore = (*slides.Repository)(nil)
var _ http.NumberStore = (*counter.Repository)(nil)
var _ http.BluetoothRemoteStore = (*remote.Repository)(nil)
var _ http.VoiceSettingsStore = (*voice.Repository)(nil)

// Combined backends
var _ http.Store = (*sqlstore.Store)(nil)
var _ http.Store = (*mongodb.Store)(nil)

// Health checks
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*mongodb.Store)(nil)

// Scheduled reset
var _ scheduler.NumberResetter = (*counter.Repository)(nil)
var _ scheduler.NumberResetter = (*mongodb.Store)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ http.NewsFetcher = (*news.Client)(nil)
var _ weather.Provider = (*weather.MockProvider)(nil)
