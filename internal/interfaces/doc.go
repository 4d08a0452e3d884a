// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AppConfigStore: Kiosk branding and integrations (internal/http/app_config.go)
//   - SlideStore: Slideshow images and playback settings (internal/http/slides.go)
//   - NumberStore: The "now serving" counter (internal/http/number.go)
//   - BluetoothRemoteStore: Remote button mapping (internal/http/bluetooth.go)
//   - VoiceSettingsStore: Announcement settings (internal/http/voice.go)
//   - Store: All of the above from one handle (internal/http/stores.go)
//
// Two backends implement Store: sqlstore.Store over the gorm repositories in
// internal/database/*, and mongodb.Store.
//
// ## External Service Interfaces
//
//   - NewsFetcher: Headlines from a feed URL (internal/http/news.go)
//   - weather.Provider: Current conditions and forecast (internal/weather)
//
// ## Background Jobs
//
//   - scheduler.NumberResetter: Counter reset run by the cron job
//
// # Adding a New Singleton Resource
//
//  1. Add the entity with a fixed id, DefaultX() and an XUpdate with pointer
//     fields to internal/entities, and register it in database.NewDatabase.
//
//  2. Create sub-package internal/database/x/:
//
//     type Repository struct { db *gorm.DB }
//
//     func (r *Repository) GetX(ctx context.Context) (*entities.X, bool, error) {
//         return database.FirstOrCreate(ctx, r.db, entities.XID, entities.DefaultX)
//     }
//
//  3. Implement the same methods on mongodb.Store with getOrCreate and upsert.
//
//  4. Declare XStore next to its controller, add it to http.Store and register
//     the routes in router.go.
//
//  5. Add compile-time checks:
//
//     var _ http.XStore = (*x.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
