// Package database provides the SQLite storage backend.
//
// # Architecture
//
// The database layer is organized into resource-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── singleton.go     # Lazy-create and partial-merge helpers
//	├── appconfig/       # Branding, theme and integration settings
//	├── slides/          # Slide images and slideshow settings
//	├── counter/         # "Now serving" number
//	├── remote/          # Bluetooth remote button mapping
//	├── voice/           # Text-to-speech settings
//	├── sqlstore/        # All repositories behind one handle
//	└── mongodb/         # Alternative MongoDB backend for every store
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with resource-specific operations:
//
//	db, err := database.NewDatabase("./queueboard.db")
//
//	numbers := counter.NewRepository(db.DB)
//	current, err := numbers.IncrementNumber(ctx)
//
// # Singleton Documents
//
// Every resource except slide images is a single row with a fixed id. Reads go
// through FirstOrCreate, so the first read inserts the defaults. Updates go
// through Upsert, which creates the row when missing and then applies only the
// supplied columns.
//
// # Interface Implementations
//
//   - appconfig.Repository: implements http.AppConfigStore
//   - slides.Repository: implements http.SlideStore
//   - counter.Repository: implements http.NumberStore
//   - remote.Repository: implements http.BluetoothRemoteStore
//   - voice.Repository: implements http.VoiceSettingsStore
//   - sqlstore.Store, mongodb.Store: implement http.Store
package database
