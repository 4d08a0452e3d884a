// Package sqlstore bundles the SQLite repositories behind one handle so the
// router can treat it like the MongoDB store.
package sqlstore

import (
	"github.com/mrlokans/queueboard/internal/database"
	"github.com/mrlokans/queueboard/internal/database/appconfig"
	"github.com/mrlokans/queueboard/internal/database/counter"
	"github.com/mrlokans/queueboard/internal/database/remote"
	"github.com/mrlokans/queueboard/internal/database/slides"
	"github.com/mrlokans/queueboard/internal/database/voice"
)

type (
	AppConfigRepository = appconfig.Repository
	SlidesRepository    = slides.Repository
	CounterRepository   = counter.Repository
	RemoteRepository    = remote.Repository
	VoiceRepository     = voice.Repository
)

// Store exposes every repository method plus Ping and Close of the database.
type Store struct {
	*database.Database
	*AppConfigRepository
	*SlidesRepository
	*CounterRepository
	*RemoteRepository
	*VoiceRepository
}

// Open creates or migrates the SQLite file at path.
func Open(path string) (*Store, error) {
	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

func New(db *database.Database) *Store {
	return &Store{
		Database:            db,
		AppConfigRepository: appconfig.NewRepository(db.DB),
		SlidesRepository:    slides.NewRepository(db.DB),
		CounterRepository:   counter.NewRepository(db.DB),
		RemoteRepository:    remote.NewRepository(db.DB),
		VoiceRepository:     voice.NewRepository(db.DB),
	}
}
