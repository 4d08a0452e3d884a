package http

import (
	"context"

	"github.com/mrlokans/queueboard/internal/entities"
)

// Each controller defines its own store interface next to it. Store combines
// them for backends that serve every resource from one handle, and for tests.
//
// Methods taking no id operate on the resource's singleton document. The Get
// methods create it from defaults on first access and report whether they did.

// AppConfigGetter reads the app config without creating it. Returns
// entities.ErrNotFound when none was stored yet.
type AppConfigGetter interface {
	FindAppConfig(ctx context.Context) (*entities.AppConfig, error)
}

// NumberGetter reads the current number, creating it at the floor when missing.
type NumberGetter interface {
	GetNumber(ctx context.Context) (*entities.CurrentNumber, bool, error)
}

// Store combines all store interfaces.
type Store interface {
	AppConfigStore
	SlideStore
	NumberStore
	BluetoothRemoteStore
	VoiceSettingsStore
}
