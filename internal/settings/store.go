package settings

import "context"

// Store persists the settings record.
type Store interface {
	// Load returns the stored settings, or [Default] when none were saved yet.
	Load(context context.Context) (Settings, error)
	Save(context context.Context, settings Settings) error
}
