package settings

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu       sync.Mutex
	settings *Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (store *MemoryStore) Load(context context.Context) (Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.settings == nil {
		return Default(), nil
	}
	return *store.settings, nil
}

func (store *MemoryStore) Save(context context.Context, settings Settings) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.settings = &settings
	return nil
}
