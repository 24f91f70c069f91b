// Copyright (c) 2026 Workshelf. All rights reserved.

package session

import (
	"context"
	"sync"
)

// MemoryTokenStore is an in-process TokenStore used by tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (store *MemoryTokenStore) Get(context context.Context) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.token, nil
}

func (store *MemoryTokenStore) Set(context context.Context, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.token = token
	return nil
}

func (store *MemoryTokenStore) Delete(context context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.token = ""
	return nil
}
