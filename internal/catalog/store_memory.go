package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tsukihara/workshelf/pkg/normalize"
)

// MemoryLookup is an in-memory Lookup used by tests and by deployments that
// run without a catalog database (every name then maps to a name-reference).
type MemoryLookup struct {
	mu       sync.RWMutex
	entities map[Kind]map[string]*Entity
}

func NewMemoryLookup() *MemoryLookup {
	return &MemoryLookup{entities: make(map[Kind]map[string]*Entity)}
}

// Add registers an entity under its fold key and returns it.
func (lookup *MemoryLookup) Add(kind Kind, name string) *Entity {
	lookup.mu.Lock()
	defer lookup.mu.Unlock()

	entity := &Entity{ID: uuid.New(), Kind: kind, Name: name}
	if lookup.entities[kind] == nil {
		lookup.entities[kind] = make(map[string]*Entity)
	}
	lookup.entities[kind][normalize.Key(name)] = entity
	return entity
}

func (lookup *MemoryLookup) FindByName(context context.Context, kind Kind, name string) (*Entity, error) {
	lookup.mu.RLock()
	defer lookup.mu.RUnlock()

	entity, ok := lookup.entities[kind][normalize.Key(name)]
	if !ok {
		return nil, nil
	}
	return entity, nil
}
