// Copyright (c) 2026 Workshelf. All rights reserved.

package settings

import (
	"context"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
)

// EditSession is a scoped mutation over the settings record.
//
// Begin snapshots the stored settings; mutations apply only to the Working
// copy. Commit persists the working copy; Cancel discards it. After either,
// the session is finished and further commits are rejected. Nothing reaches
// the store until Commit, so an abandoned session reverts by construction.
type EditSession struct {
	store    Store
	snapshot Settings
	finished bool

	// Working is the mutable copy handed to the editor.
	Working Settings
}

// Begin opens an edit session against the store's current state.
func Begin(context context.Context, store Store) (*EditSession, error) {
	current, err := store.Load(context)
	if err != nil {
		return nil, err
	}

	return &EditSession{
		store:    store,
		snapshot: current,
		Working:  current,
	}, nil
}

// Snapshot returns the settings as they were when the session began.
func (session *EditSession) Snapshot() Settings {
	return session.snapshot
}

// Commit persists the working copy and finishes the session.
func (session *EditSession) Commit(context context.Context) error {
	if session.finished {
		return apperr.Conflict("Settings edit session already finished")
	}
	if err := session.store.Save(context, session.Working); err != nil {
		return err
	}
	session.finished = true
	return nil
}

// Cancel discards the working copy and finishes the session. The store was
// never touched, so this is a pure revert.
func (session *EditSession) Cancel() {
	session.Working = session.snapshot
	session.finished = true
}
