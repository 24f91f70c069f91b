// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package session owns the storefront session token and its validity state.

The storefront issues a single opaque cookie after an interactive login.
This package captures that cookie through a pluggable [LoginProvider],
persists it in a [TokenStore] so it survives restarts, and clears it when
the storefront rejects it.

State machine:

	Unset → (login capture succeeds) → Valid → (storefront returns 401) → Unset

No component retries authentication on its own; re-login always requires
human interaction.
*/
package session

import (
	"context"
	"errors"
	"log/slog"
)

// Status reports whether a usable session token exists.
type Status string

const (
	// StatusUnset means no token is stored; the caller must prompt for login.
	StatusUnset Status = "unset"

	// StatusValid means a token is stored and will be attached to requests.
	// The storefront remains the final authority: a 401 demotes it to Unset.
	StatusValid Status = "valid"
)

// ErrLoginAborted is returned when the interactive login surface is closed
// before reaching the post-login address.
var ErrLoginAborted = errors.New("session: login closed before completion")

// LoginProvider runs an interactive login and yields the captured token.
//
// It abstracts the concrete browser surface so the manager has no dependency
// on a browser-automation API.
type LoginProvider interface {
	Login(context context.Context) (token string, err error)
}

// StaticLogin is a LoginProvider that yields a pre-provisioned token. It
// serves deployments with no interactive surface, where the cookie value is
// captured out of band and supplied through configuration.
type StaticLogin string

func (login StaticLogin) Login(context.Context) (string, error) {
	if login == "" {
		return "", ErrLoginAborted
	}
	return string(login), nil
}

// TokenStore persists the opaque session token across process restarts.
type TokenStore interface {
	// Get returns the stored token, or "" when none is stored.
	Get(context context.Context) (string, error)
	Set(context context.Context, token string) error
	Delete(context context.Context) error
}

// Manager coordinates login capture, persistence, and invalidation.
type Manager struct {
	store  TokenStore
	login  LoginProvider
	logger *slog.Logger
}

func NewManager(store TokenStore, login LoginProvider, logger *slog.Logger) *Manager {
	return &Manager{store: store, login: login, logger: logger}
}

// Token returns the stored session token, or "" when the session is unset.
func (manager *Manager) Token(context context.Context) (string, error) {
	return manager.store.Get(context)
}

// Status reports the current session state.
func (manager *Manager) Status(context context.Context) (Status, error) {
	token, err := manager.store.Get(context)
	if err != nil {
		return StatusUnset, err
	}
	if token == "" {
		return StatusUnset, nil
	}
	return StatusValid, nil
}

// CaptureLogin runs the interactive login and stores the captured token.
//
// On failure the stored state is left untouched, so an aborted re-login does
// not destroy a previously working session.
func (manager *Manager) CaptureLogin(context context.Context) error {
	if manager.login == nil {
		return ErrLoginAborted
	}

	token, err := manager.login.Login(context)
	if err != nil {
		manager.logger.Warn("session_login_failed", slog.Any("error", err))
		return err
	}
	if token == "" {
		return ErrLoginAborted
	}

	if err := manager.store.Set(context, token); err != nil {
		return err
	}

	manager.logger.Info("session_captured")
	return nil
}

// Adopt stores an externally captured token verbatim. It serves headless
// deployments where the cookie is extracted out of band.
func (manager *Manager) Adopt(context context.Context, token string) error {
	if token == "" {
		return ErrLoginAborted
	}

	if err := manager.store.Set(context, token); err != nil {
		return err
	}

	manager.logger.Info("session_adopted")
	return nil
}

// Invalidate clears the stored token. Called by the fetch layer when the
// storefront rejects the token.
func (manager *Manager) Invalidate(context context.Context) error {
	if err := manager.store.Delete(context); err != nil {
		return err
	}
	manager.logger.Info("session_invalidated")
	return nil
}
