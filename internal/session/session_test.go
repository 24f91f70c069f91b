// Copyright (c) 2026 Workshelf. All rights reserved.

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukihara/workshelf/internal/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubLogin returns a fixed token or error.
type stubLogin struct {
	token string
	err   error
}

func (stub *stubLogin) Login(context.Context) (string, error) {
	return stub.token, stub.err
}

/*
TestManager_StateMachine walks Unset → Valid → Unset.
*/
func TestManager_StateMachine(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager(session.NewMemoryTokenStore(), &stubLogin{token: "sid-123"}, discardLogger())

	status, err := manager.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.StatusUnset, status)

	require.NoError(t, manager.CaptureLogin(ctx))

	status, err = manager.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.StatusValid, status)

	token, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", token)

	require.NoError(t, manager.Invalidate(ctx))

	status, err = manager.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.StatusUnset, status)
}

/*
TestManager_AbortedLoginKeepsState verifies a failed capture leaves the stored
token untouched.
*/
func TestManager_AbortedLoginKeepsState(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryTokenStore()
	require.NoError(t, store.Set(ctx, "old-sid"))

	manager := session.NewManager(store, &stubLogin{err: session.ErrLoginAborted}, discardLogger())
	err := manager.CaptureLogin(ctx)
	assert.ErrorIs(t, err, session.ErrLoginAborted)

	token, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old-sid", token)
}

/*
TestManager_EmptyTokenIsAborted verifies an empty captured cookie counts as a
failed login.
*/
func TestManager_EmptyTokenIsAborted(t *testing.T) {
	manager := session.NewManager(session.NewMemoryTokenStore(), &stubLogin{token: ""}, discardLogger())
	err := manager.CaptureLogin(context.Background())
	assert.ErrorIs(t, err, session.ErrLoginAborted)
}

// fakeSurface scripts a browser surface: addresses to walk through and the
// cookie jar visible at the end.
type fakeSurface struct {
	addresses []string
	cookies   []session.Cookie
	closed    bool
	step      int
}

func (surface *fakeSurface) Navigate(string) error { return nil }

func (surface *fakeSurface) CurrentAddress() (string, error) {
	if surface.closed {
		return "", errors.New("surface closed")
	}
	if surface.step >= len(surface.addresses) {
		surface.closed = true
		return "", errors.New("surface closed")
	}
	address := surface.addresses[surface.step]
	surface.step++
	return address, nil
}

func (surface *fakeSurface) Cookies() ([]session.Cookie, error) { return surface.cookies, nil }

func (surface *fakeSurface) Close() error {
	surface.closed = true
	return nil
}

/*
TestBrowserLogin_CapturesCookie verifies the provider polls until the post-login
address appears, then yields the session cookie and closes the surface.
*/
func TestBrowserLogin_CapturesCookie(t *testing.T) {
	surface := &fakeSurface{
		addresses: []string{
			"https://www.dlsite.com/home/login/=/skip_register/1",
			"https://www.dlsite.com/home/mypage",
		},
		cookies: []session.Cookie{
			{Name: "tracking", Value: "x"},
			{Name: "__DLsite_SID", Value: "sid-abc"},
		},
	}

	login := session.NewBrowserLogin(surface, "https://www.dlsite.com")
	token, err := login.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sid-abc", token)
	assert.True(t, surface.closed)
}

/*
TestBrowserLogin_ClosedWithoutLogin verifies closing the dialog early aborts
the capture.
*/
func TestBrowserLogin_ClosedWithoutLogin(t *testing.T) {
	surface := &fakeSurface{
		addresses: []string{"https://www.dlsite.com/home/login/=/skip_register/1"},
	}

	login := session.NewBrowserLogin(surface, "https://www.dlsite.com")
	_, err := login.Login(context.Background())

	assert.ErrorIs(t, err, session.ErrLoginAborted)
}

/*
TestBrowserLogin_MissingCookie verifies reaching the post-login page without a
session cookie still counts as an aborted login.
*/
func TestBrowserLogin_MissingCookie(t *testing.T) {
	surface := &fakeSurface{
		addresses: []string{"https://www.dlsite.com/home/mypage"},
		cookies:   []session.Cookie{{Name: "tracking", Value: "x"}},
	}

	login := session.NewBrowserLogin(surface, "https://www.dlsite.com")
	_, err := login.Login(context.Background())

	assert.ErrorIs(t, err, session.ErrLoginAborted)
}
