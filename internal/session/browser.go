// Copyright (c) 2026 Workshelf. All rights reserved.

package session

import (
	"context"
	"strings"
	"time"

	"github.com/tsukihara/workshelf/internal/platform/constants"
)

// Cookie is a single name/value pair read from the browser surface's jar.
type Cookie struct {
	Name  string
	Value string
}

// BrowserSurface is an interactive browser view controlled by the host.
// Only navigation, address inspection, and cookie capture are needed; the
// rendering itself is irrelevant to this core.
type BrowserSurface interface {
	Navigate(url string) error

	// CurrentAddress returns the address the surface is showing. It returns
	// an error once the surface has been closed by the user.
	CurrentAddress() (string, error)

	Cookies() ([]Cookie, error)
	Close() error
}

// BrowserLogin drives a [BrowserSurface] through the storefront login flow
// and captures the session cookie. It implements [LoginProvider].
type BrowserLogin struct {
	surface      BrowserSurface
	loginURL     string
	pollInterval time.Duration
}

// NewBrowserLogin wires a login provider around the given surface.
// baseURL is the storefront origin (e.g. "https://www.dlsite.com").
func NewBrowserLogin(surface BrowserSurface, baseURL string) *BrowserLogin {
	return &BrowserLogin{
		surface:      surface,
		loginURL:     baseURL + constants.LoginPath,
		pollInterval: 250 * time.Millisecond,
	}
}

// Login navigates to the login form and polls the surface until the address
// reaches the post-login page, then reads the session cookie and closes the
// surface.
//
// Returns [ErrLoginAborted] when the user closes the surface first, or when
// the post-login page carries no session cookie.
func (login *BrowserLogin) Login(context context.Context) (string, error) {
	if err := login.surface.Navigate(login.loginURL); err != nil {
		return "", err
	}

	ticker := time.NewTicker(login.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-context.Done():
			_ = login.surface.Close()
			return "", context.Err()
		case <-ticker.C:
		}

		address, err := login.surface.CurrentAddress()
		if err != nil {
			// Surface closed without reaching the target address.
			return "", ErrLoginAborted
		}

		if !strings.Contains(address, constants.PostLoginAddressMarker) {
			continue
		}

		cookies, err := login.surface.Cookies()
		_ = login.surface.Close()
		if err != nil {
			return "", err
		}

		for _, cookie := range cookies {
			if cookie.Name == constants.SessionCookieName && cookie.Value != "" {
				return cookie.Value, nil
			}
		}

		return "", ErrLoginAborted
	}
}
