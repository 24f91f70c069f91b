// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package storefront talks to the DLsite storefront: it fetches the
machine-readable purchase list and scrapes product pages into structured
records.

Two caveats shape this package:

  - The purchase list requires the opaque session cookie captured by
    internal/session; a 401 means the session has expired.
  - Product pages are markup, not a documented API. The parser is strictly
    best-effort: a missing field yields its zero value, never an error.
*/
package storefront

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tsukihara/workshelf/internal/platform/constants"
)

// Client is the shared HTTP transport for all storefront endpoints.
// Every request carries a bounded timeout; the session cookie is attached
// only when a token is supplied.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a storefront client for the given origin
// (e.g. "https://www.dlsite.com"). Tests point it at an httptest server.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// get issues an authenticated GET. The caller owns the response body.
func (client *Client) get(context context.Context, rawURL string, token string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("storefront: build request: %w", err)
	}

	if token != "" {
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	}

	return client.httpClient.Do(request)
}

// purchasesURL is the fixed purchase-list endpoint.
func (client *Client) purchasesURL() string {
	return client.baseURL + constants.PurchasesPath
}

// workURL builds the product-page URL for one product identifier, with the
// locale selector attached as a query parameter.
func (client *Client) workURL(productID string, locale Locale) string {
	return fmt.Sprintf("%s/home/work/=/product_id/%s.html?locale=%s",
		client.baseURL, url.PathEscape(productID), url.QueryEscape(string(locale)))
}
