// Copyright (c) 2026 Workshelf. All rights reserved.

package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/tsukihara/workshelf/internal/platform/apperr"
	"github.com/tsukihara/workshelf/internal/session"
)

// boughtResponse is the documented shape of the purchase-list body: a single
// "bought" key mapping product identifiers to an owned marker. Only the keys
// are consumed; the marker values are ignored entirely.
type boughtResponse struct {
	Bought map[string]json.RawMessage `json:"bought"`
}

// Fetcher retrieves the set of purchased product identifiers.
type Fetcher struct {
	client   *Client
	sessions *session.Manager
	logger   *slog.Logger
}

func NewFetcher(client *Client, sessions *session.Manager, logger *slog.Logger) *Fetcher {
	return &Fetcher{client: client, sessions: sessions, logger: logger}
}

// Fetch issues one authenticated GET to the purchase-list endpoint and
// returns the sorted set of owned product identifiers.
//
// Failure modes follow the sync taxonomy:
//   - No stored session: [apperr.AuthRequired], no network call is made.
//   - HTTP 401: the session is invalidated and [apperr.AuthExpired] is
//     returned without consuming the body.
//   - Any other non-2xx or transport error: [apperr.FetchFailed], fatal for
//     the sync cycle.
func (fetcher *Fetcher) Fetch(context context.Context) ([]string, error) {
	token, err := fetcher.sessions.Token(context)
	if err != nil {
		return nil, apperr.FetchFailed(err)
	}
	if token == "" {
		return nil, apperr.AuthRequired()
	}

	response, err := fetcher.client.get(context, fetcher.client.purchasesURL(), token)
	if err != nil {
		return nil, apperr.FetchFailed(err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode == http.StatusUnauthorized {
		// Re-authentication needs human interaction, so no retry here.
		if err := fetcher.sessions.Invalidate(context); err != nil {
			fetcher.logger.Error("session_invalidate_failed", slog.Any("error", err))
		}
		return nil, apperr.AuthExpired()
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apperr.FetchFailed(fmt.Errorf("purchase list returned status %d", response.StatusCode))
	}

	var body boughtResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return nil, apperr.FetchFailed(fmt.Errorf("decode purchase list: %w", err))
	}

	// Map keys cannot repeat, so deduplication is implicit; sorting gives
	// the caller a deterministic order.
	productIDs := make([]string, 0, len(body.Bought))
	for productID := range body.Bought {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	fetcher.logger.Info("purchase_list_fetched", slog.Int("count", len(productIDs)))
	return productIDs, nil
}
