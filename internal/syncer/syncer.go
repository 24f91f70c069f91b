// Copyright (c) 2026 Workshelf. All rights reserved.

/*
Package syncer orchestrates a full library sync.

# Pipeline

A sync runs in two stages. Stage one is sequential: load the preferences and
fetch the owned product ids; an authentication failure here aborts the whole
run. Stage two fans the ids out over a bounded worker pool that scrapes and
maps each product page; a failure there is recorded on its item and never
stops the siblings. All workers share one rate limiter so concurrency does
not multiply pressure on the storefront.
*/
package syncer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"github.com/tsukihara/workshelf/internal/metadata"
	"github.com/tsukihara/workshelf/internal/settings"
	"github.com/tsukihara/workshelf/internal/storefront"
)

// ItemResult is the outcome for one owned product. Exactly one of Record and
// Err is set.
type ItemResult struct {
	ProductID string           `json:"product_id"`
	Record    *metadata.Record `json:"record,omitempty"`
	Err       error            `json:"-"`
}

// MarshalJSON flattens the item error into a transportable message.
func (item ItemResult) MarshalJSON() ([]byte, error) {
	payload := struct {
		ProductID string           `json:"product_id"`
		Record    *metadata.Record `json:"record,omitempty"`
		Error     string           `json:"error,omitempty"`
	}{ProductID: item.ProductID, Record: item.Record}

	if item.Err != nil {
		payload.Error = item.Err.Error()
	}

	return json.Marshal(payload)
}

// Report summarizes one sync run. Items preserves the storefront's id order.
type Report struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Items     []ItemResult `json:"items"`
}

// Syncer wires the session, storefront, and mapping layers into one pipeline.
type Syncer struct {
	fetcher  *storefront.Fetcher
	scraper  *storefront.Scraper
	mapper   *metadata.Mapper
	settings settings.Store
	limiter  *rate.Limiter
	workers  int
	logger   *slog.Logger
}

func New(
	fetcher *storefront.Fetcher,
	scraper *storefront.Scraper,
	mapper *metadata.Mapper,
	settingsStore settings.Store,
	limiter *rate.Limiter,
	workers int,
	logger *slog.Logger,
) *Syncer {
	if workers < 1 {
		workers = 1
	}

	return &Syncer{
		fetcher:  fetcher,
		scraper:  scraper,
		mapper:   mapper,
		settings: settingsStore,
		limiter:  limiter,
		workers:  workers,
		logger:   logger,
	}
}

// Sync runs one full pipeline pass. It returns an error only for run-level
// failures (no session, expired session, purchase fetch failure, cancelled
// context); per-item scrape and mapping failures land in the report.
func (syncer *Syncer) Sync(context context.Context) (*Report, error) {
	preferences, err := syncer.settings.Load(context)
	if err != nil {
		return nil, err
	}

	productIDs, err := syncer.fetcher.Fetch(context)
	if err != nil {
		return nil, err
	}

	syncer.logger.Info("sync_started",
		slog.Int("owned", len(productIDs)),
		slog.Int("workers", syncer.workers),
	)

	report := &Report{
		Total: len(productIDs),
		Items: make([]ItemResult, len(productIDs)),
	}

	type job struct {
		index     int
		productID string
	}

	jobs := make(chan job)
	var group sync.WaitGroup

	for i := 0; i < syncer.workers; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for work := range jobs {
				report.Items[work.index] = syncer.syncOne(context, work.productID, preferences)
			}
		}()
	}

	for index, productID := range productIDs {
		select {
		case jobs <- job{index: index, productID: productID}:
		case <-context.Done():
			close(jobs)
			group.Wait()
			return nil, context.Err()
		}
	}
	close(jobs)
	group.Wait()

	for _, item := range report.Items {
		if item.Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}

	syncer.logger.Info("sync_finished",
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// syncOne scrapes and maps a single product, pacing against the shared
// limiter first.
func (syncer *Syncer) syncOne(context context.Context, productID string, preferences settings.Settings) ItemResult {
	result := ItemResult{ProductID: productID}

	if err := syncer.limiter.Wait(context); err != nil {
		result.Err = err
		return result
	}

	work, err := syncer.scraper.ScrapeWork(context, productID, preferences.PageLocale)
	if err != nil {
		syncer.logger.Warn("item_sync_failed",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		result.Err = err
		return result
	}

	record, err := syncer.mapper.Map(context, work, preferences)
	if err != nil {
		result.Err = err
		return result
	}

	result.Record = record
	return result
}
