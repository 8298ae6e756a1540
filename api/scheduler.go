/*
scheduler.go - Background draft-schedule generator

PURPOSE:
  Periodically pre-generates next week's draft schedule for every store
  that doesn't have one yet, so managers open the week to a proposal
  instead of a blank grid. Drafts are ordinary shift rows tagged "draft";
  regenerating or editing them is the manager's call.

DESIGN:
  - Runs a background goroutine with a configurable check interval
  - Walks every store the persistence layer knows about
  - Skips stores that already have any shifts next week (a rerun with
    the same inputs would produce the same rows anyway; skipping keeps
    manual edits intact)
  - Never fails the process: per-store errors are logged and skipped

USAGE:
  ds := NewDraftScheduler(store, handler, logger)
  ds.Start()
  // ... later
  ds.Stop()

SEE ALSO:
  - schedule/generator.go: the pure generator this loop drives
  - handlers.go: GenerateSchedule, the manual path
*/
package api

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/schedule"
)

// StoreLister is implemented by persistence layers that can enumerate
// configured stores.
type StoreLister interface {
	ListStoreIDs(ctx context.Context) ([]engine.StoreID, error)
}

// DraftScheduler pre-generates next week's schedules in the background.
type DraftScheduler struct {
	Store         Store
	Lister        StoreLister
	Handler       *Handler
	CheckInterval time.Duration
	Enabled       bool
	Log           zerolog.Logger

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewDraftScheduler creates a scheduler with a 1-hour check interval.
func NewDraftScheduler(store Store, lister StoreLister, handler *Handler, log zerolog.Logger) *DraftScheduler {
	return &DraftScheduler{
		Store:         store,
		Lister:        lister,
		Handler:       handler,
		CheckInterval: 1 * time.Hour,
		Enabled:       true,
		Log:           log,
		stop:          make(chan struct{}),
	}
}

// Start begins the scheduler.
func (ds *DraftScheduler) Start() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if !ds.Enabled {
		ds.Log.Info().Msg("draft scheduler disabled, not starting")
		return
	}

	ds.ticker = time.NewTicker(ds.CheckInterval)
	ds.wg.Add(1)
	go ds.run()

	ds.Log.Info().Dur("interval", ds.CheckInterval).Msg("draft scheduler started")
}

// Stop stops the scheduler and waits for the loop to exit.
func (ds *DraftScheduler) Stop() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if ds.ticker != nil {
		ds.ticker.Stop()
		close(ds.stop)
		ds.wg.Wait()
		ds.Log.Info().Msg("draft scheduler stopped")
	}
}

func (ds *DraftScheduler) run() {
	defer ds.wg.Done()
	for {
		select {
		case <-ds.ticker.C:
			ds.RunOnce(context.Background(), time.Now())
		case <-ds.stop:
			return
		}
	}
}

// RunOnce drafts next week's schedule for every store missing one.
// Exposed for tests and for a manual trigger.
func (ds *DraftScheduler) RunOnce(ctx context.Context, now time.Time) {
	today := engine.NewDate(now.Year(), now.Month(), now.Day())
	nextWeek := engine.WeekOf(today).Next()

	storeIDs, err := ds.Lister.ListStoreIDs(ctx)
	if err != nil {
		ds.Log.Error().Err(err).Msg("draft scheduler: listing stores failed")
		return
	}

	for _, storeID := range storeIDs {
		if err := ds.draftStore(ctx, storeID, nextWeek); err != nil {
			ds.Log.Error().Err(err).Str("store_id", string(storeID)).Msg("draft scheduler: store skipped")
		}
	}
}

func (ds *DraftScheduler) draftStore(ctx context.Context, storeID engine.StoreID, week engine.Week) error {
	period := week.Period()
	existing, err := ds.Store.GetShiftsInRange(ctx, storeID, period.Start, period.End)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // week already has shifts, manual or drafted
	}

	hours, err := ds.Store.GetStoreHours(ctx, storeID)
	if err != nil {
		return err
	}
	roster, err := ds.Store.GetStaffForStore(ctx, storeID)
	if err != nil {
		return err
	}
	configJSON, err := ds.Store.GetSettings(ctx, storeID)
	if err != nil {
		return err
	}
	settings, err := ds.Handler.Factory.ParseSettings(configJSON)
	if err != nil {
		settings = schedule.DefaultSettings()
	}

	availability := ds.Handler.Availability.ForWeek(roster, nil)
	result := ds.Handler.Generator.GenerateWeek(storeID, week, hours, availability, settings)

	for _, s := range result.Shifts {
		s.Notes = "draft"
		if _, err := ds.Store.SaveShift(ctx, s); err != nil {
			return err
		}
	}

	ds.Log.Info().
		Str("store_id", string(storeID)).
		Str("week_start", week.Monday.String()).
		Int("shifts", len(result.Shifts)).
		Int("conflicts", len(result.Conflicts)).
		Msg("draft schedule generated")
	return nil
}
