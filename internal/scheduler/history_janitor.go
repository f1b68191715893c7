package scheduler

import (
	"context"
	"time"

	"github.com/wayfarelabs/wayfare/internal/domain"
	"github.com/wayfarelabs/wayfare/internal/logger"
)

const (
	// DefaultHistoryMaxEntries caps how many edits a trip's history keeps.
	DefaultHistoryMaxEntries = 200
)

// historyStore is the slice of the Redis store the janitor needs.
type historyStore interface {
	HistoryTripIDs(ctx context.Context) ([]string, error)
	GetHistory(ctx context.Context, tripID string) (domain.History, error)
	SaveHistory(ctx context.Context, tripID string, h domain.History) error
}

// HistoryJanitor periodically trims oversized edit histories so a
// long-lived trip cannot grow its log without bound.
type HistoryJanitor struct {
	store      historyStore
	logger     logger.Logger
	interval   time.Duration
	maxEntries int
	stopCh     chan struct{}
}

// NewHistoryJanitor creates a new history janitor.
func NewHistoryJanitor(
	store historyStore,
	log logger.Logger,
	interval time.Duration,
	maxEntries int,
) *HistoryJanitor {
	if maxEntries <= 0 {
		maxEntries = DefaultHistoryMaxEntries
	}
	return &HistoryJanitor{
		store:      store,
		logger:     log,
		interval:   interval,
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the periodic sweep.
func (hj *HistoryJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(hj.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := hj.Sweep(ctx); err != nil {
					hj.logger.Error("history sweep failed",
						logger.Error(err))
				}
			case <-hj.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the janitor.
func (hj *HistoryJanitor) Stop() {
	close(hj.stopCh)
}

// Sweep trims every persisted history to the configured cap. A failure on
// one trip does not abort the sweep.
func (hj *HistoryJanitor) Sweep(ctx context.Context) error {
	if hj.store == nil {
		return nil
	}

	ids, err := hj.store.HistoryTripIDs(ctx)
	if err != nil {
		return err
	}

	trimmed := 0
	for _, tripID := range ids {
		h, err := hj.store.GetHistory(ctx, tripID)
		if err != nil {
			hj.logger.Warn("failed to load history for trimming",
				logger.String("trip_id", tripID),
				logger.Error(err))
			continue
		}
		if len(h.Entries) <= hj.maxEntries {
			continue
		}

		h = h.Trim(hj.maxEntries)
		if err := hj.store.SaveHistory(ctx, tripID, h); err != nil {
			hj.logger.Warn("failed to save trimmed history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			continue
		}
		trimmed++
	}

	if trimmed > 0 {
		hj.logger.Info("trimmed oversized edit histories",
			logger.Int("trips", trimmed),
			logger.Int("max_entries", hj.maxEntries))
	}
	return nil
}
