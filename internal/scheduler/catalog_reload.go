package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/wayfarelabs/wayfare/internal/index"
	"github.com/wayfarelabs/wayfare/internal/logger"
	"github.com/wayfarelabs/wayfare/internal/sources/catalog"
	redisstore "github.com/wayfarelabs/wayfare/internal/store/redis"
)

// CatalogReloader handles periodic reloading of the location catalog file.
type CatalogReloader struct {
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	store         *redisstore.Store
	index         *index.CatalogIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader.
func NewCatalogReloader(
	catalogFile string,
	store *redisstore.Store,
	idx *index.CatalogIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(catalogFile),
		mapper:        catalog.NewMapper(),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then reloads on every tick or manual trigger.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog reload failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload parses the catalog file and replaces the in-memory index. Cached
// candidate pools in Redis are flushed so stale entries never outlive a
// catalog change.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading location catalog")

	file, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	byCity, err := cr.mapper.MapLocations(file)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}

	total := 0
	for _, locs := range byCity {
		total += len(locs)
	}
	cr.logger.Info("loaded location catalog",
		logger.Int("cities", len(byCity)),
		logger.Int("locations", total))

	cr.index.ReplaceAll(byCity)

	// Flush cached pools (best effort). The memory index is authoritative.
	if cr.store != nil {
		if err := cr.store.FlushPools(ctx); err != nil {
			cr.logger.Warn("failed to flush cached candidate pools",
				logger.Error(err))
		}
	}

	return nil
}
