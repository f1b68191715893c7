package provider

import (
	"context"
	"errors"

	"github.com/wayfarelabs/wayfare/internal/domain"
	"github.com/wayfarelabs/wayfare/internal/index"
	"github.com/wayfarelabs/wayfare/internal/logger"
	redisstore "github.com/wayfarelabs/wayfare/internal/store/redis"
)

// ErrNoCityData means the catalog simply has nothing for this city.
// It is deliberately distinct from a transport failure so callers can
// tell "we don't cover this city" apart from "the fetch broke".
var ErrNoCityData = errors.New("no location data for city")

// CandidateProvider supplies the candidate pool for a recommendation.
type CandidateProvider interface {
	Candidates(ctx context.Context, city string, category domain.Category) ([]*domain.Location, error)
}

// CatalogProvider serves candidates from the in-memory catalog index,
// with a best-effort Redis pool cache in front of it. The cache is an
// explicit collaborator with a stated TTL, never ambient state.
type CatalogProvider struct {
	index  *index.CatalogIndex
	store  *redisstore.Store
	logger logger.Logger
}

// NewCatalogProvider creates a provider. The store may be nil; caching
// is then skipped entirely.
func NewCatalogProvider(idx *index.CatalogIndex, store *redisstore.Store, log logger.Logger) *CatalogProvider {
	return &CatalogProvider{
		index:  idx,
		store:  store,
		logger: log,
	}
}

// Candidates returns the pool for a city, optionally narrowed to one
// category. Cache failures are logged and ignored; the index is the
// source of truth.
func (p *CatalogProvider) Candidates(ctx context.Context, city string, category domain.Category) ([]*domain.Location, error) {
	if p.store != nil {
		pool, hit, err := p.store.GetCachedPool(ctx, city, string(category))
		if err != nil {
			p.logger.Debug("pool cache read failed",
				logger.String("city", city),
				logger.Error(err))
		} else if hit {
			return pool, nil
		}
	}

	all, ok := p.index.City(city)
	if !ok {
		return nil, ErrNoCityData
	}

	pool := all
	if category != "" {
		pool = make([]*domain.Location, 0, len(all))
		for _, loc := range all {
			if loc.Category == category {
				pool = append(pool, loc)
			}
		}
	}

	if p.store != nil {
		if err := p.store.CachePool(ctx, city, string(category), pool, redisstore.DefaultPoolTTL); err != nil {
			p.logger.Debug("pool cache write failed",
				logger.String("city", city),
				logger.Error(err))
		}
	}

	return pool, nil
}
