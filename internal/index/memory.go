package index

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wayfarelabs/wayfare/internal/domain"
)

// CatalogIndex is the in-memory location catalog, keyed by city then
// location id. It is the primary candidate source; Redis only caches
// derived pools on top of it.
type CatalogIndex struct {
	mu         sync.RWMutex
	cities     map[string]map[string]*domain.Location
	lastReload time.Time
}

// NewCatalogIndex creates an empty catalog index.
func NewCatalogIndex() *CatalogIndex {
	return &CatalogIndex{
		cities: make(map[string]map[string]*domain.Location),
	}
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// ReplaceAll swaps in a freshly loaded catalog.
func (idx *CatalogIndex) ReplaceAll(catalog map[string][]*domain.Location) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.cities = make(map[string]map[string]*domain.Location, len(catalog))
	for city, locs := range catalog {
		byID := make(map[string]*domain.Location, len(locs))
		for _, loc := range locs {
			if loc != nil && loc.ID != "" {
				byID[loc.ID] = loc
			}
		}
		idx.cities[cityKey(city)] = byID
	}
	idx.lastReload = time.Now()
}

// UpdateCity replaces a single city's locations.
func (idx *CatalogIndex) UpdateCity(city string, locs []*domain.Location) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	byID := make(map[string]*domain.Location, len(locs))
	for _, loc := range locs {
		if loc != nil && loc.ID != "" {
			byID[loc.ID] = loc
		}
	}
	idx.cities[cityKey(city)] = byID
}

// City returns all locations for a city, sorted by name for stable
// iteration. ok=false means the catalog has no data for this city at
// all, which callers must distinguish from an empty result.
func (idx *CatalogIndex) City(city string) ([]*domain.Location, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byID, ok := idx.cities[cityKey(city)]
	if !ok {
		return nil, false
	}

	locs := make([]*domain.Location, 0, len(byID))
	for _, loc := range byID {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Name < locs[j].Name })
	return locs, true
}

// Location looks up a single location by city and id.
func (idx *CatalogIndex) Location(city, id string) (*domain.Location, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byID, ok := idx.cities[cityKey(city)]
	if !ok {
		return nil, false
	}
	loc, ok := byID[id]
	return loc, ok
}

// Cities lists the known city keys.
func (idx *CatalogIndex) Cities() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	cities := make([]string, 0, len(idx.cities))
	for city := range idx.cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// Count returns the total number of locations across all cities.
func (idx *CatalogIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	total := 0
	for _, byID := range idx.cities {
		total += len(byID)
	}
	return total
}

// LastReload returns the timestamp of the last catalog swap.
func (idx *CatalogIndex) LastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
