package services

import (
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/storage"
)

const (
	// CacheDuration is the freshness window before a non-forced fetch
	// goes back to the backend
	CacheDuration = 5 * time.Minute

	cacheCleanupInterval = 10 * time.Minute

	parkingLotsKey = "parking_lots"
	localInfoKey   = "local_info:"
	freshKey       = "fresh:"
)

// DataCache is a time-bounded cache over the backend document store.
// Collections are kept under never-expiring keys so a backend failure
// degrades to stale-but-available data; a separate freshness marker with
// the cache TTL decides when a non-forced fetch is skipped. Each local
// info category has its own marker, so one stale category does not force
// a refresh of another.
type DataCache struct {
	store   storage.Store
	entries *gocache.Cache
}

// NewDataCache creates a cache over the given store. A nil store is
// tolerated: fetches become no-ops and every collection reads empty.
func NewDataCache(store storage.Store) *DataCache {
	return &DataCache{
		store:   store,
		entries: gocache.New(CacheDuration, cacheCleanupInterval),
	}
}

// FetchCategory refreshes one local info category from the backend unless
// the cached copy is still fresh and non-empty. Backend errors leave the
// existing cache untouched.
func (d *DataCache) FetchCategory(name string, forceRefresh bool) {
	key := localInfoKey + name
	if !forceRefresh {
		if _, fresh := d.entries.Get(freshKey + key); fresh && len(d.LocalInfo(name)) > 0 {
			return
		}
	}
	if d.store == nil {
		return
	}

	items, err := d.store.LocalInfoItems(name)
	if err != nil {
		log.Printf("⚠️  Error fetching local info '%s': %v", name, err)
		return
	}
	d.entries.Set(key, items, gocache.NoExpiration)
	d.entries.Set(freshKey+key, time.Now(), gocache.DefaultExpiration)
}

// FetchAllParkingLots refreshes the parking lot collection, with the same
// freshness and stale-on-error semantics as FetchCategory.
func (d *DataCache) FetchAllParkingLots(forceRefresh bool) {
	if !forceRefresh {
		if _, fresh := d.entries.Get(freshKey + parkingLotsKey); fresh && len(d.ParkingLots()) > 0 {
			return
		}
	}
	if d.store == nil {
		return
	}

	lots, err := d.store.ParkingLots()
	if err != nil {
		log.Printf("⚠️  Error fetching parking lots: %v", err)
		return
	}
	d.entries.Set(parkingLotsKey, lots, gocache.NoExpiration)
	d.entries.Set(freshKey+parkingLotsKey, time.Now(), gocache.DefaultExpiration)
}

// LocalInfo returns the cached items for a category (never nil)
func (d *DataCache) LocalInfo(name string) []models.LocalInfoItem {
	if v, ok := d.entries.Get(localInfoKey + name); ok {
		if items, ok := v.([]models.LocalInfoItem); ok {
			return items
		}
	}
	return []models.LocalInfoItem{}
}

// ParkingLots returns the cached parking collection (never nil)
func (d *DataCache) ParkingLots() []models.ParkingLot {
	if v, ok := d.entries.Get(parkingLotsKey); ok {
		if lots, ok := v.([]models.ParkingLot); ok {
			return lots
		}
	}
	return []models.ParkingLot{}
}

// Preload eagerly populates every category and the parking collection.
// Best effort: without a working backend it simply leaves the cache empty.
func (d *DataCache) Preload() {
	if d.store == nil {
		log.Println("⚠️  No backend store configured - skipping data preload")
		return
	}
	log.Println("📦 Pre-loading all data from backend store...")
	for _, category := range InfoCategories {
		d.FetchCategory(category, true)
	}
	d.FetchAllParkingLots(true)
	log.Println("✅ Pre-loading complete")
}
