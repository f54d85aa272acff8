package services

import (
	"fmt"
	"testing"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// countingStore is a controllable storage.Store for cache tests
type countingStore struct {
	items        map[string][]models.LocalInfoItem
	lots         []models.ParkingLot
	fail         bool
	localCalls   int
	parkingCalls int
}

func (s *countingStore) LocalInfoItems(category string) ([]models.LocalInfoItem, error) {
	s.localCalls++
	if s.fail {
		return nil, fmt.Errorf("backend unavailable")
	}
	return s.items[category], nil
}

func (s *countingStore) ParkingLots() ([]models.ParkingLot, error) {
	s.parkingCalls++
	if s.fail {
		return nil, fmt.Errorf("backend unavailable")
	}
	return s.lots, nil
}

func helpCentreItems(n int) []models.LocalInfoItem {
	items := make([]models.LocalInfoItem, n)
	for i := range items {
		items[i] = models.LocalInfoItem{
			Names: map[string]string{"en": fmt.Sprintf("Centre %d", i+1)},
		}
	}
	return items
}

func TestFetchCategoryFreshness(t *testing.T) {
	store := &countingStore{items: map[string][]models.LocalInfoItem{
		"Help_Centres": helpCentreItems(2),
	}}
	cache := NewDataCache(store)

	cache.FetchCategory("Help_Centres", false)
	if got := len(cache.LocalInfo("Help_Centres")); got != 2 {
		t.Fatalf("cached %d items, want 2", got)
	}
	if store.localCalls != 1 {
		t.Fatalf("store called %d times, want 1", store.localCalls)
	}

	// Fresh and non-empty: second non-forced fetch is skipped
	cache.FetchCategory("Help_Centres", false)
	if store.localCalls != 1 {
		t.Errorf("non-forced fetch hit backend while fresh: %d calls", store.localCalls)
	}

	// Forced refresh always hits the backend
	cache.FetchCategory("Help_Centres", true)
	if store.localCalls != 2 {
		t.Errorf("forced fetch skipped backend: %d calls", store.localCalls)
	}
}

func TestFetchCategoryIndependentPerCategory(t *testing.T) {
	store := &countingStore{items: map[string][]models.LocalInfoItem{
		"Help_Centres": helpCentreItems(1),
		"Toilets_Near_Temple": {
			{Names: map[string]string{"en": "North Gate Block"}},
		},
	}}
	cache := NewDataCache(store)

	cache.FetchCategory("Help_Centres", false)
	cache.FetchCategory("Toilets_Near_Temple", false)
	if store.localCalls != 2 {
		t.Fatalf("store called %d times, want 2", store.localCalls)
	}

	// A fetch of one fresh category must not refresh the other
	cache.FetchCategory("Help_Centres", false)
	if store.localCalls != 2 {
		t.Errorf("fresh category fetch hit backend: %d calls", store.localCalls)
	}
}

func TestCacheStaleOnBackendError(t *testing.T) {
	store := &countingStore{
		items: map[string][]models.LocalInfoItem{"Help_Centres": helpCentreItems(3)},
		lots: []models.ParkingLot{
			{NameEN: "Yard A", IsOpen: "TRUE", AvailableSpaces: "5", TotalCapacity: "10"},
		},
	}
	cache := NewDataCache(store)
	cache.FetchCategory("Help_Centres", true)
	cache.FetchAllParkingLots(true)

	store.fail = true
	cache.FetchCategory("Help_Centres", true)
	cache.FetchAllParkingLots(true)

	if got := len(cache.LocalInfo("Help_Centres")); got != 3 {
		t.Errorf("backend error cleared local info cache: %d items, want 3", got)
	}
	if got := len(cache.ParkingLots()); got != 1 {
		t.Errorf("backend error cleared parking cache: %d lots, want 1", got)
	}
}

func TestCacheNilStore(t *testing.T) {
	cache := NewDataCache(nil)
	cache.Preload()
	cache.FetchCategory("Help_Centres", true)
	cache.FetchAllParkingLots(true)

	if got := len(cache.LocalInfo("Help_Centres")); got != 0 {
		t.Errorf("nil store produced %d items, want 0", got)
	}
	if got := len(cache.ParkingLots()); got != 0 {
		t.Errorf("nil store produced %d lots, want 0", got)
	}
}

func TestPreloadPopulatesEverything(t *testing.T) {
	store := &countingStore{
		items: map[string][]models.LocalInfoItem{"Annadhanam_Details": helpCentreItems(1)},
		lots:  []models.ParkingLot{{NameEN: "Yard A"}},
	}
	cache := NewDataCache(store)
	cache.Preload()

	if store.localCalls != len(InfoCategories) {
		t.Errorf("preload fetched %d categories, want %d", store.localCalls, len(InfoCategories))
	}
	if store.parkingCalls != 1 {
		t.Errorf("preload fetched parking %d times, want 1", store.parkingCalls)
	}
	if got := len(cache.ParkingLots()); got != 1 {
		t.Errorf("preload cached %d lots, want 1", got)
	}
}
