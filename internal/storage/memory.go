package storage

import (
	"sync"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// MemoryStore holds document data in memory for local runs and tests
type MemoryStore struct {
	mu        sync.RWMutex
	localInfo map[string][]models.LocalInfoItem
	parking   []models.ParkingLot
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		localInfo: make(map[string][]models.LocalInfoItem),
	}
}

func (m *MemoryStore) LocalInfoItems(category string) ([]models.LocalInfoItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.localInfo[category]
	out := make([]models.LocalInfoItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryStore) ParkingLots() ([]models.ParkingLot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.ParkingLot, len(m.parking))
	copy(out, m.parking)
	return out, nil
}

// SeedLocalInfo replaces the item list for one category
func (m *MemoryStore) SeedLocalInfo(category string, items []models.LocalInfoItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.localInfo[category] = items
}

// SeedParkingLots replaces the parking lot collection
func (m *MemoryStore) SeedParkingLots(lots []models.ParkingLot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parking = lots
}

// SeedDemoData loads a small fixture set so the bot answers something
// useful without a database attached
func (m *MemoryStore) SeedDemoData() {
	m.SeedLocalInfo("Help_Centres", []models.LocalInfoItem{
		{
			Names: map[string]string{"en": "Main Rajagopuram Help Desk", "ta": "ராஜகோபுரம் உதவி மையம்"},
			Attrs: map[string]map[string]string{
				"Notes": {"en": "Open 24x7 during festival days"},
			},
		},
	})
	m.SeedLocalInfo("Temp_Bus_Stands", []models.LocalInfoItem{
		{
			Names: map[string]string{"en": "Anna Nagar Temporary Stand"},
			Attrs: map[string]map[string]string{
				"RouteInfo":    {"en": "Tirunelveli side arrivals"},
				"ActiveDuring": {"en": "Soorasamharam week"},
			},
		},
	})
	m.SeedParkingLots([]models.ParkingLot{
		{
			NameEN: "Kulasekarapatnam Road Grounds", Route: "Thoothukudi",
			IsOpen: "TRUE", AvailableSpaces: "120", TotalCapacity: "400",
			Priority: "1", Latitude: 8.5104, Longitude: 78.1102,
		},
		{
			NameEN: "Tirunelveli Road Open Yard", Route: "Tirunelveli",
			IsOpen: "TRUE", AvailableSpaces: "45", TotalCapacity: "250",
			Priority: "2", Latitude: 8.4938, Longitude: 78.0901,
		},
	})
}
