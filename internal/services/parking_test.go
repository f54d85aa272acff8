package services

import (
	"strings"
	"testing"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/storage"
)

func newTestParkingFinder(lots []models.ParkingLot) *ParkingFinder {
	store := storage.NewMemoryStore()
	store.SeedParkingLots(lots)
	cache := NewDataCache(store)
	return NewParkingFinder(cache, locales.NewCatalog(), NewMapLinks(""))
}

func openLot(name, route, available, capacity, priority string) models.ParkingLot {
	return models.ParkingLot{
		NameEN: name, Route: route, IsOpen: "TRUE",
		AvailableSpaces: available, TotalCapacity: capacity, Priority: priority,
		Latitude: 8.5, Longitude: 78.12,
	}
}

func TestRankLotsOrdering(t *testing.T) {
	finder := newTestParkingFinder([]models.ParkingLot{
		openLot("Nearly Full Yard", "Tirunelveli", "1", "10", "1"),
		openLot("Empty Yard", "Tirunelveli", "9", "10", "2"),
	})
	finder.cache.FetchAllParkingLots(true)

	ranked := finder.rankLots("tirunelveli")
	if len(ranked) != 2 {
		t.Fatalf("ranked %d lots, want 2", len(ranked))
	}
	// 10% full sorts before 90% full regardless of priority
	if ranked[0].lot.NameEN != "Empty Yard" {
		t.Errorf("least full lot ranked second: got %s first", ranked[0].lot.NameEN)
	}
	if ranked[0].percentFull != 10.0 || ranked[1].percentFull != 90.0 {
		t.Errorf("percentFull = %.0f, %.0f, want 10, 90", ranked[0].percentFull, ranked[1].percentFull)
	}
}

func TestRankLotsPriorityTieBreak(t *testing.T) {
	finder := newTestParkingFinder([]models.ParkingLot{
		openLot("Low Priority", "any", "5", "10", "9"),
		openLot("High Priority", "any", "5", "10", "1"),
		openLot("No Priority", "any", "5", "10", ""),
	})
	finder.cache.FetchAllParkingLots(true)

	ranked := finder.rankLots("any")
	if len(ranked) != 3 {
		t.Fatalf("ranked %d lots, want 3", len(ranked))
	}
	if ranked[0].lot.NameEN != "High Priority" || ranked[1].lot.NameEN != "Low Priority" {
		t.Errorf("tie break order = %s, %s, %s", ranked[0].lot.NameEN, ranked[1].lot.NameEN, ranked[2].lot.NameEN)
	}
	// Absent priority defaults past any explicit value
	if ranked[2].priority != 99 {
		t.Errorf("default priority = %d, want 99", ranked[2].priority)
	}
}

func TestRankLotsExclusions(t *testing.T) {
	tests := []struct {
		name string
		lot  models.ParkingLot
	}{
		{"zero capacity", openLot("A", "any", "5", "0", "1")},
		{"zero availability", openLot("B", "any", "0", "100", "1")},
		{"at full threshold", openLot("C", "any", "5", "100", "1")}, // 95% full
		{"above full threshold", openLot("D", "any", "1", "100", "1")},
		{"closed", models.ParkingLot{NameEN: "E", Route: "any", IsOpen: "FALSE", AvailableSpaces: "50", TotalCapacity: "100"}},
		{"malformed availability", openLot("F", "any", "many", "100", "1")},
		{"malformed capacity", openLot("G", "any", "50", "lots", "1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := newTestParkingFinder([]models.ParkingLot{tt.lot})
			finder.cache.FetchAllParkingLots(true)
			if ranked := finder.rankLots("any"); len(ranked) != 0 {
				t.Errorf("excluded lot %s appeared in results", tt.lot.NameEN)
			}
		})
	}
}

func TestRankLotsRouteFilter(t *testing.T) {
	finder := newTestParkingFinder([]models.ParkingLot{
		openLot("Nellai Yard", "Tirunelveli Main Road", "10", "100", "1"),
		openLot("Tuty Yard", "Thoothukudi Bypass", "10", "100", "1"),
	})
	finder.cache.FetchAllParkingLots(true)

	ranked := finder.rankLots("tirunelveli")
	if len(ranked) != 1 || ranked[0].lot.NameEN != "Nellai Yard" {
		t.Fatalf("route filter matched %d lots", len(ranked))
	}

	// Empty and "any" skip route matching
	if got := len(finder.rankLots("")); got != 2 {
		t.Errorf("empty route matched %d lots, want 2", got)
	}
	if got := len(finder.rankLots("any")); got != 2 {
		t.Errorf("'any' route matched %d lots, want 2", got)
	}
}

func TestFindAvailableParkingText(t *testing.T) {
	finder := newTestParkingFinder([]models.ParkingLot{
		openLot("Nellai Yard", "Tirunelveli", "40", "100", "1"),
	})

	text := finder.FindAvailableParking("en", "tirunelveli")
	for _, want := range []string{
		"--- Parking Options for Tirunelveli Route ---",
		"Nellai Yard",
		"40/100 slots",
		"(60% full)",
		"maps/d/embed?mid=1cROpQnVd_Jk7B6KPDyhreS98ek1GDrQ",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("parking text missing %q:\n%s", want, text)
		}
	}
}

func TestFindAvailableParkingGenericTitle(t *testing.T) {
	finder := newTestParkingFinder([]models.ParkingLot{
		openLot("Town Yard", "local", "40", "100", "1"),
	})

	text := finder.FindAvailableParking("en", "any")
	if !strings.Contains(text, "--- Tiruchendur Parking Availability ---") {
		t.Errorf("generic title missing:\n%s", text)
	}
	if strings.Contains(text, "View All Parking Lots") {
		t.Errorf("overview map link present for 'any' route:\n%s", text)
	}
}

func TestFindAvailableParkingNoneAvailable(t *testing.T) {
	finder := newTestParkingFinder(nil)

	got := finder.FindAvailableParking("en", "nagercoil")
	want := "Sorry, no suitable parking spots are currently available or all are nearly full."
	if got != want {
		t.Errorf("FindAvailableParking() = %q, want %q", got, want)
	}

	// Localized for Tamil users as well
	if got := finder.FindAvailableParking("ta", "nagercoil"); !strings.Contains(got, "மன்னிக்கவும்") {
		t.Errorf("tamil no-parking message = %q", got)
	}
}
