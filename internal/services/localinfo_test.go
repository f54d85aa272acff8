package services

import (
	"strings"
	"testing"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/storage"
)

func newTestInfoFormatter(store *storage.MemoryStore, apiKey string) *InfoFormatter {
	cache := NewDataCache(store)
	return NewInfoFormatter(cache, locales.NewCatalog(), NewMapLinks(apiKey))
}

func TestFormatCategoryEmpty(t *testing.T) {
	formatter := newTestInfoFormatter(storage.NewMemoryStore(), "")

	got := formatter.FormatCategory("en", "First_Aid_Stations")
	want := "No information currently available for First Aid Stations in Tiruchendur."
	if got != want {
		t.Errorf("FormatCategory() = %q, want %q", got, want)
	}
}

func TestFormatCategoryUnknown(t *testing.T) {
	formatter := newTestInfoFormatter(storage.NewMemoryStore(), "")
	if got := formatter.FormatCategory("en", "Lost_And_Found"); got != "Error: Unknown data category." {
		t.Errorf("FormatCategory() = %q", got)
	}
}

func TestFormatCategoryItems(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SeedLocalInfo("Help_Centres", []models.LocalInfoItem{
		{
			Names: map[string]string{"en": "East Gate Desk", "ta": "கிழக்கு வாசல் மையம்"},
			Attrs: map[string]map[string]string{
				"Notes": {"en": "Open around the clock", "ta": "எப்போதும் திறந்திருக்கும்"},
			},
		},
		{
			// No notes at all: template default must kick in
			Names: map[string]string{"en": "South Gate Desk"},
		},
	})
	formatter := newTestInfoFormatter(store, "test-key")

	got := formatter.FormatCategory("en", "Help_Centres")
	for _, want := range []string{
		"--- 'May I Help You?' Centres in Tiruchendur ---",
		"East Gate Desk",
		"Notes: Open around the clock",
		"South Gate Desk",
		"Notes: N/A",
		"maps/embed/v1/place?key=test-key&q=East+Gate+Desk%2C+Tiruchendur",
		"data-embed=\"true\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted category missing %q:\n%s", want, got)
		}
	}

	// Tamil rendering resolves localized name and attribute values
	gotTA := formatter.FormatCategory("ta", "Help_Centres")
	if !strings.Contains(gotTA, "கிழக்கு வாசல் மையம்") || !strings.Contains(gotTA, "எப்போதும் திறந்திருக்கும்") {
		t.Errorf("tamil category missing localized values:\n%s", gotTA)
	}
	// English fallback for the item without a Tamil name
	if !strings.Contains(gotTA, "South Gate Desk") {
		t.Errorf("tamil category missing english fallback name:\n%s", gotTA)
	}
}

func TestFormatCategoryBusStandTemplate(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SeedLocalInfo("Temp_Bus_Stands", []models.LocalInfoItem{
		{
			Names: map[string]string{"en": "Anna Nagar Stand"},
			Attrs: map[string]map[string]string{
				"RouteInfo":    {"en": "Tirunelveli side"},
				"ActiveDuring": {"en": "Festival week"},
			},
		},
	})
	formatter := newTestInfoFormatter(store, "")

	got := formatter.FormatCategory("en", "Temp_Bus_Stands")
	for _, want := range []string{
		"Route: Tirunelveli side",
		"Active: Festival week",
		"Map not available", // no API key configured
	} {
		if !strings.Contains(got, want) {
			t.Errorf("bus stand block missing %q:\n%s", want, got)
		}
	}
}

func TestFormatNearby(t *testing.T) {
	formatter := newTestInfoFormatter(storage.NewMemoryStore(), "test-key")

	got := formatter.FormatNearby("en", "atm")
	for _, want := range []string{
		"results for Atm in the Tiruchendur area",
		"Results for Atm",
		"maps/embed/v1/search?key=test-key&q=atm+in+Tiruchendur",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("nearby block missing %q:\n%s", want, got)
		}
	}
}

func TestFormatNearbyTamilQuery(t *testing.T) {
	formatter := newTestInfoFormatter(storage.NewMemoryStore(), "test-key")

	// Multibyte query text must survive display-name casing intact
	got := formatter.FormatNearby("ta", "உணவகம்")
	if !strings.Contains(got, "results for உணவகம் in the Tiruchendur area") {
		t.Errorf("tamil query mangled in nearby block:\n%s", got)
	}
	if strings.ContainsRune(got, '\uFFFD') {
		t.Errorf("nearby block contains replacement character:\n%s", got)
	}
}
