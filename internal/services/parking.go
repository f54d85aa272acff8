package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/geo"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// ParkingFullThresholdPercent excludes nearly-full lots from results
const ParkingFullThresholdPercent = 95.0

const defaultLotPriority = 99

// rankedLot decorates a cached lot with parsed and derived fields.
// The cached record itself is never mutated.
type rankedLot struct {
	lot         models.ParkingLot
	available   int
	capacity    int
	percentFull float64
	priority    int
	distanceKm  float64
}

// ParkingFinder filters, scores and renders parking lots for a route
type ParkingFinder struct {
	cache   *DataCache
	catalog *locales.Catalog
	maps    *MapLinks
}

// NewParkingFinder creates a parking finder over the shared cache
func NewParkingFinder(cache *DataCache, catalog *locales.Catalog, maps *MapLinks) *ParkingFinder {
	return &ParkingFinder{cache: cache, catalog: catalog, maps: maps}
}

// FindAvailableParking returns the localized parking availability text for
// a route preference ("any" or empty means all routes). The parking cache
// is always force-refreshed so availability figures are live.
func (p *ParkingFinder) FindAvailableParking(lang, routePreference string) string {
	p.cache.FetchAllParkingLots(true)

	ranked := p.rankLots(routePreference)
	if len(ranked) == 0 {
		return p.catalog.GetText(lang, "no_parking_available", nil)
	}

	anyRoute := routePreference == "" || routePreference == "any"
	var title string
	if anyRoute {
		title = p.catalog.GetText(lang, "parking_info_title", nil)
	} else {
		title = p.catalog.GetText(lang, "parking_for_route_title", map[string]string{
			"RouteName": titleCase(routePreference),
		})
	}

	details := make([]string, 0, len(ranked))
	for _, r := range ranked {
		name := r.lot.Name(lang)
		embedURL := p.maps.EmbedPlace(name + ", Tiruchendur")
		viewMapLink := p.maps.Anchor(embedURL, "View Map & Get Directions")

		details = append(details, p.catalog.GetText(lang, "parking_lot_details_format", map[string]string{
			"ParkingName":    name,
			"ViewMapLink":    viewMapLink,
			"Distance":       fmt.Sprintf("%.1f", r.distanceKm),
			"Availability":   strconv.Itoa(r.available),
			"TotalCapacity":  strconv.Itoa(r.capacity),
			"PercentageFull": fmt.Sprintf("%.0f", r.percentFull),
		}))
	}

	response := title + "\n" + strings.Join(details, "\n")

	if mapID, ok := p.maps.RouteOverviewMap(routePreference); ok {
		response += p.catalog.GetText(lang, "overall_parking_map_link_text", map[string]string{
			"overall_map_url": p.maps.EmbedMyMap(mapID),
			"RouteName":       titleCase(routePreference),
		})
	}
	return response
}

// rankLots filters the cached collection to open, non-full lots matching
// the route and sorts them least-full first, ties broken by priority.
// Records with unparsable numeric fields are skipped with a warning.
func (p *ParkingFinder) rankLots(routePreference string) []rankedLot {
	matchRoute := routePreference != "" && routePreference != "any"
	pref := strings.ToLower(routePreference)

	var ranked []rankedLot
	for _, lot := range p.cache.ParkingLots() {
		if matchRoute && !strings.Contains(strings.ToLower(lot.Route), pref) {
			continue
		}
		if !isOpenFlag(lot.IsOpen) {
			continue
		}

		available, err := strconv.Atoi(strings.TrimSpace(lot.AvailableSpaces))
		if err != nil {
			log.Printf("⚠️  Skipping parking lot '%s': bad available spaces %q", lot.NameEN, lot.AvailableSpaces)
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(lot.TotalCapacity))
		if err != nil {
			log.Printf("⚠️  Skipping parking lot '%s': bad capacity %q", lot.NameEN, lot.TotalCapacity)
			continue
		}
		if capacity <= 0 {
			continue
		}

		percentFull := float64(capacity-available) / float64(capacity) * 100
		if available <= 0 || percentFull >= ParkingFullThresholdPercent {
			continue
		}

		ranked = append(ranked, rankedLot{
			lot:         lot,
			available:   available,
			capacity:    capacity,
			percentFull: percentFull,
			priority:    parsePriority(lot.Priority),
			distanceKm:  geo.DistanceFromTownCenter(lot.Latitude, lot.Longitude),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].percentFull != ranked[j].percentFull {
			return ranked[i].percentFull < ranked[j].percentFull
		}
		return ranked[i].priority < ranked[j].priority
	})
	return ranked
}

func isOpenFlag(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRUE", "1":
		return true
	}
	return false
}

func parsePriority(raw string) int {
	prio, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultLotPriority
	}
	return prio
}

// titleCase uppercases the first rune of each space-separated word.
// Runes without an upper case (Tamil script) pass through unchanged.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
