package services

import (
	"strings"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
)

// categoryConfig ties a local info category to its menu label key, item
// template and map link label
type categoryConfig struct {
	TitleKey        string
	ItemTemplateKey string
	LinkText        string
}

var categoryConfigs = map[string]categoryConfig{
	"Help_Centres":        {"option_help_centres", "local_info_item_format", "View Map & Directions"},
	"First_Aid_Stations":  {"option_first_aid", "local_info_item_format", "View Map & Directions"},
	"Temp_Bus_Stands":     {"option_temp_bus_stands", "local_info_item_format_bus", "View Map & Directions"},
	"Toilets_Near_Temple": {"option_toilets_temple", "local_info_item_format", "View Map & Directions"},
	"Annadhanam_Details":  {"option_annadhanam", "local_info_item_format_annadhanam", "View Map & Directions"},
}

// InfoCategories lists every known local info category (preload order)
var InfoCategories = []string{
	"Help_Centres",
	"First_Aid_Stations",
	"Temp_Bus_Stands",
	"Toilets_Near_Temple",
	"Annadhanam_Details",
}

// InfoFormatter renders cached local info categories into localized text
type InfoFormatter struct {
	cache   *DataCache
	catalog *locales.Catalog
	maps    *MapLinks
}

// NewInfoFormatter creates an info formatter over the shared cache
func NewInfoFormatter(cache *DataCache, catalog *locales.Catalog, maps *MapLinks) *InfoFormatter {
	return &InfoFormatter{cache: cache, catalog: catalog, maps: maps}
}

// FormatCategory force-refreshes one category and renders its items as a
// localized, linked text block. Missing attributes render as "N/A".
func (f *InfoFormatter) FormatCategory(lang, category string) string {
	cfg, ok := categoryConfigs[category]
	if !ok {
		return "Error: Unknown data category."
	}

	f.cache.FetchCategory(category, true)
	items := f.cache.LocalInfo(category)

	displayName := categoryDisplayName(f.catalog.GetText(lang, cfg.TitleKey, nil))
	if len(items) == 0 {
		return f.catalog.GetText(lang, "no_local_info_found", map[string]string{
			"category_name": displayName,
		})
	}

	parts := []string{f.catalog.GetText(lang, "local_info_title_format", map[string]string{
		"category_name": displayName,
	})}
	itemTemplate := f.catalog.GetText(lang, cfg.ItemTemplateKey, nil)

	for _, item := range items {
		name := item.Name(lang)
		args := map[string]string{"ItemName": name}

		if embedURL := f.maps.EmbedPlace(name + ", Tiruchendur"); embedURL != "" {
			args["ViewMapLink"] = f.maps.Anchor(embedURL, cfg.LinkText)
		} else {
			args["ViewMapLink"] = "Map not available"
		}

		for field := range item.Attrs {
			if value, ok := item.Attr(field, lang); ok {
				args[field] = value
			}
		}

		parts = append(parts, locales.RenderWithDefaults(itemTemplate, args))
	}
	return strings.Join(parts, "")
}

// FormatNearby answers a free-text nearby search with an embeddable map
// link block; no geocoding happens server-side.
func (f *InfoFormatter) FormatNearby(lang, query string) string {
	displayName := titleCase(strings.ReplaceAll(query, "_", " "))

	mapsLink := "Map not available"
	if embedURL := f.maps.EmbedSearch(query + " in Tiruchendur"); embedURL != "" {
		mapsLink = f.maps.Anchor(embedURL, "View on Map")
	}

	intro := f.catalog.GetText(lang, "nearest_place_intro", map[string]string{
		"place_type_display_name": displayName,
	})
	details := f.catalog.GetText(lang, "place_details_maps", map[string]string{
		"name":     "Results for " + displayName,
		"address":  "Click the link below to see locations on the map.",
		"maps_url": mapsLink,
	})
	return intro + details
}

// categoryDisplayName strips the "3. " menu numbering off an option label
func categoryDisplayName(label string) string {
	if _, rest, found := strings.Cut(label, ". "); found {
		return rest
	}
	return label
}
