package services

import (
	"fmt"
	"net/url"
)

// Pre-built overview maps covering all lots of one arrival route
var routeOverviewMaps = map[string]string{
	"thoothukudi": "1RTKvzXANpeJXI5wsW28WGclXkO2T7kw",
	"tirunelveli": "1cROpQnVd_Jk7B6KPDyhreS98ek1GDrQ",
	"nagercoil":   "17GYGNfx6r8bO7ORC7QfYgQHyF1gT2_4",
}

// MapLinks builds embeddable map URLs following the Google Maps embed
// query conventions. Pure string construction, no network calls.
type MapLinks struct {
	apiKey string
}

// NewMapLinks creates a link builder; an empty API key disables
// query-based links (my-map links still work).
func NewMapLinks(apiKey string) *MapLinks {
	return &MapLinks{apiKey: apiKey}
}

// EmbedMyMap returns the embed URL for a pre-built named map
func (m *MapLinks) EmbedMyMap(myMapID string) string {
	return fmt.Sprintf("https://www.google.com/maps/d/embed?mid=%s", myMapID)
}

// EmbedPlace returns the embed URL for a single place query, or "" when
// no API key or query is available
func (m *MapLinks) EmbedPlace(query string) string {
	if m.apiKey == "" || query == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/embed/v1/place?key=%s&q=%s",
		m.apiKey, url.QueryEscape(query))
}

// EmbedSearch returns the embed URL for a free-text area search
func (m *MapLinks) EmbedSearch(query string) string {
	if m.apiKey == "" || query == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/embed/v1/search?key=%s&q=%s",
		m.apiKey, url.QueryEscape(query))
}

// Anchor wraps an embed URL in the HTML the web client intercepts for
// in-page map embedding
func (m *MapLinks) Anchor(embedURL, label string) string {
	return fmt.Sprintf("<a href=%q data-embed=\"true\">%s</a>", embedURL, label)
}

// RouteOverviewMap returns the named overview map for an arrival route
func (m *MapLinks) RouteOverviewMap(route string) (string, bool) {
	id, ok := routeOverviewMaps[route]
	return id, ok
}
