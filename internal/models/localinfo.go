package models

import "time"

// LocalInfoItem is one point of interest inside a category document.
// Names maps language code to display name; Attrs maps an attribute field
// (Notes, Timings, RouteInfo, ActiveDuring, ContactInfo, ...) to its
// per-language values. Lookups fall back to English, then "N/A".
type LocalInfoItem struct {
	Names map[string]string            `json:"names"`
	Attrs map[string]map[string]string `json:"attrs"`
}

// Name returns the localized display name with English fallback
func (it LocalInfoItem) Name(lang string) string {
	if name, ok := it.Names[lang]; ok && name != "" {
		return name
	}
	if name, ok := it.Names["en"]; ok && name != "" {
		return name
	}
	return "N/A"
}

// Attr resolves one attribute field to the given language, falling back
// to the English value. The second return reports whether the field exists.
func (it LocalInfoItem) Attr(field, lang string) (string, bool) {
	byLang, ok := it.Attrs[field]
	if !ok {
		return "", false
	}
	if v, ok := byLang[lang]; ok && v != "" {
		return v, true
	}
	if v, ok := byLang["en"]; ok && v != "" {
		return v, true
	}
	return "", false
}

// LocalInfoDoc is the persisted form of one category: the whole item list
// stored as a single JSON document, refreshed wholesale.
type LocalInfoDoc struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"uniqueIndex"`
	Items     string    `json:"items"` // JSON array of LocalInfoItem
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
