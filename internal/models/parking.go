package models

import "time"

// ParkingLot is one record from the parking_lots collection.
// Occupancy fields arrive as raw strings because the upstream aggregation
// sheet is untyped; the parking finder parses them and skips bad rows.
type ParkingLot struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	NameEN          string    `json:"name_en"`
	NameTA          string    `json:"name_ta"`
	Route           string    `json:"route"` // free text, matched by substring
	IsOpen          string    `json:"is_open"`
	AvailableSpaces string    `json:"available_spaces"`
	TotalCapacity   string    `json:"total_capacity"`
	Priority        string    `json:"priority"` // lower wins ties, empty means 99
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Name returns the display name for a language, falling back to English
func (p *ParkingLot) Name(lang string) string {
	if lang == "ta" && p.NameTA != "" {
		return p.NameTA
	}
	return p.NameEN
}
