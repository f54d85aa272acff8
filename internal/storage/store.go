package storage

import (
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// Store defines read access to the backend document store. The dialogue
// core never writes through it; categories and parking lots are refreshed
// wholesale by the data cache.
type Store interface {
	// LocalInfoItems returns the item list for one local info category.
	// An unknown category yields an empty slice, not an error.
	LocalInfoItems(category string) ([]models.LocalInfoItem, error)

	// ParkingLots returns every record in the parking lots collection
	ParkingLots() ([]models.ParkingLot, error)
}
