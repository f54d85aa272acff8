package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// DatabaseStore reads documents from PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (d *DatabaseStore) LocalInfoItems(category string) ([]models.LocalInfoItem, error) {
	var doc models.LocalInfoDoc
	err := d.db.Where("category = ?", category).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.LocalInfoItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching local info doc '%s': %w", category, err)
	}

	var items []models.LocalInfoItem
	if doc.Items != "" {
		if err := json.Unmarshal([]byte(doc.Items), &items); err != nil {
			return nil, fmt.Errorf("decoding local info doc '%s': %w", category, err)
		}
	}
	return items, nil
}

func (d *DatabaseStore) ParkingLots() ([]models.ParkingLot, error) {
	var lots []models.ParkingLot
	if err := d.db.Find(&lots).Error; err != nil {
		return nil, fmt.Errorf("fetching parking lots: %w", err)
	}
	return lots, nil
}
