package schema

import (
	"time"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Listing represents the listings table - open rental offers, at most one per asset.
// The asset id is the primary key, so a duplicate listing is rejected by the database
// even if a caller slips past the engine's checks.
type Listing struct {
	// AssetID references the listed asset
	AssetID uint64 `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	// PricePerUnit is the rental price per height-unit
	PricePerUnit uint64 `gorm:"column:price_per_unit;not null"`
	// MaxDuration is the longest rental the owner accepts, in height-units
	MaxDuration uint64 `gorm:"column:max_duration;not null"`
	// CreatedAt is the timestamp when the listing was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}

// ToDomain converts the row to its domain representation
func (l *Listing) ToDomain() *domain.Listing {
	return &domain.Listing{
		AssetID:      domain.AssetID(l.AssetID),
		PricePerUnit: l.PricePerUnit,
		MaxDuration:  l.MaxDuration,
	}
}

// FromListing converts a domain listing to its row representation
func FromListing(l *domain.Listing) *Listing {
	return &Listing{
		AssetID:      uint64(l.AssetID),
		PricePerUnit: l.PricePerUnit,
		MaxDuration:  l.MaxDuration,
	}
}
