package schema

import (
	"time"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Rental represents the rentals table - active or expired-but-unreclaimed usage grants,
// at most one per asset and mutually exclusive with that asset's listing.
type Rental struct {
	// AssetID references the rented asset
	AssetID uint64 `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	// Renter is the identity holding the time-bounded usage grant
	Renter string `gorm:"column:renter;not null;type:text;index:idx_rentals_renter"`
	// StartHeight is the ledger height at which the rental began
	StartHeight uint64 `gorm:"column:start_height;not null"`
	// EndHeight is the last height at which the renter retains usage rights
	EndHeight uint64 `gorm:"column:end_height;not null;index:idx_rentals_end_height"`
	// AmountPaid is the total payment moved when the rental was created
	AmountPaid uint64 `gorm:"column:amount_paid;not null"`
	// CreatedAt is the timestamp when the rental was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Rental model
func (Rental) TableName() string {
	return "rentals"
}

// ToDomain converts the row to its domain representation
func (r *Rental) ToDomain() *domain.Rental {
	return &domain.Rental{
		AssetID:     domain.AssetID(r.AssetID),
		Renter:      domain.Identity(r.Renter),
		StartHeight: r.StartHeight,
		EndHeight:   r.EndHeight,
		AmountPaid:  r.AmountPaid,
	}
}

// FromRental converts a domain rental to its row representation
func FromRental(r *domain.Rental) *Rental {
	return &Rental{
		AssetID:     uint64(r.AssetID),
		Renter:      string(r.Renter),
		StartHeight: r.StartHeight,
		EndHeight:   r.EndHeight,
		AmountPaid:  r.AmountPaid,
	}
}
