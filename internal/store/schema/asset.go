package schema

import (
	"time"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Asset represents the assets table - the registry of minted assets and their owners.
// The autoincrement primary key doubles as the sequential asset id of the mint operation.
type Asset struct {
	// ID is the sequential asset id assigned at mint
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Owner is the identity the asset was minted to; immutable, there is no transfer path
	Owner string `gorm:"column:owner;not null;type:text;index:idx_assets_owner"`
	// CreatedAt is the timestamp when the asset was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Listing *Listing `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
	Rental  *Rental  `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// ToDomain converts the row to its domain representation
func (a *Asset) ToDomain() *domain.Asset {
	return &domain.Asset{
		ID:    domain.AssetID(a.ID),
		Owner: domain.Identity(a.Owner),
	}
}
