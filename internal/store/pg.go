package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the rental engine tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&schema.Asset{}, &schema.Listing{}, &schema.Rental{})
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to defaults: 20 open, 5 idle, 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateAsset registers a new asset owned by recipient and returns its sequential id
func (s *pgStore) CreateAsset(ctx context.Context, owner domain.Identity) (domain.AssetID, error) {
	asset := schema.Asset{Owner: string(owner)}
	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		return 0, fmt.Errorf("failed to create asset: %w", err)
	}
	return domain.AssetID(asset.ID), nil
}

// GetAsset retrieves an asset by id
func (s *pgStore) GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", uint64(id)).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset.ToDomain(), nil
}

// GetListing retrieves the open listing for an asset
func (s *pgStore) GetListing(ctx context.Context, id domain.AssetID) (*domain.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).Where("asset_id = ?", uint64(id)).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing.ToDomain(), nil
}

// CreateListing inserts a listing; the primary key on asset_id rejects duplicates
func (s *pgStore) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if err := s.db.WithContext(ctx).Create(schema.FromListing(listing)).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// DeleteListing removes the listing for an asset
func (s *pgStore) DeleteListing(ctx context.Context, id domain.AssetID) error {
	if err := s.db.WithContext(ctx).Where("asset_id = ?", uint64(id)).Delete(&schema.Listing{}).Error; err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// GetRental retrieves the rental record for an asset
func (s *pgStore) GetRental(ctx context.Context, id domain.AssetID) (*domain.Rental, error) {
	var rental schema.Rental
	err := s.db.WithContext(ctx).Where("asset_id = ?", uint64(id)).First(&rental).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return rental.ToDomain(), nil
}

// CreateRental inserts a rental record; the primary key on asset_id rejects duplicates
func (s *pgStore) CreateRental(ctx context.Context, rental *domain.Rental) error {
	if err := s.db.WithContext(ctx).Create(schema.FromRental(rental)).Error; err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}
	return nil
}

// DeleteRental removes the rental record for an asset
func (s *pgStore) DeleteRental(ctx context.Context, id domain.AssetID) error {
	if err := s.db.WithContext(ctx).Where("asset_id = ?", uint64(id)).Delete(&schema.Rental{}).Error; err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}
	return nil
}

// ListExpiredRentals returns up to limit rentals whose end height is below the given height
func (s *pgStore) ListExpiredRentals(ctx context.Context, height uint64, limit int) ([]*domain.Rental, error) {
	var rows []*schema.Rental
	query := s.db.WithContext(ctx).
		Where("end_height < ?", height).
		Order("asset_id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired rentals: %w", err)
	}

	rentals := make([]*domain.Rental, 0, len(rows))
	for _, row := range rows {
		rentals = append(rentals, row.ToDomain())
	}
	return rentals, nil
}

// WithAssetLock serializes mutations against one asset id by taking a row lock on the
// asset inside a transaction. Locking a missing asset is a no-op so fn can still
// report not-found on its own terms.
func (s *pgStore) WithAssetLock(ctx context.Context, id domain.AssetID, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset schema.Asset
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", uint64(id)).
			First(&asset).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock asset: %w", err)
		}

		return fn(ctx, &pgStore{db: tx})
	})
}
