package store

import (
	"context"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Store defines the interface for the three persistent maps the engine owns:
// asset ownership, open listings, and rental records. Getters return (nil, nil)
// when no record exists.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAsset registers a new asset owned by recipient and returns its sequential id
	CreateAsset(ctx context.Context, owner domain.Identity) (domain.AssetID, error)
	// GetAsset retrieves an asset by id
	GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error)

	// GetListing retrieves the open listing for an asset
	GetListing(ctx context.Context, id domain.AssetID) (*domain.Listing, error)
	// CreateListing inserts a listing; at most one may exist per asset
	CreateListing(ctx context.Context, listing *domain.Listing) error
	// DeleteListing removes the listing for an asset
	DeleteListing(ctx context.Context, id domain.AssetID) error

	// GetRental retrieves the rental record for an asset
	GetRental(ctx context.Context, id domain.AssetID) (*domain.Rental, error)
	// CreateRental inserts a rental record; at most one may exist per asset
	CreateRental(ctx context.Context, rental *domain.Rental) error
	// DeleteRental removes the rental record for an asset
	DeleteRental(ctx context.Context, id domain.AssetID) error
	// ListExpiredRentals returns up to limit rentals whose end height is below the given height
	ListExpiredRentals(ctx context.Context, height uint64, limit int) ([]*domain.Rental, error)

	// WithAssetLock runs fn inside a transaction that serializes mutations against the
	// given asset id. Everything fn does through the passed Store commits atomically;
	// a returned error rolls the transaction back.
	WithAssetLock(ctx context.Context, id domain.AssetID, fn func(ctx context.Context, tx Store) error) error
}
