package domain

import (
	"math/bits"
	"strconv"
	"time"
)

// AssetID is the sequential identifier assigned to an asset at mint time.
// The zero value is never a valid id; the first minted asset is 1.
type AssetID uint64

// String returns the decimal representation of the AssetID
func (id AssetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid checks if the AssetID refers to a mintable id
func (id AssetID) Valid() bool {
	return id > 0
}

// ParseAssetID parses a decimal asset id
func ParseAssetID(s string) (AssetID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, ErrInvalidAssetID
	}
	return AssetID(n), nil
}

// Identity is an opaque, comparable principal in the hosting ledger environment.
// Equality is the only operation the engine performs on it.
type Identity string

// String returns the string representation of the Identity
func (i Identity) String() string {
	return string(i)
}

// Valid checks if the Identity is usable as an owner/renter principal
func (i Identity) Valid() bool {
	return i != ""
}

// Asset represents a uniquely-owned digital asset tracked by the registry.
// Ownership changes only at mint; there is no transfer entry point.
type Asset struct {
	ID    AssetID  `json:"id"`
	Owner Identity `json:"owner"`
}

// Listing is an open offer by an asset's owner to rent the asset out.
// At most one listing exists per asset, and never alongside an active rental.
type Listing struct {
	AssetID      AssetID `json:"asset_id"`
	PricePerUnit uint64  `json:"price_per_unit"` // payment units per height-unit
	MaxDuration  uint64  `json:"max_duration"`   // height-units, > 0
}

// Rental is an active, time-bounded, non-exclusive usage grant.
// The grant is live while current height <= EndHeight; afterwards the record
// is inert until reclaimed.
type Rental struct {
	AssetID     AssetID  `json:"asset_id"`
	Renter      Identity `json:"renter"`
	StartHeight uint64   `json:"start_height"`
	EndHeight   uint64   `json:"end_height"`
	AmountPaid  uint64   `json:"amount_paid"`
}

// ActiveAt reports whether the rental still grants usage rights at the given height
func (r *Rental) ActiveAt(height uint64) bool {
	return height <= r.EndHeight
}

// RentalCost computes pricePerUnit * duration with overflow detection.
// Overflow returns ErrOverflow; the cost is never silently truncated.
func RentalCost(pricePerUnit, duration uint64) (uint64, error) {
	hi, lo := bits.Mul64(pricePerUnit, duration)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// EventType represents the type of rental lifecycle event
type EventType string

const (
	EventTypeMinted           EventType = "asset_minted"
	EventTypeListed           EventType = "asset_listed"
	EventTypeListingCancelled EventType = "listing_cancelled"
	EventTypeRented           EventType = "asset_rented"
	EventTypeReclaimed        EventType = "rental_reclaimed"
)

// RentalEvent is the normalized lifecycle event published to NATS after a
// successful state transition.
type RentalEvent struct {
	ID           string    `json:"id"` // ulid, assigned by the publisher
	Type         EventType `json:"type"`
	AssetID      AssetID   `json:"asset_id"`
	Owner        Identity  `json:"owner"`
	Renter       Identity  `json:"renter,omitempty"`
	PricePerUnit uint64    `json:"price_per_unit,omitempty"`
	MaxDuration  uint64    `json:"max_duration,omitempty"`
	StartHeight  uint64    `json:"start_height,omitempty"`
	EndHeight    uint64    `json:"end_height,omitempty"`
	AmountPaid   uint64    `json:"amount_paid,omitempty"`
	Height       uint64    `json:"height"` // ledger height when the transition committed
	Timestamp    time.Time `json:"timestamp"`
}

// Valid checks the event carries the fields its type requires
func (e *RentalEvent) Valid() bool {
	if !e.AssetID.Valid() || !e.Owner.Valid() {
		return false
	}

	switch e.Type {
	case EventTypeMinted, EventTypeListingCancelled:
		return true
	case EventTypeListed:
		return e.MaxDuration > 0
	case EventTypeRented, EventTypeReclaimed:
		return e.Renter.Valid() && e.EndHeight >= e.StartHeight
	default:
		return false
	}
}
