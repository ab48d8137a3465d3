package domain

import "errors"

var (
	// ErrAssetNotFound is returned when an asset id was never minted
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetID is returned when an asset id is malformed or zero
	ErrInvalidAssetID = errors.New("invalid asset id")

	// ErrInvalidIdentity is returned when an operation receives an empty identity
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrNotOwner is returned when the caller is not the asset's owner
	ErrNotOwner = errors.New("caller is not the asset owner")

	// ErrAlreadyListed is returned when a listing already exists for the asset
	ErrAlreadyListed = errors.New("asset already listed")

	// ErrAlreadyRented is returned when an active rental exists for the asset
	ErrAlreadyRented = errors.New("asset already rented")

	// ErrNotListed is returned when no listing exists for the asset
	ErrNotListed = errors.New("asset not listed")

	// ErrNotRented is returned when no rental record exists for the asset
	ErrNotRented = errors.New("asset not rented")

	// ErrRentalActive is returned when attempting to reclaim a rental that has not expired
	ErrRentalActive = errors.New("rental still active")

	// ErrDurationExceedsMax is returned when the requested duration exceeds the listing's maximum
	ErrDurationExceedsMax = errors.New("duration exceeds listing maximum")

	// ErrInvalidTerms is returned for a non-positive duration or other unusable terms
	ErrInvalidTerms = errors.New("invalid terms")

	// ErrOverflow is returned when a cost computation would overflow uint64
	ErrOverflow = errors.New("numeric overflow")

	// ErrPaymentFailed is returned when the ledger rejects the rental payment transfer
	ErrPaymentFailed = errors.New("payment failed")

	// ErrInsufficientFunds is returned by a ledger when the payer balance cannot cover a transfer
	ErrInsufficientFunds = errors.New("insufficient funds")
)
