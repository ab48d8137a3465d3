package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-rental-engine/internal/api/middleware"
	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/engine"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// MintAsset mints a new asset for a recipient (requires API key authentication)
	// POST /api/v1/assets
	MintAsset(c *gin.Context)

	// GetAsset retrieves a single asset with its listing and rental state
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// ListForRent publishes a rental listing for an owned asset (requires authentication)
	// POST /api/v1/assets/:id/listing
	ListForRent(c *gin.Context)

	// CancelListing withdraws an active listing (requires authentication)
	// DELETE /api/v1/assets/:id/listing
	CancelListing(c *gin.Context)

	// RentAsset rents a listed asset for a duration (requires authentication)
	// POST /api/v1/assets/:id/rentals
	RentAsset(c *gin.Context)

	// ReclaimRental removes an expired rental record (open, no authentication required)
	// DELETE /api/v1/assets/:id/rentals
	ReclaimRental(c *gin.Context)

	// CheckUsageRights reports whether an identity may use an asset (open, no authentication required)
	// GET /api/v1/assets/:id/usage-rights/:identity
	CheckUsageRights(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// MintAssetRequest is the request body for minting an asset
type MintAssetRequest struct {
	Recipient string `json:"recipient" binding:"required"`
}

// ListForRentRequest is the request body for publishing a listing
type ListForRentRequest struct {
	PricePerUnit uint64 `json:"price_per_unit"`
	MaxDuration  uint64 `json:"max_duration"`
}

// RentAssetRequest is the request body for renting an asset
type RentAssetRequest struct {
	Duration uint64 `json:"duration"`
}

// handler implements the Handler interface
type handler struct {
	engine engine.Engine
}

// NewHandler creates a new REST API handler backed by the rental engine
func NewHandler(eng engine.Engine) Handler {
	return &handler{
		engine: eng,
	}
}

// MintAsset mints a new asset for a recipient
func (h *handler) MintAsset(c *gin.Context) {
	var req MintAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	recipient := domain.Identity(req.Recipient)
	if !recipient.Valid() {
		respondValidationError(c, "Invalid recipient identity")
		return
	}

	id, err := h.engine.Mint(c.Request.Context(), recipient)
	if err != nil {
		respondDomainError(c, err, "Failed to mint asset")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"asset_id": id,
		"owner":    recipient,
	})
}

// GetAsset retrieves a single asset with its listing and rental state
func (h *handler) GetAsset(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	view, err := h.engine.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to get asset")
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListForRent publishes a rental listing for an owned asset
func (h *handler) ListForRent(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondUnauthorized(c, "Caller identity is required")
		return
	}

	var req ListForRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	err := h.engine.ListForRent(c.Request.Context(), caller, id, req.PricePerUnit, req.MaxDuration)
	if err != nil {
		respondDomainError(c, err, "Failed to list asset for rent")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"asset_id":       id,
		"price_per_unit": req.PricePerUnit,
		"max_duration":   req.MaxDuration,
	})
}

// CancelListing withdraws an active listing
func (h *handler) CancelListing(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondUnauthorized(c, "Caller identity is required")
		return
	}

	if err := h.engine.CancelListing(c.Request.Context(), caller, id); err != nil {
		respondDomainError(c, err, "Failed to cancel listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset_id": id,
	})
}

// RentAsset rents a listed asset for a duration
func (h *handler) RentAsset(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondUnauthorized(c, "Caller identity is required")
		return
	}

	var req RentAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	rental, err := h.engine.Rent(c.Request.Context(), caller, id, req.Duration)
	if err != nil {
		respondDomainError(c, err, "Failed to rent asset")
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// ReclaimRental removes an expired rental record
func (h *handler) ReclaimRental(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	rental, err := h.engine.ReclaimExpired(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to reclaim rental")
		return
	}

	c.JSON(http.StatusOK, rental)
}

// CheckUsageRights reports whether an identity may use an asset
func (h *handler) CheckUsageRights(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}

	identity := domain.Identity(c.Param("identity"))
	if !identity.Valid() {
		respondValidationError(c, "Invalid identity")
		return
	}

	canUse, err := h.engine.CanUse(c.Request.Context(), identity, id)
	if err != nil {
		respondDomainError(c, err, "Failed to check usage rights")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset_id": id,
		"identity": identity,
		"can_use":  canUse,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// assetIDParam parses and validates the :id path parameter.
// It writes the error response itself so handlers can early-return.
func assetIDParam(c *gin.Context) (domain.AssetID, bool) {
	id, err := domain.ParseAssetID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid asset id", err.Error())
		return 0, false
	}
	return id, true
}
