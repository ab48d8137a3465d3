package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-rental-engine/internal/api/errors"
	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message, details...))
}

// respondDomainError maps a rental engine error to an HTTP response.
// Unrecognized errors are logged and surfaced as 500 with a generic message.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrNotRented):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, err.Error()))

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(message, err.Error()))

	case errors.Is(err, domain.ErrAlreadyListed),
		errors.Is(err, domain.ErrAlreadyRented),
		errors.Is(err, domain.ErrNotListed),
		errors.Is(err, domain.ErrRentalActive):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(message, err.Error()))

	case errors.Is(err, domain.ErrInvalidTerms),
		errors.Is(err, domain.ErrDurationExceedsMax),
		errors.Is(err, domain.ErrOverflow),
		errors.Is(err, domain.ErrInvalidIdentity),
		errors.Is(err, domain.ErrInvalidAssetID):
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))

	case errors.Is(err, domain.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, apierrors.NewPaymentFailedError(message, err.Error()))

	default:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
	}
}
