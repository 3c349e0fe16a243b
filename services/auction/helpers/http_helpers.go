package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// CapabilityKey is the gin context key under which the capability
// middleware stores the resolved caller token.
const CapabilityKey = "capability"

// CallerFrom returns the capability token resolved for this request.
func CallerFrom(c *gin.Context) models.Capability {
	if v, ok := c.Get(CapabilityKey); ok {
		if capability, ok := v.(models.Capability); ok {
			return capability
		}
	}
	return models.Capability{}
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrPermissionDenied):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, auctionerrors.ErrSelfBidNotAllowed):
		return http.StatusForbidden, "you cannot bid on your own listing"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrDecisionAlreadyRecorded):
		return http.StatusConflict, "this has already been responded to"
	case errors.Is(err, auctionerrors.ErrInvalidDecision):
		return http.StatusBadRequest, "decision must be accepted or declined"
	case errors.Is(err, auctionerrors.ErrAuctionNotExpired):
		return http.StatusConflict, "auction is still running"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "operation conflicts with current state"
	case errors.Is(err, auctionerrors.ErrNoValuation):
		return http.StatusUnprocessableEntity, "no valuation available"
	case errors.Is(err, auctionerrors.ErrListingNotFound),
		errors.Is(err, auctionerrors.ErrAuctionNotFound),
		errors.Is(err, auctionerrors.ErrResultNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for listing"
	case errors.Is(err, auctionerrors.ErrTransient):
		return http.StatusServiceUnavailable, "temporary failure, please retry"
	case errors.Is(err, auctionerrors.ErrInvariantViolation):
		return http.StatusInternalServerError, "internal inconsistency detected"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
