package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	biddingservice "github.com/ibuchix/auto-strada001testing-sub006/internal/biddingService"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/services/auction/helpers"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// BiddingServiceInterface defines the bid gateway methods used by the handlers
type BiddingServiceInterface interface {
	SubmitBid(ctx context.Context, caller models.Capability, listingID string, amount int64) (biddingservice.BidOutcome, error)
	GetBidsForListing(listingID string) ([]models.Bid, error)
	GetHighestBid(listingID string) (models.Bid, error)
	GetListingsBySeller(sellerID string) ([]models.Listing, error)
	ReservePreview(valuation int64) (int64, error)
	MinimumNextBid(listingID string) (int64, error)
}

// LifecycleServiceInterface defines the auction lifecycle methods used by the handlers
type LifecycleServiceInterface interface {
	Schedule(ctx context.Context, caller models.Capability, listingID string, startsAt, endsAt time.Time) (models.AuctionSchedule, error)
	Activate(ctx context.Context, listingID string) (models.AuctionSchedule, error)
	End(ctx context.Context, listingID string) (models.AuctionResult, error)
}

// DecisionServiceInterface defines the seller decision methods used by the handlers
type DecisionServiceInterface interface {
	RecordDecision(ctx context.Context, caller models.Capability, resultID string, decision models.Decision) (models.SellerBidDecision, error)
	GetResult(resultID string) (models.AuctionResult, error)
}

// AuctionHandler handles HTTP requests for the auction subsystem
type AuctionHandler struct {
	bidding   BiddingServiceInterface
	lifecycle LifecycleServiceInterface
	decisions DecisionServiceInterface
}

// NewAuctionHandler constructs the handler with its service dependencies
func NewAuctionHandler(bidding BiddingServiceInterface, lifecycle LifecycleServiceInterface, decisions DecisionServiceInterface) *AuctionHandler {
	return &AuctionHandler{bidding: bidding, lifecycle: lifecycle, decisions: decisions}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	caller := helpers.CallerFrom(c)
	outcome, err := h.bidding.SubmitBid(c.Request.Context(), caller, req.ListingID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if minimum, ok := auctionerrors.MinimumFrom(err); ok {
			utils.JSONErrorWithMinimum(c, status, err, message, minimum)
			return
		}
		utils.JSONError(c, status, err, message)
		return
	}

	helpers.LogSuccess("PlaceBidHandler", "bid admitted", map[string]any{
		"listing_id": req.ListingID,
		"dealer_id":  caller.ActorID,
		"amount":     req.Amount,
	})
	utils.JSONResponse(c, http.StatusCreated, helpers.BidResponse{
		BidID:          outcome.Bid.BidID,
		ListingID:      outcome.Bid.ListingID,
		DealerID:       outcome.Bid.DealerID,
		Amount:         outcome.Bid.Amount,
		Sequence:       outcome.Bid.Sequence,
		CreatedAt:      outcome.Bid.CreatedAt.Format(time.RFC3339),
		MinimumNextBid: outcome.MinimumNextBid,
		CorrelationID:  outcome.Txn.CorrelationID,
	}, "bid recorded successfully")
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	bids, err := h.bidding.GetBidsForListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// GetHighestBidHandler handles GET /listings/:listing_id/highest
func (h *AuctionHandler) GetHighestBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	bid, err := h.bidding.GetHighestBid(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "highest bid retrieved successfully")
}

// GetMinimumNextBidHandler handles GET /listings/:listing_id/minimum
func (h *AuctionHandler) GetMinimumNextBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	minimum, err := h.bidding.MinimumNextBid(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"listing_id":       listingID,
		"minimum_next_bid": minimum,
	}, "minimum next bid computed")
}

// ScheduleAuctionHandler handles POST /listings/:listing_id/auction
func (h *AuctionHandler) ScheduleAuctionHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.ScheduleAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ScheduleAuctionHandler", err)
		return
	}

	caller := helpers.CallerFrom(c)
	scheduled, err := h.lifecycle.Schedule(c.Request.Context(), caller, listingID, req.StartsAt, req.EndsAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	helpers.LogSuccess("ScheduleAuctionHandler", "auction scheduled", map[string]any{
		"listing_id": listingID,
		"ends_at":    scheduled.EndsAt.Format(time.RFC3339),
	})
	utils.JSONResponse(c, http.StatusCreated, auctionResponse(scheduled), "auction scheduled successfully")
}

// ActivateAuctionHandler handles POST /listings/:listing_id/auction/activate
func (h *AuctionHandler) ActivateAuctionHandler(c *gin.Context) {
	caller := helpers.CallerFrom(c)
	if caller.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, auctionerrors.ErrPermissionDenied, "admin role required")
		return
	}

	listingID := c.Param("listing_id")
	activated, err := h.lifecycle.Activate(c.Request.Context(), listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctionResponse(activated), "auction activated")
}

// EndAuctionHandler handles POST /listings/:listing_id/auction/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	caller := helpers.CallerFrom(c)
	if caller.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, auctionerrors.ErrPermissionDenied, "admin role required")
		return
	}

	listingID := c.Param("listing_id")
	result, err := h.lifecycle.End(c.Request.Context(), listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	helpers.LogSuccess("EndAuctionHandler", "auction ended", map[string]any{
		"listing_id":  listingID,
		"result_id":   result.ResultID,
		"sale_status": string(result.SaleStatus),
	})
	utils.JSONResponse(c, http.StatusOK, resultResponse(result), "auction ended")
}

// GetResultHandler handles GET /results/:result_id
func (h *AuctionHandler) GetResultHandler(c *gin.Context) {
	resultID := c.Param("result_id")

	result, err := h.decisions.GetResult(resultID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, resultResponse(result), "result retrieved successfully")
}

// RecordDecisionHandler handles POST /results/:result_id/decision
func (h *AuctionHandler) RecordDecisionHandler(c *gin.Context) {
	resultID := c.Param("result_id")

	var req helpers.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordDecisionHandler", err)
		return
	}

	caller := helpers.CallerFrom(c)
	recorded, err := h.decisions.RecordDecision(c.Request.Context(), caller, resultID, models.Decision(req.Decision))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	helpers.LogSuccess("RecordDecisionHandler", "decision recorded", map[string]any{
		"result_id": resultID,
		"seller_id": caller.ActorID,
		"decision":  string(recorded.Decision),
	})
	utils.JSONResponse(c, http.StatusCreated, helpers.DecisionResponse{
		ResultID:  recorded.ResultID,
		SellerID:  recorded.SellerID,
		Decision:  string(recorded.Decision),
		CreatedAt: recorded.CreatedAt.Format(time.RFC3339),
	}, "decision recorded successfully")
}

// GetListingsBySellerHandler handles GET /sellers/:seller_id/listings
func (h *AuctionHandler) GetListingsBySellerHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	listings, err := h.bidding.GetListingsBySeller(sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// ReservePreviewHandler handles GET /pricing/reserve?valuation=N
func (h *AuctionHandler) ReservePreviewHandler(c *gin.Context) {
	raw := c.Query("valuation")
	valuation, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "valuation must be an integer")
		return
	}

	reserve, err := h.bidding.ReservePreview(valuation)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"valuation":     valuation,
		"reserve_price": reserve,
	}, "reserve computed")
}

func auctionResponse(a models.AuctionSchedule) helpers.AuctionResponse {
	return helpers.AuctionResponse{
		ListingID:    a.ListingID,
		StartsAt:     a.StartsAt.Format(time.RFC3339),
		EndsAt:       a.EndsAt.Format(time.RFC3339),
		ScheduledEnd: a.ScheduledEnd.Format(time.RFC3339),
		Status:       string(a.Status),
	}
}

func resultResponse(r models.AuctionResult) helpers.ResultResponse {
	return helpers.ResultResponse{
		ResultID:      r.ResultID,
		ListingID:     r.ListingID,
		FinalPrice:    r.FinalPrice,
		TotalBids:     r.TotalBids,
		UniqueBidders: r.UniqueBidders,
		SaleStatus:    string(r.SaleStatus),
		EndedAt:       r.EndedAt.Format(time.RFC3339),
	}
}
