package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID          string `json:"bid_id"`
	ListingID      string `json:"listing_id"`
	DealerID       string `json:"dealer_id"`
	Amount         int64  `json:"amount"`
	Sequence       int64  `json:"sequence"`
	CreatedAt      string `json:"created_at"`
	MinimumNextBid int64  `json:"minimum_next_bid,omitempty"`
	CorrelationID  string `json:"correlation_id,omitempty"`
}

type ScheduleAuctionRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
}

type AuctionResponse struct {
	ListingID    string `json:"listing_id"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	ScheduledEnd string `json:"scheduled_end"`
	Status       string `json:"status"`
}

type ResultResponse struct {
	ResultID      string `json:"result_id"`
	ListingID     string `json:"listing_id"`
	FinalPrice    *int64 `json:"final_price"`
	TotalBids     int    `json:"total_bids"`
	UniqueBidders int    `json:"unique_bidders"`
	SaleStatus    string `json:"sale_status"`
	EndedAt       string `json:"ended_at"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted declined"`
}

type DecisionResponse struct {
	ResultID  string `json:"result_id"`
	SellerID  string `json:"seller_id"`
	Decision  string `json:"decision"`
	CreatedAt string `json:"created_at"`
}
