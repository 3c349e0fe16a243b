package models

import "time"

// Role is the capability a caller holds for a request.
type Role string

const (
	RoleDealer Role = "dealer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Capability identifies the caller of an operation. It is resolved once per
// request from the identity collaborator and passed explicitly into every
// call; nothing in the subsystem caches "is this user a seller" flags.
type Capability struct {
	ActorID string `json:"actor_id"`
	Role    Role   `json:"role"`
}

// ListingStatus is the lifecycle status of a vehicle listing.
type ListingStatus string

const (
	ListingAvailable        ListingStatus = "available"
	ListingAuctionScheduled ListingStatus = "auction_scheduled"
	ListingAuctionActive    ListingStatus = "auction_active"
	ListingAuctionEnded     ListingStatus = "auction_ended"
	// Terminal statuses set by the seller decision workflow.
	ListingSold     ListingStatus = "sold"
	ListingDeclined ListingStatus = "declined"
)

// Listing identifies a vehicle for sale. The reserve price is derived from
// the valuation by the pricing calculator; a zero valuation means no
// valuation is available and the reserve stays zero.
type Listing struct {
	ListingID    string        `json:"listing_id"`
	SellerID     string        `json:"seller_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Mileage      int           `json:"mileage"`
	Valuation    int64         `json:"valuation"`
	ReservePrice int64         `json:"reserve_price"`
	Status       ListingStatus `json:"status"`
}

// AuctionStatus is the running status of an auction window.
type AuctionStatus string

const (
	AuctionScheduled AuctionStatus = "scheduled"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionResolved  AuctionStatus = "resolved"
)

// AuctionSchedule is the auction window for a listing. At most one
// unresolved schedule exists per listing. EndsAt is mutable: late bids push
// it forward, bounded by ScheduledEnd plus the configured extension cap.
type AuctionSchedule struct {
	ListingID    string        `json:"listing_id"`
	StartsAt     time.Time     `json:"starts_at"`
	EndsAt       time.Time     `json:"ends_at"`
	ScheduledEnd time.Time     `json:"scheduled_end"`
	Status       AuctionStatus `json:"status"`
}

// Bid is an immutable, append-only record of an admitted bid. Sequence is
// assigned by storage under the compare-and-raise lock, never by the client.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ListingID string    `json:"listing_id"`
	DealerID  string    `json:"dealer_id"`
	Amount    int64     `json:"amount"`
	Sequence  int64     `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleStatus is the outcome of an ended auction against the reserve price.
type SaleStatus string

const (
	SaleSold   SaleStatus = "sold"
	SaleUnsold SaleStatus = "unsold"
)

// AuctionResult materializes exactly once when an auction ends. FinalPrice
// is nil when the auction received no bids.
type AuctionResult struct {
	ResultID      string     `json:"result_id"`
	ListingID     string     `json:"listing_id"`
	FinalPrice    *int64     `json:"final_price"`
	TotalBids     int        `json:"total_bids"`
	UniqueBidders int        `json:"unique_bidders"`
	SaleStatus    SaleStatus `json:"sale_status"`
	EndedAt       time.Time  `json:"ended_at"`
}

// Decision is the seller's one-time response to a sold auction result.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionDeclined Decision = "declined"
)

// SellerBidDecision records the seller's response to a sold AuctionResult.
// At most one exists per result; once written it is terminal.
type SellerBidDecision struct {
	ResultID  string    `json:"result_id"`
	SellerID  string    `json:"seller_id"`
	Decision  Decision  `json:"decision"`
	CreatedAt time.Time `json:"created_at"`
}

// TxnStatus is the terminal status of a wrapped mutating call.
type TxnStatus string

const (
	TxnPending TxnStatus = "pending"
	TxnSuccess TxnStatus = "success"
	TxnError   TxnStatus = "error"
)

// TransactionRecord is the transient diagnostic record of one mutating call.
// It exists only for the duration of the call and is not persisted.
type TransactionRecord struct {
	CorrelationID string    `json:"correlation_id"`
	Operation     string    `json:"operation"`
	Status        TxnStatus `json:"status"`
	Attempts      int       `json:"attempts"`
}
