package auctionerrors

import (
	"errors"
	"fmt"
)

// Validation and permission errors. These are terminal: they are surfaced to
// the caller for correction and never retried.
var (
	ErrPermissionDenied  = errors.New("caller lacks the required capability")
	ErrSelfBidNotAllowed = errors.New("sellers cannot bid on their own listing")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrBidTooLow         = errors.New("bid amount below minimum next bid")
	ErrNoValuation       = errors.New("no valuation available for listing")
)

// Lookup errors.
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrAuctionNotFound = errors.New("no auction scheduled for listing")
	ErrResultNotFound  = errors.New("auction result not found")
	ErrNoBids          = errors.New("no bids found for listing")
)

// Coordination errors.
var (
	// ErrConflict means a compare-and-raise race or uniqueness constraint was
	// lost; the caller should re-fetch current state before retrying.
	ErrConflict = errors.New("operation conflicts with current state")
	// ErrDecisionAlreadyRecorded means the seller has already responded to
	// this auction result; the first decision stands.
	ErrDecisionAlreadyRecorded = errors.New("decision already recorded for auction result")
	// ErrInvalidDecision means the decision value is neither accepted nor
	// declined.
	ErrInvalidDecision = errors.New("decision must be accepted or declined")
	// ErrAuctionNotExpired means an end transition was requested before the
	// auction's (possibly extended) end time elapsed.
	ErrAuctionNotExpired = errors.New("auction end time has not elapsed")
)

// Infrastructure errors.
var (
	// ErrTransient marks timeouts, rate limits and other short-lived storage
	// failures. The transaction wrapper retries these with backoff.
	ErrTransient = errors.New("transient storage failure")
	// ErrInvariantViolation marks states that must never occur (duplicate
	// auction result, decision without a sold result). Never auto-healed.
	ErrInvariantViolation = errors.New("invariant violation")
)

// BidTooLowError is returned when a proposed bid does not clear the minimum
// next bid. It carries the live minimum so the caller can immediately retry
// with a corrected amount.
type BidTooLowError struct {
	Minimum int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid too low: minimum next bid is %d", e.Minimum)
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}

// MinimumFrom extracts the live minimum from a bid-too-low error chain.
// The second return is false when err is not a BidTooLowError.
func MinimumFrom(err error) (int64, bool) {
	var tooLow *BidTooLowError
	if errors.As(err, &tooLow) {
		return tooLow.Minimum, true
	}
	return 0, false
}
