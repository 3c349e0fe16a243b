package bidding

import (
	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
)

// PolicyKind selects how the minimum increment is computed.
type PolicyKind string

const (
	PolicyFixed   PolicyKind = "fixed"
	PolicyPercent PolicyKind = "percent"
)

// IncrementPolicy is the configurable minimum-increment rule. The percent
// policy is floored at the fixed step so a stalled low-price auction still
// has to move by a meaningful amount.
type IncrementPolicy struct {
	Kind    PolicyKind
	Step    int64
	Percent int64
}

// Increment returns the minimum raise over the current highest bid.
func (p IncrementPolicy) Increment(currentHighest int64) int64 {
	if p.Kind == PolicyPercent {
		inc := currentHighest * p.Percent / 100
		if inc < p.Step {
			inc = p.Step
		}
		return inc
	}
	return p.Step
}

// MinimumNextBid computes the lowest acceptable next bid. The first bid on a
// listing only needs to clear the reserve floor; every later bid must exceed
// the current highest by at least the policy increment.
func MinimumNextBid(highest *models.Bid, reserve int64, policy IncrementPolicy) int64 {
	if highest == nil {
		return reserve
	}
	return highest.Amount + policy.Increment(highest.Amount)
}

// Validate checks a proposed bid against the eligibility rules and the
// minimum next bid. Checks run in order and short-circuit on the first
// failure. It never touches storage: it runs over snapshots for instant
// client feedback and is re-evaluated authoritatively inside the atomic
// compare-and-raise, because the snapshot pass alone is never trusted.
func Validate(caller models.Capability, listing models.Listing, auction models.AuctionSchedule, highest *models.Bid, amount int64, policy IncrementPolicy) error {
	if caller.Role != models.RoleDealer {
		return auctionerrors.ErrPermissionDenied
	}
	if caller.ActorID == listing.SellerID {
		return auctionerrors.ErrSelfBidNotAllowed
	}
	if auction.Status != models.AuctionActive {
		return auctionerrors.ErrAuctionNotActive
	}
	if minimum := MinimumNextBid(highest, listing.ReservePrice, policy); amount < minimum {
		return &auctionerrors.BidTooLowError{Minimum: minimum}
	}
	return nil
}
