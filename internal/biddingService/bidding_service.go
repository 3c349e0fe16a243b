package biddingservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/bidding"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/pricing"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/repository"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/txn"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// Extender receives admitted-bid notifications so the lifecycle manager can
// apply the anti-sniping extension.
type Extender interface {
	NoteAdmittedBid(ctx context.Context, listingID string)
}

// BidOutcome is the result of an admitted bid. MinimumNextBid is the floor
// the next bidder has to clear, returned for optimistic UI updates.
type BidOutcome struct {
	Bid            models.Bid
	MinimumNextBid int64
	Txn            models.TransactionRecord
}

// BiddingService is the bid execution gateway: one fast local validation
// pass, then exactly one atomic compare-and-raise against storage, and a
// typed outcome either way.
type BiddingService struct {
	repo     repository.AuctionDB
	extender Extender
	policy   bidding.IncrementPolicy
	wrapper  *txn.Wrapper

	mu       sync.Mutex
	inflight map[string]*inflightBid
}

type inflightBid struct {
	done    chan struct{}
	outcome BidOutcome
	err     error
}

// NewBiddingService creates the gateway.
func NewBiddingService(repo repository.AuctionDB, extender Extender, policy bidding.IncrementPolicy, wrapper *txn.Wrapper) *BiddingService {
	return &BiddingService{
		repo:     repo,
		extender: extender,
		policy:   policy,
		wrapper:  wrapper,
		inflight: make(map[string]*inflightBid),
	}
}

// SubmitBid validates and places a dealer's bid on a listing.
//
// An identical submission (same dealer, listing and amount) arriving while
// the first is still in flight is coalesced onto the first attempt's
// outcome, so one button press never issues two storage calls.
func (s *BiddingService) SubmitBid(ctx context.Context, caller models.Capability, listingID string, amount int64) (BidOutcome, error) {
	key := caller.ActorID + "|" + listingID + "|" + strconv.FormatInt(amount, 10)

	s.mu.Lock()
	if call, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-call.done
		return call.outcome, call.err
	}
	call := &inflightBid{done: make(chan struct{})}
	s.inflight[key] = call
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
		close(call.done)
	}()

	call.outcome, call.err = s.submit(ctx, caller, listingID, amount)
	return call.outcome, call.err
}

func (s *BiddingService) submit(ctx context.Context, caller models.Capability, listingID string, amount int64) (BidOutcome, error) {
	// Fast pre-validation over snapshots: validation failures return
	// without the atomic storage call. The authoritative pass re-runs
	// inside CompareAndRaise.
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("submit bid: %w", err)
	}
	auction, err := s.repo.GetAuction(listingID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return BidOutcome{}, fmt.Errorf("submit bid for listing %s: %w", listingID, auctionerrors.ErrAuctionNotActive)
		}
		return BidOutcome{}, fmt.Errorf("submit bid: %w", err)
	}

	var highest *models.Bid
	if h, err := s.repo.GetHighestBid(listingID); err == nil {
		highest = &h
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return BidOutcome{}, fmt.Errorf("submit bid: %w", err)
	}

	if err := bidding.Validate(caller, listing, auction, highest, amount, s.policy); err != nil {
		return BidOutcome{}, fmt.Errorf("submit bid for listing %s: %w", listingID, err)
	}

	var admitted models.Bid
	record, err := s.wrapper.Execute(ctx, "submit_bid", func(context.Context) error {
		b, execErr := s.repo.CompareAndRaise(caller, listingID, amount)
		if execErr != nil {
			return execErr
		}
		admitted = b
		return nil
	})
	if err != nil {
		return BidOutcome{Txn: record}, err
	}

	// The extension and the outbid/new-bid notifications are consequences
	// of the committed write; the gateway only nudges the lifecycle here,
	// fan-out observes the change stream on its own.
	s.extender.NoteAdmittedBid(ctx, listingID)

	utils.Info("bid admitted", map[string]any{
		"correlation_id": record.CorrelationID,
		"listing_id":     listingID,
		"dealer_id":      caller.ActorID,
		"amount":         admitted.Amount,
		"sequence":       admitted.Sequence,
	})

	return BidOutcome{
		Bid:            admitted,
		MinimumNextBid: bidding.MinimumNextBid(&admitted, listing.ReservePrice, s.policy),
		Txn:            record,
	}, nil
}

// GetBidsForListing returns the admitted bid history for a listing.
func (s *BiddingService) GetBidsForListing(listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("get bids: %w", auctionerrors.ErrListingNotFound)
	}
	bids, err := s.repo.GetBidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// GetHighestBid returns the current highest admitted bid for a listing.
func (s *BiddingService) GetHighestBid(listingID string) (models.Bid, error) {
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("get highest bid: %w", auctionerrors.ErrListingNotFound)
	}
	bid, err := s.repo.GetHighestBid(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("get highest bid for listing %s: %w", listingID, err)
	}
	return bid, nil
}

// GetListingsBySeller returns all listings owned by a seller.
func (s *BiddingService) GetListingsBySeller(sellerID string) ([]models.Listing, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("get listings: empty seller id: %w", auctionerrors.ErrListingNotFound)
	}
	listings, err := s.repo.GetListingsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("get listings for seller %s: %w", sellerID, err)
	}
	return listings, nil
}

// ReservePreview computes the reserve a valuation would produce. It shares
// the persisted reserve's code path, so the preview can never drift from
// what scheduling will store.
func (s *BiddingService) ReservePreview(valuation int64) (int64, error) {
	return pricing.ReservePrice(valuation)
}

// MinimumNextBid reports the current floor for a listing, for client-side
// hints before a submission.
func (s *BiddingService) MinimumNextBid(listingID string) (int64, error) {
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return 0, fmt.Errorf("minimum next bid: %w", err)
	}
	var highest *models.Bid
	if h, err := s.repo.GetHighestBid(listingID); err == nil {
		highest = &h
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return 0, fmt.Errorf("minimum next bid: %w", err)
	}
	return bidding.MinimumNextBid(highest, listing.ReservePrice, s.policy), nil
}
