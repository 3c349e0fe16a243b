package repository

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/bidding"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/pricing"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/stream"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// AuctionDB is the storage collaborator for the auction subsystem. It owns
// the two write-contention points: the atomic compare-and-raise over the bid
// stream, and the uniqueness constraints on AuctionResult and
// SellerBidDecision. No component outside this interface mutates
// highest-bid state.
type AuctionDB interface {
	GetListing(listingID string) (models.Listing, error)
	GetAuction(listingID string) (models.AuctionSchedule, error)
	GetHighestBid(listingID string) (models.Bid, error)
	GetBidsByListing(listingID string) ([]models.Bid, error)
	GetListingsBySeller(sellerID string) ([]models.Listing, error)

	// CompareAndRaise re-validates the bid against current state and, only
	// if valid, appends it with a storage-assigned sequence and moves the
	// highest-bid pointer — all under one lock scope. A losing racer gets a
	// BidTooLowError carrying the new minimum, not a generic failure.
	CompareAndRaise(caller models.Capability, listingID string, amount int64) (models.Bid, error)

	ScheduleAuction(listingID string, startsAt, endsAt time.Time) (models.AuctionSchedule, error)
	ActivateAuction(listingID string, now time.Time) (models.AuctionSchedule, error)
	ExtendAuction(listingID string, newEnd time.Time) (models.AuctionSchedule, error)

	// CloseAuction flips an expired auction to ended and returns a
	// consistent snapshot of its bid history. Idempotent: closing an
	// already-ended auction returns the same snapshot.
	CloseAuction(listingID string, now time.Time) (models.AuctionSchedule, []models.Bid, error)

	CreateAuctionResult(result models.AuctionResult) (models.AuctionResult, error)
	GetAuctionResult(resultID string) (models.AuctionResult, error)
	GetResultByListing(listingID string) (models.AuctionResult, error)

	RecordDecision(decision models.SellerBidDecision) (models.SellerBidDecision, error)
}

// MemoryEngine is a concurrency-safe in-memory AuctionDB. It stands in for
// the managed backend's transactional primitives and publishes row changes
// to the stream broker after each committed mutation.
type MemoryEngine struct {
	mu        sync.RWMutex
	listings  map[string]models.Listing
	auctions  map[string]models.AuctionSchedule
	bids      map[string][]models.Bid          // key: listingID, append order == sequence order
	highest   map[string]models.Bid            // cached current-highest pointer per listing
	sequences map[string]int64                 // next sequence per listing
	results   map[string]models.AuctionResult  // key: resultID
	byListing map[string]string                // listingID -> resultID uniqueness index
	decisions map[string]models.SellerBidDecision // key: resultID

	broker *stream.Broker
	policy bidding.IncrementPolicy
}

// NewMemoryEngine creates an engine publishing changes to broker and
// enforcing the given increment policy inside compare-and-raise.
func NewMemoryEngine(broker *stream.Broker, policy bidding.IncrementPolicy) *MemoryEngine {
	return &MemoryEngine{
		listings:  make(map[string]models.Listing),
		auctions:  make(map[string]models.AuctionSchedule),
		bids:      make(map[string][]models.Bid),
		highest:   make(map[string]models.Bid),
		sequences: make(map[string]int64),
		results:   make(map[string]models.AuctionResult),
		byListing: make(map[string]string),
		decisions: make(map[string]models.SellerBidDecision),
		broker:    broker,
		policy:    policy,
	}
}

func (e *MemoryEngine) publish(events []stream.Event) {
	if e.broker == nil {
		return
	}
	for _, ev := range events {
		e.broker.Publish(ev)
	}
}

func bidEventKey(b models.Bid) string {
	return "bid:" + b.ListingID + ":" + strconv.FormatInt(b.Sequence, 10)
}

func auctionEventKey(a models.AuctionSchedule) string {
	return "auction:" + a.ListingID + ":" + string(a.Status) + ":" + strconv.FormatInt(a.EndsAt.Unix(), 10)
}

func auctionEvent(old, updated models.AuctionSchedule, result *models.AuctionResult) stream.Event {
	return stream.Event{
		Key:       auctionEventKey(updated),
		Table:     stream.TableAuctions,
		ListingID: updated.ListingID,
		Auction:   &stream.AuctionChange{Old: old, New: updated, Result: result},
	}
}

// AddListing seeds a listing, deriving its reserve price from the valuation
// through the shared pricing calculator. A listing without a usable
// valuation keeps a zero reserve and cannot be scheduled for auction.
func (e *MemoryEngine) AddListing(listing models.Listing) models.Listing {
	if reserve, err := pricing.ReservePrice(listing.Valuation); err == nil {
		listing.ReservePrice = reserve
	} else {
		listing.ReservePrice = 0
	}
	if listing.Status == "" {
		listing.Status = models.ListingAvailable
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.listings[listing.ListingID] = listing
	return listing
}

// GetListing returns a listing by id.
func (e *MemoryEngine) GetListing(listingID string) (models.Listing, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	listing, ok := e.listings[listingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return listing, nil
}

// GetAuction returns the auction window for a listing.
func (e *MemoryEngine) GetAuction(listingID string) (models.AuctionSchedule, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	auction, ok := e.auctions[listingID]
	if !ok {
		return models.AuctionSchedule{}, fmt.Errorf("get auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetHighestBid returns the current highest admitted bid for a listing.
func (e *MemoryEngine) GetHighestBid(listingID string) (models.Bid, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	bid, ok := e.highest[listingID]
	if !ok {
		return models.Bid{}, fmt.Errorf("get highest bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}
	return bid, nil
}

// GetBidsByListing returns the admitted bid history ordered by sequence.
func (e *MemoryEngine) GetBidsByListing(listingID string) ([]models.Bid, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if _, ok := e.listings[listingID]; !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return append([]models.Bid(nil), e.bids[listingID]...), nil
}

// GetListingsBySeller returns a seller's listings ordered by id.
func (e *MemoryEngine) GetListingsBySeller(sellerID string) ([]models.Listing, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	listings := make([]models.Listing, 0)
	for _, l := range e.listings {
		if l.SellerID == sellerID {
			listings = append(listings, l)
		}
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ListingID < listings[j].ListingID })
	return listings, nil
}

// CompareAndRaise admits a bid only if it still clears the authoritative
// minimum at commit time. Validation runs again in full under the lock:
// the caller's earlier snapshot pass is never trusted. The operation is
// idempotent-safe to retry after an unconfirmed timeout because it re-reads
// current state before writing.
func (e *MemoryEngine) CompareAndRaise(caller models.Capability, listingID string, amount int64) (models.Bid, error) {
	var events []stream.Event

	e.mu.Lock()
	bid, err := func() (models.Bid, error) {
		listing, ok := e.listings[listingID]
		if !ok {
			return models.Bid{}, fmt.Errorf("compare and raise for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
		}
		auction, ok := e.auctions[listingID]
		if !ok {
			return models.Bid{}, fmt.Errorf("compare and raise for listing %s: %w", listingID, auctionerrors.ErrAuctionNotFound)
		}

		now := time.Now().UTC()
		if auction.Status == models.AuctionActive && now.After(auction.EndsAt) {
			// Expired but not yet closed by the lifecycle trigger.
			return models.Bid{}, fmt.Errorf("compare and raise for listing %s: %w", listingID, auctionerrors.ErrAuctionNotActive)
		}

		var highestPtr *models.Bid
		if h, ok := e.highest[listingID]; ok {
			highestPtr = &h
		}
		if err := bidding.Validate(caller, listing, auction, highestPtr, amount, e.policy); err != nil {
			return models.Bid{}, fmt.Errorf("compare and raise for listing %s: %w", listingID, err)
		}

		e.sequences[listingID]++
		admitted := models.Bid{
			BidID:     utils.GenerateID(),
			ListingID: listingID,
			DealerID:  caller.ActorID,
			Amount:    amount,
			Sequence:  e.sequences[listingID],
			CreatedAt: now,
		}
		e.bids[listingID] = append(e.bids[listingID], admitted)
		e.highest[listingID] = admitted

		events = append(events, stream.Event{
			Key:       bidEventKey(admitted),
			Table:     stream.TableBids,
			ListingID: listingID,
			Bid:       &admitted,
		})
		return admitted, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return bid, err
}

// ScheduleAuction opens the single auction window for a listing.
func (e *MemoryEngine) ScheduleAuction(listingID string, startsAt, endsAt time.Time) (models.AuctionSchedule, error) {
	var events []stream.Event

	e.mu.Lock()
	auction, err := func() (models.AuctionSchedule, error) {
		listing, ok := e.listings[listingID]
		if !ok {
			return models.AuctionSchedule{}, fmt.Errorf("schedule auction for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
		}
		if listing.ReservePrice <= 0 {
			return models.AuctionSchedule{}, fmt.Errorf("schedule auction for listing %s: %w", listingID, auctionerrors.ErrNoValuation)
		}
		if existing, ok := e.auctions[listingID]; ok && existing.Status != models.AuctionResolved {
			return models.AuctionSchedule{}, fmt.Errorf("schedule auction for listing %s: open auction exists: %w", listingID, auctionerrors.ErrConflict)
		}

		created := models.AuctionSchedule{
			ListingID:    listingID,
			StartsAt:     startsAt,
			EndsAt:       endsAt,
			ScheduledEnd: endsAt,
			Status:       models.AuctionScheduled,
		}
		e.auctions[listingID] = created
		listing.Status = models.ListingAuctionScheduled
		e.listings[listingID] = listing

		events = append(events, auctionEvent(models.AuctionSchedule{ListingID: listingID}, created, nil))
		return created, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return auction, err
}

// ActivateAuction flips a scheduled auction to active. Idempotent: an
// already-active auction is returned unchanged.
func (e *MemoryEngine) ActivateAuction(listingID string, now time.Time) (models.AuctionSchedule, error) {
	var events []stream.Event

	e.mu.Lock()
	auction, err := func() (models.AuctionSchedule, error) {
		current, ok := e.auctions[listingID]
		if !ok {
			return models.AuctionSchedule{}, fmt.Errorf("activate auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotFound)
		}
		switch current.Status {
		case models.AuctionActive:
			return current, nil
		case models.AuctionEnded, models.AuctionResolved:
			return models.AuctionSchedule{}, fmt.Errorf("activate auction for listing %s in status %s: %w", listingID, current.Status, auctionerrors.ErrConflict)
		}

		old := current
		current.Status = models.AuctionActive
		e.auctions[listingID] = current

		listing := e.listings[listingID]
		listing.Status = models.ListingAuctionActive
		e.listings[listingID] = listing

		events = append(events, auctionEvent(old, current, nil))
		return current, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return auction, err
}

// ExtendAuction pushes the end time of an active auction forward. A newEnd
// at or before the current end is a no-op, which keeps repeated late-bid
// extensions idempotent.
func (e *MemoryEngine) ExtendAuction(listingID string, newEnd time.Time) (models.AuctionSchedule, error) {
	var events []stream.Event

	e.mu.Lock()
	auction, err := func() (models.AuctionSchedule, error) {
		current, ok := e.auctions[listingID]
		if !ok {
			return models.AuctionSchedule{}, fmt.Errorf("extend auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotFound)
		}
		if current.Status != models.AuctionActive {
			return models.AuctionSchedule{}, fmt.Errorf("extend auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotActive)
		}
		if !newEnd.After(current.EndsAt) {
			return current, nil
		}

		old := current
		current.EndsAt = newEnd
		e.auctions[listingID] = current

		events = append(events, auctionEvent(old, current, nil))
		return current, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return auction, err
}

// CloseAuction flips an expired active auction to ended and returns the bid
// history snapshot taken under the same lock, so the final price can never
// be computed against a stale highest bid.
func (e *MemoryEngine) CloseAuction(listingID string, now time.Time) (models.AuctionSchedule, []models.Bid, error) {
	var events []stream.Event

	e.mu.Lock()
	auction, bids, err := func() (models.AuctionSchedule, []models.Bid, error) {
		current, ok := e.auctions[listingID]
		if !ok {
			return models.AuctionSchedule{}, nil, fmt.Errorf("close auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotFound)
		}
		switch current.Status {
		case models.AuctionScheduled:
			return models.AuctionSchedule{}, nil, fmt.Errorf("close auction for listing %s: %w", listingID, auctionerrors.ErrAuctionNotActive)
		case models.AuctionEnded, models.AuctionResolved:
			return current, append([]models.Bid(nil), e.bids[listingID]...), nil
		}
		if now.Before(current.EndsAt) {
			return models.AuctionSchedule{}, nil, fmt.Errorf("close auction for listing %s ending %s: %w", listingID, current.EndsAt.Format(time.RFC3339), auctionerrors.ErrAuctionNotExpired)
		}

		old := current
		current.Status = models.AuctionEnded
		e.auctions[listingID] = current

		listing := e.listings[listingID]
		listing.Status = models.ListingAuctionEnded
		e.listings[listingID] = listing

		events = append(events, auctionEvent(old, current, nil))
		return current, append([]models.Bid(nil), e.bids[listingID]...), nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return auction, bids, err
}

// CreateAuctionResult stores the materialized result under a per-listing
// uniqueness constraint. A second create for the same listing fails with
// ErrConflict and leaves the first result untouched.
func (e *MemoryEngine) CreateAuctionResult(result models.AuctionResult) (models.AuctionResult, error) {
	var events []stream.Event

	e.mu.Lock()
	created, err := func() (models.AuctionResult, error) {
		listing, ok := e.listings[result.ListingID]
		if !ok {
			return models.AuctionResult{}, fmt.Errorf("create auction result for listing %s: %w", result.ListingID, auctionerrors.ErrListingNotFound)
		}
		if _, ok := e.byListing[result.ListingID]; ok {
			return models.AuctionResult{}, fmt.Errorf("create auction result for listing %s: %w", result.ListingID, auctionerrors.ErrConflict)
		}

		if result.ResultID == "" {
			result.ResultID = utils.GenerateID()
		}
		e.results[result.ResultID] = result
		e.byListing[result.ListingID] = result.ResultID

		// Unsold listings return to the seller for relisting; sold listings
		// await the seller's decision.
		if result.SaleStatus == models.SaleUnsold {
			listing.Status = models.ListingAvailable
		} else {
			listing.Status = models.ListingAuctionEnded
		}
		e.listings[result.ListingID] = listing

		auction := e.auctions[result.ListingID]
		events = append(events, auctionEvent(auction, auction, &result))
		return result, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return created, err
}

// GetAuctionResult returns a result by id.
func (e *MemoryEngine) GetAuctionResult(resultID string) (models.AuctionResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result, ok := e.results[resultID]
	if !ok {
		return models.AuctionResult{}, fmt.Errorf("get auction result %s: %w", resultID, auctionerrors.ErrResultNotFound)
	}
	return result, nil
}

// GetResultByListing returns the result materialized for a listing.
func (e *MemoryEngine) GetResultByListing(listingID string) (models.AuctionResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	resultID, ok := e.byListing[listingID]
	if !ok {
		return models.AuctionResult{}, fmt.Errorf("get auction result for listing %s: %w", listingID, auctionerrors.ErrResultNotFound)
	}
	return e.results[resultID], nil
}

// RecordDecision writes the seller's one-time decision under a per-result
// uniqueness constraint and moves the listing to its terminal status in the
// same lock scope. Preconditions are re-checked here; callers' own checks
// are advisory.
func (e *MemoryEngine) RecordDecision(decision models.SellerBidDecision) (models.SellerBidDecision, error) {
	var events []stream.Event

	e.mu.Lock()
	recorded, err := func() (models.SellerBidDecision, error) {
		result, ok := e.results[decision.ResultID]
		if !ok {
			return models.SellerBidDecision{}, fmt.Errorf("record decision for result %s: %w", decision.ResultID, auctionerrors.ErrResultNotFound)
		}
		if result.SaleStatus != models.SaleSold {
			return models.SellerBidDecision{}, fmt.Errorf("record decision for unsold result %s: %w", decision.ResultID, auctionerrors.ErrInvariantViolation)
		}

		listing := e.listings[result.ListingID]
		if decision.SellerID != listing.SellerID {
			return models.SellerBidDecision{}, fmt.Errorf("record decision for result %s by %s: %w", decision.ResultID, decision.SellerID, auctionerrors.ErrPermissionDenied)
		}
		if _, ok := e.decisions[decision.ResultID]; ok {
			return models.SellerBidDecision{}, fmt.Errorf("record decision for result %s: %w", decision.ResultID, auctionerrors.ErrDecisionAlreadyRecorded)
		}

		if decision.CreatedAt.IsZero() {
			decision.CreatedAt = time.Now().UTC()
		}
		e.decisions[decision.ResultID] = decision

		if decision.Decision == models.DecisionAccepted {
			listing.Status = models.ListingSold
		} else {
			listing.Status = models.ListingDeclined
		}
		e.listings[result.ListingID] = listing

		auction := e.auctions[result.ListingID]
		auction.Status = models.AuctionResolved
		e.auctions[result.ListingID] = auction

		events = append(events, stream.Event{
			Key:       "decision:" + decision.ResultID,
			Table:     stream.TableDecisions,
			ListingID: result.ListingID,
			Decision:  &decision,
		})
		return decision, nil
	}()
	e.mu.Unlock()

	e.publish(events)
	return recorded, err
}

// GetDecision returns the recorded decision for a result, if any.
func (e *MemoryEngine) GetDecision(resultID string) (models.SellerBidDecision, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	decision, ok := e.decisions[resultID]
	return decision, ok
}
