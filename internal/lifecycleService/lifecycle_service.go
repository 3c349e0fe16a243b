package lifecycleservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/config"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/repository"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/txn"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// Manager drives an auction through scheduled → active → ended → resolved
// and owns the side effects of each transition: extending on late bids and
// materializing the AuctionResult exactly once.
type Manager struct {
	repo    repository.AuctionDB
	cfg     config.LifecycleConfig
	wrapper *txn.Wrapper
	now     func() time.Time
}

// NewManager creates a lifecycle manager.
func NewManager(repo repository.AuctionDB, cfg config.LifecycleConfig, wrapper *txn.Wrapper) *Manager {
	return &Manager{
		repo:    repo,
		cfg:     cfg,
		wrapper: wrapper,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Schedule opens the auction window for a listing. Only the owning seller
// or an admin may schedule.
func (m *Manager) Schedule(ctx context.Context, caller models.Capability, listingID string, startsAt, endsAt time.Time) (models.AuctionSchedule, error) {
	listing, err := m.repo.GetListing(listingID)
	if err != nil {
		return models.AuctionSchedule{}, fmt.Errorf("schedule auction: %w", err)
	}
	if caller.Role != models.RoleAdmin && caller.ActorID != listing.SellerID {
		return models.AuctionSchedule{}, fmt.Errorf("schedule auction for listing %s: %w", listingID, auctionerrors.ErrPermissionDenied)
	}

	var scheduled models.AuctionSchedule
	_, err = m.wrapper.Execute(ctx, "schedule_auction", func(context.Context) error {
		var execErr error
		scheduled, execErr = m.repo.ScheduleAuction(listingID, startsAt, endsAt)
		return execErr
	})
	return scheduled, err
}

// Activate flips a scheduled auction to active. The external scheduler may
// fire this more than once; the transition is idempotent.
func (m *Manager) Activate(ctx context.Context, listingID string) (models.AuctionSchedule, error) {
	var activated models.AuctionSchedule
	_, err := m.wrapper.Execute(ctx, "activate_auction", func(context.Context) error {
		var execErr error
		activated, execErr = m.repo.ActivateAuction(listingID, m.now())
		return execErr
	})
	return activated, err
}

// NoteAdmittedBid applies the anti-sniping rule after a bid is admitted: a
// bid landing inside the trailing window pushes the end time to now plus the
// extension step. Each extension recomputes from "now" rather than
// compounding, and the end time never exceeds the scheduled end plus the
// configured cap. Failures are logged, not propagated: the bid itself is
// already committed.
func (m *Manager) NoteAdmittedBid(ctx context.Context, listingID string) {
	auction, err := m.repo.GetAuction(listingID)
	if err != nil || auction.Status != models.AuctionActive {
		return
	}

	now := m.now()
	if auction.EndsAt.Sub(now) > m.cfg.ExtensionWindow {
		return
	}

	newEnd := now.Add(m.cfg.ExtensionStep)
	if cap := auction.ScheduledEnd.Add(m.cfg.MaxExtension); newEnd.After(cap) {
		newEnd = cap
	}
	if !newEnd.After(auction.EndsAt) {
		return
	}

	if _, err := m.wrapper.Execute(ctx, "extend_auction", func(context.Context) error {
		_, execErr := m.repo.ExtendAuction(listingID, newEnd)
		return execErr
	}); err != nil {
		utils.Warn("auction extension failed", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
	}
}

// End closes an expired auction and materializes its AuctionResult. The
// whole transition is idempotent: re-running it after a crash or retry
// returns the already-created result instead of computing a second one.
func (m *Manager) End(ctx context.Context, listingID string) (models.AuctionResult, error) {
	var result models.AuctionResult
	_, err := m.wrapper.Execute(ctx, "end_auction", func(context.Context) error {
		listing, execErr := m.repo.GetListing(listingID)
		if execErr != nil {
			return execErr
		}

		schedule, bids, execErr := m.repo.CloseAuction(listingID, m.now())
		if execErr != nil {
			return execErr
		}

		if existing, lookupErr := m.repo.GetResultByListing(listingID); lookupErr == nil {
			result = existing
			return nil
		}

		created, execErr := m.repo.CreateAuctionResult(BuildResult(listing, bids, schedule.EndsAt))
		if errors.Is(execErr, auctionerrors.ErrConflict) {
			// Lost the creation race to a concurrent end run; the stored
			// result is authoritative.
			existing, lookupErr := m.repo.GetResultByListing(listingID)
			if lookupErr != nil {
				return fmt.Errorf("end auction for listing %s: result created concurrently but unreadable: %w", listingID, auctionerrors.ErrInvariantViolation)
			}
			result = existing
			return nil
		}
		if execErr != nil {
			return execErr
		}
		result = created
		return nil
	})
	return result, err
}

// EndIfExpired is the entry point for the external expiry trigger. It ends
// the auction when its end time has elapsed and reports false, without
// error, while the auction is still running (including after a bid-driven
// extension pushed the end time forward).
func (m *Manager) EndIfExpired(ctx context.Context, listingID string) (models.AuctionResult, bool, error) {
	result, err := m.End(ctx, listingID)
	if errors.Is(err, auctionerrors.ErrAuctionNotExpired) {
		return models.AuctionResult{}, false, nil
	}
	if err != nil {
		return models.AuctionResult{}, false, err
	}
	return result, true, nil
}

// BuildResult computes the AuctionResult deterministically from a bid
// snapshot. Same bids in, same result out, so the ended transition is safe
// to retry.
func BuildResult(listing models.Listing, bids []models.Bid, endedAt time.Time) models.AuctionResult {
	result := models.AuctionResult{
		ListingID:  listing.ListingID,
		TotalBids:  len(bids),
		SaleStatus: models.SaleUnsold,
		EndedAt:    endedAt,
	}

	dealers := make(map[string]struct{}, len(bids))
	var highest int64
	for _, b := range bids {
		dealers[b.DealerID] = struct{}{}
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	result.UniqueBidders = len(dealers)

	if len(bids) > 0 {
		final := highest
		result.FinalPrice = &final
		if final >= listing.ReservePrice {
			result.SaleStatus = models.SaleSold
		}
	}
	return result
}
