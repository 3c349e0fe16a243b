package bidding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
)

// Both increment policies are exercised so the rules are not overfitted to a
// single constant.
var testPolicies = []struct {
	name   string
	policy IncrementPolicy
}{
	{name: "fixed_step", policy: IncrementPolicy{Kind: PolicyFixed, Step: 100}},
	{name: "five_percent", policy: IncrementPolicy{Kind: PolicyPercent, Step: 100, Percent: 5}},
}

func testListing() models.Listing {
	return models.Listing{
		ListingID:    "listing1",
		SellerID:     "seller1",
		Make:         "Skoda",
		Model:        "Octavia",
		Year:         2019,
		Valuation:    20_000,
		ReservePrice: 10_800,
		Status:       models.ListingAuctionActive,
	}
}

func activeAuction() models.AuctionSchedule {
	now := time.Now().UTC()
	return models.AuctionSchedule{
		ListingID:    "listing1",
		StartsAt:     now.Add(-time.Hour),
		EndsAt:       now.Add(time.Hour),
		ScheduledEnd: now.Add(time.Hour),
		Status:       models.AuctionActive,
	}
}

// Test MinimumNextBid
func TestMinimumNextBid(t *testing.T) {
	t.Parallel()

	highest := &models.Bid{ListingID: "listing1", DealerID: "dealer1", Amount: 12_000, Sequence: 3}

	tests := []struct {
		name    string
		policy  IncrementPolicy
		highest *models.Bid
		want    int64
	}{
		{name: "no_bids_floor_is_reserve", policy: IncrementPolicy{Kind: PolicyFixed, Step: 100}, highest: nil, want: 10_800},
		{name: "fixed_step", policy: IncrementPolicy{Kind: PolicyFixed, Step: 100}, highest: highest, want: 12_100},
		{name: "percent_step", policy: IncrementPolicy{Kind: PolicyPercent, Step: 100, Percent: 5}, highest: highest, want: 12_600},
		{name: "percent_floored_at_fixed_step", policy: IncrementPolicy{Kind: PolicyPercent, Step: 100, Percent: 5}, highest: &models.Bid{Amount: 500}, want: 600},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, MinimumNextBid(tc.highest, 10_800, tc.policy))
		})
	}
}

// Test Validate eligibility ordering and outcomes
func TestValidate(t *testing.T) {
	t.Parallel()

	for _, tp := range testPolicies {
		tp := tp
		t.Run(tp.name, func(t *testing.T) {
			t.Parallel()

			listing := testListing()
			auction := activeAuction()
			dealer := models.Capability{ActorID: "dealer1", Role: models.RoleDealer}

			tests := []struct {
				name      string
				caller    models.Capability
				auction   models.AuctionSchedule
				highest   *models.Bid
				amount    int64
				wantError error
			}{
				{
					name:      "non_dealer_rejected_first",
					caller:    models.Capability{ActorID: "seller1", Role: models.RoleSeller},
					auction:   auction,
					amount:    50_000,
					wantError: auctionerrors.ErrPermissionDenied,
				},
				{
					name:      "seller_with_dealer_role_cannot_self_bid",
					caller:    models.Capability{ActorID: "seller1", Role: models.RoleDealer},
					auction:   auction,
					amount:    50_000,
					wantError: auctionerrors.ErrSelfBidNotAllowed,
				},
				{
					name:      "scheduled_auction_not_active",
					caller:    dealer,
					auction:   models.AuctionSchedule{ListingID: "listing1", Status: models.AuctionScheduled},
					amount:    50_000,
					wantError: auctionerrors.ErrAuctionNotActive,
				},
				{
					name:      "ended_auction_not_active",
					caller:    dealer,
					auction:   models.AuctionSchedule{ListingID: "listing1", Status: models.AuctionEnded},
					amount:    50_000,
					wantError: auctionerrors.ErrAuctionNotActive,
				},
				{
					name:    "first_bid_meets_reserve_exactly",
					caller:  dealer,
					auction: auction,
					amount:  10_800,
				},
				{
					name:      "first_bid_below_reserve",
					caller:    dealer,
					auction:   auction,
					amount:    10_799,
					wantError: auctionerrors.ErrBidTooLow,
				},
				{
					name:      "second_bid_must_clear_increment",
					caller:    dealer,
					auction:   auction,
					highest:   &models.Bid{ListingID: "listing1", DealerID: "dealer2", Amount: 10_800},
					amount:    10_800,
					wantError: auctionerrors.ErrBidTooLow,
				},
				{
					name:    "second_bid_clears_increment",
					caller:  dealer,
					auction: auction,
					highest: &models.Bid{ListingID: "listing1", DealerID: "dealer2", Amount: 10_800},
					amount:  MinimumNextBid(&models.Bid{Amount: 10_800}, 10_800, tp.policy),
				},
			}

			for _, tc := range tests {
				tc := tc
				t.Run(tc.name, func(t *testing.T) {
					err := Validate(tc.caller, listing, tc.auction, tc.highest, tc.amount, tp.policy)
					if tc.wantError == nil {
						require.NoError(t, err)
						return
					}
					require.True(t, errors.Is(err, tc.wantError), "expected %v, got %v", tc.wantError, err)
				})
			}
		})
	}
}

// A rejected bid carries the live minimum so the caller can correct and
// resubmit immediately.
func TestValidate_BidTooLowCarriesMinimum(t *testing.T) {
	t.Parallel()

	listing := testListing()
	auction := activeAuction()
	policy := IncrementPolicy{Kind: PolicyFixed, Step: 100}
	highest := &models.Bid{ListingID: "listing1", DealerID: "dealer2", Amount: 10_800}

	err := Validate(models.Capability{ActorID: "dealer1", Role: models.RoleDealer}, listing, auction, highest, 10_800, policy)
	require.Error(t, err)

	minimum, ok := auctionerrors.MinimumFrom(err)
	require.True(t, ok)
	require.Equal(t, int64(10_900), minimum)
}
