package fanout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/config"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/stream"
)

type recordingCache struct {
	mu    sync.Mutex
	hits  map[string]int
	total int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{hits: make(map[string]int)}
}

func (c *recordingCache) Invalidate(listingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[listingID]++
	c.total++
}

func (c *recordingCache) count(listingID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[listingID]
}

var testStreamCfg = config.StreamConfig{
	SubscriberBuffer: 16,
	ReconnectBase:    time.Millisecond,
	ReconnectMax:     10 * time.Millisecond,
}

func bidEvent(key, listingID, dealerID string, amount int64) stream.Event {
	return stream.Event{
		Key:       key,
		Table:     stream.TableBids,
		ListingID: listingID,
		Bid:       &models.Bid{ListingID: listingID, DealerID: dealerID, Amount: amount},
	}
}

func TestClassifyBid(t *testing.T) {
	t.Run("dealer_sees_new_bid_then_outbid", func(t *testing.T) {
		l := NewListener(nil, Scope{ActorID: "dealer1", Role: models.RoleDealer}, nil, testStreamCfg)

		// Another dealer opens the bidding.
		notes := l.classify(bidEvent("bid:listing1:1", "listing1", "dealer2", 10800))
		require.Len(t, notes, 1)
		require.Equal(t, KindNewBid, notes[0].Kind)
		require.Equal(t, int64(10800), notes[0].Amount)

		// Our own bid is confirmed via the gateway response, not the feed.
		notes = l.classify(bidEvent("bid:listing1:2", "listing1", "dealer1", 10900))
		require.Empty(t, notes)

		// Losing the lead is an outbid, not a plain new bid.
		notes = l.classify(bidEvent("bid:listing1:3", "listing1", "dealer2", 11000))
		require.Len(t, notes, 1)
		require.Equal(t, KindOutbid, notes[0].Kind)
	})

	t.Run("seller_sees_every_bid_as_new", func(t *testing.T) {
		l := NewListener(nil, Scope{ActorID: "seller1", Role: models.RoleSeller}, nil, testStreamCfg)

		notes := l.classify(bidEvent("bid:listing1:1", "listing1", "dealer1", 10800))
		require.Len(t, notes, 1)
		require.Equal(t, KindNewBid, notes[0].Kind)

		notes = l.classify(bidEvent("bid:listing1:2", "listing1", "dealer2", 10900))
		require.Len(t, notes, 1)
		require.Equal(t, KindNewBid, notes[0].Kind)
	})
}

func TestClassifyAuction(t *testing.T) {
	now := time.Now().UTC()
	active := models.AuctionSchedule{ListingID: "listing1", Status: models.AuctionActive, EndsAt: now.Add(time.Hour)}
	scheduled := active
	scheduled.Status = models.AuctionScheduled
	ended := active
	ended.Status = models.AuctionEnded
	extended := active
	extended.EndsAt = active.EndsAt.Add(2 * time.Minute)

	dealerListener := NewListener(nil, Scope{ActorID: "dealer1", Role: models.RoleDealer}, nil, testStreamCfg)
	sellerListener := NewListener(nil, Scope{ActorID: "seller1", Role: models.RoleSeller}, nil, testStreamCfg)

	auctionEvent := func(key string, old, updated models.AuctionSchedule, result *models.AuctionResult) stream.Event {
		return stream.Event{
			Key:       key,
			Table:     stream.TableAuctions,
			ListingID: "listing1",
			Auction:   &stream.AuctionChange{Old: old, New: updated, Result: result},
		}
	}

	t.Run("started", func(t *testing.T) {
		notes := dealerListener.classify(auctionEvent("a1", scheduled, active, nil))
		require.Len(t, notes, 1)
		require.Equal(t, KindAuctionStarted, notes[0].Kind)
		require.True(t, notes[0].EndsAt.Equal(active.EndsAt))
	})

	t.Run("extended_carries_new_end", func(t *testing.T) {
		notes := dealerListener.classify(auctionEvent("a2", active, extended, nil))
		require.Len(t, notes, 1)
		require.Equal(t, KindAuctionExtended, notes[0].Kind)
		require.True(t, notes[0].EndsAt.Equal(extended.EndsAt))
	})

	t.Run("ended", func(t *testing.T) {
		notes := dealerListener.classify(auctionEvent("a3", active, ended, nil))
		require.Len(t, notes, 1)
		require.Equal(t, KindAuctionEnded, notes[0].Kind)
	})

	t.Run("sold_result_prompts_seller_decision", func(t *testing.T) {
		final := int64(11000)
		result := &models.AuctionResult{ListingID: "listing1", FinalPrice: &final, SaleStatus: models.SaleSold}

		notes := sellerListener.classify(auctionEvent("a4", ended, ended, result))
		require.Len(t, notes, 1)
		require.Equal(t, KindDecisionRequired, notes[0].Kind)
		require.Equal(t, int64(11000), notes[0].Amount)

		notes = dealerListener.classify(auctionEvent("a5", ended, ended, result))
		require.Len(t, notes, 1)
		require.Equal(t, KindSaleSold, notes[0].Kind)
	})

	t.Run("unsold_result", func(t *testing.T) {
		result := &models.AuctionResult{ListingID: "listing1", SaleStatus: models.SaleUnsold}
		notes := sellerListener.classify(auctionEvent("a6", ended, ended, result))
		require.Len(t, notes, 1)
		require.Equal(t, KindSaleUnsold, notes[0].Kind)
	})
}

// A redelivered event must invalidate the cache again but never produce a
// second notification.
func TestHandleDeduplicates(t *testing.T) {
	cache := newRecordingCache()
	l := NewListener(nil, Scope{ActorID: "seller1", Role: models.RoleSeller}, cache, testStreamCfg)

	ev := bidEvent("bid:listing1:1", "listing1", "dealer1", 10800)
	l.handle(ev)
	l.handle(ev)

	require.Equal(t, 2, cache.count("listing1"), "invalidation is idempotent and runs per delivery")
	require.Len(t, l.out, 1)

	n := <-l.out
	require.Equal(t, KindNewBid, n.Kind)
}

func TestRunReconnectsAfterDisruption(t *testing.T) {
	broker := stream.NewBroker(16)
	defer broker.Close()

	cache := newRecordingCache()
	l := NewListener(broker, Scope{ActorID: "seller1", Role: models.RoleSeller, ListingIDs: []string{"listing1"}}, cache, testStreamCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	// The initial subscription forces a scope refresh.
	require.Eventually(t, func() bool { return cache.count("listing1") >= 1 }, time.Second, time.Millisecond)
	refreshes := cache.count("listing1")

	broker.Publish(bidEvent("bid:listing1:1", "listing1", "dealer1", 10800))
	select {
	case n := <-l.Notifications():
		require.Equal(t, KindNewBid, n.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a notification before the disruption")
	}

	broker.Disrupt()

	// Exactly one degraded signal for the outage.
	select {
	case <-l.Degraded():
	case <-time.After(time.Second):
		t.Fatal("expected a degraded signal")
	}
	select {
	case <-l.Degraded():
		t.Fatal("degraded must signal once per outage")
	case <-time.After(20 * time.Millisecond):
	}

	// Reconnection refreshes the scope instead of replaying missed events.
	require.Eventually(t, func() bool { return cache.count("listing1") > refreshes }, time.Second, time.Millisecond)

	broker.Publish(bidEvent("bid:listing1:2", "listing1", "dealer2", 10900))
	select {
	case n := <-l.Notifications():
		require.Equal(t, int64(10900), n.Amount)
	case <-time.After(time.Second):
		t.Fatal("expected a notification after reconnecting")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop on cancellation")
	}
}

func TestRunStopsWhenBrokerCloses(t *testing.T) {
	broker := stream.NewBroker(16)

	l := NewListener(broker, Scope{ActorID: "dealer1", Role: models.RoleDealer}, nil, testStreamCfg)

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	// Give the listener a moment to subscribe, then shut the broker down.
	time.Sleep(10 * time.Millisecond)
	broker.Close()

	select {
	case err := <-done:
		require.ErrorIs(t, err, stream.ErrBrokerClosed)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop when the broker closed")
	}
}
