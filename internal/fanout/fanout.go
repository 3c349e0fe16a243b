package fanout

import (
	"context"
	"errors"
	"time"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/config"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/stream"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// NotificationKind classifies the semantic delta behind a change event,
// not the raw row diff.
type NotificationKind string

const (
	KindNewBid           NotificationKind = "new_bid"
	KindOutbid           NotificationKind = "outbid"
	KindAuctionStarted   NotificationKind = "auction_started"
	KindAuctionExtended  NotificationKind = "auction_extended"
	KindAuctionEnded     NotificationKind = "auction_ended"
	KindSaleSold         NotificationKind = "sale_sold"
	KindSaleUnsold       NotificationKind = "sale_unsold"
	KindDecisionRequired NotificationKind = "decision_required"
	KindDecisionRecorded NotificationKind = "decision_recorded"
)

// Notification is the user-facing event handed to the rendering layer.
type Notification struct {
	Key       string           `json:"key"`
	Kind      NotificationKind `json:"kind"`
	ListingID string           `json:"listing_id"`
	Amount    int64            `json:"amount,omitempty"`
	EndsAt    time.Time        `json:"ends_at,omitempty"`
}

// Scope narrows a listener to one participant's view: a seller's own
// listings, or the auctions a dealer is watching.
type Scope struct {
	ActorID    string
	Role       models.Role
	ListingIDs []string
}

// Cache is the read-view cache invalidated on every change so subsequent
// reads are fresh. Invalidation must be idempotent; duplicate events hit it
// more than once.
type Cache interface {
	Invalidate(listingID string)
}

// dedupSet remembers recently seen event keys with a bounded FIFO window.
type dedupSet struct {
	seen  map[string]struct{}
	order []string
	limit int
}

func newDedupSet(limit int) *dedupSet {
	return &dedupSet{seen: make(map[string]struct{}), limit: limit}
}

// observe reports whether key was already seen, recording it if not.
func (d *dedupSet) observe(key string) bool {
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	d.order = append(d.order, key)
	if len(d.order) > d.limit {
		oldest := d.order[0]
		d.order = d.order[1:]
		delete(d.seen, oldest)
	}
	return false
}

// Listener consumes the bid, auction and decision change streams for one
// participant and republishes typed, deduplicated notifications. Connection
// loss degrades gracefully: one degraded signal per outage, reconnect with
// growing backoff, and a forced cache refresh instead of event replay after
// the gap.
type Listener struct {
	broker *stream.Broker
	scope  Scope
	cache  Cache
	cfg    config.StreamConfig

	out      chan Notification
	degraded chan struct{}
	leaders  map[string]string
	dedup    *dedupSet
	sleep    func(context.Context, time.Duration) error
}

// NewListener creates a listener for one participant scope. Run must be
// called to start consumption.
func NewListener(broker *stream.Broker, scope Scope, cache Cache, cfg config.StreamConfig) *Listener {
	buf := cfg.SubscriberBuffer
	if buf <= 0 {
		buf = 256
	}
	return &Listener{
		broker:   broker,
		scope:    scope,
		cache:    cache,
		cfg:      cfg,
		out:      make(chan Notification, buf),
		degraded: make(chan struct{}, 1),
		leaders:  make(map[string]string),
		dedup:    newDedupSet(1024),
		sleep:    sleepCtx,
	}
}

// Notifications is the classified notification feed. Slow consumers lose
// the oldest pending notifications rather than stalling the listener.
func (l *Listener) Notifications() <-chan Notification {
	return l.out
}

// Degraded signals connection loss, at most once per outage.
func (l *Listener) Degraded() <-chan struct{} {
	return l.degraded
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type subscriptions struct {
	bids      *stream.Subscription
	auctions  *stream.Subscription
	decisions *stream.Subscription
}

func (l *Listener) subscribeAll() (*subscriptions, error) {
	bids, err := l.broker.Subscribe(stream.Filter{Table: stream.TableBids, ListingIDs: l.scope.ListingIDs})
	if err != nil {
		return nil, err
	}
	auctions, err := l.broker.Subscribe(stream.Filter{Table: stream.TableAuctions, ListingIDs: l.scope.ListingIDs})
	if err != nil {
		l.broker.Unsubscribe(bids)
		return nil, err
	}
	decisions, err := l.broker.Subscribe(stream.Filter{Table: stream.TableDecisions, ListingIDs: l.scope.ListingIDs})
	if err != nil {
		l.broker.Unsubscribe(bids)
		l.broker.Unsubscribe(auctions)
		return nil, err
	}
	return &subscriptions{bids: bids, auctions: auctions, decisions: decisions}, nil
}

func (l *Listener) closeAll(subs *subscriptions) {
	l.broker.Unsubscribe(subs.bids)
	l.broker.Unsubscribe(subs.auctions)
	l.broker.Unsubscribe(subs.decisions)
}

// invalidateScope forces the scoped read views stale after a gap: missed
// events are never replayed, readers re-fetch instead.
func (l *Listener) invalidateScope() {
	if l.cache == nil {
		return
	}
	for _, id := range l.scope.ListingIDs {
		l.cache.Invalidate(id)
	}
}

// Run consumes the streams until ctx is cancelled or the broker shuts down.
func (l *Listener) Run(ctx context.Context) error {
	backoff := l.cfg.ReconnectBase
	if backoff <= 0 {
		backoff = 250 * time.Millisecond
	}
	delay := backoff

	for {
		subs, err := l.subscribeAll()
		if err != nil {
			if errors.Is(err, stream.ErrBrokerClosed) {
				return err
			}
			if sleepErr := l.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			delay = l.nextDelay(delay)
			continue
		}

		l.invalidateScope()
		delay = backoff

		stopped := l.consume(ctx, subs)
		l.closeAll(subs)
		if stopped {
			return nil
		}

		// One degraded signal per outage; re-subscription handles the rest.
		select {
		case l.degraded <- struct{}{}:
		default:
		}
		utils.Warn("change stream connection degraded", map[string]any{
			"actor_id": l.scope.ActorID,
		})
		if sleepErr := l.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
		delay = l.nextDelay(delay)
	}
}

func (l *Listener) nextDelay(current time.Duration) time.Duration {
	next := current * 2
	if max := l.cfg.ReconnectMax; max > 0 && next > max {
		next = max
	}
	return next
}

// consume pumps events until ctx is done (true) or a subscription drops
// (false).
func (l *Listener) consume(ctx context.Context, subs *subscriptions) bool {
	for {
		select {
		case <-ctx.Done():
			return true
		case ev, ok := <-subs.bids.C():
			if !ok {
				return false
			}
			l.handle(ev)
		case ev, ok := <-subs.auctions.C():
			if !ok {
				return false
			}
			l.handle(ev)
		case ev, ok := <-subs.decisions.C():
			if !ok {
				return false
			}
			l.handle(ev)
		}
	}
}

func (l *Listener) handle(ev stream.Event) {
	// Cache invalidation is idempotent, so it runs even for duplicates.
	if l.cache != nil {
		l.cache.Invalidate(ev.ListingID)
	}
	if l.dedup.observe(ev.Key) {
		return
	}

	for _, n := range l.classify(ev) {
		select {
		case l.out <- n:
		default:
			// Drop the oldest pending notification to keep the feed moving.
			select {
			case <-l.out:
			default:
			}
			select {
			case l.out <- n:
			default:
			}
		}
	}
}

// classify maps a row change to the notifications this scope cares about.
func (l *Listener) classify(ev stream.Event) []Notification {
	switch {
	case ev.Bid != nil:
		return l.classifyBid(ev)
	case ev.Auction != nil:
		return l.classifyAuction(ev)
	case ev.Decision != nil:
		return []Notification{{
			Key:       ev.Key,
			Kind:      KindDecisionRecorded,
			ListingID: ev.ListingID,
		}}
	}
	return nil
}

func (l *Listener) classifyBid(ev stream.Event) []Notification {
	bid := ev.Bid
	previousLeader := l.leaders[ev.ListingID]
	l.leaders[ev.ListingID] = bid.DealerID

	// A dealer's own admitted bid is confirmed through the gateway
	// response, not the notification feed.
	if l.scope.Role == models.RoleDealer && bid.DealerID == l.scope.ActorID {
		return nil
	}

	kind := KindNewBid
	if l.scope.Role == models.RoleDealer && previousLeader == l.scope.ActorID {
		kind = KindOutbid
	}
	return []Notification{{
		Key:       ev.Key,
		Kind:      kind,
		ListingID: ev.ListingID,
		Amount:    bid.Amount,
	}}
}

func (l *Listener) classifyAuction(ev stream.Event) []Notification {
	change := ev.Auction

	if change.Result != nil {
		n := Notification{Key: ev.Key, ListingID: ev.ListingID}
		if change.Result.FinalPrice != nil {
			n.Amount = *change.Result.FinalPrice
		}
		switch {
		case change.Result.SaleStatus == models.SaleSold && l.scope.Role == models.RoleSeller:
			n.Kind = KindDecisionRequired
		case change.Result.SaleStatus == models.SaleSold:
			n.Kind = KindSaleSold
		default:
			n.Kind = KindSaleUnsold
		}
		return []Notification{n}
	}

	old, updated := change.Old, change.New
	switch {
	case old.Status == models.AuctionScheduled && updated.Status == models.AuctionActive:
		return []Notification{{Key: ev.Key, Kind: KindAuctionStarted, ListingID: ev.ListingID, EndsAt: updated.EndsAt}}
	case old.Status == models.AuctionActive && updated.Status == models.AuctionActive && updated.EndsAt.After(old.EndsAt):
		return []Notification{{Key: ev.Key, Kind: KindAuctionExtended, ListingID: ev.ListingID, EndsAt: updated.EndsAt}}
	case old.Status == models.AuctionActive && updated.Status == models.AuctionEnded:
		return []Notification{{Key: ev.Key, Kind: KindAuctionEnded, ListingID: ev.ListingID, EndsAt: updated.EndsAt}}
	}
	return nil
}
