package stream

import (
	"errors"
	"sync"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
)

// Table is a logical change stream.
type Table string

const (
	TableBids      Table = "bids"
	TableAuctions  Table = "auctions"
	TableDecisions Table = "decisions"
)

// Subscription termination causes, exposed through Subscription.Err.
var (
	ErrSubscriberLagged = errors.New("subscriber fell behind and was evicted")
	ErrBrokerClosed     = errors.New("stream broker closed")
	ErrConnectionLost   = errors.New("stream connection lost")
)

// Event is one row change on a logical table. Key is stable for a given
// change so re-delivery can be deduplicated by consumers.
type Event struct {
	Key       string
	Table     Table
	ListingID string

	// Exactly one of the payloads below is set, matching Table.
	Bid      *models.Bid
	Auction  *AuctionChange
	Decision *models.SellerBidDecision
}

// AuctionChange carries the before/after auction window so consumers can
// classify the semantic delta (started, extended, ended) instead of reading
// a raw row diff. Result is set when the change materialized an
// AuctionResult.
type AuctionChange struct {
	Old    models.AuctionSchedule
	New    models.AuctionSchedule
	Result *models.AuctionResult
}

// Filter scopes a subscription to one table, optionally narrowed to a set of
// listings. An empty listing set matches every listing.
type Filter struct {
	Table      Table
	ListingIDs []string
}

func (f Filter) matches(ev Event) bool {
	if ev.Table != f.Table {
		return false
	}
	if len(f.ListingIDs) == 0 {
		return true
	}
	for _, id := range f.ListingIDs {
		if id == ev.ListingID {
			return true
		}
	}
	return false
}

// Subscription is a handle on one filtered change feed. The channel from C
// closes when the subscription terminates; Err reports why.
type Subscription struct {
	id     int
	filter Filter
	ch     chan Event

	mu     sync.Mutex
	closed bool
	err    error
}

// C returns the event channel. A closed channel means the subscription is
// over; consumers must treat the gap as "assume stale" and re-subscribe.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Err reports why the subscription terminated, nil while it is live or after
// a clean Close by the consumer.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) terminate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.ch)
}

// Broker is the in-process subscribe/publish primitive the fan-out layer
// consumes. Delivery is at-least-once from the consumer's point of view:
// subscribers must deduplicate by event key. A subscriber that cannot keep
// up with its buffer is evicted rather than allowed to stall publishers.
type Broker struct {
	mu      sync.Mutex
	subs    map[int]*Subscription
	nextID  int
	bufSize int
	closed  bool
}

// NewBroker creates a broker whose subscriptions buffer up to bufSize
// undelivered events each.
func NewBroker(bufSize int) *Broker {
	if bufSize <= 0 {
		bufSize = 256
	}
	return &Broker{
		subs:    make(map[int]*Subscription),
		bufSize: bufSize,
	}
}

// Subscribe opens a filtered feed. The returned subscription is live until
// the consumer closes it, the broker evicts it, or the broker shuts down.
func (b *Broker) Subscribe(filter Filter) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrokerClosed
	}
	sub := &Subscription{
		id:     b.nextID,
		filter: filter,
		ch:     make(chan Event, b.bufSize),
	}
	b.nextID++
	b.subs[sub.id] = sub
	return sub, nil
}

// Unsubscribe closes one subscription cleanly.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub.id)
	b.mu.Unlock()
	sub.terminate(nil)
}

// Publish delivers an event to every matching live subscription. Slow
// subscribers are evicted with ErrSubscriberLagged.
func (b *Broker) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for id, sub := range b.subs {
		if !sub.filter.matches(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			delete(b.subs, id)
			sub.terminate(ErrSubscriberLagged)
		}
	}
}

// Disrupt terminates every live subscription with ErrConnectionLost while
// leaving the broker usable. It simulates the delivery collaborator dropping
// its connection; consumers are expected to re-subscribe.
func (b *Broker) Disrupt() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		delete(b.subs, id)
		sub.terminate(ErrConnectionLost)
	}
}

// Close shuts the broker down and terminates all subscriptions.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		sub.terminate(ErrBrokerClosed)
	}
}
