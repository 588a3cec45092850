// Package events provides the payment event channel: a broadcast of
// successfully parsed payment records to any number of subscribers
// (bookkeeping, UI notifications). The broadcaster is an explicit,
// dependency-injected object owned by whoever wires the notification
// listener to its consumers — never a process-wide singleton — so the
// parsing core stays testable in isolation.
package events

import (
	"sync"

	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
)

// DefaultCapacity is the per-subscriber buffer size. Payment events are
// time-sensitive: a stale undelivered event matters less than blocking the
// producer, so the buffer is small and overflow drops the oldest event.
const DefaultCapacity = 10

// Broadcaster fans parsed payment records out to subscribers. Publishing
// never blocks: each subscriber has its own bounded buffer and a slow
// subscriber only loses its own oldest events.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[int]chan models.PaymentInfo
	nextID      int
	capacity    int
	closed      bool
	logger      logging.Logger
}

// NewBroadcaster creates a Broadcaster with the given per-subscriber buffer
// capacity. A non-positive capacity falls back to DefaultCapacity.
func NewBroadcaster(capacity int, logger logging.Logger) *Broadcaster {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Broadcaster{
		subscribers: make(map[int]chan models.PaymentInfo),
		capacity:    capacity,
		logger:      logger,
	}
}

// Subscribe registers a new consumer and returns its receive channel along
// with a cancel function. Cancelling closes the channel and releases the
// subscription; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan models.PaymentInfo, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.PaymentInfo, b.capacity)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish delivers a payment record to every subscriber without blocking.
// When a subscriber's buffer is full its oldest buffered event is dropped in
// favor of the new one.
func (b *Broadcaster) Publish(info models.PaymentInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	dropped := 0
	for _, ch := range b.subscribers {
		select {
		case ch <- info:
		default:
			// Buffer full: evict the oldest event, then retry once. The
			// inner default covers a consumer racing us for the freed slot.
			select {
			case <-ch:
				dropped++
			default:
			}
			select {
			case ch <- info:
			default:
			}
		}
	}

	if dropped > 0 {
		b.logger.WithFields(
			logging.Field{Key: logging.FieldDropped, Value: dropped},
			logging.Field{Key: logging.FieldSubscribers, Value: len(b.subscribers)},
		).Warn("Dropped oldest payment events for slow subscribers")
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close shuts the broadcaster down and closes all subscriber channels.
// Subsequent Publish calls are no-ops and subsequent Subscribe calls return
// an already-closed channel.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
