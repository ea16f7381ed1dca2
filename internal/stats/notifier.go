package stats

import (
	"sync"
	"time"
)

const NotificationPointOutOfBounds = "PointOutOfBounds"

// Notification is an event emitted by the counter, typically when a point
// falls outside the display bounds.
type Notification struct {
	Kind      string    `json:"kind"`
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Notifier receives notifications emitted by the counter.
type Notifier interface {
	Notify(n Notification)
}

const subscriberBuffer = 16

// Broadcaster fans notifications out to subscriber channels. Slow
// subscribers whose buffer is full miss the notification rather than block
// the publisher.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Notification]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Notification]struct{})}
}

// Subscribe registers a new subscriber channel.
func (b *Broadcaster) Subscribe() chan Notification {
	ch := make(chan Notification, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (b *Broadcaster) Unsubscribe(ch chan Notification) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Notify delivers the notification to every subscriber.
func (b *Broadcaster) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- n:
		default:
			// Buffer full, skip
		}
	}
}
