package notify

import (
	"sync"
	"sync/atomic"
)

// DefaultBuffer is the per-subscriber channel depth used by NewHub.
const DefaultBuffer = 64

// Topic is a multi-producer broadcast channel. Every subscriber receives
// each published event independently; a full subscriber drops the event
// and records lag instead of stalling the publisher.
type Topic[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]*Subscriber[T]
	nextID uint64
	buffer int
}

// NewTopic creates a topic whose subscribers buffer up to buffer events.
func NewTopic[T any](buffer int) *Topic[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Topic[T]{
		subs:   make(map[uint64]*Subscriber[T]),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber. It observes only events published
// after this call returns.
func (t *Topic[T]) Subscribe() *Subscriber[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	sub := &Subscriber[T]{
		topic: t,
		id:    t.nextID,
		ch:    make(chan T, t.buffer),
		done:  make(chan struct{}),
	}
	t.subs[sub.id] = sub
	return sub
}

// Publish fans the event out to every current subscriber without blocking.
// Subscribers closed since the previous publish are swept here.
func (t *Topic[T]) Publish(event T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, sub := range t.subs {
		if sub.closed.Load() {
			delete(t.subs, id)
			close(sub.ch)
			continue
		}
		select {
		case sub.ch <- event:
		default:
			sub.lagged.Add(1)
		}
	}
}

// SubscriberCount returns the number of registered subscribers, including
// closed ones not yet swept.
func (t *Topic[T]) SubscriberCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Subscriber is one receiver on a topic.
type Subscriber[T any] struct {
	topic  *Topic[T]
	id     uint64
	ch     chan T
	done   chan struct{}
	closed atomic.Bool
	lagged atomic.Uint64
}

// Events returns the subscriber's receive channel. The channel is closed
// after Close, once the topic sweeps the subscriber.
func (s *Subscriber[T]) Events() <-chan T {
	return s.ch
}

// Done is closed when the subscriber is closed. Forwarding goroutines
// select on it alongside Events.
func (s *Subscriber[T]) Done() <-chan struct{} {
	return s.done
}

// Lagged returns the number of events dropped because the subscriber's
// buffer was full.
func (s *Subscriber[T]) Lagged() uint64 {
	return s.lagged.Load()
}

// Close marks the subscriber dead. The topic detects this on its next
// publish; Close itself never touches the topic's subscriber map.
func (s *Subscriber[T]) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)
}
