package event

import "sync"

// Observer consumes events.
type Observer func(Event)

// Handle identifies a subscription for later removal.
type Handle int

// Bus delivers events to observers synchronously in registration
// order. Subscription bookkeeping is guarded so hosts may register
// observers from other goroutines; delivery itself is serialized by
// the owning dispatcher.
type Bus struct {
	mu        sync.RWMutex
	observers []subscription
	nextID    Handle
}

type subscription struct {
	id Handle
	fn Observer
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers an observer and returns its handle. Observers
// are invoked in the order they were registered.
func (b *Bus) Subscribe(fn Observer) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.observers = append(b.observers, subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// Unsubscribe removes an observer. Unknown handles are ignored.
func (b *Bus) Unsubscribe(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.observers {
		if s.id == h {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every observer in order. The observer
// list is snapshotted first so an observer may unsubscribe itself
// during delivery.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	observers := make([]subscription, len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	for _, s := range observers {
		s.fn(ev)
	}
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.observers)
}
