package events

import (
	"slices"
	"sync"
)

// Listener receives published events. Listeners run synchronously on the
// publishing goroutine and must not block; hand off to a goroutine if the
// work can wait on the caller.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Bus fans events out to in-process listeners
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it again
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.id == id })
}

// Publish delivers e to every listener in subscription order
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	// Collect listeners while holding the lock
	subs := slices.Clone(b.subs)
	b.mu.RUnlock()

	// Deliver WITHOUT holding the lock so listeners may unsubscribe
	for _, s := range subs {
		s.fn(e)
	}
}

// Len returns the number of registered listeners
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
