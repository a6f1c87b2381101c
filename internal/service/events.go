package service

import (
	"sync"

	"github.com/hrtools/noticedesk/internal/contract"
)

// StatusFeed is the in-process broadcast channel for notice status
// changes. The status workflow publishes after a successful commit;
// any mounted list view subscribes and refetches on receipt. It is an
// explicit dependency passed in at construction, not ambient state.
//
// Delivery is best-effort and has no replay: a subscriber mounted after
// an event fires misses it, which is fine because its own future
// fetches see current state regardless.
type StatusFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan contract.StatusChange
}

// NewStatusFeed creates an empty feed.
func NewStatusFeed() *StatusFeed {
	return &StatusFeed{subs: make(map[int]chan contract.StatusChange)}
}

// Subscribe registers a listener and returns its channel plus a cancel
// function. The cancel function must be called when the listener goes
// away; it closes the channel.
func (f *StatusFeed) Subscribe() (<-chan contract.StatusChange, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan contract.StatusChange, 4)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish fans a change out to all current subscribers without
// blocking. A subscriber whose buffer is full drops the event.
func (f *StatusFeed) Publish(change contract.StatusChange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (f *StatusFeed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
