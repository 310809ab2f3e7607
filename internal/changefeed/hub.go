package changefeed

import (
	"context"
	"sync"
)

// Hub fans change events out to in-process subscribers (the SSE stream).
// Delivery is best-effort: a subscriber whose buffer is full misses the
// event rather than stalling the writer.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint64]chan Event
	next uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan Event)}
}

// Subscribe registers a new subscriber and returns its channel together
// with a cancel function. The channel is closed on cancel.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, buffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (h *Hub) PublishChange(_ context.Context, event Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
