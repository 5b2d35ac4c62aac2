package realtime

import (
	"sync"

	"github.com/stpnv0/EventGate/internal/domain"
)

const defaultBuffer = 16

// Hub fans event changes out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the message.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan domain.EventChange
	nextID uint64
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[uint64]chan domain.EventChange),
		buffer: buffer,
	}
}

// Subscribe registers a subscriber. The returned func removes it and closes
// the channel; calling it more than once is safe.
func (h *Hub) Subscribe() (<-chan domain.EventChange, func()) {
	ch := make(chan domain.EventChange, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish returns the number of subscribers that received the change.
func (h *Hub) Publish(change domain.EventChange) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- change:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
