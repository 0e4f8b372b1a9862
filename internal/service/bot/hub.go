package bot

import (
	"context"
	"sync"

	"github.com/sandevgo/footix/internal/core"
)

// Hub fans inbound messages out to its subscribers in subscription order.
// A gateway owns the hub; subscribers leave by calling the function returned
// from Subscribe.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

type subscription struct {
	id       uint64
	listener core.MessageListener
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Subscribe(l core.MessageListener) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, listener: l})

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) OnMessage(ctx context.Context, u core.Utterance, out core.Sender) {
	h.mu.RLock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, s := range subs {
		s.listener.OnMessage(ctx, u, out)
	}
}
