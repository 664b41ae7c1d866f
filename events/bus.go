// Package events provides the in-process bus carrying gamification signals
// from the engines to whoever renders them (the WebSocket hub in this
// server). Publishing is synchronous fire-and-forget fan-out.
package events

import (
	"sync"

	"learnhub/models"
)

// Handler receives every published event.
type Handler func(models.GamificationEvent)

// Bus fans events out to all subscribed handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all future events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every subscriber in subscription order.
func (b *Bus) Publish(evt models.GamificationEvent) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}
