// internal/websocket/handler.go
package websocket

import (
	"context"
	"sync"

	wstypes "rental-console/internal/domain/websocket"
)

// MessageHandler answers client events the hub does not handle itself.
type MessageHandler interface {
	HandleMessage(ctx context.Context, client *Client, msg *wstypes.WSMessage) error
	SupportedEvents() []wstypes.EventType
}

// HandlerRegistry routes event types to handlers. A later registration for
// the same event replaces the earlier one.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[wstypes.EventType]MessageHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[wstypes.EventType]MessageHandler),
	}
}

func (r *HandlerRegistry) Register(handler MessageHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, eventType := range handler.SupportedEvents() {
		r.handlers[eventType] = handler
	}
}

func (r *HandlerRegistry) Lookup(eventType wstypes.EventType) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[eventType]
	return handler, ok
}

// Events lists the event types with a registered handler.
func (r *HandlerRegistry) Events() []wstypes.EventType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wstypes.EventType, 0, len(r.handlers))
	for e := range r.handlers {
		out = append(out, e)
	}
	return out
}
