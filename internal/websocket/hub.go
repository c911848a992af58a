// internal/websocket/hub.go
package websocket

import (
	"context"
	"sync"

	wstypes "rental-console/internal/domain/websocket"
	"rental-console/internal/middleware"
	"rental-console/internal/pkg/session"

	"go.uber.org/zap"
)

// SessionSource is the session manager surface the hub relays.
type SessionSource interface {
	Snapshot() session.Session
	Subscribe() (<-chan session.Session, func())
	Refetch()
}

// Hub fans session state changes out to every connected browser.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	Register   chan *Client
	unregister chan *Client
	done       chan struct{}

	handlerRegistry *HandlerRegistry

	sessions SessionSource
	logger   *zap.Logger
}

type BroadcastMessage struct {
	Channel wstypes.ChannelType
	Message *wstypes.WSMessage
}

func NewHub(sessions SessionSource, logger *zap.Logger) *Hub {
	return &Hub{
		clients:         make(map[*Client]bool),
		Register:        make(chan *Client),
		unregister:      make(chan *Client),
		done:            make(chan struct{}),
		handlerRegistry: NewHandlerRegistry(),
		sessions:        sessions,
		logger:          logger,
	}
}

// RegisterHandler registers a message handler
func (h *Hub) RegisterHandler(handler MessageHandler) {
	h.handlerRegistry.Register(handler)
}

// HandleClientMessage processes a message from a client using registered handlers.
// It reports whether a handler took the message.
func (h *Hub) HandleClientMessage(ctx context.Context, client *Client, msg *wstypes.WSMessage) (bool, error) {
	handler, exists := h.handlerRegistry.Lookup(msg.Type)
	if !exists {
		return false, nil
	}
	return true, handler.HandleMessage(ctx, client, msg)
}

// Run serves registrations and relays session snapshots until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	updates, cancel := h.sessions.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case snap, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			h.BroadcastMessage(&BroadcastMessage{
				Channel: wstypes.ChannelSession,
				Message: SessionMessage(snap),
			})
		}
	}
}

// SessionMessage renders a snapshot as a feed message. Rejections carry the
// login redirect so the browser can leave the private pages.
func SessionMessage(snap session.Session) *wstypes.WSMessage {
	if snap.State == session.StateRejected {
		return wstypes.NewMessage(wstypes.EventTypeSessionRejected, wstypes.RejectedData{
			Reason:   "the stored session is no longer valid",
			Redirect: middleware.LoginPath,
		})
	}
	return wstypes.NewMessage(wstypes.EventTypeSessionState, snap)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("websocket client connected",
		zap.String("client_id", client.id),
		zap.Int("total", total),
	)

	client.SendMessage(wstypes.NewMessage(wstypes.EventTypeConnected, h.sessions.Snapshot()))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client]; !exists {
		return
	}
	delete(h.clients, client)
	client.Close()

	h.logger.Info("websocket client disconnected",
		zap.String("client_id", client.id),
		zap.Int("total", len(h.clients)),
	)
}

// Attach registers client, reporting false once the hub has stopped.
func (h *Hub) Attach(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

// BroadcastMessage sends msg to every client subscribed to its channel.
func (h *Hub) BroadcastMessage(msg *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.IsSubscribed(msg.Channel) {
			client.SendMessage(msg.Message)
		}
	}
}

// Events lists the client events answered by registered handlers.
func (h *Hub) Events() []wstypes.EventType {
	return h.handlerRegistry.Events()
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// drop hands client back to the hub loop without blocking the caller.
func (h *Hub) drop(client *Client) {
	go func() {
		select {
		case h.unregister <- client:
		case <-h.done:
		}
	}()
}

// shutdown announces the stop on the system channel, then closes every client.
func (h *Hub) shutdown() {
	h.BroadcastMessage(&BroadcastMessage{
		Channel: wstypes.ChannelSystem,
		Message: wstypes.NewMessage(wstypes.EventTypeDisconnected, map[string]interface{}{
			"reason": "server shutting down",
		}),
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	close(h.done)
	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
