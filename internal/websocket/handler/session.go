// internal/websocket/handler/session.go
package handler

import (
	"context"
	"fmt"

	wstypes "rental-console/internal/domain/websocket"
	ws "rental-console/internal/websocket"

	"go.uber.org/zap"
)

// SessionHandler answers browser requests about the console session.
type SessionHandler struct {
	sessions ws.SessionSource
	logger   *zap.Logger
}

func NewSessionHandler(sessions ws.SessionSource, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

func (h *SessionHandler) SupportedEvents() []wstypes.EventType {
	return []wstypes.EventType{
		wstypes.EventTypeSessionGet,
		wstypes.EventTypeSessionRefetch,
	}
}

func (h *SessionHandler) HandleMessage(_ context.Context, client *ws.Client, msg *wstypes.WSMessage) error {
	switch msg.Type {
	case wstypes.EventTypeSessionGet:
		client.SendMessage(ws.SessionMessage(h.sessions.Snapshot()))
		return nil

	case wstypes.EventTypeSessionRefetch:
		// the outcome arrives later as a session:state or session:rejected broadcast
		h.logger.Info("session re-validation requested", zap.String("client_id", client.ID()))
		h.sessions.Refetch()
		client.SendMessage(ws.SessionMessage(h.sessions.Snapshot()))
		return nil

	default:
		return fmt.Errorf("unsupported event type: %s", msg.Type)
	}
}
