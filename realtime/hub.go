package realtime

import (
	"context"
	"encoding/json"
	"net/http"

	"pushnotify/metrics"
	"pushnotify/models"
	"pushnotify/services/presence"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Store is the slice of the notification store a session needs for the unread
// catch-up and the presence audit flags.
type Store interface {
	ListUnread(ctx context.Context, userID uint) ([]models.Notification, error)
	SetPresence(ctx context.Context, userID uint, online bool) error
}

// Hub upgrades HTTP requests into connection sessions and runs one read loop
// per connection.
type Hub struct {
	registry *presence.Registry
	store    Store
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewHub(registry *presence.Registry, store Store, log *zap.Logger) *Hub {
	return &Hub{
		registry: registry,
		store:    store,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The HTTP surface is CORS-open; the socket follows suit.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle is the gin handler for the WebSocket endpoint.
func (h *Hub) Handle(c *gin.Context) {
	sock, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	// The request context dies with the handler's HTTP machinery once the
	// connection is hijacked, so session work runs on its own context.
	h.run(context.Background(), newSession(sock))
}

// run drives a session from accept to close. Malformed or premature messages
// are contained to the single message; only a transport error ends the loop.
func (h *Hub) run(ctx context.Context, s *Session) {
	metrics.WebsocketConnections.Inc()
	defer func() {
		_ = s.Close()
		metrics.WebsocketConnections.Dec()
		// A superseded session is no longer the registered handle; flipping
		// the audit flag then would mark a still-connected user offline.
		if s.authed && h.registry.Unregister(s.userID, s) {
			if err := h.store.SetPresence(ctx, s.userID, false); err != nil {
				h.log.Warn("failed to record offline presence",
					zap.Uint("user_id", s.userID), zap.Error(err))
			}
		}
	}()

	if err := s.sendJSON(connectionAck{Type: "connection", Message: "connected"}); err != nil {
		h.log.Warn("connection ack failed", zap.Error(err))
		return
	}

	for {
		_, payload, err := s.sock.ReadMessage()
		if err != nil {
			return
		}

		var msg envelope
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.log.Warn("malformed message ignored", zap.Error(err))
			continue
		}

		switch {
		case msg.Type == "auth" && !s.authed:
			h.authenticate(ctx, s, msg.UserID)
		case !s.authed:
			h.log.Debug("message before auth ignored", zap.String("type", msg.Type))
		default:
			// Authenticated sessions interact through the HTTP API; inbound
			// traffic other than auth carries no behavior here.
		}
	}
}

func (h *Hub) authenticate(ctx context.Context, s *Session, userID uint) {
	s.userID = userID
	s.authed = true

	h.registry.Register(userID, s)
	if err := h.store.SetPresence(ctx, userID, true); err != nil {
		h.log.Warn("failed to record online presence",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	metrics.WebsocketAuthTotal.Inc()

	if err := s.sendJSON(authSuccess{Type: "auth_success", UserID: userID}); err != nil {
		h.log.Warn("auth ack failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	unread, err := h.store.ListUnread(ctx, userID)
	if err != nil {
		h.log.Error("unread catch-up query failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	if len(unread) == 0 {
		return
	}
	batch := unreadBatch{
		Type:          "unread_notifications",
		Count:         len(unread),
		Notifications: unread,
	}
	if err := s.sendJSON(batch); err != nil {
		h.log.Warn("unread catch-up push failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}
