package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// A stalled peer must never block a dispatcher; writes that exceed this are
// treated as failed pushes.
const writeWait = 5 * time.Second

// socket is the subset of *websocket.Conn a session drives.
type socket interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Session is one live connection's state machine. It starts unauthenticated;
// a valid auth message binds it to a user exactly once. The read loop owns
// userID and authed; concurrent dispatchers only ever touch Send and Close,
// which satisfy presence.Conn.
type Session struct {
	sock   socket
	userID uint
	authed bool

	mu sync.Mutex // serializes outbound writes
}

func newSession(sock socket) *Session {
	return &Session{sock: sock}
}

// Send writes one outbound payload with a bounded deadline.
func (s *Session) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.sock.SetWriteDeadline(time.Now().Add(writeWait))
	return s.sock.WriteMessage(websocket.TextMessage, payload)
}

// Close tears down the underlying connection, which unblocks the read loop.
func (s *Session) Close() error {
	return s.sock.Close()
}

func (s *Session) sendJSON(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Send(payload)
}
