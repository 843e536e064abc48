package presence

import "sync"

// Conn is the write side of a live recipient connection. Handles are compared
// by identity, so implementations must be pointer types.
type Conn interface {
	Send(payload []byte) error
	Close() error
}

// Registry is the single source of truth for "is this user reachable right
// now". It maps a user to at most one live connection and is safe for
// concurrent use.
type Registry struct {
	mu    sync.Mutex
	conns map[uint]Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[uint]Conn)}
}

// Register installs conn as the live connection for userID. A previously
// registered handle is replaced and force-closed so the user never has two
// silent listeners. The close happens outside the lock.
func (r *Registry) Register(userID uint, conn Conn) {
	r.mu.Lock()
	old := r.conns[userID]
	r.conns[userID] = conn
	r.mu.Unlock()

	if old != nil && old != conn {
		_ = old.Close()
	}
}

// Unregister removes the entry only if conn is still the registered handle
// and reports whether it did. A stale disconnect racing a newer reconnect is
// a no-op so the fresh connection is never evicted.
func (r *Registry) Unregister(userID uint, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns[userID] == conn {
		delete(r.conns, userID)
		return true
	}
	return false
}

// Lookup returns the live connection for userID, if any. Pure read.
func (r *Registry) Lookup(userID uint) (Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[userID]
	return conn, ok
}

// Online returns the number of currently registered connections.
func (r *Registry) Online() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}
