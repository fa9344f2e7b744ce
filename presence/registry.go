// Package presence tracks which users are reachable over at least one live
// connection. State lives only in process memory and is rebuilt from zero
// on restart.
package presence

import "sync"

type set map[string]struct{}

// Registry maps a user to the set of connection ids currently open for them.
// A user is online iff their set is non-empty. All methods are safe for
// concurrent use from many connections, including several connections of
// the same user.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]set
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]set)}
}

// Register idempotently adds a connection handle for a user.
// Returns true when this handle made the user transition offline -> online,
// so callers fire the online side effects exactly once per user.
func (r *Registry) Register(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.handles[userID]
	if !ok {
		conns = make(set)
		r.handles[userID] = conns
	}
	conns[connID] = struct{}{}
	return !ok
}

// Deregister removes a connection handle. Returns true only when the removed
// handle was the user's last one: that is the single event that makes a user
// go offline, even when two handles of the same user disconnect concurrently.
func (r *Registry) Deregister(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.handles[userID]
	if !ok {
		return false
	}
	if _, ok = conns[connID]; !ok {
		return false
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.handles, userID)
		return true
	}
	return false
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles[userID]) > 0
}

func (r *Registry) OnlineUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.handles))
	for userID := range r.handles {
		users = append(users, userID)
	}
	return users
}

// LiveHandles returns a copy of the user's connection ids.
func (r *Registry) LiveHandles(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := r.handles[userID]
	ids := make([]string, 0, len(conns))
	for id := range conns {
		ids = append(ids, id)
	}
	return ids
}
