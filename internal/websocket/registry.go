package websocket

import "sync"

// ConnectionRegistry maps a user id to the one connection currently
// registered for it. A later registration replaces an earlier one; the
// replaced connection stays open but is no longer reachable by user id.
type ConnectionRegistry struct {
	mu     sync.RWMutex
	byUser map[uint]*Client
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		byUser: make(map[uint]*Client),
	}
}

func (r *ConnectionRegistry) Register(userID uint, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = c
}

func (r *ConnectionRegistry) Lookup(userID uint) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byUser[userID]
	return c, ok
}

// UnregisterAll removes every entry pointing at c and returns the user ids
// that were removed. Entries that were since taken over by another
// connection are left alone.
func (r *ConnectionRegistry) UnregisterAll(c *Client) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []uint
	for userID, registered := range r.byUser {
		if registered == c {
			delete(r.byUser, userID)
			removed = append(removed, userID)
		}
	}
	return removed
}

func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
