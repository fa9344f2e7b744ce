package gateway

import (
	"sync"

	"chatgram/contract"

	"github.com/google/uuid"
)

// Conn is the gateway-side state of one authenticated live connection.
// Its lifecycle is: authenticated (created) -> registered -> joined rooms* ->
// closed. Room membership is ephemeral and dies with the connection.
type Conn struct {
	ID     string
	UserID string
	sink   contract.EventSink

	mu         sync.Mutex
	registered bool
	closed     bool
	rooms      map[uuid.UUID]struct{}
	closeOnce  sync.Once
}

func newConn(userID string, sink contract.EventSink) *Conn {
	return &Conn{
		ID:     uuid.NewString(),
		UserID: userID,
		sink:   sink,
		rooms:  make(map[uuid.UUID]struct{}),
	}
}

// markRegistered flips the connection to registered.
// Returns false when already registered or closed, keeping the register
// side effects single-shot per connection.
func (c *Conn) markRegistered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registered || c.closed {
		return false
	}
	c.registered = true
	return true
}

func (c *Conn) isRegistered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registered && !c.closed
}

func (c *Conn) addRoom(conversationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[conversationID] = struct{}{}
}

func (c *Conn) removeRoom(conversationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rooms, conversationID)
}

// close marks the connection closed and returns the rooms it was in plus
// whether it had been registered. Subsequent calls return nothing.
func (c *Conn) close() (rooms []uuid.UUID, wasRegistered bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false
	}
	c.closed = true
	wasRegistered = c.registered
	for room := range c.rooms {
		rooms = append(rooms, room)
	}
	c.rooms = make(map[uuid.UUID]struct{})
	return rooms, wasRegistered
}
