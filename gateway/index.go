package gateway

import (
	"sync"

	"chatgram/contract"

	"github.com/google/uuid"
)

type roomMember struct {
	userID string
	sink   contract.EventSink
}

// SubscriptionIndex tracks which connections are viewing which conversation
// (rooms) and which connections belong to which user (personal channels).
// It is written only by the gateway and read by the fan-out dispatcher.
type SubscriptionIndex struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[string]roomMember       // conversation -> connID -> member
	users map[string]map[string]contract.EventSink  // userID -> connID -> sink
}

func NewSubscriptionIndex() *SubscriptionIndex {
	return &SubscriptionIndex{
		rooms: make(map[uuid.UUID]map[string]roomMember),
		users: make(map[string]map[string]contract.EventSink),
	}
}

// Bind attaches a connection to its user's personal channel.
func (s *SubscriptionIndex) Bind(userID, connID string, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = make(map[string]contract.EventSink)
	}
	s.users[userID][connID] = sink
}

// Unbind removes a connection from its user's personal channel and cleans up
// empty sets to avoid leaking entries for long-gone users.
func (s *SubscriptionIndex) Unbind(userID, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conns, ok := s.users[userID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(s.users, userID)
		}
	}
}

func (s *SubscriptionIndex) JoinRoom(conversationID uuid.UUID, connID, userID string, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[conversationID]; !ok {
		s.rooms[conversationID] = make(map[string]roomMember)
	}
	s.rooms[conversationID][connID] = roomMember{userID: userID, sink: sink}
}

func (s *SubscriptionIndex) LeaveRoom(conversationID uuid.UUID, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if members, ok := s.rooms[conversationID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(s.rooms, conversationID)
		}
	}
}

func (s *SubscriptionIndex) SinksForRoom(conversationID uuid.UUID) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members, ok := s.rooms[conversationID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for _, member := range members {
		sinks = append(sinks, member.sink)
	}
	return sinks
}

func (s *SubscriptionIndex) SinksForUser(userID string) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conns, ok := s.users[userID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(conns))
	for _, sink := range conns {
		sinks = append(sinks, sink)
	}
	return sinks
}

// AllSinks returns every bound connection once, for global broadcasts.
func (s *SubscriptionIndex) AllSinks() []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sinks []contract.EventSink
	for _, conns := range s.users {
		for _, sink := range conns {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

// UserInRoom reports whether at least one of the user's connections has
// joined the conversation's room.
func (s *SubscriptionIndex) UserInRoom(conversationID uuid.UUID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, member := range s.rooms[conversationID] {
		if member.userID == userID {
			return true
		}
	}
	return false
}
