package presence

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_First_Handle_Triggers_Online(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()

	// Given no connection is open
	req.False(registry.IsOnline(userID))

	// When the first handle is registered
	first := registry.Register(userID, "conn-1")

	// Then the user transitions online exactly once
	req.True(first)
	req.True(registry.IsOnline(userID))

	// And a second handle does not re-trigger the transition
	req.False(registry.Register(userID, "conn-2"))
	req.Len(registry.LiveHandles(userID), 2)
}

func TestRegistry_Register_Is_Idempotent_Per_Handle(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()

	req.True(registry.Register(userID, "conn-1"))
	req.False(registry.Register(userID, "conn-1"))
	req.Len(registry.LiveHandles(userID), 1)
}

func TestRegistry_Deregister_Last_Handle_Triggers_Offline_Once(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	registry.Register(userID, "conn-1")
	registry.Register(userID, "conn-2")

	// When one of two handles closes, the user stays online
	req.False(registry.Deregister(userID, "conn-1"))
	req.True(registry.IsOnline(userID))

	// When the last handle closes, the offline transition fires
	req.True(registry.Deregister(userID, "conn-2"))
	req.False(registry.IsOnline(userID))

	// And deregistering again is a no-op
	req.False(registry.Deregister(userID, "conn-2"))
}

func TestRegistry_OnlineUsers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Register("alice", "conn-1")
	registry.Register("bob", "conn-2")
	registry.Register("bob", "conn-3")

	users := registry.OnlineUsers()
	req.Len(users, 2)
	req.Contains(users, "alice")
	req.Contains(users, "bob")
}

func TestRegistry_Concurrent_Deregister_Fires_Offline_Exactly_Once(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()

	const handles = 32
	for i := 0; i < handles; i++ {
		registry.Register(userID, uuid.NewString())
	}
	ids := registry.LiveHandles(userID)
	req.Len(ids, handles)

	var wg sync.WaitGroup
	var offlineCount int32
	var mu sync.Mutex
	for _, id := range ids {
		wg.Add(1)
		go func(connID string) {
			defer wg.Done()
			if registry.Deregister(userID, connID) {
				mu.Lock()
				offlineCount++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	req.EqualValues(1, offlineCount)
	req.False(registry.IsOnline(userID))
}
