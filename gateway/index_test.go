package gateway

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionIndex_RoomMembership(t *testing.T) {
	req := require.New(t)
	index := NewSubscriptionIndex()
	room := uuid.New()

	index.JoinRoom(room, "conn-1", "alice", nullSink{})
	index.JoinRoom(room, "conn-2", "bob", nullSink{})

	req.Len(index.SinksForRoom(room), 2)
	req.True(index.UserInRoom(room, "alice"))
	req.False(index.UserInRoom(room, "carol"))
	req.False(index.UserInRoom(uuid.New(), "alice"))

	index.LeaveRoom(room, "conn-1")
	req.Len(index.SinksForRoom(room), 1)
	req.False(index.UserInRoom(room, "alice"))

	// Leaving a room never joined is a no-op
	index.LeaveRoom(uuid.New(), "conn-2")
}

func TestSubscriptionIndex_UserChannels(t *testing.T) {
	req := require.New(t)
	index := NewSubscriptionIndex()

	// Two devices of the same user
	index.Bind("alice", "phone", nullSink{})
	index.Bind("alice", "laptop", nullSink{})
	index.Bind("bob", "phone", nullSink{})

	req.Len(index.SinksForUser("alice"), 2)
	req.Len(index.SinksForUser("bob"), 1)
	req.Empty(index.SinksForUser("carol"))
	req.Len(index.AllSinks(), 3)

	index.Unbind("alice", "phone")
	req.Len(index.SinksForUser("alice"), 1)

	index.Unbind("alice", "laptop")
	req.Empty(index.SinksForUser("alice"))
	req.Len(index.AllSinks(), 1)
}

func TestSubscriptionIndex_MultiRoomUser(t *testing.T) {
	req := require.New(t)
	index := NewSubscriptionIndex()
	roomA, roomB := uuid.New(), uuid.New()

	// One connection viewing two conversations at once
	index.JoinRoom(roomA, "conn-1", "alice", nullSink{})
	index.JoinRoom(roomB, "conn-1", "alice", nullSink{})

	req.True(index.UserInRoom(roomA, "alice"))
	req.True(index.UserInRoom(roomB, "alice"))

	index.LeaveRoom(roomA, "conn-1")
	req.False(index.UserInRoom(roomA, "alice"))
	req.True(index.UserInRoom(roomB, "alice"))
}
