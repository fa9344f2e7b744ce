package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_StatusFromOnlineRecipients(t *testing.T) {
	req := require.New(t)
	conversationID := uuid.New()
	now := time.Now().UTC()

	// Given everyone is offline
	m := NewMessage(conversationID, "alice", "hello", nil, []string{"bob", "carol"}, now)

	// Then the message starts as sent with empty acknowledgement sets
	req.Equal(StatusSent, m.Status)
	req.Empty(m.DeliveredTo)
	req.Empty(m.SeenBy)

	// Given every recipient is online at send time
	m = NewMessage(conversationID, "alice", "hello", []string{"bob", "carol"}, []string{"bob", "carol"}, now)

	// Then the message starts as delivered
	req.Equal(StatusDelivered, m.Status)
	req.ElementsMatch([]string{"bob", "carol"}, m.DeliveredTo)
}

func TestNewMessage_PartialOnlineStaysSent(t *testing.T) {
	req := require.New(t)

	// Given only one of two recipients is online
	m := NewMessage(uuid.New(), "alice", "hi", []string{"bob"}, []string{"bob", "carol"}, time.Now().UTC())

	// Then the aggregate stays sent but bob's acknowledgement is recorded
	req.Equal(StatusSent, m.Status)
	req.Equal([]string{"bob"}, m.DeliveredTo)
}

func TestMarkDelivered_Idempotent(t *testing.T) {
	req := require.New(t)
	m := NewMessage(uuid.New(), "alice", "hi", nil, []string{"bob"}, time.Now().UTC())

	// When bob acknowledges twice
	req.True(m.MarkDelivered("bob"))
	req.False(m.MarkDelivered("bob"))

	// Then the set holds him once
	req.Equal([]string{"bob"}, m.DeliveredTo)

	// And the sender can never acknowledge their own message
	req.False(m.MarkDelivered("alice"))
}

func TestMarkSeen_RacesAheadOfDelivery(t *testing.T) {
	req := require.New(t)
	m := NewMessage(uuid.New(), "alice", "hi", nil, []string{"bob"}, time.Now().UTC())

	// When bob sees the message before his delivery acknowledgement landed
	req.True(m.MarkSeen("bob"))
	m.Recompute([]string{"bob"})

	// Then the aggregate is seen and DeliveredTo was not back-filled
	req.Equal(StatusSeen, m.Status)
	req.Empty(m.DeliveredTo)
}

func TestRecompute_StatusIsMonotonic(t *testing.T) {
	req := require.New(t)
	recipients := []string{"bob", "carol"}
	m := NewMessage(uuid.New(), "alice", "hi", nil, recipients, time.Now().UTC())

	// When only bob acknowledges delivery
	m.MarkDelivered("bob")
	m.Recompute(recipients)
	req.Equal(StatusSent, m.Status)

	// When carol completes the delivery set
	m.MarkDelivered("carol")
	m.Recompute(recipients)
	req.Equal(StatusDelivered, m.Status)

	// When both have seen it
	m.MarkSeen("bob")
	m.MarkSeen("carol")
	m.Recompute(recipients)
	req.Equal(StatusSeen, m.Status)
}

func TestResetTracking_RestartsDelivery(t *testing.T) {
	req := require.New(t)
	recipients := []string{"bob", "carol"}
	m := NewMessage(uuid.New(), "alice", "hi", recipients, recipients, time.Now().UTC())
	m.MarkSeen("bob")
	m.MarkSeen("carol")
	m.Recompute(recipients)
	req.Equal(StatusSeen, m.Status)

	// When the sender edits while only bob is online
	editedAt := time.Now().UTC()
	m.Text = "hi again"
	m.ResetTracking([]string{"bob"}, editedAt)
	m.Recompute(recipients)

	// Then seen acknowledgements are wiped and delivery restarted
	req.Equal(StatusSent, m.Status)
	req.Equal([]string{"bob"}, m.DeliveredTo)
	req.Empty(m.SeenBy)
	req.Equal(editedAt, *m.EditedAt)
}
