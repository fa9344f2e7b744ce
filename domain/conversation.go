package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ConversationKind string

const (
	KindDirect ConversationKind = "direct"
	KindGroup  ConversationKind = "group"
)

// Conversation is the persisted participant set of a chat.
// A direct conversation has exactly two participants and is unique per
// unordered pair; both rules are enforced by the conversation repository.
type Conversation struct {
	ID           uuid.UUID
	Participants []string
	Kind         ConversationKind
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Conversation) HasParticipant(userID string) bool {
	return lo.Contains(c.Participants, userID)
}

// Recipients returns every participant except the sender.
func (c Conversation) Recipients(senderID string) []string {
	return lo.Without(c.Participants, senderID)
}
