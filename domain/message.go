// Package domain contains core concepts of the messaging engine.
// This file defines Message and its delivery lifecycle rules.
// The aggregate status only moves forward: sent -> delivered -> seen.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusSeen      MessageStatus = "seen"
)

// Message is one entry of a conversation's append-mostly log.
// DeliveredTo and SeenBy are per-recipient acknowledgement sets and never
// contain the sender. SeenBy is allowed to race ahead of DeliveredTo: a user
// who views a conversation right after reconnecting may be recorded as having
// seen a message before their delivery acknowledgement lands.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       string
	Text           string
	Status         MessageStatus
	DeliveredTo    []string
	SeenBy         []string
	CreatedAt      time.Time
	EditedAt       *time.Time
}

// NewMessage builds a message at send time. The initial status is computed
// from the recipients reachable over a live connection right now: delivered
// only when every recipient is online, sent otherwise.
func NewMessage(conversationID uuid.UUID, senderID, text string,
	onlineRecipients, recipients []string, at time.Time) Message {
	m := Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Status:         StatusSent,
		DeliveredTo:    lo.Without(onlineRecipients, senderID),
		CreatedAt:      at,
	}
	m.Recompute(recipients)
	return m
}

// MarkDelivered records a delivery acknowledgement for userID.
// Returns false when nothing changed (sender or already acknowledged),
// which callers rely on to keep catch-up idempotent.
func (m *Message) MarkDelivered(userID string) bool {
	if userID == m.SenderID || lo.Contains(m.DeliveredTo, userID) {
		return false
	}
	m.DeliveredTo = append(m.DeliveredTo, userID)
	return true
}

// MarkSeen records a view acknowledgement for userID.
// DeliveredTo is deliberately not back-filled here.
func (m *Message) MarkSeen(userID string) bool {
	if userID == m.SenderID || lo.Contains(m.SeenBy, userID) {
		return false
	}
	m.SeenBy = append(m.SeenBy, userID)
	return true
}

// ResetTracking wipes the acknowledgement sets after an edit: the content
// changed, so delivery restarts from the recipients online right now and
// nobody has seen the new text yet.
func (m *Message) ResetTracking(onlineRecipients []string, editedAt time.Time) {
	m.DeliveredTo = lo.Without(onlineRecipients, m.SenderID)
	m.SeenBy = nil
	m.EditedAt = &editedAt
}

// Recompute derives the aggregate status from the per-recipient sets.
// Seen requires SeenBy to cover every recipient; delivered requires
// DeliveredTo to cover every recipient. A partially delivered message
// stays sent at the aggregate level, the sets remain authoritative.
func (m *Message) Recompute(recipients []string) {
	switch {
	case len(recipients) > 0 && lo.Every(m.SeenBy, recipients):
		m.Status = StatusSeen
	case len(recipients) > 0 && lo.Every(m.DeliveredTo, recipients):
		m.Status = StatusDelivered
	default:
		m.Status = StatusSent
	}
}
