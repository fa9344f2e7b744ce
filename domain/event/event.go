package event

import (
	"chatgram/domain"

	"github.com/google/uuid"
)

type Type string

const (
	NewMessageType             Type = "NEW_MESSAGE"
	MessageStatusUpdatedType   Type = "MESSAGE_STATUS_UPDATED"
	MessageUpdatedType         Type = "MESSAGE_UPDATED"
	MessageDeletedType         Type = "MESSAGE_DELETED"
	UserOnlineType             Type = "USER_ONLINE"
	UserOfflineType            Type = "USER_OFFLINE"
	NewMessageNotificationType Type = "NEW_MESSAGE_NOTIFICATION"
	NotificationType           Type = "NOTIFICATION"
	OnlineUsersType            Type = "ONLINE_USERS"
)

// Event is anything the dispatcher can push to a live connection.
type Event interface {
	Type() Type
}

// NewMessage carries the full message payload to connections currently
// viewing the conversation.
type NewMessage struct {
	Message domain.Message
}

func (e NewMessage) Type() Type { return NewMessageType }

// MessageStatusUpdated reports one recipient's acknowledgement.
// Status is the acknowledged step (delivered or seen), UserID the recipient
// whose acknowledgement triggered it.
type MessageStatusUpdated struct {
	MessageID      uuid.UUID
	ConversationID uuid.UUID
	Status         domain.MessageStatus
	UserID         string
}

func (e MessageStatusUpdated) Type() Type { return MessageStatusUpdatedType }

// MessageUpdated is broadcast after an edit, distinct from status updates.
type MessageUpdated struct {
	Message domain.Message
}

func (e MessageUpdated) Type() Type { return MessageUpdatedType }

type MessageDeleted struct {
	MessageID      uuid.UUID
	ConversationID uuid.UUID
	SenderID       string
}

func (e MessageDeleted) Type() Type { return MessageDeletedType }

type UserOnline struct {
	UserID string
}

func (e UserOnline) Type() Type { return UserOnlineType }

type UserOffline struct {
	UserID string
}

func (e UserOffline) Type() Type { return UserOfflineType }

// NewMessageNotification is the lightweight ping sent to a recipient who is
// online but not viewing the conversation. It never carries the message body.
type NewMessageNotification struct {
	ConversationID uuid.UUID
	UserID         string
}

func (e NewMessageNotification) Type() Type { return NewMessageNotificationType }

// Notification is the generic out-of-band payload pushed on behalf of the
// surrounding notification subsystem (likes, comments, follows).
type Notification struct {
	UserID   string
	Kind     string
	SenderID string
	Body     string
}

func (e Notification) Type() Type { return NotificationType }

// OnlineUsersSnapshot answers a connection's explicit online-users query.
// It goes to the asking connection only, never broadcast.
type OnlineUsersSnapshot struct {
	UserIDs []string
}

func (e OnlineUsersSnapshot) Type() Type { return OnlineUsersType }
