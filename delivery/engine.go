//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=../mocks/mock_engine.go -package=mocks

// Package delivery implements the message delivery state machine: initial
// status at send time, advancement as recipients reconnect or view a
// conversation, and the edit/delete paths. Every advancement is idempotent;
// applying the same acknowledgement twice mutates nothing and emits nothing.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chatgram/contract"
	"chatgram/domain"
	"chatgram/domain/event"
	"chatgram/errors"
	"chatgram/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

type IEngine interface {
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.Message, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID, deleterID string) error
	GetMessages(ctx context.Context, cmd domain.GetMessagesCommand) ([]domain.Message, error)
	UpdateMessageStatus(ctx context.Context, messageID uuid.UUID, userID string, status domain.MessageStatus) (domain.Message, error)
	CatchUp(ctx context.Context, userID string) error
	AcknowledgeView(ctx context.Context, conversationID uuid.UUID, userID string) error
	DeleteConversation(ctx context.Context, conversationID uuid.UUID, requesterID string) error
}

type Engine struct {
	log           *slog.Logger
	presence      contract.IPresence
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	dispatcher    contract.IDispatcher
}

func NewEngine(log *slog.Logger, presence contract.IPresence,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	dispatcher contract.IDispatcher) *Engine {
	return &Engine{
		log:           log,
		presence:      presence,
		conversations: conversations,
		messages:      messages,
		dispatcher:    dispatcher,
	}
}

// SendMessage persists a new message and fans it out. The initial status is
// computed from the presence registry at send time: delivered only when every
// recipient is online. Persistence is atomic; fan-out is best-effort and
// never rolls it back.
func (e *Engine) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	conversation, err := e.conversations.GetConversation(cmd.ConversationID)
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}
	if !conversation.HasParticipant(cmd.SenderID) {
		return domain.Message{}, errors.ErrNotAParticipant
	}

	recipients := conversation.Recipients(cmd.SenderID)
	online := lo.Filter(recipients, func(userID string, _ int) bool {
		return e.presence.IsOnline(userID)
	})
	message := domain.NewMessage(cmd.ConversationID, cmd.SenderID, cmd.Text,
		online, recipients, time.Now().UTC())

	if err = e.messages.StoreMessage(message); err != nil {
		return domain.Message{}, storageFailure(err)
	}
	if err = e.conversations.Touch(cmd.ConversationID, message.CreatedAt); err != nil {
		e.log.Warn("failed to touch conversation after send",
			"conversation_id", cmd.ConversationID, "error", err)
	}

	e.dispatcher.MessageSent(ctx, conversation, message)
	return message, nil
}

// CatchUp runs when a user transitions offline -> online: every sent message
// they have not received yet, in every conversation they participate in, gets
// a delivery acknowledgement. Calling it twice is a no-op the second time.
func (e *Engine) CatchUp(ctx context.Context, userID string) error {
	conversations, err := e.conversations.ListByParticipant(userID)
	if err != nil {
		return storageFailure(err)
	}
	for _, conversation := range conversations {
		messages, err := e.messages.ListMessages(conversation.ID)
		if err != nil {
			return storageFailure(err)
		}
		for _, message := range messages {
			if message.Status != domain.StatusSent ||
				message.SenderID == userID ||
				lo.Contains(message.DeliveredTo, userID) {
				continue
			}
			if err = e.acknowledge(ctx, conversation, message.ID, userID, domain.StatusDelivered); err != nil {
				return err
			}
		}
	}
	return nil
}

// AcknowledgeView runs when a connection joins a conversation room: every
// message the user has not seen yet gets a view acknowledgement. Seen is
// recorded even for messages still missing the user's delivery
// acknowledgement; DeliveredTo is not back-filled.
func (e *Engine) AcknowledgeView(ctx context.Context, conversationID uuid.UUID, userID string) error {
	conversation, err := e.conversations.GetConversation(conversationID)
	if err != nil {
		return storageFailure(err)
	}
	if !conversation.HasParticipant(userID) {
		return errors.ErrNotAParticipant
	}
	messages, err := e.messages.ListMessages(conversationID)
	if err != nil {
		return storageFailure(err)
	}
	for _, message := range messages {
		if message.SenderID == userID || lo.Contains(message.SeenBy, userID) {
			continue
		}
		if err = e.acknowledge(ctx, conversation, message.ID, userID, domain.StatusSeen); err != nil {
			return err
		}
	}
	return nil
}

// acknowledge applies one per-recipient acknowledgement inside a single
// storage transaction and emits a status event only when the record changed.
func (e *Engine) acknowledge(ctx context.Context, conversation domain.Conversation,
	messageID uuid.UUID, userID string, status domain.MessageStatus) error {
	_, changed, err := e.messages.UpdateMessage(messageID, func(m *domain.Message) bool {
		var marked bool
		switch status {
		case domain.StatusDelivered:
			marked = m.MarkDelivered(userID)
		case domain.StatusSeen:
			marked = m.MarkSeen(userID)
		}
		if !marked {
			return false
		}
		m.Recompute(conversation.Recipients(m.SenderID))
		return true
	})
	if err != nil {
		return storageFailure(err)
	}
	if changed {
		e.dispatcher.StatusUpdated(ctx, event.MessageStatusUpdated{
			MessageID:      messageID,
			ConversationID: conversation.ID,
			Status:         status,
			UserID:         userID,
		})
	}
	return nil
}

// UpdateMessageStatus is the explicit acknowledgement path, independent of the
// join-triggered automatic one. Only recipients may acknowledge.
func (e *Engine) UpdateMessageStatus(ctx context.Context, messageID uuid.UUID,
	userID string, status domain.MessageStatus) (domain.Message, error) {
	if status != domain.StatusDelivered && status != domain.StatusSeen {
		return domain.Message{}, errors.ErrInvalidStatus
	}
	message, err := e.messages.GetMessage(messageID)
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}
	conversation, err := e.conversations.GetConversation(message.ConversationID)
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}
	if !conversation.HasParticipant(userID) {
		return domain.Message{}, errors.ErrNotAParticipant
	}
	if message.SenderID == userID {
		return domain.Message{}, errors.ErrForbidden
	}
	if err = e.acknowledge(ctx, conversation, messageID, userID, status); err != nil {
		return domain.Message{}, err
	}
	message, err = e.messages.GetMessage(messageID)
	return message, storageFailure(err)
}

// EditMessage replaces the text and restarts delivery tracking: the content
// changed, so DeliveredTo reflects only the recipients online right now and
// SeenBy is cleared. A messageUpdated event is always broadcast; a status
// event follows only when the aggregate status moved.
func (e *Engine) EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	message, err := e.messages.GetMessage(cmd.MessageID)
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}
	if message.SenderID != cmd.EditorID {
		return domain.Message{}, errors.ErrForbidden
	}
	conversation, err := e.conversations.GetConversation(message.ConversationID)
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}
	recipients := conversation.Recipients(message.SenderID)
	online := lo.Filter(recipients, func(userID string, _ int) bool {
		return e.presence.IsOnline(userID)
	})

	previousStatus := message.Status
	updated, _, err := e.messages.UpdateMessage(cmd.MessageID, func(m *domain.Message) bool {
		m.Text = cmd.Text
		m.ResetTracking(online, time.Now().UTC())
		m.Recompute(recipients)
		return true
	})
	if err != nil {
		return domain.Message{}, storageFailure(err)
	}

	e.dispatcher.MessageEdited(ctx, updated)
	if updated.Status != previousStatus {
		e.dispatcher.StatusUpdated(ctx, event.MessageStatusUpdated{
			MessageID:      updated.ID,
			ConversationID: conversation.ID,
			Status:         updated.Status,
			UserID:         cmd.EditorID,
		})
	}
	return updated, nil
}

// DeleteMessage removes a single message, sender-only.
func (e *Engine) DeleteMessage(ctx context.Context, messageID uuid.UUID, deleterID string) error {
	message, err := e.messages.GetMessage(messageID)
	if err != nil {
		return storageFailure(err)
	}
	if message.SenderID != deleterID {
		return errors.ErrForbidden
	}
	if err = e.messages.DeleteMessage(messageID); err != nil {
		return storageFailure(err)
	}
	e.dispatcher.MessageDeleted(ctx, event.MessageDeleted{
		MessageID:      messageID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
	})
	return nil
}

// GetMessages pages through the conversation log, newest page first.
// Reads are participant-gated like writes.
func (e *Engine) GetMessages(_ context.Context, cmd domain.GetMessagesCommand) ([]domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	conversation, err := e.conversations.GetConversation(cmd.ConversationID)
	if err != nil {
		return nil, storageFailure(err)
	}
	if !conversation.HasParticipant(cmd.RequesterID) {
		return nil, errors.ErrNotAParticipant
	}
	messages, err := e.messages.GetMessages(cmd.ConversationID, cmd.Page, cmd.Limit)
	return messages, storageFailure(err)
}

// DeleteConversation cascades: the message log goes first, then the
// conversation record and its indexes.
func (e *Engine) DeleteConversation(_ context.Context, conversationID uuid.UUID, requesterID string) error {
	conversation, err := e.conversations.GetConversation(conversationID)
	if err != nil {
		return storageFailure(err)
	}
	if !conversation.HasParticipant(requesterID) {
		return errors.ErrNotAParticipant
	}
	if err = e.messages.DeleteConversationMessages(conversationID); err != nil {
		return storageFailure(err)
	}
	return storageFailure(e.conversations.DeleteConversation(conversationID))
}

// storageFailure keeps domain sentinels intact and folds everything else
// into the storage failure taxonomy entry.
func storageFailure(err error) error {
	switch err {
	case nil, errors.ErrMessageNotFound, errors.ErrConversationNotFound:
		return err
	default:
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
}
