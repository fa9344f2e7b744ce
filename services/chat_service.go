//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks

// Package services exposes the application-facing API composed from the
// delivery engine, the conversation store and the presence registry. The
// transport layer talks to this package, never to the engine directly.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"chatgram/contract"
	"chatgram/delivery"
	"chatgram/domain"
	"chatgram/errors"
	"chatgram/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// ConversationSummary is the inbox projection of one conversation for one
// user: the newest message, how many messages that user has not seen, and
// which of the other participants are currently online.
type ConversationSummary struct {
	Conversation       domain.Conversation
	LastMessage        *domain.Message
	UnreadCount        int
	OnlineParticipants []string
}

type IChatService interface {
	CreateConversation(ctx context.Context, cmd domain.CreateConversationCommand) (domain.Conversation, error)
	GetOrCreateDirect(ctx context.Context, userID, peerID string) (domain.Conversation, error)
	GetUserConversations(ctx context.Context, userID string) ([]ConversationSummary, error)
}

type ChatService struct {
	log           *slog.Logger
	engine        delivery.IEngine
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	presence      contract.IPresence
}

func NewChatService(log *slog.Logger, engine delivery.IEngine,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	presence contract.IPresence) *ChatService {
	return &ChatService{
		log:           log,
		engine:        engine,
		conversations: conversations,
		messages:      messages,
		presence:      presence,
	}
}

// CreateConversation creates a conversation the creator belongs to.
// Direct conversations are deduplicated per pair; use GetOrCreateDirect for
// those instead of forcing the two-participant rule on callers here.
func (s *ChatService) CreateConversation(_ context.Context, cmd domain.CreateConversationCommand) (domain.Conversation, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	participants := cmd.Participants
	if !lo.Contains(participants, cmd.CreatorID) {
		return domain.Conversation{}, errors.ErrNotAParticipant
	}
	if cmd.Kind == domain.KindDirect {
		if len(participants) != 2 {
			return domain.Conversation{}, fmt.Errorf("%w: a direct conversation has exactly two participants", errors.ErrInvalidMessage)
		}
		return s.conversations.GetOrCreateDirect(participants[0], participants[1])
	}
	return s.conversations.CreateConversation(participants, cmd.Kind)
}

func (s *ChatService) GetOrCreateDirect(_ context.Context, userID, peerID string) (domain.Conversation, error) {
	if userID == "" || peerID == "" || userID == peerID {
		return domain.Conversation{}, fmt.Errorf("%w: a direct conversation needs two distinct users", errors.ErrInvalidMessage)
	}
	return s.conversations.GetOrCreateDirect(userID, peerID)
}

// GetUserConversations builds the user's inbox: every conversation they
// participate in, newest activity first, with the last message and the
// per-user unread count.
func (s *ChatService) GetUserConversations(_ context.Context, userID string) ([]ConversationSummary, error) {
	conversations, err := s.conversations.ListByParticipant(userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summary := ConversationSummary{Conversation: conversation}
		last, ok, err := s.messages.LastMessage(conversation.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			summary.LastMessage = &last
		}
		if summary.UnreadCount, err = s.messages.CountUnread(conversation.ID, userID); err != nil {
			return nil, err
		}
		summary.OnlineParticipants = lo.Filter(conversation.Recipients(userID), func(participant string, _ int) bool {
			return s.presence.IsOnline(participant)
		})
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Conversation.UpdatedAt.After(summaries[j].Conversation.UpdatedAt)
	})
	return summaries, nil
}

func (s *ChatService) OnlineUserIDs() []string {
	return s.presence.OnlineUsers()
}

// ParseID turns a wire identifier into a UUID, folding parse failures into
// the invalid-input taxonomy entry. Shared by the transport handlers.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	return id, nil
}
