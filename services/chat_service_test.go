package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chatgram/domain"
	"chatgram/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type memConversations struct {
	byID map[uuid.UUID]domain.Conversation
}

func newMemConversations() *memConversations {
	return &memConversations{byID: make(map[uuid.UUID]domain.Conversation)}
}

func (m *memConversations) CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error) {
	conversation := domain.Conversation{
		ID: uuid.New(), Participants: lo.Uniq(participants), Kind: kind,
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	m.byID[conversation.ID] = conversation
	return conversation, nil
}

func (m *memConversations) GetOrCreateDirect(userA, userB string) (domain.Conversation, error) {
	for _, conversation := range m.byID {
		if conversation.Kind == domain.KindDirect &&
			conversation.HasParticipant(userA) && conversation.HasParticipant(userB) {
			return conversation, nil
		}
	}
	return m.CreateConversation([]string{userA, userB}, domain.KindDirect)
}

func (m *memConversations) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	conversation, ok := m.byID[id]
	if !ok {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, nil
}

func (m *memConversations) ListByParticipant(userID string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	for _, conversation := range m.byID {
		if conversation.HasParticipant(userID) {
			conversations = append(conversations, conversation)
		}
	}
	return conversations, nil
}

func (m *memConversations) DeleteConversation(id uuid.UUID) error {
	delete(m.byID, id)
	return nil
}

func (m *memConversations) Touch(id uuid.UUID, at time.Time) error {
	conversation := m.byID[id]
	conversation.UpdatedAt = at
	m.byID[id] = conversation
	return nil
}

type memMessages struct {
	byConversation map[uuid.UUID][]domain.Message
}

func newMemMessages() *memMessages {
	return &memMessages{byConversation: make(map[uuid.UUID][]domain.Message)}
}

func (m *memMessages) StoreMessage(message domain.Message) error {
	m.byConversation[message.ConversationID] = append(m.byConversation[message.ConversationID], message)
	return nil
}

func (m *memMessages) GetMessage(_ uuid.UUID) (domain.Message, error) {
	return domain.Message{}, errors.ErrMessageNotFound
}

func (m *memMessages) UpdateMessage(_ uuid.UUID, _ func(*domain.Message) bool) (domain.Message, bool, error) {
	return domain.Message{}, false, errors.ErrMessageNotFound
}

func (m *memMessages) ListMessages(conversationID uuid.UUID) ([]domain.Message, error) {
	return m.byConversation[conversationID], nil
}

func (m *memMessages) GetMessages(conversationID uuid.UUID, _, _ int) ([]domain.Message, error) {
	return m.byConversation[conversationID], nil
}

func (m *memMessages) DeleteMessage(_ uuid.UUID) error { return nil }

func (m *memMessages) DeleteConversationMessages(conversationID uuid.UUID) error {
	delete(m.byConversation, conversationID)
	return nil
}

func (m *memMessages) CountUnread(conversationID uuid.UUID, userID string) (int, error) {
	unread := lo.Filter(m.byConversation[conversationID], func(message domain.Message, _ int) bool {
		return message.SenderID != userID && !lo.Contains(message.SeenBy, userID)
	})
	return len(unread), nil
}

func (m *memMessages) LastMessage(conversationID uuid.UUID) (domain.Message, bool, error) {
	messages := m.byConversation[conversationID]
	if len(messages) == 0 {
		return domain.Message{}, false, nil
	}
	return messages[len(messages)-1], true, nil
}

type stubPresence struct {
	online map[string]bool
}

func (p stubPresence) IsOnline(userID string) bool { return p.online[userID] }

func (p stubPresence) OnlineUsers() []string { return lo.Keys(p.online) }

func newTestService(onlineUsers ...string) (*ChatService, *memConversations, *memMessages) {
	conversations := newMemConversations()
	messages := newMemMessages()
	presence := stubPresence{online: make(map[string]bool)}
	for _, userID := range onlineUsers {
		presence.online[userID] = true
	}
	service := NewChatService(slog.Default(), nil, conversations, messages, presence)
	return service, conversations, messages
}

func TestCreateConversation_Rules(t *testing.T) {
	req := require.New(t)
	service, _, _ := newTestService()
	ctx := context.Background()

	// The creator must be in the participant set
	_, err := service.CreateConversation(ctx, domain.CreateConversationCommand{
		CreatorID: "alice", Participants: []string{"bob", "carol"}, Kind: domain.KindGroup,
	})
	req.ErrorIs(err, errors.ErrNotAParticipant)

	// A direct conversation has exactly two participants
	_, err = service.CreateConversation(ctx, domain.CreateConversationCommand{
		CreatorID: "alice", Participants: []string{"alice", "bob", "carol"}, Kind: domain.KindDirect,
	})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	// Unknown kinds are rejected by validation
	_, err = service.CreateConversation(ctx, domain.CreateConversationCommand{
		CreatorID: "alice", Participants: []string{"alice", "bob"}, Kind: "broadcast",
	})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	group, err := service.CreateConversation(ctx, domain.CreateConversationCommand{
		CreatorID: "alice", Participants: []string{"alice", "bob", "carol"}, Kind: domain.KindGroup,
	})
	req.NoError(err)
	req.Equal(domain.KindGroup, group.Kind)
}

func TestGetOrCreateDirect_Validation(t *testing.T) {
	req := require.New(t)
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.GetOrCreateDirect(ctx, "alice", "alice")
	req.ErrorIs(err, errors.ErrInvalidMessage)

	_, err = service.GetOrCreateDirect(ctx, "alice", "")
	req.ErrorIs(err, errors.ErrInvalidMessage)

	first, err := service.GetOrCreateDirect(ctx, "alice", "bob")
	req.NoError(err)
	again, err := service.GetOrCreateDirect(ctx, "bob", "alice")
	req.NoError(err)
	req.Equal(first.ID, again.ID)
}

func TestGetUserConversations_SummariesSortedByActivity(t *testing.T) {
	req := require.New(t)
	service, conversations, messages := newTestService("carol")
	ctx := context.Background()
	now := time.Now().UTC()

	quiet, err := conversations.CreateConversation([]string{"bob", "alice"}, domain.KindDirect)
	req.NoError(err)
	busy, err := conversations.CreateConversation([]string{"bob", "carol"}, domain.KindDirect)
	req.NoError(err)
	req.NoError(conversations.Touch(quiet.ID, now.Add(-time.Hour)))
	req.NoError(conversations.Touch(busy.ID, now))

	seen := domain.NewMessage(busy.ID, "carol", "old news", nil, []string{"bob"}, now.Add(-2*time.Minute))
	seen.MarkSeen("bob")
	req.NoError(messages.StoreMessage(seen))
	req.NoError(messages.StoreMessage(
		domain.NewMessage(busy.ID, "carol", "fresh", nil, []string{"bob"}, now.Add(-time.Minute))))

	summaries, err := service.GetUserConversations(ctx, "bob")
	req.NoError(err)
	req.Len(summaries, 2)

	// Most recently active first
	req.Equal(busy.ID, summaries[0].Conversation.ID)
	req.Equal("fresh", summaries[0].LastMessage.Text)
	req.Equal(1, summaries[0].UnreadCount)
	req.Equal([]string{"carol"}, summaries[0].OnlineParticipants)

	req.Equal(quiet.ID, summaries[1].Conversation.ID)
	req.Nil(summaries[1].LastMessage)
	req.Zero(summaries[1].UnreadCount)
	req.Empty(summaries[1].OnlineParticipants)
}
