package delivery

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chatgram/domain"
	"chatgram/domain/event"
	"chatgram/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. The real repositories are covered by their own badger
// backed tests; here we only need deterministic storage.

type fakeMessages struct {
	byID  map[uuid.UUID]domain.Message
	order []uuid.UUID
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{byID: make(map[uuid.UUID]domain.Message)}
}

func (f *fakeMessages) StoreMessage(message domain.Message) error {
	f.byID[message.ID] = message
	f.order = append(f.order, message.ID)
	return nil
}

func (f *fakeMessages) GetMessage(id uuid.UUID) (domain.Message, error) {
	message, ok := f.byID[id]
	if !ok {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	return message, nil
}

func (f *fakeMessages) UpdateMessage(id uuid.UUID, mutate func(*domain.Message) bool) (domain.Message, bool, error) {
	message, ok := f.byID[id]
	if !ok {
		return domain.Message{}, false, errors.ErrMessageNotFound
	}
	changed := mutate(&message)
	if changed {
		f.byID[id] = message
	}
	return message, changed, nil
}

func (f *fakeMessages) ListMessages(conversationID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	for _, id := range f.order {
		if message, ok := f.byID[id]; ok && message.ConversationID == conversationID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func (f *fakeMessages) GetMessages(conversationID uuid.UUID, page, limit int) ([]domain.Message, error) {
	messages, _ := f.ListMessages(conversationID)
	start := len(messages) - page*limit
	end := start + limit
	if end <= 0 {
		return nil, nil
	}
	if start < 0 {
		start = 0
	}
	return messages[start:end], nil
}

func (f *fakeMessages) DeleteMessage(id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errors.ErrMessageNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeMessages) DeleteConversationMessages(conversationID uuid.UUID) error {
	for id, message := range f.byID {
		if message.ConversationID == conversationID {
			delete(f.byID, id)
		}
	}
	return nil
}

func (f *fakeMessages) CountUnread(conversationID uuid.UUID, userID string) (int, error) {
	messages, _ := f.ListMessages(conversationID)
	unread := lo.Filter(messages, func(message domain.Message, _ int) bool {
		return message.SenderID != userID && !lo.Contains(message.SeenBy, userID)
	})
	return len(unread), nil
}

func (f *fakeMessages) LastMessage(conversationID uuid.UUID) (domain.Message, bool, error) {
	messages, _ := f.ListMessages(conversationID)
	if len(messages) == 0 {
		return domain.Message{}, false, nil
	}
	return messages[len(messages)-1], true, nil
}

type fakeConversations struct {
	byID map[uuid.UUID]domain.Conversation
}

func newFakeConversations(conversations ...domain.Conversation) *fakeConversations {
	f := &fakeConversations{byID: make(map[uuid.UUID]domain.Conversation)}
	for _, conversation := range conversations {
		f.byID[conversation.ID] = conversation
	}
	return f
}

func (f *fakeConversations) CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error) {
	conversation := domain.Conversation{ID: uuid.New(), Participants: participants, Kind: kind}
	f.byID[conversation.ID] = conversation
	return conversation, nil
}

func (f *fakeConversations) GetOrCreateDirect(userA, userB string) (domain.Conversation, error) {
	for _, conversation := range f.byID {
		if conversation.Kind == domain.KindDirect &&
			conversation.HasParticipant(userA) && conversation.HasParticipant(userB) {
			return conversation, nil
		}
	}
	return f.CreateConversation([]string{userA, userB}, domain.KindDirect)
}

func (f *fakeConversations) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	conversation, ok := f.byID[id]
	if !ok {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, nil
}

func (f *fakeConversations) ListByParticipant(userID string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	for _, conversation := range f.byID {
		if conversation.HasParticipant(userID) {
			conversations = append(conversations, conversation)
		}
	}
	return conversations, nil
}

func (f *fakeConversations) DeleteConversation(id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errors.ErrConversationNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeConversations) Touch(id uuid.UUID, at time.Time) error {
	conversation, ok := f.byID[id]
	if !ok {
		return errors.ErrConversationNotFound
	}
	conversation.UpdatedAt = at
	f.byID[id] = conversation
	return nil
}

type fakePresence struct {
	online map[string]bool
}

func (f fakePresence) IsOnline(userID string) bool { return f.online[userID] }

func (f fakePresence) OnlineUsers() []string {
	return lo.Keys(lo.PickByValues(f.online, []bool{true}))
}

// recordingDispatcher captures fan-out calls instead of pushing to sinks.
type recordingDispatcher struct {
	sent    []event.NewMessage
	status  []event.MessageStatusUpdated
	edited  []domain.Message
	deleted []event.MessageDeleted
}

func (d *recordingDispatcher) MessageSent(_ context.Context, _ domain.Conversation, msg domain.Message) {
	d.sent = append(d.sent, event.NewMessage{Message: msg})
}

func (d *recordingDispatcher) StatusUpdated(_ context.Context, e event.MessageStatusUpdated) {
	d.status = append(d.status, e)
}

func (d *recordingDispatcher) MessageEdited(_ context.Context, msg domain.Message) {
	d.edited = append(d.edited, msg)
}

func (d *recordingDispatcher) MessageDeleted(_ context.Context, e event.MessageDeleted) {
	d.deleted = append(d.deleted, e)
}

func (d *recordingDispatcher) UserOnline(_ context.Context, _ string)          {}
func (d *recordingDispatcher) UserOffline(_ context.Context, _ string)         {}
func (d *recordingDispatcher) NotifyUser(_ context.Context, _ event.Notification) {}

func newTestEngine(conversations *fakeConversations, online ...string) (*Engine, *fakeMessages, *recordingDispatcher) {
	messages := newFakeMessages()
	dispatcher := &recordingDispatcher{}
	presence := fakePresence{online: make(map[string]bool)}
	for _, userID := range online {
		presence.online[userID] = true
	}
	engine := NewEngine(slog.Default(), presence, conversations, messages, dispatcher)
	return engine, messages, dispatcher
}

func direct(userA, userB string) domain.Conversation {
	return domain.Conversation{
		ID:           uuid.New(),
		Participants: []string{userA, userB},
		Kind:         domain.KindDirect,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestSendMessage_OfflineRecipientStaysSent(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, messages, dispatcher := newTestEngine(newFakeConversations(conversation), "alice")

	// When alice sends while bob is offline
	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)

	// Then the message is persisted as sent and fanned out once
	req.Equal(domain.StatusSent, message.Status)
	stored, err := messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(domain.StatusSent, stored.Status)
	req.Len(dispatcher.sent, 1)
}

func TestSendMessage_OnlineRecipientIsDelivered(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, _ := newTestEngine(newFakeConversations(conversation), "alice", "bob")

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)
	req.Equal(domain.StatusDelivered, message.Status)
	req.Equal([]string{"bob"}, message.DeliveredTo)
}

func TestSendMessage_RejectsOutsiderAndEmptyText(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, _ := newTestEngine(newFakeConversations(conversation))

	// Given a sender outside the participant set
	_, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "mallory", Text: "hi",
	})
	req.ErrorIs(err, errors.ErrNotAParticipant)

	// Given an empty text
	_, err = engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "",
	})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	// Given an unknown conversation
	_, err = engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: uuid.New(), SenderID: "alice", Text: "hi",
	})
	req.ErrorIs(err, errors.ErrConversationNotFound)
}

// The reconnect scenario: a message sent while the recipient is offline is
// acknowledged as delivered on reconnect, then seen when the recipient opens
// the conversation.
func TestCatchUpThenView_AdvancesLifecycle(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, messages, dispatcher := newTestEngine(newFakeConversations(conversation), "alice")

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)
	req.Equal(domain.StatusSent, message.Status)

	// When bob reconnects
	req.NoError(engine.CatchUp(context.Background(), "bob"))

	stored, err := messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, stored.Status)
	req.Len(dispatcher.status, 1)
	req.Equal(domain.StatusDelivered, dispatcher.status[0].Status)
	req.Equal("bob", dispatcher.status[0].UserID)

	// When bob opens the conversation
	req.NoError(engine.AcknowledgeView(context.Background(), conversation.ID, "bob"))

	stored, err = messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(domain.StatusSeen, stored.Status)
	req.Len(dispatcher.status, 2)
	req.Equal(domain.StatusSeen, dispatcher.status[1].Status)

	// And replaying both acknowledgements changes nothing
	req.NoError(engine.CatchUp(context.Background(), "bob"))
	req.NoError(engine.AcknowledgeView(context.Background(), conversation.ID, "bob"))
	req.Len(dispatcher.status, 2)
}

func TestCatchUp_SkipsOwnAndDeliveredMessages(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, dispatcher := newTestEngine(newFakeConversations(conversation), "alice", "bob")

	// Given a message already delivered at send time
	_, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)

	// When either side reconnects
	req.NoError(engine.CatchUp(context.Background(), "bob"))
	req.NoError(engine.CatchUp(context.Background(), "alice"))

	// Then no acknowledgement is produced
	req.Empty(dispatcher.status)
}

func TestGroupDelivery_PartialStaysSent(t *testing.T) {
	req := require.New(t)
	conversation := domain.Conversation{
		ID:           uuid.New(),
		Participants: []string{"alice", "bob", "carol"},
		Kind:         domain.KindGroup,
	}
	engine, messages, _ := newTestEngine(newFakeConversations(conversation), "alice", "bob")

	// Given carol is offline, the aggregate stays sent with bob acknowledged
	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello group",
	})
	req.NoError(err)
	req.Equal(domain.StatusSent, message.Status)
	req.Equal([]string{"bob"}, message.DeliveredTo)

	// When carol reconnects, the set completes and the aggregate moves
	req.NoError(engine.CatchUp(context.Background(), "carol"))
	stored, err := messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, stored.Status)
	req.ElementsMatch([]string{"bob", "carol"}, stored.DeliveredTo)
}

func TestAcknowledgeView_SeenWithoutDelivery(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, messages, _ := newTestEngine(newFakeConversations(conversation))

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)

	// When bob views before any delivery acknowledgement
	req.NoError(engine.AcknowledgeView(context.Background(), conversation.ID, "bob"))

	// Then seen wins and DeliveredTo is not back-filled
	stored, err := messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(domain.StatusSeen, stored.Status)
	req.Empty(stored.DeliveredTo)
}

func TestAcknowledgeView_RejectsOutsider(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, _ := newTestEngine(newFakeConversations(conversation))

	err := engine.AcknowledgeView(context.Background(), conversation.ID, "mallory")
	req.ErrorIs(err, errors.ErrNotAParticipant)
}

func TestUpdateMessageStatus_Rules(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, _ := newTestEngine(newFakeConversations(conversation))

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)

	// Only delivered and seen are acceptable targets
	_, err = engine.UpdateMessageStatus(context.Background(), message.ID, "bob", domain.StatusSent)
	req.ErrorIs(err, errors.ErrInvalidStatus)

	// The sender cannot acknowledge their own message
	_, err = engine.UpdateMessageStatus(context.Background(), message.ID, "alice", domain.StatusSeen)
	req.ErrorIs(err, errors.ErrForbidden)

	// Outsiders are rejected
	_, err = engine.UpdateMessageStatus(context.Background(), message.ID, "mallory", domain.StatusSeen)
	req.ErrorIs(err, errors.ErrNotAParticipant)

	// A recipient acknowledgement lands
	updated, err := engine.UpdateMessageStatus(context.Background(), message.ID, "bob", domain.StatusDelivered)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, updated.Status)
}

func TestEditMessage_ResetsTrackingAndNotifies(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, messages, dispatcher := newTestEngine(newFakeConversations(conversation))

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "helo",
	})
	req.NoError(err)
	req.NoError(engine.AcknowledgeView(context.Background(), conversation.ID, "bob"))
	statusEvents := len(dispatcher.status)

	// When alice fixes the typo while bob is offline
	updated, err := engine.EditMessage(context.Background(), domain.EditMessageCommand{
		MessageID: message.ID, EditorID: "alice", Text: "hello",
	})
	req.NoError(err)

	// Then tracking restarted and both event kinds were emitted
	req.Equal("hello", updated.Text)
	req.Equal(domain.StatusSent, updated.Status)
	req.Empty(updated.SeenBy)
	req.NotNil(updated.EditedAt)
	req.Len(dispatcher.edited, 1)
	req.Len(dispatcher.status, statusEvents+1)

	stored, err := messages.GetMessage(message.ID)
	req.NoError(err)
	req.Equal("hello", stored.Text)

	// And only the sender may edit
	_, err = engine.EditMessage(context.Background(), domain.EditMessageCommand{
		MessageID: message.ID, EditorID: "bob", Text: "hijack",
	})
	req.ErrorIs(err, errors.ErrForbidden)
}

func TestDeleteMessage_SenderOnly(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, messages, dispatcher := newTestEngine(newFakeConversations(conversation))

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "oops",
	})
	req.NoError(err)

	req.ErrorIs(engine.DeleteMessage(context.Background(), message.ID, "bob"), errors.ErrForbidden)

	req.NoError(engine.DeleteMessage(context.Background(), message.ID, "alice"))
	_, err = messages.GetMessage(message.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.Len(dispatcher.deleted, 1)

	// Deleting twice reports not found
	req.ErrorIs(engine.DeleteMessage(context.Background(), message.ID, "alice"), errors.ErrMessageNotFound)
}

func TestDeleteConversation_CascadesMessages(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	conversations := newFakeConversations(conversation)
	engine, messages, _ := newTestEngine(conversations)

	message, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: conversation.ID, SenderID: "alice", Text: "hello",
	})
	req.NoError(err)

	req.ErrorIs(engine.DeleteConversation(context.Background(), conversation.ID, "mallory"), errors.ErrNotAParticipant)

	req.NoError(engine.DeleteConversation(context.Background(), conversation.ID, "alice"))
	_, err = conversations.GetConversation(conversation.ID)
	req.ErrorIs(err, errors.ErrConversationNotFound)
	_, err = messages.GetMessage(message.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestGetMessages_ParticipantGatedPagination(t *testing.T) {
	req := require.New(t)
	conversation := direct("alice", "bob")
	engine, _, _ := newTestEngine(newFakeConversations(conversation))

	for _, text := range []string{"one", "two", "three"} {
		_, err := engine.SendMessage(context.Background(), domain.SendMessageCommand{
			ConversationID: conversation.ID, SenderID: "alice", Text: text,
		})
		req.NoError(err)
	}

	// Page 1 holds the most recent messages in chronological order
	page, err := engine.GetMessages(context.Background(), domain.GetMessagesCommand{
		ConversationID: conversation.ID, RequesterID: "bob", Page: 1, Limit: 2,
	})
	req.NoError(err)
	req.Len(page, 2)
	req.Equal("two", page[0].Text)
	req.Equal("three", page[1].Text)

	_, err = engine.GetMessages(context.Background(), domain.GetMessagesCommand{
		ConversationID: conversation.ID, RequesterID: "mallory", Page: 1, Limit: 2,
	})
	req.ErrorIs(err, errors.ErrNotAParticipant)

	_, err = engine.GetMessages(context.Background(), domain.GetMessagesCommand{
		ConversationID: conversation.ID, RequesterID: "bob", Page: 0, Limit: 2,
	})
	req.ErrorIs(err, errors.ErrInvalidMessage)
}
