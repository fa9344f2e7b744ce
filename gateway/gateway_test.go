package gateway

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chatgram/auth"
	"chatgram/domain"
	"chatgram/domain/event"
	"chatgram/errors"
	"chatgram/presence"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nullSink struct{}

func (nullSink) Consume(_ context.Context, _ event.Event) error { return nil }

type stubConversations struct {
	conversations map[uuid.UUID]domain.Conversation
}

func (s stubConversations) CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error) {
	conversation := domain.Conversation{ID: uuid.New(), Participants: participants, Kind: kind}
	s.conversations[conversation.ID] = conversation
	return conversation, nil
}

func (s stubConversations) GetOrCreateDirect(userA, userB string) (domain.Conversation, error) {
	return s.CreateConversation([]string{userA, userB}, domain.KindDirect)
}

func (s stubConversations) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	conversation, ok := s.conversations[id]
	if !ok {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, nil
}

func (s stubConversations) ListByParticipant(_ string) ([]domain.Conversation, error) {
	return nil, nil
}

func (s stubConversations) DeleteConversation(id uuid.UUID) error {
	delete(s.conversations, id)
	return nil
}

func (s stubConversations) Touch(_ uuid.UUID, _ time.Time) error { return nil }

type recordingDelivery struct {
	mu       sync.Mutex
	catchUps []string
	views    []uuid.UUID
}

func (r *recordingDelivery) CatchUp(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catchUps = append(r.catchUps, userID)
	return nil
}

func (r *recordingDelivery) AcknowledgeView(_ context.Context, conversationID uuid.UUID, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, conversationID)
	return nil
}

type recordingEvents struct {
	mu      sync.Mutex
	online  []string
	offline []string
}

func (r *recordingEvents) MessageSent(_ context.Context, _ domain.Conversation, _ domain.Message) {}
func (r *recordingEvents) StatusUpdated(_ context.Context, _ event.MessageStatusUpdated)          {}
func (r *recordingEvents) MessageEdited(_ context.Context, _ domain.Message)                      {}
func (r *recordingEvents) MessageDeleted(_ context.Context, _ event.MessageDeleted)               {}
func (r *recordingEvents) NotifyUser(_ context.Context, _ event.Notification)                     {}

func (r *recordingEvents) UserOnline(_ context.Context, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online = append(r.online, userID)
}

func (r *recordingEvents) UserOffline(_ context.Context, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offline = append(r.offline, userID)
}

type gatewayFixture struct {
	gateway       *Gateway
	conversations stubConversations
	delivery      *recordingDelivery
	events        *recordingEvents
}

func newFixture() gatewayFixture {
	conversations := stubConversations{conversations: make(map[uuid.UUID]domain.Conversation)}
	delivery := &recordingDelivery{}
	events := &recordingEvents{}
	g := NewGateway(slog.Default(), presence.NewRegistry(), NewSubscriptionIndex(),
		conversations, delivery, events)
	return gatewayFixture{gateway: g, conversations: conversations, delivery: delivery, events: events}
}

func (f gatewayFixture) connect(t *testing.T, userID string) *Conn {
	token, err := auth.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	conn, err := f.gateway.Connect(token, nullSink{})
	require.NoError(t, err)
	return conn
}

func TestConnect_RejectsBadToken(t *testing.T) {
	req := require.New(t)
	f := newFixture()

	_, err := f.gateway.Connect("not-a-token", nullSink{})
	req.ErrorIs(err, errors.ErrAuthenticationFailed)

	// No presence state was created
	req.Empty(f.gateway.OnlineUsers())
}

func TestRegister_FirstHandleFiresOnlineAndCatchUp(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	ctx := context.Background()

	conn := f.connect(t, "alice")
	f.gateway.Register(ctx, conn)

	req.Equal([]string{"alice"}, f.events.online)
	req.Equal([]string{"alice"}, f.delivery.catchUps)
	req.Equal([]string{"alice"}, f.gateway.OnlineUsers())

	// Registering the same connection again is a no-op
	f.gateway.Register(ctx, conn)
	req.Len(f.events.online, 1)
	req.Len(f.delivery.catchUps, 1)

	// A second connection of the same user fires nothing
	second := f.connect(t, "alice")
	f.gateway.Register(ctx, second)
	req.Len(f.events.online, 1)
	req.Len(f.delivery.catchUps, 1)
}

func TestJoinConversation_ParticipantGate(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	ctx := context.Background()

	conversation, err := f.conversations.CreateConversation([]string{"alice", "bob"}, domain.KindDirect)
	req.NoError(err)

	conn := f.connect(t, "alice")

	// Joining before registering is refused
	req.ErrorIs(f.gateway.JoinConversation(ctx, conn, conversation.ID), errors.ErrForbidden)

	f.gateway.Register(ctx, conn)
	req.NoError(f.gateway.JoinConversation(ctx, conn, conversation.ID))
	req.Equal([]uuid.UUID{conversation.ID}, f.delivery.views)

	// An outsider is rejected even when registered
	mallory := f.connect(t, "mallory")
	f.gateway.Register(ctx, mallory)
	req.ErrorIs(f.gateway.JoinConversation(ctx, mallory, conversation.ID), errors.ErrNotAParticipant)

	// Unknown conversations surface as not found
	req.ErrorIs(f.gateway.JoinConversation(ctx, conn, uuid.New()), errors.ErrConversationNotFound)
}

func TestDisconnect_LastHandleFiresOfflineOnce(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	ctx := context.Background()

	first := f.connect(t, "alice")
	second := f.connect(t, "alice")
	f.gateway.Register(ctx, first)
	f.gateway.Register(ctx, second)

	// Dropping one of two handles keeps alice online
	f.gateway.Disconnect(ctx, first)
	req.Empty(f.events.offline)
	req.Equal([]string{"alice"}, f.gateway.OnlineUsers())

	// Dropping the last handle fires offline exactly once, even when the
	// logout path and the stream teardown race into Disconnect
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.gateway.Disconnect(ctx, second)
		}()
	}
	wg.Wait()

	req.Equal([]string{"alice"}, f.events.offline)
	req.Empty(f.gateway.OnlineUsers())
}

func TestDisconnect_LeavesJoinedRooms(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	ctx := context.Background()

	conversation, err := f.conversations.CreateConversation([]string{"alice", "bob"}, domain.KindDirect)
	req.NoError(err)

	conn := f.connect(t, "alice")
	f.gateway.Register(ctx, conn)
	req.NoError(f.gateway.JoinConversation(ctx, conn, conversation.ID))

	index := f.gateway.index
	req.True(index.UserInRoom(conversation.ID, "alice"))

	f.gateway.Logout(ctx, conn)

	req.False(index.UserInRoom(conversation.ID, "alice"))
	req.Empty(index.SinksForRoom(conversation.ID))
	req.Empty(index.SinksForUser("alice"))
}

func TestUnregisteredDisconnect_IsSilent(t *testing.T) {
	req := require.New(t)
	f := newFixture()

	// A connection that authenticated but never registered tears down
	// without any presence event
	conn := f.connect(t, "alice")
	f.gateway.Disconnect(context.Background(), conn)
	req.Empty(f.events.offline)
}
