package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chatgram/contract"
	"chatgram/domain"
	"chatgram/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type capturingSink struct {
	events []event.Event
	fail   bool
}

func (s *capturingSink) Consume(_ context.Context, e event.Event) error {
	if s.fail {
		return fmt.Errorf("connection closed")
	}
	s.events = append(s.events, e)
	return nil
}

type fakeIndex struct {
	roomSinks map[uuid.UUID][]contract.EventSink
	userSinks map[string][]contract.EventSink
	inRoom    map[string]uuid.UUID
}

func (f fakeIndex) SinksForRoom(conversationID uuid.UUID) []contract.EventSink {
	return f.roomSinks[conversationID]
}

func (f fakeIndex) SinksForUser(userID string) []contract.EventSink {
	return f.userSinks[userID]
}

func (f fakeIndex) AllSinks() []contract.EventSink {
	var sinks []contract.EventSink
	for _, userSinks := range f.userSinks {
		sinks = append(sinks, userSinks...)
	}
	return sinks
}

func (f fakeIndex) UserInRoom(conversationID uuid.UUID, userID string) bool {
	return f.inRoom[userID] == conversationID
}

type stubPresence map[string]bool

func (p stubPresence) IsOnline(userID string) bool { return p[userID] }

func (p stubPresence) OnlineUsers() []string {
	var users []string
	for userID, online := range p {
		if online {
			users = append(users, userID)
		}
	}
	return users
}

func groupConversation(participants ...string) domain.Conversation {
	return domain.Conversation{ID: uuid.New(), Participants: participants, Kind: domain.KindGroup}
}

func TestMessageSent_RoomGetsPayloadOthersGetNotification(t *testing.T) {
	req := require.New(t)
	conversation := groupConversation("alice", "bob", "carol", "dave")
	message := domain.NewMessage(conversation.ID, "alice", "hello", nil,
		[]string{"bob", "carol", "dave"}, time.Now().UTC())

	// Given: alice and bob are viewing the room, carol is online elsewhere,
	// dave is offline
	aliceSink, bobSink, carolSink := &capturingSink{}, &capturingSink{}, &capturingSink{}
	index := fakeIndex{
		roomSinks: map[uuid.UUID][]contract.EventSink{
			conversation.ID: {aliceSink, bobSink},
		},
		userSinks: map[string][]contract.EventSink{
			"alice": {aliceSink}, "bob": {bobSink}, "carol": {carolSink},
		},
		inRoom: map[string]uuid.UUID{"alice": conversation.ID, "bob": conversation.ID},
	}
	presence := stubPresence{"alice": true, "bob": true, "carol": true}
	dispatcher := NewDispatcher(slog.Default(), index, presence, nil)

	// When
	dispatcher.MessageSent(context.Background(), conversation, message)

	// Then room members get the full payload
	req.Len(aliceSink.events, 1)
	req.Len(bobSink.events, 1)
	newMessage, ok := bobSink.events[0].(event.NewMessage)
	req.True(ok)
	req.Equal("hello", newMessage.Message.Text)

	// And carol gets only a notification, with no message body
	req.Len(carolSink.events, 1)
	notification, ok := carolSink.events[0].(event.NewMessageNotification)
	req.True(ok)
	req.Equal(conversation.ID, notification.ConversationID)
}

func TestMessageSent_FailedPushDoesNotStopFanOut(t *testing.T) {
	req := require.New(t)
	conversation := groupConversation("alice", "bob")
	message := domain.NewMessage(conversation.ID, "alice", "hi", nil, []string{"bob"}, time.Now().UTC())

	broken, healthy := &capturingSink{fail: true}, &capturingSink{}
	index := fakeIndex{
		roomSinks: map[uuid.UUID][]contract.EventSink{
			conversation.ID: {broken, healthy},
		},
	}
	dispatcher := NewDispatcher(slog.Default(), index, stubPresence{}, nil)

	dispatcher.MessageSent(context.Background(), conversation, message)

	// The healthy sink still received the event
	req.Len(healthy.events, 1)
}

func TestPresenceEvents_GoToEveryConnection(t *testing.T) {
	req := require.New(t)
	aliceSink, bobSink := &capturingSink{}, &capturingSink{}
	index := fakeIndex{
		userSinks: map[string][]contract.EventSink{
			"alice": {aliceSink}, "bob": {bobSink},
		},
	}
	dispatcher := NewDispatcher(slog.Default(), index, stubPresence{}, nil)

	dispatcher.UserOnline(context.Background(), "carol")
	dispatcher.UserOffline(context.Background(), "carol")

	req.Len(aliceSink.events, 2)
	req.Len(bobSink.events, 2)
	req.Equal(event.UserOnlineType, aliceSink.events[0].Type())
	req.Equal(event.UserOfflineType, aliceSink.events[1].Type())
}

func TestNotifyUser_ReachesAllUserHandles(t *testing.T) {
	req := require.New(t)
	phone, laptop := &capturingSink{}, &capturingSink{}
	index := fakeIndex{
		userSinks: map[string][]contract.EventSink{"bob": {phone, laptop}},
	}
	dispatcher := NewDispatcher(slog.Default(), index, stubPresence{}, nil)

	dispatcher.NotifyUser(context.Background(), event.Notification{
		UserID: "bob", Kind: "like", SenderID: "alice", Body: "alice liked your post",
	})

	req.Len(phone.events, 1)
	req.Len(laptop.events, 1)
}

func TestTelemetry_NeverBlocksFanOut(t *testing.T) {
	req := require.New(t)
	conversation := groupConversation("alice", "bob")
	sink := &capturingSink{}
	index := fakeIndex{
		roomSinks: map[uuid.UUID][]contract.EventSink{conversation.ID: {sink}},
	}

	// Given a full telemetry channel nobody is draining
	telemetry := make(chan event.Event, 1)
	telemetry <- event.UserOnline{UserID: "someone"}
	dispatcher := NewDispatcher(slog.Default(), index, stubPresence{}, telemetry)

	// When: fan-out must complete anyway
	done := make(chan struct{})
	go func() {
		dispatcher.MessageSent(context.Background(), conversation,
			domain.NewMessage(conversation.ID, "alice", "hi", nil, []string{"bob"}, time.Now().UTC()))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("fan-out blocked on a full telemetry channel")
	}
	req.Len(sink.events, 1)
}
