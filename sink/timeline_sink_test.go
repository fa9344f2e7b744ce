package sink

import (
	"context"
	"testing"
	"time"

	"chatgram/domain"
	"chatgram/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTimeline_AppliesEditsAndDeletes(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("bob")
	ctx := context.Background()
	conversationID := uuid.New()

	first := domain.NewMessage(conversationID, "alice", "hello", nil, []string{"bob"}, time.Now().UTC())
	second := domain.NewMessage(conversationID, "alice", "wrld", nil, []string{"bob"}, time.Now().UTC())

	req.NoError(timeline.Consume(ctx, event.NewMessage{Message: first}))
	req.NoError(timeline.Consume(ctx, event.NewMessage{Message: second}))
	req.Len(timeline.Messages(), 2)

	// An edit replaces the entry in place
	second.Text = "world"
	req.NoError(timeline.Consume(ctx, event.MessageUpdated{Message: second}))
	messages := timeline.Messages()
	req.Equal("hello", messages[0].Text)
	req.Equal("world", messages[1].Text)

	// A delete removes it
	req.NoError(timeline.Consume(ctx, event.MessageDeleted{
		MessageID: first.ID, ConversationID: conversationID, SenderID: "alice",
	}))
	messages = timeline.Messages()
	req.Len(messages, 1)
	req.Equal("world", messages[0].Text)

	// Unrelated events are ignored
	req.NoError(timeline.Consume(ctx, event.UserOnline{UserID: "carol"}))
	req.Len(timeline.Messages(), 1)
}
