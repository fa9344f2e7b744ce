// Package sink provides in-process EventSink implementations used for local
// projections and testing. The gRPC transport has its own channel-backed sink.
package sink

import (
	"context"
	"sync"

	"chatgram/domain"
	"chatgram/domain/event"
)

// Timeline replays fan-out events into a local view of a conversation:
// messages in arrival order, with edits and deletes applied in place.
type Timeline struct {
	mu       sync.Mutex
	Owner    string
	messages []domain.Message
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner}
}

func (t *Timeline) Consume(_ context.Context, e event.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch evt := e.(type) {
	case event.NewMessage:
		t.messages = append(t.messages, evt.Message)
	case event.MessageUpdated:
		for i, message := range t.messages {
			if message.ID == evt.Message.ID {
				t.messages[i] = evt.Message
			}
		}
	case event.MessageDeleted:
		kept := t.messages[:0]
		for _, message := range t.messages {
			if message.ID != evt.MessageID {
				kept = append(kept, message)
			}
		}
		t.messages = kept
	}
	return nil
}

func (t *Timeline) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}
