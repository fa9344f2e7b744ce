//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chatgram/domain"
	"chatgram/domain/event"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one live connection.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IPresence is the read side of the presence registry, consulted by the
// delivery engine and the fan-out dispatcher.
type IPresence interface {
	IsOnline(userID string) bool
	OnlineUsers() []string
}

// ISubscriptionIndex is the read-only view of the gateway's room and
// per-user subscription index used by the dispatcher.
type ISubscriptionIndex interface {
	SinksForRoom(conversationID uuid.UUID) []EventSink
	SinksForUser(userID string) []EventSink
	AllSinks() []EventSink
	UserInRoom(conversationID uuid.UUID, userID string) bool
}

// IDispatcher decouples the delivery engine from fan-out. Implementations
// are best-effort: a failed push is logged and never rolls back state.
type IDispatcher interface {
	MessageSent(ctx context.Context, conv domain.Conversation, msg domain.Message)
	StatusUpdated(ctx context.Context, e event.MessageStatusUpdated)
	MessageEdited(ctx context.Context, msg domain.Message)
	MessageDeleted(ctx context.Context, e event.MessageDeleted)
	UserOnline(ctx context.Context, userID string)
	UserOffline(ctx context.Context, userID string)
	NotifyUser(ctx context.Context, e event.Notification)
}
