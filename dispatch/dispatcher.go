// Package dispatch routes domain events to live connections.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries: a recipient that misses a push recovers
// through reconnect catch-up, never through a dispatcher retry.
package dispatch

import (
	"context"
	"log/slog"

	"chatgram/contract"
	"chatgram/domain"
	"chatgram/domain/event"
)

type Dispatcher struct {
	log       *slog.Logger
	index     contract.ISubscriptionIndex
	presence  contract.IPresence
	telemetry chan<- event.Event
}

// NewDispatcher wires the dispatcher to the gateway's subscription index
// (read-only) and the presence registry. telemetry may be nil; when set,
// a copy of every dispatched event is offered to it without blocking.
func NewDispatcher(log *slog.Logger, index contract.ISubscriptionIndex,
	presence contract.IPresence, telemetry chan<- event.Event) *Dispatcher {
	return &Dispatcher{log: log, index: index, presence: presence, telemetry: telemetry}
}

// MessageSent pushes the full payload to every connection viewing the
// conversation, and a lightweight notification to each recipient who is
// online but has no connection in the room. Offline recipients get nothing;
// catch-up owns their backlog.
func (d *Dispatcher) MessageSent(ctx context.Context, conversation domain.Conversation, message domain.Message) {
	d.broadcast(ctx, d.index.SinksForRoom(conversation.ID), event.NewMessage{Message: message})

	for _, recipient := range conversation.Recipients(message.SenderID) {
		if !d.presence.IsOnline(recipient) || d.index.UserInRoom(conversation.ID, recipient) {
			continue
		}
		notification := event.NewMessageNotification{
			ConversationID: conversation.ID,
			UserID:         recipient,
		}
		d.broadcast(ctx, d.index.SinksForUser(recipient), notification)
	}
}

func (d *Dispatcher) StatusUpdated(ctx context.Context, e event.MessageStatusUpdated) {
	d.broadcast(ctx, d.index.SinksForRoom(e.ConversationID), e)
}

func (d *Dispatcher) MessageEdited(ctx context.Context, message domain.Message) {
	d.broadcast(ctx, d.index.SinksForRoom(message.ConversationID), event.MessageUpdated{Message: message})
}

func (d *Dispatcher) MessageDeleted(ctx context.Context, e event.MessageDeleted) {
	d.broadcast(ctx, d.index.SinksForRoom(e.ConversationID), e)
}

// UserOnline and UserOffline are broadcast to every connected client,
// not scoped to a conversation.
func (d *Dispatcher) UserOnline(ctx context.Context, userID string) {
	d.broadcast(ctx, d.index.AllSinks(), event.UserOnline{UserID: userID})
}

func (d *Dispatcher) UserOffline(ctx context.Context, userID string) {
	d.broadcast(ctx, d.index.AllSinks(), event.UserOffline{UserID: userID})
}

// NotifyUser is the hook the surrounding notification subsystem calls to
// reach all of a user's live handles, regardless of room membership.
func (d *Dispatcher) NotifyUser(ctx context.Context, e event.Notification) {
	d.broadcast(ctx, d.index.SinksForUser(e.UserID), e)
}

// broadcast pushes one event to each sink. A failed push (connection closed
// mid-emit) is logged and never propagated: the underlying state change
// already happened and must not be rolled back.
func (d *Dispatcher) broadcast(ctx context.Context, sinks []contract.EventSink, e event.Event) {
	for _, sink := range sinks {
		if err := sink.Consume(ctx, e); err != nil {
			d.log.Warn("failed to push event to connection",
				"event", string(e.Type()), "error", err)
		}
	}
	d.emitTelemetry(e)
}

func (d *Dispatcher) emitTelemetry(e event.Event) {
	if d.telemetry == nil {
		return
	}
	select {
	case d.telemetry <- e:
	default:
		d.log.Debug("telemetry event lost")
	}
}
