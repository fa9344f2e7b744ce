// Package gateway owns the connection lifecycle: authentication, presence
// registration, room membership, and teardown. It is the only writer of the
// presence registry and the subscription index.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"chatgram/auth"
	"chatgram/contract"
	"chatgram/errors"
	"chatgram/repositories"

	"github.com/google/uuid"
)

// DeliveryEngine is the slice of the delivery engine the gateway drives:
// reconnect catch-up and join-triggered view acknowledgement.
type DeliveryEngine interface {
	CatchUp(ctx context.Context, userID string) error
	AcknowledgeView(ctx context.Context, conversationID uuid.UUID, userID string) error
}

// PresenceRegistry is the write side of the presence registry, owned by the
// gateway. The read side is contract.IPresence. Implemented by
// presence.Registry.
type PresenceRegistry interface {
	Register(userID, connID string) bool
	Deregister(userID, connID string) bool
	OnlineUsers() []string
}

type Gateway struct {
	log           *slog.Logger
	presence      PresenceRegistry
	index         *SubscriptionIndex
	conversations repositories.IConversationRepository
	delivery      DeliveryEngine
	dispatcher    contract.IDispatcher
}

func NewGateway(log *slog.Logger, registry PresenceRegistry, index *SubscriptionIndex,
	conversations repositories.IConversationRepository, delivery DeliveryEngine,
	dispatcher contract.IDispatcher) *Gateway {
	return &Gateway{
		log:           log,
		presence:      registry,
		index:         index,
		conversations: conversations,
		delivery:      delivery,
		dispatcher:    dispatcher,
	}
}

// Connect authenticates a new connection. The token is validated before any
// state is touched; a bad token leaves no trace in the registry or index.
func (g *Gateway) Connect(token string, sink contract.EventSink) (*Conn, error) {
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrAuthenticationFailed, err)
	}
	conn := newConn(claims.UserID, sink)
	g.log.Info("connection authenticated", "user_id", conn.UserID, "conn_id", conn.ID)
	return conn, nil
}

// Register marks the connection as a live presence handle. Repeat calls on
// the same connection are no-ops. When this is the user's first live handle,
// a global userOnline event fires and pending messages are caught up.
func (g *Gateway) Register(ctx context.Context, conn *Conn) {
	if !conn.markRegistered() {
		return
	}
	g.index.Bind(conn.UserID, conn.ID, conn.sink)
	if !g.presence.Register(conn.UserID, conn.ID) {
		return
	}
	g.log.Info("user online", "user_id", conn.UserID)
	g.dispatcher.UserOnline(ctx, conn.UserID)
	if err := g.delivery.CatchUp(ctx, conn.UserID); err != nil {
		g.log.Error("reconnect catch-up failed", "user_id", conn.UserID, "error", err)
	}
}

// JoinConversation subscribes the connection to a conversation room and
// acknowledges every unseen message in it as seen by this user.
func (g *Gateway) JoinConversation(ctx context.Context, conn *Conn, conversationID uuid.UUID) error {
	if !conn.isRegistered() {
		return fmt.Errorf("%w: connection is not registered", errors.ErrForbidden)
	}
	conversation, err := g.conversations.GetConversation(conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(conn.UserID) {
		return errors.ErrNotAParticipant
	}
	conn.addRoom(conversationID)
	g.index.JoinRoom(conversationID, conn.ID, conn.UserID, conn.sink)
	return g.delivery.AcknowledgeView(ctx, conversationID, conn.UserID)
}

// LeaveConversation unsubscribes the connection from a room. Leaving a room
// the connection never joined is a no-op.
func (g *Gateway) LeaveConversation(conn *Conn, conversationID uuid.UUID) {
	conn.removeRoom(conversationID)
	g.index.LeaveRoom(conversationID, conn.ID)
}

// Logout is an explicit client-driven disconnect.
func (g *Gateway) Logout(ctx context.Context, conn *Conn) {
	g.Disconnect(ctx, conn)
}

// Disconnect tears the connection down exactly once, no matter how many
// paths race into it (explicit logout, stream error, server shutdown).
// Rooms are left first, then the presence handle is released; a global
// userOffline event fires only when this was the user's last handle.
func (g *Gateway) Disconnect(ctx context.Context, conn *Conn) {
	conn.closeOnce.Do(func() {
		rooms, wasRegistered := conn.close()
		for _, room := range rooms {
			g.index.LeaveRoom(room, conn.ID)
		}
		if !wasRegistered {
			return
		}
		g.index.Unbind(conn.UserID, conn.ID)
		if g.presence.Deregister(conn.UserID, conn.ID) {
			g.log.Info("user offline", "user_id", conn.UserID)
			g.dispatcher.UserOffline(ctx, conn.UserID)
		}
	})
}

// OnlineUsers snapshots the set of currently online user identifiers.
func (g *Gateway) OnlineUsers() []string {
	return g.presence.OnlineUsers()
}
