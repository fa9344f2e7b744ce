package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"chatgram/auth"
	"chatgram/delivery"
	"chatgram/domain"
	"chatgram/domain/event"
	apperrors "chatgram/errors"
	"chatgram/gateway"
	pb "chatgram/proto/chat"
	"chatgram/services"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log                  *slog.Logger
	gateway              *gateway.Gateway
	engine               delivery.IEngine
	chat                 services.IChatService
	connectionBufferSize int
}

func NewChatServer(log *slog.Logger, gw *gateway.Gateway, engine delivery.IEngine,
	chat services.IChatService, connectionBufferSize int) *ChatServer {
	return &ChatServer{
		log:                  log,
		gateway:              gw,
		engine:               engine,
		chat:                 chat,
		connectionBufferSize: connectionBufferSize,
	}
}

// Connect establishes the long-lived bidirectional stream of one connection.
// The bearer token rides the stream metadata; a bad token closes the stream
// before any gateway state exists. One goroutine reads client events and
// drives the gateway state machine, while this goroutine drains the sink and
// pushes server events. Disconnect is idempotent, so the logout path and the
// deferred cleanup can both reach it safely.
func (s *ChatServer) Connect(stream pb.ChatService_ConnectServer) error {
	ctx := stream.Context()
	token, err := auth.BearerFromContext(ctx)
	if err != nil {
		return err
	}
	sink := NewGrpcSink(s.connectionBufferSize)
	conn, err := s.gateway.Connect(token, sink)
	if err != nil {
		return apperrors.MapToGRPCError(err)
	}
	defer s.gateway.Disconnect(context.WithoutCancel(ctx), conn)

	readerDone := make(chan error, 1)
	go func() {
		readerDone <- s.readClientEvents(ctx, stream, conn, sink)
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("client disconnected", "user_id", conn.UserID, "conn_id", conn.ID)
			return nil
		case err = <-readerDone:
			return err
		case evt := <-sink.Events:
			serverEvent, ok := toServerEvent(evt)
			if !ok {
				continue
			}
			if err = stream.Send(serverEvent); err != nil {
				s.log.Error("failed to push event to stream",
					"user_id", conn.UserID, "conn_id", conn.ID, "error", err)
				return err
			}
		}
	}
}

// readClientEvents drives the gateway state machine from inbound frames.
// Query responses go through the sink so this goroutine never writes to the
// stream; gRPC allows a single concurrent sender.
func (s *ChatServer) readClientEvents(ctx context.Context, stream pb.ChatService_ConnectServer,
	conn *gateway.Conn, sink *Sink) error {
	for {
		frame, err := stream.Recv()
		if err == io.EOF || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		switch e := frame.Event.(type) {
		case *pb.ClientEvent_Register:
			s.gateway.Register(ctx, conn)
		case *pb.ClientEvent_Logout:
			s.gateway.Logout(ctx, conn)
			return nil
		case *pb.ClientEvent_JoinConversation:
			conversationID, err := services.ParseID(e.JoinConversation.ConversationId)
			if err == nil {
				err = s.gateway.JoinConversation(ctx, conn, conversationID)
			}
			if err != nil {
				s.log.Warn("join conversation rejected",
					"user_id", conn.UserID, "error", err)
			}
		case *pb.ClientEvent_LeaveConversation:
			conversationID, err := services.ParseID(e.LeaveConversation.ConversationId)
			if err != nil {
				s.log.Warn("leave conversation rejected",
					"user_id", conn.UserID, "error", err)
				continue
			}
			s.gateway.LeaveConversation(conn, conversationID)
		case *pb.ClientEvent_GetOnlineUsers:
			snapshot := event.OnlineUsersSnapshot{UserIDs: s.gateway.OnlineUsers()}
			if err = sink.Consume(ctx, snapshot); err != nil {
				s.log.Warn("online users snapshot dropped",
					"user_id", conn.UserID, "error", err)
			}
		}
	}
}

func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	userID, conversationID, err := s.identify(ctx, req.ConversationId)
	if err != nil {
		return nil, err
	}
	message, err := s.engine.SendMessage(ctx, domain.SendMessageCommand{
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           req.Text,
	})
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: lo.ToPtr(toMessageEvent(message))}, nil
}

func (s *ChatServer) EditMessage(ctx context.Context, req *pb.EditMessageRequest) (*pb.MessageResponse, error) {
	userID, messageID, err := s.identify(ctx, req.MessageId)
	if err != nil {
		return nil, err
	}
	message, err := s.engine.EditMessage(ctx, domain.EditMessageCommand{
		MessageID: messageID,
		EditorID:  userID,
		Text:      req.Text,
	})
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: lo.ToPtr(toMessageEvent(message))}, nil
}

func (s *ChatServer) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*pb.DeleteMessageResponse, error) {
	userID, messageID, err := s.identify(ctx, req.MessageId)
	if err != nil {
		return nil, err
	}
	if err = s.engine.DeleteMessage(ctx, messageID, userID); err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.DeleteMessageResponse{Success: true}, nil
}

func (s *ChatServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	userID, conversationID, err := s.identify(ctx, req.ConversationId)
	if err != nil {
		return nil, err
	}
	messages, err := s.engine.GetMessages(ctx, domain.GetMessagesCommand{
		ConversationID: conversationID,
		RequesterID:    userID,
		Page:           int(req.Page),
		Limit:          int(req.Limit),
	})
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.GetMessagesResponse{
		Messages: lo.Map(messages, func(message domain.Message, _ int) *pb.MessageEvent {
			return lo.ToPtr(toMessageEvent(message))
		}),
	}, nil
}

func (s *ChatServer) UpdateMessageStatus(ctx context.Context, req *pb.UpdateMessageStatusRequest) (*pb.MessageResponse, error) {
	userID, messageID, err := s.identify(ctx, req.MessageId)
	if err != nil {
		return nil, err
	}
	message, err := s.engine.UpdateMessageStatus(ctx, messageID, userID, domain.MessageStatus(req.Status))
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: lo.ToPtr(toMessageEvent(message))}, nil
}

func (s *ChatServer) GetConversations(ctx context.Context, _ *pb.GetConversationsRequest) (*pb.GetConversationsResponse, error) {
	userID, err := s.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := s.chat.GetUserConversations(ctx, userID)
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.GetConversationsResponse{
		Conversations: lo.Map(summaries, func(summary services.ConversationSummary, _ int) *pb.ConversationSummary {
			return toConversationSummary(summary)
		}),
	}, nil
}

func (s *ChatServer) CreateConversation(ctx context.Context, req *pb.CreateConversationRequest) (*pb.ConversationResponse, error) {
	userID, err := s.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}
	conversation, err := s.chat.CreateConversation(ctx, domain.CreateConversationCommand{
		CreatorID:    userID,
		Participants: req.Participants,
		Kind:         domain.ConversationKind(req.Kind),
	})
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.ConversationResponse{Conversation: lo.ToPtr(toConversationPb(conversation))}, nil
}

func (s *ChatServer) GetOrCreateDirect(ctx context.Context, req *pb.GetOrCreateDirectRequest) (*pb.ConversationResponse, error) {
	userID, err := s.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}
	conversation, err := s.chat.GetOrCreateDirect(ctx, userID, req.PeerId)
	if err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.ConversationResponse{Conversation: lo.ToPtr(toConversationPb(conversation))}, nil
}

func (s *ChatServer) DeleteConversation(ctx context.Context, req *pb.DeleteConversationRequest) (*pb.DeleteConversationResponse, error) {
	userID, conversationID, err := s.identify(ctx, req.ConversationId)
	if err != nil {
		return nil, err
	}
	if err = s.engine.DeleteConversation(ctx, conversationID, userID); err != nil {
		return nil, apperrors.MapToGRPCError(err)
	}
	return &pb.DeleteConversationResponse{Success: true}, nil
}

func (s *ChatServer) authenticatedUser(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", apperrors.MapToGRPCError(apperrors.ErrAuthenticationFailed)
	}
	return userID, nil
}

func (s *ChatServer) identify(ctx context.Context, rawID string) (string, uuid.UUID, error) {
	userID, err := s.authenticatedUser(ctx)
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := services.ParseID(rawID)
	if err != nil {
		return "", uuid.Nil, apperrors.MapToGRPCError(err)
	}
	return userID, id, nil
}
