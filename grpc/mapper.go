package grpc

import (
	"chatgram/domain"
	"chatgram/domain/event"
	pb "chatgram/proto/chat"
	"chatgram/services"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toServerEvent maps a dispatched domain event onto the wire envelope.
// Returns false for event kinds this transport does not surface.
func toServerEvent(e event.Event) (*pb.ServerEvent, bool) {
	switch evt := e.(type) {
	case event.NewMessage:
		return &pb.ServerEvent{Event: &pb.ServerEvent_NewMessage{
			NewMessage: lo.ToPtr(toMessageEvent(evt.Message)),
		}}, true
	case event.MessageStatusUpdated:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageStatusUpdated{
			MessageStatusUpdated: &pb.MessageStatusUpdated{
				MessageId:      evt.MessageID.String(),
				ConversationId: evt.ConversationID.String(),
				Status:         string(evt.Status),
				UserId:         evt.UserID,
			},
		}}, true
	case event.MessageUpdated:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageUpdated{
			MessageUpdated: lo.ToPtr(toMessageEvent(evt.Message)),
		}}, true
	case event.MessageDeleted:
		return &pb.ServerEvent{Event: &pb.ServerEvent_MessageDeleted{
			MessageDeleted: &pb.MessageDeleted{
				MessageId:      evt.MessageID.String(),
				ConversationId: evt.ConversationID.String(),
				SenderId:       evt.SenderID,
			},
		}}, true
	case event.UserOnline:
		return &pb.ServerEvent{Event: &pb.ServerEvent_UserOnline{
			UserOnline: &pb.UserOnline{UserId: evt.UserID},
		}}, true
	case event.UserOffline:
		return &pb.ServerEvent{Event: &pb.ServerEvent_UserOffline{
			UserOffline: &pb.UserOffline{UserId: evt.UserID},
		}}, true
	case event.NewMessageNotification:
		return &pb.ServerEvent{Event: &pb.ServerEvent_NewMessageNotification{
			NewMessageNotification: &pb.NewMessageNotification{
				ConversationId: evt.ConversationID.String(),
			},
		}}, true
	case event.Notification:
		return &pb.ServerEvent{Event: &pb.ServerEvent_Notification{
			Notification: &pb.Notification{
				Kind:     evt.Kind,
				SenderId: evt.SenderID,
				Body:     evt.Body,
			},
		}}, true
	case event.OnlineUsersSnapshot:
		return &pb.ServerEvent{Event: &pb.ServerEvent_OnlineUsers{
			OnlineUsers: &pb.OnlineUsers{UserIds: evt.UserIDs},
		}}, true
	default:
		return nil, false
	}
}

func toMessageEvent(message domain.Message) pb.MessageEvent {
	var editedAt *timestamppb.Timestamp
	if message.EditedAt != nil {
		editedAt = timestamppb.New(*message.EditedAt)
	}
	return pb.MessageEvent{
		MessageId:      message.ID.String(),
		ConversationId: message.ConversationID.String(),
		SenderId:       message.SenderID,
		Text:           message.Text,
		Status:         string(message.Status),
		DeliveredTo:    message.DeliveredTo,
		SeenBy:         message.SeenBy,
		CreatedAt:      timestamppb.New(message.CreatedAt),
		EditedAt:       editedAt,
	}
}

func toConversationPb(conversation domain.Conversation) pb.Conversation {
	return pb.Conversation{
		Id:           conversation.ID.String(),
		Participants: conversation.Participants,
		Kind:         string(conversation.Kind),
		CreatedAt:    timestamppb.New(conversation.CreatedAt),
		UpdatedAt:    timestamppb.New(conversation.UpdatedAt),
	}
}

func toConversationSummary(summary services.ConversationSummary) *pb.ConversationSummary {
	result := pb.ConversationSummary{
		ConversationId:     summary.Conversation.ID.String(),
		Participants:       summary.Conversation.Participants,
		Kind:               string(summary.Conversation.Kind),
		UnreadCount:        int32(summary.UnreadCount),
		OnlineParticipants: summary.OnlineParticipants,
	}
	if summary.LastMessage != nil {
		result.LastMessage = lo.ToPtr(toMessageEvent(*summary.LastMessage))
	}
	return &result
}
