package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb "chatgram/proto/chat"
)

type testMessageLifecycleSuite struct {
	BaseGrpcSuite
}

func TestMessageLifecycleSuite(t *testing.T) {
	suite.Run(t, &testMessageLifecycleSuite{})
}

// Full lifecycle against a running server: alice messages an offline bob,
// bob reconnects and the message moves sent -> delivered -> seen.
func (s *testMessageLifecycleSuite) TestDirectConversationFlow() {
	alice := "alice-" + uuid.NewString()[:8]
	bob := "bob-" + uuid.NewString()[:8]
	var conversationID string
	var messageID string

	s.Run("Step 0: Alice creates the direct conversation", func() {
		s.WithUser("Create direct conversation", alice, func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.GetOrCreateDirect(ctx, &pb.GetOrCreateDirectRequest{PeerId: bob})
			s.Require().NoError(err)
			s.Require().NotNil(resp.Conversation)
			conversationID = resp.Conversation.Id

			// Second call returns the same conversation
			again, err := client.GetOrCreateDirect(ctx, &pb.GetOrCreateDirectRequest{PeerId: bob})
			s.Require().NoError(err)
			s.Require().Equal(conversationID, again.Conversation.Id)
		})
	})

	s.Run("Step 1: Alice sends while Bob is offline", func() {
		s.WithUser("Send first message", alice, func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.SendMessage(ctx, &pb.SendMessageRequest{
				ConversationId: conversationID,
				Text:           "hello bob",
			})
			s.Require().NoError(err)
			s.Require().Equal("sent", resp.Message.Status)
			messageID = resp.Message.MessageId
		})
	})

	s.Run("Step 2: Bob connects and the message is delivered", func() {
		conn := s.GrpcConn(s.T(), "Bob connects", s.Config.ServerAddr)
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ctx = s.AuthContext(ctx, bob)

		client := pb.NewChatServiceClient(conn)
		stream, err := client.Connect(ctx)
		s.Require().NoError(err)

		err = stream.Send(&pb.ClientEvent{Event: &pb.ClientEvent_Register{Register: &pb.Register{}}})
		s.Require().NoError(err)

		// Reconnect catch-up acknowledges delivery without Bob opening the
		// conversation; give the server a beat, then check over unary.
		s.Require().Eventually(func() bool {
			resp, err := client.GetMessages(ctx, &pb.GetMessagesRequest{
				ConversationId: conversationID, Page: 1, Limit: 10,
			})
			if err != nil || len(resp.Messages) == 0 {
				return false
			}
			return resp.Messages[0].Status == "delivered"
		}, 10*time.Second, 200*time.Millisecond)

		// Joining the room marks everything seen.
		err = stream.Send(&pb.ClientEvent{Event: &pb.ClientEvent_JoinConversation{
			JoinConversation: &pb.JoinConversation{ConversationId: conversationID},
		}})
		s.Require().NoError(err)

		s.Require().Eventually(func() bool {
			resp, err := client.GetMessages(ctx, &pb.GetMessagesRequest{
				ConversationId: conversationID, Page: 1, Limit: 10,
			})
			if err != nil || len(resp.Messages) == 0 {
				return false
			}
			return resp.Messages[0].Status == "seen"
		}, 10*time.Second, 200*time.Millisecond)

		err = stream.Send(&pb.ClientEvent{Event: &pb.ClientEvent_Logout{Logout: &pb.Logout{}}})
		s.Require().NoError(err)
	})

	s.Run("Step 3: Bob's inbox shows the conversation as read", func() {
		s.WithUser("Bob inbox", bob, func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.GetConversations(ctx, &pb.GetConversationsRequest{})
			s.Require().NoError(err)
			s.Require().Len(resp.Conversations, 1)
			summary := resp.Conversations[0]
			s.Require().Equal(conversationID, summary.ConversationId)
			s.Require().Equal(int32(0), summary.UnreadCount)
			s.Require().Equal(messageID, summary.LastMessage.MessageId)
		})
	})

	s.Run("Step 4: Outsider cannot read the conversation", func() {
		s.WithUser("Mallory reads", "mallory-"+uuid.NewString()[:8], func(ctx context.Context, client pb.ChatServiceClient) {
			_, err := client.GetMessages(ctx, &pb.GetMessagesRequest{
				ConversationId: conversationID, Page: 1, Limit: 10,
			})
			s.Require().Error(err)
			_, err = client.SendMessage(ctx, &pb.SendMessageRequest{
				ConversationId: conversationID,
				Text:           "let me in",
			})
			s.Require().Error(err)
		})
	})
}
