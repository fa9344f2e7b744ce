package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chatgram/auth"
	"chatgram/domain"
	"chatgram/domain/event"
	v1 "chatgram/proto/chat"
	"chatgram/sink"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
// The client mints its own token, so the signing key must match the server's.
type Config struct {
	ServerAddress  string        `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	UserID         string        `env:"CHAT_USER_ID,required=true"`
	ConversationID string        `env:"CHAT_CONVERSATION_ID"`
	JwtSigningKey  string        `env:"JWT_SIGNING_KEY,required=true"`
	TokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle: a long-lived Connect stream for
// inbound events and unary calls driven from stdin.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	auth.SetSigningKey(config.JwtSigningKey)
	token, err := auth.GenerateToken(config.UserID, config.TokenDuration)
	if err != nil {
		return exitConfig, fmt.Errorf("token error: %w", err)
	}

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	// 3. Establish connection to the chatgram server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := v1.NewChatServiceClient(conn)

	// 4. Initiate the bidirectional stream and register presence.
	stream, err := client.Connect(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}
	if err = stream.Send(&v1.ClientEvent{Event: &v1.ClientEvent_Register{Register: &v1.Register{}}}); err != nil {
		return exitRuntime, fmt.Errorf("failed to register: %w", err)
	}
	if config.ConversationID != "" {
		if err = stream.Send(&v1.ClientEvent{Event: &v1.ClientEvent_JoinConversation{
			JoinConversation: &v1.JoinConversation{ConversationId: config.ConversationID},
		}}); err != nil {
			return exitRuntime, fmt.Errorf("failed to join conversation: %w", err)
		}
	}

	color.Greenln(fmt.Sprintf(">>> Connected to %s as %s (Ctrl+C to quit)", config.ServerAddress, config.UserID))
	color.Grayln("    /users lists online users, /history shows the local timeline, /quit leaves, anything else is sent as a message")

	// 5. Inbound loop in the background, stdin loop in the foreground.
	// The timeline replays received events into a local view, with edits
	// and deletes applied in place.
	timeline := sink.NewTimeline(config.UserID)
	go receiveEvents(ctx, stream, timeline)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit":
			_ = stream.Send(&v1.ClientEvent{Event: &v1.ClientEvent_Logout{Logout: &v1.Logout{}}})
			return exitOK, nil
		case line == "/users":
			_ = stream.Send(&v1.ClientEvent{Event: &v1.ClientEvent_GetOnlineUsers{GetOnlineUsers: &v1.GetOnlineUsers{}}})
		case line == "/history":
			for _, message := range timeline.Messages() {
				color.Cyanln(fmt.Sprintf("[%s] %s: %s (%s)",
					message.CreatedAt.Format(time.TimeOnly), message.SenderID, message.Text, message.Status))
			}
		default:
			if config.ConversationID == "" {
				color.Redln("no conversation configured, set CHAT_CONVERSATION_ID")
				continue
			}
			_, err = client.SendMessage(ctx, &v1.SendMessageRequest{
				ConversationId: config.ConversationID,
				Text:           line,
			})
			if err != nil {
				color.Redln(fmt.Sprintf("send failed: %v", err))
			}
		}
	}
	return exitOK, nil
}

// receiveEvents prints every server event and feeds the local timeline
// until the stream dies.
func receiveEvents(ctx context.Context, stream v1.ChatService_ConnectClient, timeline *sink.Timeline) {
	for {
		serverEvent, err := stream.Recv()
		if err != nil {
			if ctx.Err() == nil {
				color.Redln(fmt.Sprintf("stream closed: %v", err))
			}
			return
		}
		if domainEvent, ok := toDomainEvent(serverEvent); ok {
			_ = timeline.Consume(ctx, domainEvent)
		}
		printEvent(serverEvent)
	}
}

func toDomainEvent(serverEvent *v1.ServerEvent) (event.Event, bool) {
	switch e := serverEvent.Event.(type) {
	case *v1.ServerEvent_NewMessage:
		return event.NewMessage{Message: toDomainMessage(e.NewMessage)}, true
	case *v1.ServerEvent_MessageUpdated:
		return event.MessageUpdated{Message: toDomainMessage(e.MessageUpdated)}, true
	case *v1.ServerEvent_MessageDeleted:
		messageID, err := uuid.Parse(e.MessageDeleted.MessageId)
		if err != nil {
			return nil, false
		}
		return event.MessageDeleted{MessageID: messageID}, true
	}
	return nil, false
}

func toDomainMessage(m *v1.MessageEvent) domain.Message {
	id, _ := uuid.Parse(m.MessageId)
	conversationID, _ := uuid.Parse(m.ConversationId)
	return domain.Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       m.SenderId,
		Text:           m.Text,
		Status:         domain.MessageStatus(m.Status),
		DeliveredTo:    m.DeliveredTo,
		SeenBy:         m.SeenBy,
		CreatedAt:      m.CreatedAt.AsTime(),
	}
}

func printEvent(serverEvent *v1.ServerEvent) {
	switch e := serverEvent.Event.(type) {
	case *v1.ServerEvent_NewMessage:
		m := e.NewMessage
		color.Cyanln(fmt.Sprintf("[%s] %s: %s",
			m.CreatedAt.AsTime().Format(time.TimeOnly), m.SenderId, m.Text))
	case *v1.ServerEvent_MessageUpdated:
		m := e.MessageUpdated
		color.Cyanln(fmt.Sprintf("[edited] %s: %s", m.SenderId, m.Text))
	case *v1.ServerEvent_MessageStatusUpdated:
		s := e.MessageStatusUpdated
		color.Grayln(fmt.Sprintf("message %s is now %s (by %s)", shorten(s.MessageId), s.Status, s.UserId))
	case *v1.ServerEvent_MessageDeleted:
		color.Grayln(fmt.Sprintf("message %s deleted", shorten(e.MessageDeleted.MessageId)))
	case *v1.ServerEvent_UserOnline:
		color.Greenln(fmt.Sprintf("+ %s is online", e.UserOnline.UserId))
	case *v1.ServerEvent_UserOffline:
		color.Yellowln(fmt.Sprintf("- %s went offline", e.UserOffline.UserId))
	case *v1.ServerEvent_NewMessageNotification:
		color.Magentaln(fmt.Sprintf("new message in conversation %s", shorten(e.NewMessageNotification.ConversationId)))
	case *v1.ServerEvent_Notification:
		n := e.Notification
		color.Magentaln(fmt.Sprintf("[%s] from %s: %s", n.Kind, n.SenderId, n.Body))
	case *v1.ServerEvent_OnlineUsers:
		printOnlineUsers(e.OnlineUsers.UserIds)
	}
}

func printOnlineUsers(userIDs []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Online user"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for i, userID := range userIDs {
		table.Append([]string{fmt.Sprintf("%d", i+1), userID})
	}
	table.Render()
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
