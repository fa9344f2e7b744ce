package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatgram/internal"
	pb "chatgram/proto/storage"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/proto"
)

// Standalone read-only inspector for the message store. Can run next to a
// live server; BypassLockGuard allows opening while the server holds the lock.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start Debug Server Only
	viewerStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	internal.StartDebugServer(db, config.DebugPort, "/inspect", MessageMapper, viewerStats)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

// MessageMapper decodes message and conversation records into readable rows.
func MessageMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	switch row.Type {
	case "MESSAGE":
		var message pb.Message
		if err := proto.Unmarshal(val, &message); err != nil {
			return row
		}
		row.Detail = fmt.Sprintf("[%s] %s: %s (delivered=%d seen=%d)",
			message.Status, message.SenderId, message.Text,
			len(message.DeliveredTo), len(message.SeenBy))
	case "CONVERSATION":
		var conversation pb.Conversation
		if err := proto.Unmarshal(val, &conversation); err != nil {
			return row
		}
		row.Detail = fmt.Sprintf("%s %v", conversation.Kind, conversation.Participants)
	}
	return row
}
