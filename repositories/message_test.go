package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chatgram/domain"
	"chatgram/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedMessage(conversationID uuid.UUID, sender, text string, at time.Time) domain.Message {
	return domain.NewMessage(conversationID, sender, text, nil, []string{"bob"}, at)
}

func TestMessageRepository_StoreAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	conversationID := uuid.New()

	editedAt := time.Now().UTC().Truncate(time.Nanosecond)
	message := storedMessage(conversationID, "alice", "hello", time.Now().UTC())
	message.EditedAt = lo.ToPtr(editedAt)
	req.NoError(repo.StoreMessage(message))

	loaded, err := repo.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(message.ID, loaded.ID)
	req.Equal(message.ConversationID, loaded.ConversationID)
	req.Equal("hello", loaded.Text)
	req.Equal(domain.StatusSent, loaded.Status)
	req.Equal(editedAt, *loaded.EditedAt)

	_, err = repo.GetMessage(uuid.New())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_ListIsChronological(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	conversationID := uuid.New()
	base := time.Now().UTC()

	// Stored out of order on purpose
	for _, offset := range []int{2, 0, 1} {
		message := storedMessage(conversationID, "alice",
			fmt.Sprintf("m%d", offset), base.Add(time.Duration(offset)*time.Second))
		req.NoError(repo.StoreMessage(message))
	}

	messages, err := repo.ListMessages(conversationID)
	req.NoError(err)
	req.Len(messages, 3)
	req.Equal("m0", messages[0].Text)
	req.Equal("m1", messages[1].Text)
	req.Equal("m2", messages[2].Text)
}

func TestMessageRepository_PaginationNewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	conversationID := uuid.New()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		message := storedMessage(conversationID, "alice",
			fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Second))
		req.NoError(repo.StoreMessage(message))
	}

	// Page 1 holds the newest messages, in chronological order
	page, err := repo.GetMessages(conversationID, 1, 2)
	req.NoError(err)
	req.Len(page, 2)
	req.Equal("m3", page[0].Text)
	req.Equal("m4", page[1].Text)

	page, err = repo.GetMessages(conversationID, 2, 2)
	req.NoError(err)
	req.Equal("m1", page[0].Text)
	req.Equal("m2", page[1].Text)

	// The last partial page and the page beyond it
	page, err = repo.GetMessages(conversationID, 3, 2)
	req.NoError(err)
	req.Len(page, 1)
	req.Equal("m0", page[0].Text)

	page, err = repo.GetMessages(conversationID, 4, 2)
	req.NoError(err)
	req.Empty(page)
}

func TestMessageRepository_UpdateRewritesOnlyOnChange(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	message := storedMessage(uuid.New(), "alice", "hello", time.Now().UTC())
	req.NoError(repo.StoreMessage(message))

	// First acknowledgement mutates
	updated, changed, err := repo.UpdateMessage(message.ID, func(m *domain.Message) bool {
		return m.MarkDelivered("bob")
	})
	req.NoError(err)
	req.True(changed)
	req.Equal([]string{"bob"}, updated.DeliveredTo)

	// Replaying it reports no change
	_, changed, err = repo.UpdateMessage(message.ID, func(m *domain.Message) bool {
		return m.MarkDelivered("bob")
	})
	req.NoError(err)
	req.False(changed)

	_, _, err = repo.UpdateMessage(uuid.New(), func(m *domain.Message) bool { return true })
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_DeleteAndCascade(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	conversationID := uuid.New()
	other := storedMessage(uuid.New(), "alice", "elsewhere", time.Now().UTC())
	req.NoError(repo.StoreMessage(other))

	var first domain.Message
	for i := 0; i < 3; i++ {
		message := storedMessage(conversationID, "alice",
			fmt.Sprintf("m%d", i), time.Now().UTC().Add(time.Duration(i)*time.Second))
		req.NoError(repo.StoreMessage(message))
		if i == 0 {
			first = message
		}
	}

	// Single delete removes record and index
	req.NoError(repo.DeleteMessage(first.ID))
	_, err := repo.GetMessage(first.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.ErrorIs(repo.DeleteMessage(first.ID), errors.ErrMessageNotFound)

	// Conversation cascade wipes the rest but not other conversations
	req.NoError(repo.DeleteConversationMessages(conversationID))
	messages, err := repo.ListMessages(conversationID)
	req.NoError(err)
	req.Empty(messages)

	_, err = repo.GetMessage(other.ID)
	req.NoError(err)
}

func TestMessageRepository_UnreadAndLastMessage(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t), slog.Default())
	conversationID := uuid.New()
	base := time.Now().UTC()

	_, found, err := repo.LastMessage(conversationID)
	req.NoError(err)
	req.False(found)

	seen := storedMessage(conversationID, "alice", "old", base)
	seen.MarkSeen("bob")
	req.NoError(repo.StoreMessage(seen))

	fromBob := storedMessage(conversationID, "bob", "mine", base.Add(time.Second))
	req.NoError(repo.StoreMessage(fromBob))

	unseen := storedMessage(conversationID, "alice", "new", base.Add(2*time.Second))
	req.NoError(repo.StoreMessage(unseen))

	// Bob's own message and the one he saw do not count
	count, err := repo.CountUnread(conversationID, "bob")
	req.NoError(err)
	req.Equal(1, count)

	last, found, err := repo.LastMessage(conversationID)
	req.NoError(err)
	req.True(found)
	req.Equal("new", last.Text)
}
