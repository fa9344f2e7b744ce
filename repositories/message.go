//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chatgram/domain"
	"chatgram/errors"
	pb "chatgram/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id uuid.UUID) (domain.Message, error)
	UpdateMessage(id uuid.UUID, mutate func(*domain.Message) bool) (domain.Message, bool, error)
	ListMessages(conversationID uuid.UUID) ([]domain.Message, error)
	GetMessages(conversationID uuid.UUID, page, limit int) ([]domain.Message, error)
	DeleteMessage(id uuid.UUID) error
	DeleteConversationMessages(conversationID uuid.UUID) error
	CountUnread(conversationID uuid.UUID, userID string) (int, error)
	LastMessage(conversationID uuid.UUID) (domain.Message, bool, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// primaryKey is formatted as "msg:{conversation_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func primaryKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		message.ConversationID,
		message.CreatedAt.UnixNano(),
		message.ID,
	))
}

// indexKey maps a message id to its primary key so that status advancement
// can locate and rewrite a record inside a single transaction.
func indexKey(id uuid.UUID) []byte {
	return []byte("msgidx:" + id.String())
}

func conversationPrefix(conversationID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", conversationID))
}

// StoreMessage persists a message and its id index entry atomically.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromMessage(message)))
	if err != nil {
		return err
	}
	key := primaryKey(message)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(message.ID), key)
	})
}

func (m MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = getByIndex(txn, id)
		return err
	})
	return message, err
}

// UpdateMessage applies mutate to the stored record inside one read-modify-write
// transaction. The record is rewritten only when mutate reports a change, which
// makes repeated acknowledgements (catch-up racing a view acknowledgement) no-ops.
func (m MessageRepository) UpdateMessage(id uuid.UUID, mutate func(*domain.Message) bool) (domain.Message, bool, error) {
	var message domain.Message
	var changed bool
	err := m.db.Update(func(txn *badger.Txn) error {
		var err error
		message, err = getByIndex(txn, id)
		if err != nil {
			return err
		}
		changed = mutate(&message)
		if !changed {
			return nil
		}
		bytes, err := proto.Marshal(lo.ToPtr(fromMessage(message)))
		if err != nil {
			return err
		}
		return txn.Set(primaryKey(message), bytes)
	})
	return message, changed, err
}

// ListMessages returns every message of a conversation in chronological order.
// Thanks to the padded timestamp in the key, a plain prefix scan is already sorted.
func (m MessageRepository) ListMessages(conversationID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	prefix := conversationPrefix(conversationID)
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	return messages, err
}

// GetMessages pages through a conversation newest-first (page 1 holds the most
// recent messages) and returns the selected page in chronological order.
func (m MessageRepository) GetMessages(conversationID uuid.UUID, page, limit int) ([]domain.Message, error) {
	var messages []domain.Message
	prefix := conversationPrefix(conversationID)
	skip := (page - 1) * limit
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key for this conversation
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		skipped := 0
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if skipped < skip {
				skipped++
				continue
			}
			if len(messages) == limit {
				break
			}
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Reverse(messages), nil
}

func (m MessageRepository) DeleteMessage(id uuid.UUID) error {
	return m.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(indexKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrMessageNotFound
		}
		if err != nil {
			return err
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err = txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(indexKey(id))
	})
}

// DeleteConversationMessages removes a conversation's whole log, used by the
// conversation deletion cascade.
func (m MessageRepository) DeleteConversationMessages(conversationID uuid.UUID) error {
	prefix := conversationPrefix(conversationID)
	var keys [][]byte
	var ids []uuid.UUID
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			keys = append(keys, key)
			// Key layout is msg:{conv}:{ts}:{uuid}
			parts := strings.Split(string(key), ":")
			id, err := uuid.Parse(parts[len(parts)-1])
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for _, id := range ids {
			if err := txn.Delete(indexKey(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountUnread counts messages the user has not seen and did not send,
// feeding the conversation summary endpoint.
func (m MessageRepository) CountUnread(conversationID uuid.UUID, userID string) (int, error) {
	messages, err := m.ListMessages(conversationID)
	if err != nil {
		return 0, err
	}
	unread := lo.Filter(messages, func(message domain.Message, _ int) bool {
		return message.SenderID != userID && !lo.Contains(message.SeenBy, userID)
	})
	return len(unread), nil
}

func (m MessageRepository) LastMessage(conversationID uuid.UUID) (domain.Message, bool, error) {
	var message domain.Message
	var found bool
	prefix := conversationPrefix(conversationID)
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		it.Seek(seekKey)
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		var err error
		message, err = decodeItem(it.Item())
		found = err == nil
		return err
	})
	return message, found, err
}

func getByIndex(txn *badger.Txn, id uuid.UUID) (domain.Message, error) {
	item, err := txn.Get(indexKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Message{}, err
	}
	item, err = txn.Get(key)
	if err != nil {
		return domain.Message{}, err
	}
	return decodeItem(item)
}

func decodeItem(item *badger.Item) (domain.Message, error) {
	var messagePb pb.Message
	err := item.Value(func(value []byte) error {
		return proto.Unmarshal(value, &messagePb)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(&messagePb)
}

func fromMessage(message domain.Message) pb.Message {
	var editedAt int64
	if message.EditedAt != nil {
		editedAt = message.EditedAt.UnixNano()
	}
	return pb.Message{
		Id:             message.ID.String(),
		ConversationId: message.ConversationID.String(),
		SenderId:       message.SenderID,
		Text:           message.Text,
		Status:         string(message.Status),
		DeliveredTo:    message.DeliveredTo,
		SeenBy:         message.SeenBy,
		CreatedAt:      message.CreatedAt.UnixNano(),
		EditedAt:       editedAt,
	}
}

func toMessage(messagePb *pb.Message) (domain.Message, error) {
	id, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	conversationID, err := uuid.Parse(messagePb.ConversationId)
	if err != nil {
		return domain.Message{}, err
	}
	var editedAt *time.Time
	if messagePb.EditedAt != 0 {
		editedAt = lo.ToPtr(time.Unix(0, messagePb.EditedAt).UTC())
	}
	return domain.Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       messagePb.SenderId,
		Text:           messagePb.Text,
		Status:         domain.MessageStatus(messagePb.Status),
		DeliveredTo:    messagePb.DeliveredTo,
		SeenBy:         messagePb.SeenBy,
		CreatedAt:      time.Unix(0, messagePb.CreatedAt).UTC(),
		EditedAt:       editedAt,
	}, nil
}
