//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
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

type IConversationRepository interface {
	CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error)
	GetOrCreateDirect(userA, userB string) (domain.Conversation, error)
	GetConversation(id uuid.UUID) (domain.Conversation, error)
	ListByParticipant(userID string) ([]domain.Conversation, error)
	DeleteConversation(id uuid.UUID) error
	Touch(id uuid.UUID, at time.Time) error
}

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

func conversationKey(id uuid.UUID) []byte {
	return []byte("conv:" + id.String())
}

// directKey identifies the unique direct conversation of an unordered pair.
func directKey(userA, userB string) []byte {
	if userB < userA {
		userA, userB = userB, userA
	}
	return []byte(fmt.Sprintf("convdir:%s:%s", userA, userB))
}

// participantKey is the index entry used by reconnect catch-up to find every
// conversation a user belongs to.
func participantKey(userID string, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("convusr:%s:%s", userID, id))
}

func (c ConversationRepository) CreateConversation(participants []string, kind domain.ConversationKind) (domain.Conversation, error) {
	conversation := domain.Conversation{
		ID:           uuid.New(),
		Participants: lo.Uniq(participants),
		Kind:         kind,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return storeConversation(txn, conversation)
	})
	return conversation, err
}

// GetOrCreateDirect resolves the direct conversation for two users, creating
// it when missing. At most one direct conversation exists per unordered pair;
// the dedupe key lookup and the insert happen in the same transaction.
func (c ConversationRepository) GetOrCreateDirect(userA, userB string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(directKey(userA, userB))
		if err == nil {
			idBytes, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(string(idBytes))
			if err != nil {
				return err
			}
			conversation, err = getConversation(txn, id)
			return err
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		conversation = domain.Conversation{
			ID:           uuid.New(),
			Participants: []string{userA, userB},
			Kind:         domain.KindDirect,
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		return storeConversation(txn, conversation)
	})
	return conversation, err
}

func (c ConversationRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		conversation, err = getConversation(txn, id)
		return err
	})
	return conversation, err
}

func (c ConversationRepository) ListByParticipant(userID string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	prefix := []byte("convusr:" + userID + ":")
	err := c.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []uuid.UUID
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			id, err := uuid.Parse(strings.TrimPrefix(key, string(prefix)))
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		for _, id := range ids {
			conversation, err := getConversation(txn, id)
			if err != nil {
				return err
			}
			conversations = append(conversations, conversation)
		}
		return nil
	})
	return conversations, err
}

// DeleteConversation removes the record and all its index entries. Message
// cascade is orchestrated by the delivery engine through the message repository.
func (c ConversationRepository) DeleteConversation(id uuid.UUID) error {
	return c.db.Update(func(txn *badger.Txn) error {
		conversation, err := getConversation(txn, id)
		if err != nil {
			return err
		}
		if err = txn.Delete(conversationKey(id)); err != nil {
			return err
		}
		for _, participant := range conversation.Participants {
			if err = txn.Delete(participantKey(participant, id)); err != nil {
				return err
			}
		}
		if conversation.Kind == domain.KindDirect && len(conversation.Participants) == 2 {
			return txn.Delete(directKey(conversation.Participants[0], conversation.Participants[1]))
		}
		return nil
	})
}

func (c ConversationRepository) Touch(id uuid.UUID, at time.Time) error {
	return c.db.Update(func(txn *badger.Txn) error {
		conversation, err := getConversation(txn, id)
		if err != nil {
			return err
		}
		conversation.UpdatedAt = at
		bytes, err := proto.Marshal(lo.ToPtr(fromConversation(conversation)))
		if err != nil {
			return err
		}
		return txn.Set(conversationKey(id), bytes)
	})
}

func storeConversation(txn *badger.Txn, conversation domain.Conversation) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromConversation(conversation)))
	if err != nil {
		return err
	}
	if err = txn.Set(conversationKey(conversation.ID), bytes); err != nil {
		return err
	}
	for _, participant := range conversation.Participants {
		if err = txn.Set(participantKey(participant, conversation.ID), nil); err != nil {
			return err
		}
	}
	if conversation.Kind == domain.KindDirect && len(conversation.Participants) == 2 {
		key := directKey(conversation.Participants[0], conversation.Participants[1])
		return txn.Set(key, []byte(conversation.ID.String()))
	}
	return nil
}

func getConversation(txn *badger.Txn, id uuid.UUID) (domain.Conversation, error) {
	item, err := txn.Get(conversationKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	var conversationPb pb.Conversation
	err = item.Value(func(value []byte) error {
		return proto.Unmarshal(value, &conversationPb)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return toConversation(&conversationPb)
}

func fromConversation(conversation domain.Conversation) pb.Conversation {
	return pb.Conversation{
		Id:           conversation.ID.String(),
		Participants: conversation.Participants,
		Kind:         string(conversation.Kind),
		CreatedAt:    conversation.CreatedAt.UnixNano(),
		UpdatedAt:    conversation.UpdatedAt.UnixNano(),
	}
}

func toConversation(conversationPb *pb.Conversation) (domain.Conversation, error) {
	id, err := uuid.Parse(conversationPb.Id)
	if err != nil {
		return domain.Conversation{}, err
	}
	return domain.Conversation{
		ID:           id,
		Participants: conversationPb.Participants,
		Kind:         domain.ConversationKind(conversationPb.Kind),
		CreatedAt:    time.Unix(0, conversationPb.CreatedAt).UTC(),
		UpdatedAt:    time.Unix(0, conversationPb.UpdatedAt).UTC(),
	}, nil
}
