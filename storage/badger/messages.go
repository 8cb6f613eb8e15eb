package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	"github.com/casperlabs/highway/storage/badger/operation"
)

// defaultCacheLimit bounds the in-memory message cache in front of the DB.
const defaultCacheLimit = 1000

// Messages implements persistent message and effect storage around a badger
// DB. Messages and their effect bundles are written atomically in one
// transaction and are immutable afterwards.
type Messages struct {
	db    *badger.DB
	cache *lru.Cache
}

var _ storage.Messages = (*Messages)(nil)

func NewMessages(db *badger.DB) *Messages {
	cache, _ := lru.New(defaultCacheLimit)
	return &Messages{
		db:    db,
		cache: cache,
	}
}

func (m *Messages) Store(msg *highway.Message, effects *highway.EffectBundle) error {
	msgID := msg.ID()
	err := m.db.Update(func(tx *badger.Txn) error {
		err := operation.InsertMessage(msgID, msg)(tx)
		if err != nil {
			return err
		}
		return operation.InsertEffects(msgID, effects)(tx)
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return storage.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("could not store message: %w", err)
	}
	m.cache.Add(msgID, msg)
	return nil
}

func (m *Messages) ByID(msgID highway.Identifier) (*highway.Message, error) {
	cached, ok := m.cache.Get(msgID)
	if ok {
		return cached.(*highway.Message), nil
	}

	var msg highway.Message
	err := m.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveMessage(msgID, &msg)(tx)
	})
	if err != nil {
		return nil, err
	}
	m.cache.Add(msgID, &msg)
	return &msg, nil
}

func (m *Messages) ByIDUnsafe(msgID highway.Identifier) *highway.Message {
	msg, err := m.ByID(msgID)
	if err != nil {
		panic(fmt.Sprintf("retrieving message %x which is not stored: %s", msgID, err))
	}
	return msg
}

func (m *Messages) EffectsByID(msgID highway.Identifier) (*highway.EffectBundle, error) {
	var effects highway.EffectBundle
	err := m.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveEffects(msgID, &effects)(tx)
	})
	if err != nil {
		return nil, err
	}
	return &effects, nil
}

func (m *Messages) Contains(msgID highway.Identifier) (bool, error) {
	if m.cache.Contains(msgID) {
		return true, nil
	}
	var exists bool
	err := m.db.View(func(tx *badger.Txn) error {
		return operation.CheckMessage(msgID, &exists)(tx)
	})
	if err != nil {
		return false, fmt.Errorf("could not check message: %w", err)
	}
	return exists, nil
}
