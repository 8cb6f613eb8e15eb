package badger_test

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	bstorage "github.com/casperlabs/highway/storage/badger"
	"github.com/casperlabs/highway/utils/unittest"
)

func TestMessageStoreRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewMessages(db)

		key := unittest.PrivateKeyFixture()
		msg := unittest.SignedMessageFixture(key,
			unittest.WithDeploys(unittest.DeployListFixture(2)),
		)
		effects := unittest.EffectBundleFixture()

		err := store.Store(msg, effects)
		require.NoError(t, err)

		actual, err := store.ByID(msg.ID())
		require.NoError(t, err)
		require.Equal(t, msg.ID(), actual.ID())

		// a cold read through a fresh cache must yield the same content
		cold := bstorage.NewMessages(db)
		actual, err = cold.ByID(msg.ID())
		require.NoError(t, err)
		require.Equal(t, msg.ID(), actual.ID())
		require.Equal(t, msg.Validator, actual.Validator)
		require.Equal(t, msg.Signature, actual.Signature)
		require.Len(t, actual.Deploys, 2)

		bundle, err := store.EffectsByID(msg.ID())
		require.NoError(t, err)
		require.Equal(t, effects.PostStateHash, bundle.PostStateHash)
		require.Equal(t, effects.Effects, bundle.Effects)
		require.Equal(t, effects.Bonds, bundle.Bonds)
	})
}

func TestMessageStoreTwice(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewMessages(db)

		key := unittest.PrivateKeyFixture()
		msg := unittest.SignedMessageFixture(key)

		err := store.Store(msg, highway.EmptyEffectBundle())
		require.NoError(t, err)

		err = store.Store(msg, highway.EmptyEffectBundle())
		require.True(t, errors.Is(err, storage.ErrAlreadyExists))
	})
}

func TestMessageRetrieveUnknown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewMessages(db)

		_, err := store.ByID(unittest.IdentifierFixture())
		require.True(t, errors.Is(err, storage.ErrNotFound))

		_, err = store.EffectsByID(unittest.IdentifierFixture())
		require.True(t, errors.Is(err, storage.ErrNotFound))

		require.Panics(t, func() {
			store.ByIDUnsafe(unittest.IdentifierFixture())
		})
	})
}

func TestMessageContains(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewMessages(db)

		key := unittest.PrivateKeyFixture()
		msg := unittest.SignedMessageFixture(key)

		exists, err := store.Contains(msg.ID())
		require.NoError(t, err)
		require.False(t, exists)

		err = store.Store(msg, highway.EmptyEffectBundle())
		require.NoError(t, err)

		exists, err = store.Contains(msg.ID())
		require.NoError(t, err)
		require.True(t, exists)

		// also without the cache
		cold := bstorage.NewMessages(db)
		exists, err = cold.Contains(msg.ID())
		require.NoError(t, err)
		require.True(t, exists)
	})
}
