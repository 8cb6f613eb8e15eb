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

func TestEraStoreRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewEras(db)

		_, era := unittest.BondedValidatorsFixture(3)
		era.Upgrades = []highway.Upgrade{unittest.UpgradeFixture(100)}
		err := store.Store(era)
		require.NoError(t, err)

		actual, err := store.ByKeyBlock(era.KeyBlock)
		require.NoError(t, err)
		require.Equal(t, era.KeyBlock, actual.KeyBlock)
		require.Equal(t, era.Parent, actual.Parent)
		require.Equal(t, era.StartRound, actual.StartRound)
		require.Equal(t, era.EndRound, actual.EndRound)
		require.Equal(t, era.Bonds, actual.Bonds)
		require.Equal(t, era.Upgrades, actual.Upgrades)
	})
}

func TestEraRetrieveUnknown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewEras(db)

		_, err := store.ByKeyBlock(unittest.IdentifierFixture())
		require.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestEraStoreTwice(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewEras(db)

		era := unittest.EraFixture()
		err := store.Store(era)
		require.NoError(t, err)

		err = store.Store(era)
		require.True(t, errors.Is(err, storage.ErrAlreadyExists))
	})
}
