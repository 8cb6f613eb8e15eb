package badger

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	"github.com/casperlabs/highway/storage/badger/operation"
)

// Eras implements persistent era storage around a badger DB, keyed by the
// era's key block.
type Eras struct {
	db *badger.DB
}

var _ storage.Eras = (*Eras)(nil)

func NewEras(db *badger.DB) *Eras {
	return &Eras{
		db: db,
	}
}

func (e *Eras) Store(era *highway.Era) error {
	return e.db.Update(func(tx *badger.Txn) error {
		return operation.InsertEra(era.KeyBlock, era)(tx)
	})
}

func (e *Eras) ByKeyBlock(keyBlock highway.Identifier) (*highway.Era, error) {
	var era highway.Era
	err := e.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveEra(keyBlock, &era)(tx)
	})
	if err != nil {
		return nil, err
	}
	return &era, nil
}
