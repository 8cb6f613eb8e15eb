package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/casperlabs/highway/model/highway"
)

func InsertEra(keyBlock highway.Identifier, era *highway.Era) func(*badger.Txn) error {
	return insert(makePrefix(codeEra, keyBlock), era)
}

func RetrieveEra(keyBlock highway.Identifier, era *highway.Era) func(*badger.Txn) error {
	return retrieve(makePrefix(codeEra, keyBlock), era)
}
