package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/casperlabs/highway/model/highway"
)

func InsertDeployStatus(deployID highway.Identifier, status highway.DeployStatus) func(*badger.Txn) error {
	return insert(makePrefix(codeDeployStatus, deployID), status)
}

func UpsertDeployStatus(deployID highway.Identifier, status highway.DeployStatus) func(*badger.Txn) error {
	return upsert(makePrefix(codeDeployStatus, deployID), status)
}

func RetrieveDeployStatus(deployID highway.Identifier, status *highway.DeployStatus) func(*badger.Txn) error {
	return retrieve(makePrefix(codeDeployStatus, deployID), status)
}
