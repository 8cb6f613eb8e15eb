package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	"github.com/casperlabs/highway/storage/badger/operation"
)

// DeployStatuses implements the persistent per-deploy lifecycle store around
// a badger DB. Status transitions are monotonic: a deploy never moves back
// from processed or finalized, so idempotent re-delivery of the same
// transition is harmless.
type DeployStatuses struct {
	db *badger.DB
}

var _ storage.DeployStatuses = (*DeployStatuses)(nil)

func NewDeployStatuses(db *badger.DB) *DeployStatuses {
	return &DeployStatuses{
		db: db,
	}
}

func (d *DeployStatuses) AddAsPending(deploys []highway.Deploy) error {
	return d.db.Update(func(tx *badger.Txn) error {
		for _, deploy := range deploys {
			err := operation.InsertDeployStatus(deploy.ID(), highway.DeployStatusPending)(tx)
			if errors.Is(err, storage.ErrAlreadyExists) {
				// already tracked, keep the current status
				continue
			}
			if err != nil {
				return fmt.Errorf("could not add deploy %x as pending: %w", deploy.ID(), err)
			}
		}
		return nil
	})
}

func (d *DeployStatuses) MarkProcessed(deployID highway.Identifier) error {
	return d.transition(deployID, highway.DeployStatusProcessed)
}

func (d *DeployStatuses) MarkFinalized(deployID highway.Identifier) error {
	return d.transition(deployID, highway.DeployStatusFinalized)
}

func (d *DeployStatuses) ByDeployID(deployID highway.Identifier) (highway.DeployStatus, error) {
	var status highway.DeployStatus
	err := d.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveDeployStatus(deployID, &status)(tx)
	})
	if err != nil {
		return highway.DeployStatusUnknown, err
	}
	return status, nil
}

// transition moves the deploy to the target status unless it already
// advanced further in the lifecycle.
func (d *DeployStatuses) transition(deployID highway.Identifier, target highway.DeployStatus) error {
	return d.db.Update(func(tx *badger.Txn) error {
		var current highway.DeployStatus
		err := operation.RetrieveDeployStatus(deployID, &current)(tx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("could not retrieve deploy status: %w", err)
		}
		if current >= target {
			return nil
		}
		return operation.UpsertDeployStatus(deployID, target)(tx)
	})
}
