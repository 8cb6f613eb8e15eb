package storage

import (
	"github.com/casperlabs/highway/model/highway"
)

// DeployStatuses is the persistent per-deploy lifecycle store. Transitions
// are monotonic: pending → processed → finalized. The store tolerates
// idempotent re-delivery of the same transition.
type DeployStatuses interface {

	// AddAsPending registers freshly submitted deploys as pending. Deploys
	// that are already tracked keep their current status.
	AddAsPending(deploys []highway.Deploy) error

	// MarkProcessed records that the deploy was included in a message whose
	// effects were committed. Marking an untracked deploy registers it
	// directly as processed.
	MarkProcessed(deployID highway.Identifier) error

	// MarkFinalized records that the deploy's containing block was finalized.
	MarkFinalized(deployID highway.Identifier) error

	// ByDeployID returns the current status of the deploy.
	// Error returns:
	//   - ErrNotFound if the deploy was never registered
	ByDeployID(deployID highway.Identifier) (highway.DeployStatus, error)
}
