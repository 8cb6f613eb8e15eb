package module

import (
	"context"

	"github.com/casperlabs/highway/model/highway"
)

// DeployResult is the outcome of executing a single deploy. A deploy-level
// failure does not abort the block; the failed deploy simply contributes no
// effects and its failure is recorded on chain via the result list.
type DeployResult struct {
	DeployID highway.Identifier
	Effects  []highway.Effect
	// Failed marks a deploy that was rejected by the execution engine, e.g.
	// out of gas or a precondition failure. Failed deploys carry no effects.
	Failed bool
	// Message carries the engine's failure description for failed deploys.
	Message string
}

// DeployExecutor is the deterministic deploy execution engine. It is fully
// external to the pipeline: given a pre-state root and an ordered deploy
// list it computes per-deploy effects, and commits effect transforms to
// produce a new state root and refreshed bond table.
//
// Both methods must be deterministic: honest nodes calling them with the
// same inputs must obtain byte-identical outputs.
type DeployExecutor interface {

	// Execute computes the per-deploy results of running the deploys, in
	// order, against the given pre-state root under the era's bond table and
	// the protocol upgrades active at the block's round.
	// An error indicates a systemic engine failure, not a failing deploy.
	Execute(ctx context.Context, preStateHash highway.Identifier, bonds highway.BondSet, deploys []highway.Deploy, upgrades []highway.Upgrade) ([]DeployResult, error)

	// Commit applies the effect transforms to the pre-state and returns the
	// new state root together with the refreshed bond table.
	Commit(ctx context.Context, preStateHash highway.Identifier, effects []highway.Effect) (highway.Identifier, highway.BondSet, error)
}
