package highway

import (
	"math"
)

// Deploy is a submitted, opaque instruction payload awaiting inclusion in a
// block and deterministic execution. The pipeline never interprets the body;
// it only hashes, schedules and tracks it.
type Deploy struct {
	Account   Identifier
	Timestamp uint64
	// TTL bounds the validity window: the deploy may only be included in
	// blocks whose timestamp falls within [Timestamp, Timestamp+TTL].
	TTL  uint64
	Body []byte
}

// ID returns the content address of the deploy.
func (d Deploy) ID() Identifier {
	return MakeID(d)
}

// ValidAt reports whether the block timestamp falls within the deploy's
// validity window [Timestamp, Timestamp+TTL]. The upper bound saturates, so
// an adversarial TTL cannot wrap the window around.
func (d Deploy) ValidAt(blockTimestamp uint64) bool {
	if blockTimestamp < d.Timestamp {
		return false
	}
	deadline := d.Timestamp + d.TTL
	if deadline < d.Timestamp {
		deadline = math.MaxUint64
	}
	return blockTimestamp <= deadline
}

// DeployStatus tracks the lifecycle of a deploy from submission to finality.
type DeployStatus int

const (
	// DeployStatusUnknown indicates the deploy was never registered.
	DeployStatusUnknown DeployStatus = iota
	// DeployStatusPending means submitted but not yet part of a committed block.
	DeployStatusPending
	// DeployStatusProcessed means included in a message whose effects were committed.
	DeployStatusProcessed
	// DeployStatusFinalized means included in a finalized block.
	DeployStatusFinalized
)

func (s DeployStatus) String() string {
	return [...]string{"DEPLOY_UNKNOWN", "DEPLOY_PENDING", "DEPLOY_PROCESSED", "DEPLOY_FINALIZED"}[s]
}
