package dag

import (
	"github.com/casperlabs/highway/model/highway"
)

// EraView is a read-only snapshot of the per-validator latest-message index
// for one era lineage. Views returned by an Index are immutable; a new view
// must be requested to observe later additions.
type EraView interface {

	// LatestMessages returns, per validator, the tips of that validator's
	// message lineage visible in this era. An honest validator has exactly
	// one tip; an equivocator has several incomparable ones.
	LatestMessages() map[highway.ValidatorID][]*highway.Message

	// LatestMessagesOf returns the tips of a single validator's lineage.
	LatestMessagesOf(validator highway.ValidatorID) []*highway.Message

	// Equivocators returns the validators recorded as equivocating within
	// this era lineage. The set is monotonic for the lifetime of the era.
	Equivocators() map[highway.ValidatorID]struct{}
}

// Index is the era-scoped latest-message index of the DAG. All mutation must
// happen inside the message executor's critical section; reads may happen
// concurrently.
type Index interface {

	// LatestInEra returns a snapshot view of the given era lineage. An era
	// with no messages yet yields an empty view, not an error.
	LatestInEra(eraID highway.Identifier) (EraView, error)

	// GlobalView returns a snapshot across all eras, used by the global
	// equivocation detection scope.
	GlobalView() (EraView, error)

	// Contains checks whether the message was added to the index.
	Contains(msgID highway.Identifier) bool

	// Add records the message as the validator's new tip in its era,
	// superseding the tips it descends from. When equivocator is true, the
	// validator is additionally added to the era's equivocator set and the
	// superseded tips are retained, so the conflicting lineages stay visible.
	Add(msg *highway.Message, equivocator bool) error
}
