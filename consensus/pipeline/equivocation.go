package pipeline

import (
	"fmt"

	"github.com/casperlabs/highway/dag"
	"github.com/casperlabs/highway/model/highway"
)

// Scope selects which part of the DAG a message is compared against when
// checking for equivocation. The detection scope is injectable because the
// default lineage scope is a known over-approximation: two messages by the
// same validator in sibling eras of one key-block lineage are compared even
// when they do not cite each other, so legitimate per-era forks are flagged.
// Refining the scope must not require touching the orchestrator.
type Scope interface {
	ViewFor(index dag.Index, msg *highway.Message) (dag.EraView, error)
}

// LineageScope compares messages within one key-block lineage: the era of the
// message plus all eras sharing its root key block. This is the protocol
// default.
type LineageScope struct{}

func (LineageScope) ViewFor(index dag.Index, msg *highway.Message) (dag.EraView, error) {
	return index.LatestInEra(msg.EraID)
}

// GlobalScope compares messages across all eras.
type GlobalScope struct{}

func (GlobalScope) ViewFor(index dag.Index, msg *highway.Message) (dag.EraView, error) {
	return index.GlobalView()
}

// EquivocationDetector determines whether a message constitutes a provable
// double-sign relative to the sender's recorded latest messages within the
// configured detection scope. The check is purely informational: detecting
// an equivocation does not reject the message, it routes it into the
// effect-withholding persistence path.
type EquivocationDetector struct {
	index dag.Index
	scope Scope
}

func NewEquivocationDetector(index dag.Index, scope Scope) *EquivocationDetector {
	return &EquivocationDetector{
		index: index,
		scope: scope,
	}
}

// Check compares the message against the validator's recorded latest
// messages in the detection scope.
// Expected errors during normal operations:
//   - EquivocationError if the message conflicts with a recorded latest message
func (d *EquivocationDetector) Check(msg *highway.Message) error {
	view, err := d.scope.ViewFor(d.index, msg)
	if err != nil {
		return fmt.Errorf("could not get detection scope view: %w", err)
	}

	tips := view.LatestMessagesOf(msg.Validator)
	if len(tips) == 0 {
		// first message by this validator in scope
		return nil
	}

	// a validator with multiple incomparable tips has already equivocated;
	// no single new message can merge the conflicting lineages
	if len(tips) > 1 {
		return NewEquivocationError(tips[0], msg)
	}

	tip := tips[0]
	if tip.ID() == msg.ID() {
		// re-observing the recorded latest message is not a conflict
		return nil
	}

	// the only non-conflicting continuation is the direct descendant of the
	// recorded latest message: it cites the tip as its previous message and
	// advances the sequence number by exactly one
	prevHash, hasPrev := msg.PrevMessage()
	if hasPrev && prevHash == tip.ID() && msg.SeqNum == tip.SeqNum+1 {
		return nil
	}

	return NewEquivocationError(tip, msg)
}
