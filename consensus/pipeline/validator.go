package pipeline

import (
	"errors"
	"fmt"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
)

// Validator performs the structural and protocol validation of an incoming
// message against the persisted DAG and era rules. Validation is strictly
// read-only: it never mutates storage.
//
// Failures fall into two classes with different downstream handling:
//   - UnattributableError: identity of the producer cannot be established
//     (missing or invalid signature, unknown era). Nothing can be blamed on
//     anyone; the message is dropped.
//   - InvalidMessageError: the message is correctly signed but internally
//     inconsistent. The failure is attributable to the signing validator.
type Validator struct {
	messages storage.Messages
	eras     storage.Eras
	config   Config
}

func NewValidator(messages storage.Messages, eras storage.Eras, config Config) *Validator {
	return &Validator{
		messages: messages,
		eras:     eras,
		config:   config,
	}
}

// Validate checks the message in order: signature, era membership, structure
// (justifications, parent, rank and sequence arithmetic), bonding, and
// payload rules.
// Expected errors during normal operations:
//   - UnattributableError if the producer's identity cannot be established
//   - InvalidMessageError if the signed content is internally inconsistent
func (v *Validator) Validate(msg *highway.Message) error {

	// (a) signature: without a valid signature the message cannot be blamed
	// on any validator, so these failures are unattributable
	if len(msg.Signature) == 0 {
		return NewUnattributableErrorf(msg.ID(), "message has no signature")
	}
	if !highway.VerifyMessageSignature(msg) {
		return NewUnattributableErrorf(msg.ID(), "message signature is invalid")
	}

	// the era determines the governing bond table; a message for an era we
	// know nothing about cannot be judged either way
	era, err := v.eras.ByKeyBlock(msg.EraID)
	if errors.Is(err, storage.ErrNotFound) {
		return NewUnattributableErrorf(msg.ID(), "message refers to unknown era %x", msg.EraID)
	}
	if err != nil {
		return fmt.Errorf("could not retrieve era %x: %w", msg.EraID, err)
	}

	// (b) structural checks, attributable to the signer from here on
	err = v.validateStructure(msg, era)
	if err != nil {
		return err
	}

	// (c) the producer must be bonded in the era's governing bond table
	if !era.IsBonded(msg.Validator) {
		return NewInvalidMessageErrorf(msg, "validator is not bonded in era %x", msg.EraID)
	}

	// (d) ballots carry consensus votes only, never deploys
	if msg.Kind == highway.MessageKindBallot && len(msg.Deploys) > 0 {
		return NewInvalidMessageErrorf(msg, "ballot carries %d deploys", len(msg.Deploys))
	}

	return nil
}

// validateStructure checks justification completeness, parent consistency,
// and the rank/sequence arithmetic against the cited messages.
func (v *Validator) validateStructure(msg *highway.Message, era *highway.Era) error {

	if msg.Kind != highway.MessageKindBlock && msg.Kind != highway.MessageKindBallot {
		return NewInvalidMessageErrorf(msg, "unknown message kind (%d)", msg.Kind)
	}

	if !era.ContainsRound(msg.Round) {
		return NewInvalidMessageErrorf(msg, "round %d outside era range [%d, %d]",
			msg.Round, era.StartRound, era.EndRound)
	}

	if uint64(len(msg.Deploys)) > v.config.GetMaxDeploysPerBlock() {
		return NewInvalidMessageErrorf(msg, "block carries %d deploys, limit is %d",
			len(msg.Deploys), v.config.GetMaxDeploysPerBlock())
	}

	// deploys must be within their validity window at the block's timestamp
	for _, deploy := range msg.Deploys {
		if !deploy.ValidAt(msg.Timestamp) {
			return NewInvalidMessageErrorf(msg, "deploy %x outside its validity window at block timestamp %d",
				deploy.ID(), msg.Timestamp)
		}
	}

	// justification completeness: at most one citation per validator, and
	// every cited message must already be persisted
	cited := make(map[highway.ValidatorID]struct{}, len(msg.Justifications))
	var maxRank uint64
	for _, just := range msg.Justifications {
		if _, ok := cited[just.Validator]; ok {
			return NewInvalidMessageErrorf(msg, "duplicate justification for validator %x", just.Validator)
		}
		cited[just.Validator] = struct{}{}

		known, err := v.messages.Contains(just.Hash)
		if err != nil {
			return fmt.Errorf("could not check justification %x: %w", just.Hash, err)
		}
		if !known {
			return NewInvalidMessageErrorf(msg, "justified message %x is unknown", just.Hash)
		}

		justified := v.messages.ByIDUnsafe(just.Hash)
		if justified.Validator != just.Validator {
			return NewInvalidMessageErrorf(msg, "justification %x cites wrong validator", just.Hash)
		}
		if justified.Rank >= msg.Rank {
			return NewInvalidMessageErrorf(msg, "rank %d does not exceed justified message rank %d",
				msg.Rank, justified.Rank)
		}
		if justified.Rank > maxRank {
			maxRank = justified.Rank
		}
	}

	// rank is the DAG depth counter: exactly one above the highest cited rank
	if msg.Rank != maxRank+1 {
		return NewInvalidMessageErrorf(msg, "rank %d does not follow max justified rank %d", msg.Rank, maxRank)
	}

	// parent consistency: the main parent must be cited, or be the era's key
	// block for the first messages of an era
	if msg.Parent != msg.EraID && !v.parentCited(msg) {
		return NewInvalidMessageErrorf(msg, "parent %x is neither cited nor the era key block", msg.Parent)
	}

	// sequence arithmetic: one above the own cited previous message, or 1
	// for the validator's first message in the lineage
	prevHash, hasPrev := msg.PrevMessage()
	if !hasPrev {
		if msg.SeqNum != 1 {
			return NewInvalidMessageErrorf(msg, "first message must have sequence number 1, got %d", msg.SeqNum)
		}
		return nil
	}
	prev := v.messages.ByIDUnsafe(prevHash)
	if msg.SeqNum != prev.SeqNum+1 {
		return NewInvalidMessageErrorf(msg, "sequence number %d does not follow previous message's %d",
			msg.SeqNum, prev.SeqNum)
	}

	return nil
}

func (v *Validator) parentCited(msg *highway.Message) bool {
	for _, hash := range msg.JustifiedHashes() {
		if hash == msg.Parent {
			return true
		}
	}
	return false
}
