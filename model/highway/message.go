package highway

import (
	"crypto/ed25519"
)

// MessageKind discriminates between the two units a validator can produce:
// blocks, which carry deploys, and ballots, which carry only a vote.
type MessageKind uint8

const (
	MessageKindUnknown MessageKind = iota
	MessageKindBlock
	MessageKindBallot
)

func (k MessageKind) String() string {
	switch k {
	case MessageKindBlock:
		return "BLOCK"
	case MessageKindBallot:
		return "BALLOT"
	default:
		return "UNKNOWN"
	}
}

// ValidatorID identifies a validator by its raw ed25519 public key. Using
// the key itself (rather than a derived address) keeps signature checks free
// of any identity lookup.
type ValidatorID [ed25519.PublicKeySize]byte

// ValidatorIDFromPublicKey converts a public key into a ValidatorID. The key
// must be of the expected size; anything else is a caller bug.
func ValidatorIDFromPublicKey(key ed25519.PublicKey) ValidatorID {
	var id ValidatorID
	copy(id[:], key)
	return id
}

func (v ValidatorID) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(v[:])
}

// Justification cites the latest message of another validator known to the
// producer at creation time. Justifications are the edges of the DAG.
type Justification struct {
	Validator ValidatorID
	Hash      Identifier
}

// Message is the atomic unit of the protocol DAG: a block or ballot produced
// by a validator within one era. The signature is detached and therefore not
// part of the content address.
type Message struct {
	Kind      MessageKind
	Validator ValidatorID
	// SeqNum is the per-validator sequence number: exactly one greater than
	// the validator's previous message in the same lineage, or 1 if first.
	SeqNum uint64
	// Rank is the DAG depth counter: max rank of all justified messages + 1.
	Rank uint64
	// EraID is the hash of the era's key block.
	EraID Identifier
	// Parent is the main parent: the block this message builds on (for
	// blocks) or votes for (for ballots). It must be cited by the
	// justifications or be the era's key block itself.
	Parent Identifier
	// Round is the tick within the era at which the message was produced.
	Round     uint64
	Timestamp uint64
	// Justifications cite at most one prior message per validator, sorted by
	// validator so the fingerprint is canonical.
	Justifications []Justification
	// Deploys is only populated for blocks; ballots must leave it empty.
	Deploys []Deploy

	Signature []byte
}

// messageBody is the signed portion of a message, i.e. everything except the
// signature itself.
type messageBody struct {
	Kind           MessageKind
	Validator      ValidatorID
	SeqNum         uint64
	Rank           uint64
	EraID          Identifier
	Parent         Identifier
	Round          uint64
	Timestamp      uint64
	Justifications []Justification
	Deploys        []Deploy
}

func (m *Message) body() messageBody {
	return messageBody{
		Kind:           m.Kind,
		Validator:      m.Validator,
		SeqNum:         m.SeqNum,
		Rank:           m.Rank,
		EraID:          m.EraID,
		Parent:         m.Parent,
		Round:          m.Round,
		Timestamp:      m.Timestamp,
		Justifications: m.Justifications,
		Deploys:        m.Deploys,
	}
}

// ID returns the content address of the message. The signature is excluded,
// so signing does not change the ID being signed.
func (m *Message) ID() Identifier {
	return MakeID(m.body())
}

// IsBlock returns whether the message carries (or may carry) deploys.
func (m *Message) IsBlock() bool {
	return m.Kind == MessageKindBlock
}

// PrevMessage returns the hash of the producer's own previous message, cited
// through its self-justification. The second return value is false for a
// validator's first message in the era.
func (m *Message) PrevMessage() (Identifier, bool) {
	for _, just := range m.Justifications {
		if just.Validator == m.Validator {
			return just.Hash, true
		}
	}
	return ZeroID, false
}

// JustifiedHashes returns the hashes of all cited messages.
func (m *Message) JustifiedHashes() []Identifier {
	hashes := make([]Identifier, 0, len(m.Justifications))
	for _, just := range m.Justifications {
		hashes = append(hashes, just.Hash)
	}
	return hashes
}
