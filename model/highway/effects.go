package highway

// TransformOp enumerates the state operations a deploy execution can produce.
type TransformOp uint8

const (
	TransformOpRead TransformOp = iota + 1
	TransformOpWrite
	TransformOpAdd
)

func (op TransformOp) String() string {
	switch op {
	case TransformOpRead:
		return "READ"
	case TransformOpWrite:
		return "WRITE"
	case TransformOpAdd:
		return "ADD"
	default:
		return "UNKNOWN"
	}
}

// Effect is a single (key, operation, transform) triple produced by
// executing a deploy against a pre-state root.
type Effect struct {
	Key   []byte
	Op    TransformOp
	Value []byte
}

// Bond records the stake a validator has locked for an era.
type Bond struct {
	Validator ValidatorID
	Stake     uint64
}

// BondSet is an ordered bond table. Order matters: it is part of era
// fingerprints and must be identical across nodes.
type BondSet []Bond

// Contains returns whether the validator holds a non-zero bond.
func (b BondSet) Contains(validator ValidatorID) bool {
	return b.StakeOf(validator) > 0
}

// StakeOf returns the stake bonded by the validator, or 0 if unbonded.
func (b BondSet) StakeOf(validator ValidatorID) uint64 {
	for _, bond := range b {
		if bond.Validator == validator {
			return bond.Stake
		}
	}
	return 0
}

// EffectBundle captures everything deterministic execution of a block
// produced: the ordered effects of its deploys, the resulting state root and
// the refreshed bond table. Ballots and equivocating messages carry an empty
// bundle by contract.
type EffectBundle struct {
	Effects       []Effect
	PostStateHash Identifier
	Bonds         BondSet
}

// EmptyEffectBundle returns the bundle persisted for messages that were
// deliberately not executed.
func EmptyEffectBundle() *EffectBundle {
	return &EffectBundle{}
}

// IsEmpty returns whether the bundle carries no execution result.
func (e *EffectBundle) IsEmpty() bool {
	return len(e.Effects) == 0 && e.PostStateHash == ZeroID && len(e.Bonds) == 0
}
