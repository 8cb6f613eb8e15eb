package highway

// Era is a protocol epoch, identified by the hash of its key block (the
// first block of the era). Eras partition the DAG: equivocation detection
// and bonding checks are scoped to the lineage of one key block.
type Era struct {
	// KeyBlock is the hash of the block that started the era.
	KeyBlock Identifier
	// Parent is the key block of the parent era, or ZeroID for the root era.
	Parent Identifier
	// StartRound and EndRound bound the era's tick range.
	StartRound uint64
	EndRound   uint64
	// Bonds is the bond table governing who may produce messages in the era.
	Bonds BondSet
	// Upgrades are the protocol upgrades scheduled within the era, ordered
	// by activation round.
	Upgrades []Upgrade
}

// IsBonded returns whether the validator may produce messages in this era.
func (e *Era) IsBonded(validator ValidatorID) bool {
	return e.Bonds.Contains(validator)
}

// ContainsRound returns whether the tick falls within the era.
func (e *Era) ContainsRound(round uint64) bool {
	return round >= e.StartRound && round <= e.EndRound
}

// ActiveUpgrades returns the scheduled upgrades in effect at the given round.
func (e *Era) ActiveUpgrades(round uint64) []Upgrade {
	var active []Upgrade
	for _, upgrade := range e.Upgrades {
		if upgrade.ActivationRound <= round {
			active = append(active, upgrade)
		}
	}
	return active
}
