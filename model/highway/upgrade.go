package highway

// Upgrade is a scheduled protocol upgrade: an opaque installer payload the
// execution engine activates for blocks from a given round onward. Like
// deploy bodies, the installer is never interpreted by the pipeline; it is
// only forwarded to the execution engine together with the block's deploys.
type Upgrade struct {
	// ActivationRound is the first round at which the upgrade is in effect.
	ActivationRound uint64
	Installer       []byte
}

// ID returns the content address of the upgrade.
func (u Upgrade) ID() Identifier {
	return MakeID(u)
}
