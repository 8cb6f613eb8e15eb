package unittest

import (
	"crypto/ed25519"
	crand "crypto/rand"
	"fmt"

	"github.com/casperlabs/highway/model/highway"
)

func IdentifierFixture() highway.Identifier {
	var id highway.Identifier
	_, _ = crand.Read(id[:])
	return id
}

func IdentifierListFixture(n int) []highway.Identifier {
	list := make([]highway.Identifier, n)
	for i := 0; i < n; i++ {
		list[i] = IdentifierFixture()
	}
	return list
}

// PrivateKeyFixture generates a validator signing key.
func PrivateKeyFixture() ed25519.PrivateKey {
	_, priv, err := ed25519.GenerateKey(crand.Reader)
	if err != nil {
		panic(fmt.Sprintf("could not generate key: %s", err))
	}
	return priv
}

// ValidatorIDOf derives the validator identity of a signing key.
func ValidatorIDOf(priv ed25519.PrivateKey) highway.ValidatorID {
	return highway.ValidatorIDFromPublicKey(priv.Public().(ed25519.PublicKey))
}

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = crand.Read(b)
	return b
}

// WithEraBonds sets the bond table of an era fixture.
func WithEraBonds(bonds highway.BondSet) func(*highway.Era) {
	return func(era *highway.Era) {
		era.Bonds = bonds
	}
}

// WithEraUpgrades schedules protocol upgrades on an era fixture.
func WithEraUpgrades(upgrades ...highway.Upgrade) func(*highway.Era) {
	return func(era *highway.Era) {
		era.Upgrades = upgrades
	}
}

// WithEraRounds sets the tick range of an era fixture.
func WithEraRounds(start, end uint64) func(*highway.Era) {
	return func(era *highway.Era) {
		era.StartRound = start
		era.EndRound = end
	}
}

func EraFixture(opts ...func(*highway.Era)) *highway.Era {
	era := &highway.Era{
		KeyBlock:   IdentifierFixture(),
		Parent:     highway.ZeroID,
		StartRound: 0,
		EndRound:   1000,
	}
	for _, opt := range opts {
		opt(era)
	}
	return era
}

// BondedValidatorsFixture generates n validator keys and an era bonding all
// of them with equal stake.
func BondedValidatorsFixture(n int) ([]ed25519.PrivateKey, *highway.Era) {
	keys := make([]ed25519.PrivateKey, n)
	bonds := make(highway.BondSet, 0, n)
	for i := 0; i < n; i++ {
		keys[i] = PrivateKeyFixture()
		bonds = append(bonds, highway.Bond{
			Validator: ValidatorIDOf(keys[i]),
			Stake:     1000,
		})
	}
	return keys, EraFixture(WithEraBonds(bonds))
}

// UpgradeFixture returns a protocol upgrade activating at the given round.
func UpgradeFixture(activationRound uint64) highway.Upgrade {
	return highway.Upgrade{
		ActivationRound: activationRound,
		Installer:       RandomBytes(64),
	}
}

func WithDeployTimestamp(timestamp uint64) func(*highway.Deploy) {
	return func(deploy *highway.Deploy) {
		deploy.Timestamp = timestamp
	}
}

func WithDeployTTL(ttl uint64) func(*highway.Deploy) {
	return func(deploy *highway.Deploy) {
		deploy.TTL = ttl
	}
}

func DeployFixture(opts ...func(*highway.Deploy)) highway.Deploy {
	deploy := highway.Deploy{
		Account:   IdentifierFixture(),
		Timestamp: 1000,
		TTL:       3600_000,
		Body:      RandomBytes(32),
	}
	for _, opt := range opts {
		opt(&deploy)
	}
	return deploy
}

func DeployListFixture(n int) []highway.Deploy {
	deploys := make([]highway.Deploy, 0, n)
	for i := 0; i < n; i++ {
		deploys = append(deploys, DeployFixture())
	}
	return deploys
}

type MessageOpt func(*highway.Message)

func WithKind(kind highway.MessageKind) MessageOpt {
	return func(msg *highway.Message) {
		msg.Kind = kind
	}
}

func WithValidator(validator highway.ValidatorID) MessageOpt {
	return func(msg *highway.Message) {
		msg.Validator = validator
	}
}

func WithEra(era *highway.Era) MessageOpt {
	return func(msg *highway.Message) {
		msg.EraID = era.KeyBlock
		msg.Parent = era.KeyBlock
	}
}

func WithRound(round uint64) MessageOpt {
	return func(msg *highway.Message) {
		msg.Round = round
	}
}

func WithDeploys(deploys []highway.Deploy) MessageOpt {
	return func(msg *highway.Message) {
		msg.Deploys = deploys
	}
}

// WithPrevMessage makes the fixture the direct lineage successor of prev:
// it cites prev as parent and self-justification and advances rank and
// sequence number accordingly.
func WithPrevMessage(prev *highway.Message) MessageOpt {
	return func(msg *highway.Message) {
		msg.Validator = prev.Validator
		msg.EraID = prev.EraID
		msg.Parent = prev.ID()
		msg.SeqNum = prev.SeqNum + 1
		msg.Rank = prev.Rank + 1
		msg.Justifications = append(msg.Justifications, highway.Justification{
			Validator: prev.Validator,
			Hash:      prev.ID(),
		})
	}
}

// WithJustification adds a citation of another validator's message and lifts
// the rank above it if needed.
func WithJustification(cited *highway.Message) MessageOpt {
	return func(msg *highway.Message) {
		msg.Justifications = append(msg.Justifications, highway.Justification{
			Validator: cited.Validator,
			Hash:      cited.ID(),
		})
		if msg.Rank <= cited.Rank {
			msg.Rank = cited.Rank + 1
		}
	}
}

// MessageFixture returns an unsigned first message of a random validator in
// a random era. Options mutate it before return; sign it afterwards with
// SignedMessageFixture or highway.SignMessage.
func MessageFixture(opts ...MessageOpt) *highway.Message {
	era := IdentifierFixture()
	msg := &highway.Message{
		Kind:      highway.MessageKindBlock,
		Validator: ValidatorIDOf(PrivateKeyFixture()),
		SeqNum:    1,
		Rank:      1,
		EraID:     era,
		Parent:    era,
		Round:     1,
		Timestamp: 1_000_000,
	}
	for _, opt := range opts {
		opt(msg)
	}
	return msg
}

// SignedMessageFixture returns a message fixture signed by the given key,
// with the validator identity set to match.
func SignedMessageFixture(priv ed25519.PrivateKey, opts ...MessageOpt) *highway.Message {
	msg := MessageFixture(opts...)
	msg.Validator = ValidatorIDOf(priv)
	highway.SignMessage(priv, msg)
	return msg
}

// EffectBundleFixture returns a non-empty effect bundle.
func EffectBundleFixture() *highway.EffectBundle {
	return &highway.EffectBundle{
		Effects: []highway.Effect{
			{Key: RandomBytes(8), Op: highway.TransformOpWrite, Value: RandomBytes(16)},
			{Key: RandomBytes(8), Op: highway.TransformOpAdd, Value: RandomBytes(16)},
		},
		PostStateHash: IdentifierFixture(),
		Bonds: highway.BondSet{
			{Validator: ValidatorIDOf(PrivateKeyFixture()), Stake: 500},
		},
	}
}
