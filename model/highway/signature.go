package highway

import (
	"crypto/ed25519"

	"github.com/hdevalence/ed25519consensus"
)

// SignMessage signs the message's content address with the given private key
// and attaches the detached signature. The private key must belong to the
// validator named in the message.
func SignMessage(priv ed25519.PrivateKey, msg *Message) {
	id := msg.ID()
	msg.Signature = ed25519.Sign(priv, id[:])
}

// VerifyMessageSignature checks the detached signature against the message's
// content address and embedded public key. It uses ZIP215 verification so
// all nodes accept exactly the same signature set.
func VerifyMessageSignature(msg *Message) bool {
	if len(msg.Signature) == 0 {
		return false
	}
	id := msg.ID()
	return ed25519consensus.Verify(msg.Validator.PublicKey(), id[:], msg.Signature)
}
