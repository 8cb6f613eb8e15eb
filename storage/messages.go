package storage

import (
	"github.com/casperlabs/highway/model/highway"
)

// Messages represents persistent storage for consensus messages and the
// execution effects committed alongside them.
type Messages interface {

	// Store persists the message together with its effect bundle atomically.
	// The bundle must be the empty bundle for ballots and for messages whose
	// execution was deliberately withheld.
	// Error returns:
	//   - ErrAlreadyExists if a message with the same ID was stored before
	Store(msg *highway.Message, effects *highway.EffectBundle) error

	// ByID retrieves the message with the given ID.
	// Error returns:
	//   - ErrNotFound if no message with the given ID is known
	ByID(msgID highway.Identifier) (*highway.Message, error)

	// ByIDUnsafe retrieves the message with the given ID and panics when it
	// is absent. It must only be used for messages the caller has proven to
	// be stored, e.g. justified ancestors of a validated message; a miss is
	// a bug in the caller.
	ByIDUnsafe(msgID highway.Identifier) *highway.Message

	// EffectsByID retrieves the effect bundle committed with the message.
	// Error returns:
	//   - ErrNotFound if no message with the given ID is known
	EffectsByID(msgID highway.Identifier) (*highway.EffectBundle, error)

	// Contains checks whether the message with the given ID is stored.
	Contains(msgID highway.Identifier) (bool, error)
}
