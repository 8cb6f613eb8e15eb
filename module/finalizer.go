package module

import (
	"github.com/casperlabs/highway/model/highway"
)

// Finalizer is the multi-parent finality oracle. The message executor
// informs it of every newly persisted message; the finalizer may respond
// with a message that has just crossed the finality threshold.
type Finalizer interface {

	// OnMessageAdded notifies the finalizer of a newly persisted message.
	// It returns the newly finalized message, or nil if the addition did not
	// advance finality. Returning an error indicates an internal failure of
	// the finality logic; it never invalidates the already persisted message.
	OnMessageAdded(msg *highway.Message) (*highway.Message, error)
}
