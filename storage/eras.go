package storage

import (
	"github.com/casperlabs/highway/model/highway"
)

// Eras represents persistent storage for era records, keyed by the hash of
// the era's key block.
type Eras interface {

	// Store persists the era record.
	// Error returns:
	//   - ErrAlreadyExists if an era with the same key block was stored before
	Store(era *highway.Era) error

	// ByKeyBlock retrieves the era started by the given key block.
	// Error returns:
	//   - ErrNotFound if no era with the given key block is known
	ByKeyBlock(keyBlock highway.Identifier) (*highway.Era, error)
}
