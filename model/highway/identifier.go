package highway

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Identifier is the content address of an entity within the protocol. All
// entities are identified by the blake2b-256 hash of their canonical
// encoding, so identifiers are stable across nodes and restarts.
type Identifier [32]byte

// ZeroID is the lowest value in the 32-byte ID space. It is used to denote
// the absence of a reference, e.g. the parent era of the root era.
var ZeroID = Identifier{}

// fingerprintMode encodes entities canonically, so that all honest nodes
// derive byte-identical fingerprints for semantically equal entities.
var fingerprintMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	var err error
	fingerprintMode, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not initialize canonical encoder: %s", err))
	}
}

// MakeID returns the content address of the given entity. It must only be
// called on entities whose canonical encoding is well-defined; an encoding
// failure indicates a bug in the caller and results in a panic.
func MakeID(entity interface{}) Identifier {
	fp, err := fingerprintMode.Marshal(entity)
	if err != nil {
		panic(fmt.Sprintf("could not fingerprint entity: %s", err))
	}
	return HashToID(fp)
}

// HashToID hashes arbitrary bytes into the identifier space.
func HashToID(data []byte) Identifier {
	return Identifier(blake2b.Sum256(data))
}

func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// Format handles formatting of id for different verbs. This is called when
// formatting an identifier with fmt.
func (id Identifier) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		_, _ = state.Write([]byte(id.String()))
	default:
		_, _ = state.Write([]byte(fmt.Sprintf("%%!%c(%s=%s)", verb, "Identifier", id.String())))
	}
}

// MarshalText implements encoding.TextMarshaler, so identifiers render as
// hex in structured logs and JSON-ish encodings.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("could not decode identifier: %w", err)
	}
	if len(raw) != len(id) {
		return fmt.Errorf("invalid identifier length (%d != %d)", len(raw), len(id))
	}
	copy(id[:], raw)
	return nil
}
