package operation

import (
	"fmt"

	"github.com/casperlabs/highway/model/highway"
)

const (

	// codes for entities
	codeMessage      = 10
	codeEffects      = 11
	codeEra          = 12
	codeDeployStatus = 13
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, keyToBytes(key)...)
	}
	return prefix
}

func keyToBytes(key interface{}) []byte {
	switch k := key.(type) {
	case highway.Identifier:
		return k[:]
	case highway.ValidatorID:
		return k[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", key))
	}
}
