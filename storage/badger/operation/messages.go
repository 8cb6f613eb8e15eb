package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/casperlabs/highway/model/highway"
)

func InsertMessage(msgID highway.Identifier, msg *highway.Message) func(*badger.Txn) error {
	return insert(makePrefix(codeMessage, msgID), msg)
}

func RetrieveMessage(msgID highway.Identifier, msg *highway.Message) func(*badger.Txn) error {
	return retrieve(makePrefix(codeMessage, msgID), msg)
}

func CheckMessage(msgID highway.Identifier, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeMessage, msgID), exists)
}

func InsertEffects(msgID highway.Identifier, effects *highway.EffectBundle) func(*badger.Txn) error {
	return insert(makePrefix(codeEffects, msgID), effects)
}

func RetrieveEffects(msgID highway.Identifier, effects *highway.EffectBundle) func(*badger.Txn) error {
	return retrieve(makePrefix(codeEffects, msgID), effects)
}
