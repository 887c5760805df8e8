package operation

import (
	"github.com/forgechain/forge-go/model/forge"
)

const (
	// codes for committed-entity lookups
	codeCommittedTransaction = 10
	codeCommittedBatch       = 11
)

func makePrefix(code byte, id forge.Identifier) []byte {
	key := make([]byte, 0, 1+len(id))
	key = append(key, code)
	key = append(key, id[:]...)
	return key
}
