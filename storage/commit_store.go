package storage

import (
	"github.com/forgechain/forge-go/model/forge"
)

// CommitStore gives access to the durable record of committed transactions
// and batches. From the perspective of block construction the store is
// read-only; the write path is driven by the chain-commit layer after a
// block is appended to the ledger.
type CommitStore interface {

	// ContainsTransaction checks whether the transaction with the given
	// identifier has been durably committed.
	ContainsTransaction(txID forge.Identifier) (bool, error)

	// ContainsBatch checks whether the batch with the given identifier has
	// been durably committed.
	ContainsBatch(batchID forge.Identifier) (bool, error)
}
