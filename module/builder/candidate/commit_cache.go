package candidate

import (
	"fmt"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/storage"
)

// TransactionCommitCache tracks the transactions considered committed from
// the perspective of one candidate block: those durably committed in the
// commit store plus those provisionally committed by batches accepted into
// the candidate so far.
//
// Two instances exist over a candidate's lifetime: the admission-time cache,
// grown incrementally as batches are accepted, and a reconciliation-time
// cache rebuilt after execution, seeded from durable state only. The caches
// are not safe for concurrent use; the candidate is their only writer.
type TransactionCommitCache struct {
	commitStore storage.CommitStore
	committed   map[forge.Identifier]struct{}
}

func NewTransactionCommitCache(commitStore storage.CommitStore) *TransactionCommitCache {
	return &TransactionCommitCache{
		commitStore: commitStore,
		committed:   make(map[forge.Identifier]struct{}),
	}
}

// Add marks a single transaction as provisionally committed.
func (c *TransactionCommitCache) Add(txID forge.Identifier) {
	c.committed[txID] = struct{}{}
}

// AddBatch marks all transactions of the batch as provisionally committed.
func (c *TransactionCommitCache) AddBatch(batch *forge.Batch) {
	for _, txn := range batch.Transactions {
		c.Add(txn.ID())
	}
}

// RemoveBatch rolls back the provisional commitment of all transactions of
// the batch. Durable commitments are unaffected.
func (c *TransactionCommitCache) RemoveBatch(batch *forge.Batch) {
	for _, txn := range batch.Transactions {
		delete(c.committed, txn.ID())
	}
}

// Contains reports whether the transaction is committed, either
// provisionally within the candidate or durably in the commit store.
func (c *TransactionCommitCache) Contains(txID forge.Identifier) (bool, error) {
	if _, ok := c.committed[txID]; ok {
		return true, nil
	}
	committed, err := c.commitStore.ContainsTransaction(txID)
	if err != nil {
		return false, fmt.Errorf("could not check commit store: %w", err)
	}
	return committed, nil
}
