package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/storage"
	"github.com/forgechain/forge-go/storage/badger/operation"
)

// DefaultCacheSize is the number of positive transaction lookups kept in
// memory. Admission checks every transaction of every submitted batch
// against the store, and recently committed transactions are the ones
// resubmitted most often by racing peers.
const DefaultCacheSize = 10_000

// CommitStore implements a durable record of committed transactions and
// batches, backed by badger. Committed entries are immutable, so positive
// lookups can be cached indefinitely; negative lookups always hit the
// database.
type CommitStore struct {
	db       *badger.DB
	txnCache *lru.Cache
}

// NewCommitStore creates a commit store on the given badger instance.
func NewCommitStore(db *badger.DB) (*CommitStore, error) {
	txnCache, err := lru.New(DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not initialize transaction cache: %w", err)
	}
	c := &CommitStore{
		db:       db,
		txnCache: txnCache,
	}
	return c, nil
}

// ContainsTransaction checks whether the transaction with the given ID has
// been durably committed.
func (c *CommitStore) ContainsTransaction(txID forge.Identifier) (bool, error) {
	if c.txnCache.Contains(txID) {
		return true, nil
	}
	var exists bool
	err := c.db.View(operation.CheckCommittedTransaction(txID, &exists))
	if err != nil {
		return false, fmt.Errorf("could not check committed transaction: %w", err)
	}
	if exists {
		c.txnCache.Add(txID, struct{}{})
	}
	return exists, nil
}

// ContainsBatch checks whether the batch with the given ID has been durably
// committed.
func (c *CommitStore) ContainsBatch(batchID forge.Identifier) (bool, error) {
	var exists bool
	err := c.db.View(operation.CheckCommittedBatch(batchID, &exists))
	if err != nil {
		return false, fmt.Errorf("could not check committed batch: %w", err)
	}
	return exists, nil
}

// MarkBlockCommitted records every batch and transaction of the given block
// as durably committed. It is called by the chain-commit layer after the
// block has been appended to the ledger; the block-construction path only
// ever reads.
func (c *CommitStore) MarkBlockCommitted(block *forge.Block) error {
	record := &storage.CommitRecord{
		BlockID: block.ID(),
		Height:  block.Header.Height,
	}
	err := c.db.Update(func(tx *badger.Txn) error {
		for _, batch := range block.Batches {
			err := operation.InsertCommittedBatch(batch.ID(), record)(tx)
			if err != nil {
				return fmt.Errorf("could not insert committed batch (%x): %w", batch.ID(), err)
			}
			for _, txn := range batch.Transactions {
				err = operation.InsertCommittedTransaction(txn.ID(), record)(tx)
				if err != nil {
					return fmt.Errorf("could not insert committed transaction (%x): %w", txn.ID(), err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not mark block committed: %w", err)
	}
	return nil
}
