package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bstorage "github.com/forgechain/forge-go/storage/badger"
	"github.com/forgechain/forge-go/utils/unittest"
)

func TestCommitStoreLookups(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store, err := bstorage.NewCommitStore(db)
		require.NoError(t, err)

		block := unittest.BlockFixture(unittest.BatchFixture(2), unittest.BatchFixture(1))

		// nothing is committed yet
		for _, batch := range block.Batches {
			committed, err := store.ContainsBatch(batch.ID())
			require.NoError(t, err)
			assert.False(t, committed)
			for _, txn := range batch.Transactions {
				committed, err = store.ContainsTransaction(txn.ID())
				require.NoError(t, err)
				assert.False(t, committed)
			}
		}

		require.NoError(t, store.MarkBlockCommitted(block))

		for _, batch := range block.Batches {
			committed, err := store.ContainsBatch(batch.ID())
			require.NoError(t, err)
			assert.True(t, committed)
			for _, txn := range batch.Transactions {
				committed, err = store.ContainsTransaction(txn.ID())
				require.NoError(t, err)
				assert.True(t, committed)
			}
		}

		// unrelated identifiers stay unknown
		committed, err := store.ContainsBatch(unittest.IdentifierFixture())
		require.NoError(t, err)
		assert.False(t, committed)

		committed, err = store.ContainsTransaction(unittest.IdentifierFixture())
		require.NoError(t, err)
		assert.False(t, committed)
	})
}

func TestCommitStoreSurvivesReopen(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		block := unittest.BlockFixture()

		db := unittest.BadgerDB(t, dir)
		store, err := bstorage.NewCommitStore(db)
		require.NoError(t, err)
		require.NoError(t, store.MarkBlockCommitted(block))
		require.NoError(t, db.Close())

		db = unittest.BadgerDB(t, dir)
		defer db.Close()
		store, err = bstorage.NewCommitStore(db)
		require.NoError(t, err)

		committed, err := store.ContainsBatch(block.Batches[0].ID())
		require.NoError(t, err)
		assert.True(t, committed)

		committed, err = store.ContainsTransaction(block.Batches[0].Transactions[0].ID())
		require.NoError(t, err)
		assert.True(t, committed)
	})
}
