package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgechain/forge-go/storage"
	"github.com/forgechain/forge-go/utils/unittest"
)

func TestCommittedTransactionInsertCheckRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		txID := unittest.IdentifierFixture()
		record := &storage.CommitRecord{
			BlockID: unittest.IdentifierFixture(),
			Height:  42,
		}

		var exists bool
		require.NoError(t, db.View(CheckCommittedTransaction(txID, &exists)))
		assert.False(t, exists)

		require.NoError(t, db.Update(InsertCommittedTransaction(txID, record)))

		require.NoError(t, db.View(CheckCommittedTransaction(txID, &exists)))
		assert.True(t, exists)

		var retrieved storage.CommitRecord
		require.NoError(t, db.View(RetrieveCommittedTransaction(txID, &retrieved)))
		assert.Equal(t, *record, retrieved)
	})
}

func TestCommittedBatchInsertCheckRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		batchID := unittest.IdentifierFixture()
		record := &storage.CommitRecord{
			BlockID: unittest.IdentifierFixture(),
			Height:  7,
		}

		var exists bool
		require.NoError(t, db.View(CheckCommittedBatch(batchID, &exists)))
		assert.False(t, exists)

		require.NoError(t, db.Update(InsertCommittedBatch(batchID, record)))

		require.NoError(t, db.View(CheckCommittedBatch(batchID, &exists)))
		assert.True(t, exists)

		var retrieved storage.CommitRecord
		require.NoError(t, db.View(RetrieveCommittedBatch(batchID, &retrieved)))
		assert.Equal(t, *record, retrieved)
	})
}
