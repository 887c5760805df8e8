package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/storage"
)

// InsertCommittedTransaction marks the transaction with the given ID as
// durably committed, recording which block committed it.
func InsertCommittedTransaction(txID forge.Identifier, record *storage.CommitRecord) func(*badger.Txn) error {
	return insert(makePrefix(codeCommittedTransaction, txID), record)
}

// CheckCommittedTransaction checks whether the transaction with the given ID
// has been marked as committed.
func CheckCommittedTransaction(txID forge.Identifier, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeCommittedTransaction, txID), exists)
}

// RetrieveCommittedTransaction retrieves the commit record for the
// transaction with the given ID.
func RetrieveCommittedTransaction(txID forge.Identifier, record *storage.CommitRecord) func(*badger.Txn) error {
	return retrieve(makePrefix(codeCommittedTransaction, txID), record)
}

// InsertCommittedBatch marks the batch with the given ID as durably
// committed, recording which block committed it.
func InsertCommittedBatch(batchID forge.Identifier, record *storage.CommitRecord) func(*badger.Txn) error {
	return insert(makePrefix(codeCommittedBatch, batchID), record)
}

// CheckCommittedBatch checks whether the batch with the given ID has been
// marked as committed.
func CheckCommittedBatch(batchID forge.Identifier, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeCommittedBatch, batchID), exists)
}

// RetrieveCommittedBatch retrieves the commit record for the batch with the
// given ID.
func RetrieveCommittedBatch(batchID forge.Identifier, record *storage.CommitRecord) func(*badger.Txn) error {
	return retrieve(makePrefix(codeCommittedBatch, batchID), record)
}
