package unittest

import (
	crand "crypto/rand"
	"fmt"
	"time"

	"github.com/forgechain/forge-go/model/forge"
)

// IdentifierFixture returns a random identifier.
func IdentifierFixture() forge.Identifier {
	var id forge.Identifier
	_, err := crand.Read(id[:])
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %s", err))
	}
	return id
}

// IdentifierListFixture returns a list of n random identifiers.
func IdentifierListFixture(n int) []forge.Identifier {
	ids := make([]forge.Identifier, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, IdentifierFixture())
	}
	return ids
}

// PublicKeyFixture returns random bytes shaped like a compressed public key.
func PublicKeyFixture() []byte {
	key := make([]byte, 33)
	_, err := crand.Read(key)
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %s", err))
	}
	return key
}

// TransactionFixture returns a transaction with a random payload, modified
// by any given options.
func TransactionFixture(opts ...func(*forge.Transaction)) *forge.Transaction {
	payload := make([]byte, 32)
	_, err := crand.Read(payload)
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %s", err))
	}
	txn := &forge.Transaction{
		Header: forge.TransactionHeader{
			SignerPublicKey: PublicKeyFixture(),
			FamilyName:      "intkey",
		},
		Payload: payload,
	}
	for _, opt := range opts {
		opt(txn)
	}
	return txn
}

// WithFamily sets the transaction family name.
func WithFamily(family string) func(*forge.Transaction) {
	return func(txn *forge.Transaction) {
		txn.Header.FamilyName = family
	}
}

// WithTransactionSigner sets the transaction signer public key.
func WithTransactionSigner(key []byte) func(*forge.Transaction) {
	return func(txn *forge.Transaction) {
		txn.Header.SignerPublicKey = key
	}
}

// WithDependencies declares the given transactions as dependencies.
func WithDependencies(deps ...*forge.Transaction) func(*forge.Transaction) {
	return func(txn *forge.Transaction) {
		for _, dep := range deps {
			txn.Header.Dependencies = append(txn.Header.Dependencies, dep.ID())
		}
	}
}

// BatchFixture returns a batch of n random transactions.
func BatchFixture(n int) *forge.Batch {
	txns := make([]*forge.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txns = append(txns, TransactionFixture())
	}
	return forge.BatchFromTransactions(PublicKeyFixture(), txns)
}

// BatchWithTransactionsFixture returns a batch wrapping the given
// transactions.
func BatchWithTransactionsFixture(txns ...*forge.Transaction) *forge.Batch {
	return forge.BatchFromTransactions(PublicKeyFixture(), txns)
}

// BatchListFixture returns n batches of one random transaction each.
func BatchListFixture(n int) []*forge.Batch {
	batches := make([]*forge.Batch, 0, n)
	for i := 0; i < n; i++ {
		batches = append(batches, BatchFixture(1))
	}
	return batches
}

// BlockHeaderFixture returns a header with random parentage at a random
// height, modified by any given options.
func BlockHeaderFixture(opts ...func(*forge.BlockHeader)) *forge.BlockHeader {
	previousID := IdentifierFixture()
	header := &forge.BlockHeader{
		PreviousID:      previousID,
		Height:          1 + uint64(previousID[0]),
		Timestamp:       uint64(time.Now().Unix()),
		SignerPublicKey: PublicKeyFixture(),
	}
	for _, opt := range opts {
		opt(header)
	}
	return header
}

// BlockFixture returns a block with the given batches, or one random batch
// when called without arguments.
func BlockFixture(batches ...*forge.Batch) *forge.Block {
	if len(batches) == 0 {
		batches = BatchListFixture(1)
	}
	return &forge.Block{
		Header:  BlockHeaderFixture(),
		Batches: batches,
	}
}

// StateRootFixture returns random bytes shaped like a state root hash.
func StateRootFixture() []byte {
	root := make([]byte, 32)
	_, err := crand.Read(root)
	if err != nil {
		panic(fmt.Sprintf("could not read random bytes: %s", err))
	}
	return root
}
