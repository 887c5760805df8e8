package forge_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/utils/unittest"
)

func TestIdentifierHexRoundTrip(t *testing.T) {
	id := unittest.IdentifierFixture()

	decoded, err := forge.HexStringToIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = forge.HexStringToIdentifier("not-hex")
	assert.Error(t, err)

	_, err = forge.HexStringToIdentifier("abcdef")
	assert.Error(t, err)
}

func TestIdentifierFormat(t *testing.T) {
	id := unittest.IdentifierFixture()
	assert.Equal(t, id.String(), fmt.Sprintf("%x", id))
	assert.Equal(t, id.String(), fmt.Sprintf("%v", id))
}

func TestTransactionID(t *testing.T) {
	txn := unittest.TransactionFixture()

	// the identifier is deterministic
	assert.Equal(t, txn.ID(), txn.ID())

	// any content change produces a different identifier
	modified := *txn
	modified.Payload = append([]byte{}, txn.Payload...)
	modified.Payload[0]++
	assert.NotEqual(t, txn.ID(), modified.ID())

	modified = *txn
	modified.Header.Nonce++
	assert.NotEqual(t, txn.ID(), modified.ID())

	modified = *txn
	modified.Header.Dependencies = append(modified.Header.Dependencies, unittest.IdentifierFixture())
	assert.NotEqual(t, txn.ID(), modified.ID())
}

func TestBatchID(t *testing.T) {
	txn1 := unittest.TransactionFixture()
	txn2 := unittest.TransactionFixture()
	signerKey := unittest.PublicKeyFixture()

	batch := forge.BatchFromTransactions(signerKey, []*forge.Transaction{txn1, txn2})
	require.Equal(t, 2, batch.Len())
	assert.Equal(t, []forge.Identifier{txn1.ID(), txn2.ID()}, batch.Header.TransactionIDs)

	// transaction order is part of the commitment
	reordered := forge.BatchFromTransactions(signerKey, []*forge.Transaction{txn2, txn1})
	assert.NotEqual(t, batch.ID(), reordered.ID())

	// the trace flag is diagnostics, not content
	traced := *batch
	traced.Trace = true
	assert.Equal(t, batch.ID(), traced.ID())
}

func TestBlockID(t *testing.T) {
	block := unittest.BlockFixture()

	assert.Equal(t, block.Header.ID(), block.ID())

	// the signature is excluded from the identifier
	signed := *block.Header
	signed.Signature = []byte("signature")
	assert.Equal(t, block.Header.ID(), signed.ID())

	// the consensus payload is part of it
	withConsensus := *block.Header
	withConsensus.Consensus = []byte("consensus")
	assert.NotEqual(t, block.Header.ID(), withConsensus.ID())
}

func TestBlockBatchIDs(t *testing.T) {
	batches := unittest.BatchListFixture(3)
	block := unittest.BlockFixture(batches...)

	ids := block.BatchIDs()
	require.Len(t, ids, 3)
	for i, batch := range batches {
		assert.Equal(t, batch.ID(), ids[i])
		assert.True(t, ids.Contains(batch.ID()))
	}
	assert.False(t, ids.Contains(unittest.IdentifierFixture()))
	assert.Equal(t, ids[0].String(), ids.Strings()[0])
}

func TestBatchResultAllValid(t *testing.T) {
	result := &forge.BatchResult{
		TransactionResults: []forge.TransactionResult{
			{TransactionID: unittest.IdentifierFixture(), Valid: true},
			{TransactionID: unittest.IdentifierFixture(), Valid: true},
		},
	}
	assert.True(t, result.AllValid())

	result.TransactionResults[1].Valid = false
	assert.False(t, result.AllValid())
}
