package module

import (
	"github.com/forgechain/forge-go/model/forge"
)

// BlockAssembler accumulates the surviving batches of a candidate block and
// produces the final block object. It is the hand-off point between the
// candidate state machine, which decides what goes into the block, and the
// chain layer, which persists and publishes it.
type BlockAssembler interface {

	// AddBatch appends a batch to the block under assembly.
	AddBatch(batch *forge.Batch)

	// Batches returns the batches added so far, in insertion order.
	Batches() []*forge.Batch

	// SetStateRoot sets the ending state commitment on the block header.
	SetStateRoot(stateRoot []byte)

	// SetConsensus attaches the opaque consensus payload to the header.
	SetConsensus(consensus []byte)

	// SetBatchDigest records the summary digest over the final batch
	// sequence on the header.
	SetBatchDigest(digest []byte)

	// HeaderFingerprint returns the canonical encoding of the unsigned
	// header, which is the message to be signed.
	HeaderFingerprint() []byte

	// SetSignature sets the header signature.
	SetSignature(sig []byte)

	// Build produces the final block from the accumulated state.
	Build() (*forge.Block, error)
}
