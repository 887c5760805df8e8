// Package assembler provides the in-memory block assembler that accumulates
// the surviving batches of a candidate and produces the final block object.
package assembler

import (
	"fmt"
	"time"

	"github.com/forgechain/forge-go/model/forge"
)

// BlockAssembler implements module.BlockAssembler. It is not safe for
// concurrent use; the candidate state machine is its only caller.
type BlockAssembler struct {
	header  forge.BlockHeader
	batches []*forge.Batch
	built   bool
}

// NewBlockAssembler creates an assembler for a block extending the given
// previous block, stamped with the local signer's public key.
func NewBlockAssembler(previous *forge.Block, signerPublicKey []byte) *BlockAssembler {
	return &BlockAssembler{
		header: forge.BlockHeader{
			PreviousID:      previous.ID(),
			Height:          previous.Header.Height + 1,
			Timestamp:       uint64(time.Now().Unix()),
			SignerPublicKey: signerPublicKey,
		},
	}
}

func (a *BlockAssembler) AddBatch(batch *forge.Batch) {
	a.batches = append(a.batches, batch)
}

func (a *BlockAssembler) Batches() []*forge.Batch {
	return a.batches
}

func (a *BlockAssembler) SetStateRoot(stateRoot []byte) {
	a.header.StateRoot = stateRoot
}

func (a *BlockAssembler) SetConsensus(consensus []byte) {
	a.header.Consensus = consensus
}

// SetBatchDigest records the summary digest over the final batch sequence.
func (a *BlockAssembler) SetBatchDigest(digest []byte) {
	a.header.BatchDigest = digest
}

func (a *BlockAssembler) HeaderFingerprint() []byte {
	return a.header.Fingerprint()
}

func (a *BlockAssembler) SetSignature(sig []byte) {
	a.header.Signature = sig
}

// Build produces the final block. It errors if no batches were added or the
// header was never signed, both of which indicate a broken caller sequence.
func (a *BlockAssembler) Build() (*forge.Block, error) {
	if len(a.batches) == 0 {
		return nil, fmt.Errorf("refusing to build block with no batches")
	}
	if len(a.header.Signature) == 0 {
		return nil, fmt.Errorf("refusing to build block with unsigned header")
	}
	if a.built {
		return nil, fmt.Errorf("block already built")
	}
	a.built = true
	header := a.header
	return &forge.Block{
		Header:  &header,
		Batches: a.batches,
	}, nil
}
