package forge

// BlockHeader contains the consensus-relevant metadata of a block. The
// Consensus field carries opaque bytes attached by the consensus algorithm
// at finalization time; the header is signed over its unsigned fingerprint.
type BlockHeader struct {
	PreviousID      Identifier
	Height          uint64
	Timestamp       uint64
	BatchDigest     []byte
	StateRoot       []byte
	Consensus       []byte
	SignerPublicKey []byte
	Signature       []byte
}

// Fingerprint returns the canonical byte encoding of the header without the
// signature, which is the message signed by the identity signer.
func (h *BlockHeader) Fingerprint() []byte {
	var f fingerprinter
	f.writeIdentifier(h.PreviousID)
	f.writeUint64(h.Height)
	f.writeUint64(h.Timestamp)
	f.writeBytes(h.BatchDigest)
	f.writeBytes(h.StateRoot)
	f.writeBytes(h.Consensus)
	f.writeBytes(h.SignerPublicKey)
	return f.buf
}

// ID returns a cryptographic commitment to the unsigned header.
func (h *BlockHeader) ID() Identifier {
	return HashToID(h.Fingerprint())
}

// Block is a sealed unit of the ledger: a signed header plus the ordered
// batches it commits to.
type Block struct {
	Header  *BlockHeader
	Batches []*Batch
}

// ID returns the block identifier, which is the identifier of its header.
func (b *Block) ID() Identifier {
	return b.Header.ID()
}

// BatchIDs returns the identifiers of the block's batches, in block order.
func (b *Block) BatchIDs() IdentifierList {
	ids := make(IdentifierList, 0, len(b.Batches))
	for _, batch := range b.Batches {
		ids = append(ids, batch.ID())
	}
	return ids
}
