package forge

// BatchHeader commits to the ordered transaction list of a batch.
type BatchHeader struct {
	SignerPublicKey []byte
	TransactionIDs  []Identifier
}

// Batch is an ordered, non-empty group of transactions. A batch is admitted
// into or rejected from a candidate block as a unit; its transactions are
// individually validated during execution. Immutable once constructed.
//
// Trace marks a batch for verbose diagnostics as it moves through the
// admission and finalization pipeline.
type Batch struct {
	Header       BatchHeader
	Transactions []*Transaction
	Trace        bool
}

// BatchFromTransactions constructs a batch over the given transactions,
// deriving the header transaction-ID list from their order.
func BatchFromTransactions(signerPublicKey []byte, txs []*Transaction) *Batch {
	txIDs := make([]Identifier, 0, len(txs))
	for _, tx := range txs {
		txIDs = append(txIDs, tx.ID())
	}
	return &Batch{
		Header: BatchHeader{
			SignerPublicKey: signerPublicKey,
			TransactionIDs:  txIDs,
		},
		Transactions: txs,
	}
}

// Fingerprint returns the canonical byte encoding of the batch header.
func (b *Batch) Fingerprint() []byte {
	var f fingerprinter
	f.writeBytes(b.Header.SignerPublicKey)
	f.writeIdentifiers(b.Header.TransactionIDs)
	return f.buf
}

// ID returns a cryptographic commitment to the batch, derived from the
// header's ordered transaction-ID sequence.
func (b *Batch) ID() Identifier {
	return HashToID(b.Fingerprint())
}

// Len returns the number of transactions in the batch.
func (b *Batch) Len() int {
	return len(b.Transactions)
}
