package forge

// TransactionHeader holds the metadata of a transaction. Dependencies lists
// the identifiers of transactions that must be committed, or appear earlier
// in the same candidate block, before this transaction may be admitted.
type TransactionHeader struct {
	SignerPublicKey []byte
	FamilyName      string
	Dependencies    []Identifier
	Nonce           uint64
}

// Transaction is a single unit of work, admitted into blocks as part of a
// batch. Transactions are immutable once constructed.
type Transaction struct {
	Header  TransactionHeader
	Payload []byte
}

// Fingerprint returns the canonical byte encoding of the transaction.
func (tx *Transaction) Fingerprint() []byte {
	var f fingerprinter
	f.writeBytes(tx.Header.SignerPublicKey)
	f.writeString(tx.Header.FamilyName)
	f.writeIdentifiers(tx.Header.Dependencies)
	f.writeUint64(tx.Header.Nonce)
	f.writeBytes(tx.Payload)
	return f.buf
}

// ID returns a cryptographic commitment to the transaction contents.
func (tx *Transaction) ID() Identifier {
	return HashToID(tx.Fingerprint())
}
