package forge

// TransactionResult is the execution verdict for a single transaction.
type TransactionResult struct {
	TransactionID Identifier
	Valid         bool
}

// BatchResult is the execution verdict for a whole batch.
type BatchResult struct {
	TransactionResults []TransactionResult
}

// AllValid reports whether every transaction in the batch executed
// successfully.
func (br *BatchResult) AllValid() bool {
	for _, txr := range br.TransactionResults {
		if !txr.Valid {
			return false
		}
	}
	return true
}

// ExecutionResults is the outcome of speculatively executing the batches of
// one candidate block. BatchResults maps every submitted batch identifier to
// its result; a nil value means execution never produced a result for that
// batch. EndingStateRoot is the state commitment after applying all executed
// batches, or nil if execution did not settle.
type ExecutionResults struct {
	BatchResults    map[Identifier]*BatchResult
	EndingStateRoot []byte
}

// FinalizeResult is returned when a candidate block is finalized. Block is
// nil when summarization concluded that no block should be published for
// this attempt. RemainingBatches must be resubmitted to the next candidate;
// InjectedBatchIDs lets the caller avoid requeueing injected batches.
type FinalizeResult struct {
	Block            *Block
	RemainingBatches []*Batch
	LastBatch        *Batch
	InjectedBatchIDs []Identifier
}
