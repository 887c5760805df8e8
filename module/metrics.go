package module

// Rejection reason labels reported through CandidateMetrics.BatchRejected.
const (
	ReasonAlreadyCommitted  = "already_committed"
	ReasonMissingDependency = "missing_dependency"
	ReasonRuleViolation     = "rule_violation"
	ReasonRuleError         = "rule_error"
)

// CandidateMetrics exposes instrumentation hooks for the candidate-block
// state machine. Rejections are reported per reason so that the expected
// policy drops (duplicates, dependency races) can be told apart from rule
// violations when operating the validator.
type CandidateMetrics interface {

	// BatchAdmitted reports a batch accepted into the pending set.
	BatchAdmitted()

	// BatchRejected reports a batch dropped at admission time, with one of
	// the Reason* labels above.
	BatchRejected(reason string)

	// BatchesInjected reports the number of batches obtained from injectors
	// for one candidate.
	BatchesInjected(count int)

	// PendingBatches reports the current size of the pending set.
	PendingBatches(count int)

	// BlockSummarized reports a successful summary over the given number of
	// surviving batches.
	BlockSummarized(batchCount int)

	// BlockAbandoned reports a summarization attempt that produced no block.
	BlockAbandoned()

	// BlockFinalized reports a completed finalization with a block payload.
	BlockFinalized()
}
