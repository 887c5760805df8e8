package module

import (
	"errors"

	"github.com/forgechain/forge-go/model/forge"
)

// ErrSchedulerCancelled is returned by Scheduler.AddBatch, Finalize and
// Complete once the scheduler has been cancelled. Cancellation is an
// expected outcome of a fork switch, not a structural failure, so every
// entry point reports it with the same sentinel.
var ErrSchedulerCancelled = errors.New("scheduler cancelled")

// Scheduler executes the batches of one candidate block speculatively, in
// the background. AddBatch only submits work and never blocks; Complete is
// the single blocking call of the contract.
//
// A scheduler instance is scoped to one candidate block and cannot be
// reused after Finalize or Cancel.
type Scheduler interface {

	// AddBatch submits a batch for speculative execution. The predecessor
	// hint, if not ZeroID, names the batch whose results this batch builds
	// on. Injected batches are tagged so that their failures can be
	// special-cased downstream.
	AddBatch(batch *forge.Batch, predecessor forge.Identifier, injected bool) error

	// Finalize stops the scheduler from accepting new batches. If
	// flushPending is true, batches already submitted are still executed;
	// otherwise queued work that has not started yet is discarded.
	Finalize(flushPending bool) error

	// Complete returns the execution results. If block is true, the call
	// blocks until execution has settled or the scheduler is cancelled, in
	// which case it returns ErrSchedulerCancelled. If block is false and
	// execution has not settled, it returns nil results and no error.
	Complete(block bool) (*forge.ExecutionResults, error)

	// Cancel abandons all speculative execution for this candidate. It is
	// safe to call from any goroutine, at any time, repeatedly; a blocked
	// Complete call unblocks promptly.
	Cancel()
}
