// Package executor provides the speculative execution scheduler consumed by
// the candidate-block state machine. Batches are executed concurrently in
// the background while the candidate keeps admitting; the ending state root
// is folded deterministically in submission order once execution settles,
// so the outcome is independent of worker interleaving.
package executor

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/module"
)

// TransactionProcessor executes a single transaction against speculative
// state and reports whether it is valid. Implementations are supplied by
// the transaction-family runtime; the executor itself is agnostic to what
// a transaction does.
type TransactionProcessor interface {
	Execute(txn *forge.Transaction) (bool, error)
}

// TransactionProcessorFunc adapts a function to the TransactionProcessor
// interface.
type TransactionProcessorFunc func(txn *forge.Transaction) (bool, error)

func (f TransactionProcessorFunc) Execute(txn *forge.Transaction) (bool, error) {
	return f(txn)
}

type task struct {
	batch    *forge.Batch
	injected bool
}

// Executor implements module.Scheduler for one candidate block.
type Executor struct {
	log       zerolog.Logger
	processor TransactionProcessor
	pool      *workerpool.WorkerPool
	queue     *fifoQueue
	notify    chan struct{}

	mu        sync.Mutex
	order     []forge.Identifier
	results   map[forge.Identifier]*forge.BatchResult
	pending   int
	finalized bool
	settled   bool

	previousStateRoot []byte
	finalResults      *forge.ExecutionResults

	cancelled  *atomic.Bool
	cancelOnce sync.Once
	cancelCh   chan struct{}
	done       chan struct{}
}

// NewExecutor creates a scheduler for one candidate block, seeded with the
// state root of the previous block.
func NewExecutor(
	log zerolog.Logger,
	processor TransactionProcessor,
	previousStateRoot []byte,
	options ...func(*Config),
) (*Executor, error) {

	cfg := DefaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	queue, err := newFifoQueue(cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("could not create admission queue: %w", err)
	}

	e := &Executor{
		log:               log.With().Str("component", "executor").Logger(),
		processor:         processor,
		pool:              workerpool.New(cfg.workers),
		queue:             queue,
		notify:            make(chan struct{}, 1),
		results:           make(map[forge.Identifier]*forge.BatchResult),
		previousStateRoot: previousStateRoot,
		cancelled:         atomic.NewBool(false),
		cancelCh:          make(chan struct{}),
		done:              make(chan struct{}),
	}

	go e.dispatch()

	return e, nil
}

// AddBatch submits a batch for speculative execution. It never blocks on
// execution itself; it fails with module.ErrSchedulerCancelled once the
// scheduler is cancelled, and with an unwrapped error when the scheduler no
// longer accepts work for structural reasons.
func (e *Executor) AddBatch(batch *forge.Batch, predecessor forge.Identifier, injected bool) error {
	if e.cancelled.Load() {
		return module.ErrSchedulerCancelled
	}

	batchID := batch.ID()

	e.mu.Lock()
	if e.finalized {
		e.mu.Unlock()
		return fmt.Errorf("scheduler finalized, not accepting batches")
	}
	if !e.queue.push(&task{batch: batch, injected: injected}) {
		e.mu.Unlock()
		return fmt.Errorf("admission queue full, dropping batch %x", batchID)
	}
	e.order = append(e.order, batchID)
	e.pending++
	e.mu.Unlock()

	e.log.Debug().
		Hex("batch_id", batchID[:]).
		Hex("predecessor", predecessor[:]).
		Bool("injected", injected).
		Msg("batch submitted for speculative execution")

	// wake the dispatcher; a pending wake-up covers any number of batches
	select {
	case e.notify <- struct{}{}:
	default:
	}

	return nil
}

// Finalize stops admission of new batches. If flushPending is false, queued
// batches that have not started executing are discarded and will report no
// result. A cancelled scheduler reports module.ErrSchedulerCancelled, the
// same way a blocked Complete does.
func (e *Executor) Finalize(flushPending bool) error {
	if e.cancelled.Load() {
		return module.ErrSchedulerCancelled
	}

	e.mu.Lock()
	if e.finalized {
		e.mu.Unlock()
		return fmt.Errorf("scheduler already finalized")
	}
	e.finalized = true
	if !flushPending {
		dropped := e.queue.clear()
		e.pending -= dropped
		if dropped > 0 {
			e.log.Debug().Int("dropped", dropped).Msg("discarded queued batches on finalize")
		}
	}
	e.mu.Unlock()

	e.maybeSettle()
	return nil
}

// Complete returns the execution results. With block set, it waits until
// execution settles or the scheduler is cancelled. Finalize must have been
// called for execution to ever settle.
func (e *Executor) Complete(block bool) (*forge.ExecutionResults, error) {
	if block {
		select {
		case <-e.done:
			return e.finalResults, nil
		case <-e.cancelCh:
			return nil, module.ErrSchedulerCancelled
		}
	}

	select {
	case <-e.done:
		return e.finalResults, nil
	default:
		return nil, nil
	}
}

// Cancel abandons all speculative execution. Safe to call from any
// goroutine, repeatedly, at any point of the lifecycle; a blocked Complete
// call unblocks promptly.
func (e *Executor) Cancel() {
	e.cancelOnce.Do(func() {
		e.cancelled.Store(true)
		close(e.cancelCh)
		e.log.Debug().Msg("scheduler cancelled")
	})
}

// dispatch moves batches from the admission queue onto the worker pool. It
// is the sole owner of the pool's lifecycle: the pool is only ever stopped
// from here, after dispatch has returned, so a concurrent Cancel can never
// race a Submit against the pool shutdown.
func (e *Executor) dispatch() {
	defer e.pool.Stop()
	for {
		select {
		case <-e.cancelCh:
			return
		case <-e.done:
			return
		case <-e.notify:
		}
		for {
			select {
			case <-e.cancelCh:
				return
			default:
			}
			item, ok := e.queue.pop()
			if !ok {
				break
			}
			t := item.(*task)
			e.pool.Submit(func() {
				e.executeTask(t)
			})
		}
	}
}

// executeTask runs all transactions of one batch and records the verdict.
func (e *Executor) executeTask(t *task) {
	defer func() {
		e.mu.Lock()
		e.pending--
		e.mu.Unlock()
		e.maybeSettle()
	}()

	if e.cancelled.Load() {
		return
	}

	batchID := t.batch.ID()

	var execErr error
	txResults := make([]forge.TransactionResult, 0, len(t.batch.Transactions))
	for _, txn := range t.batch.Transactions {
		valid, err := e.processor.Execute(txn)
		if err != nil {
			// a processor error means the transaction could not be applied;
			// the batch is reported invalid rather than result-less
			execErr = multierror.Append(execErr, err)
			valid = false
		}
		txResults = append(txResults, forge.TransactionResult{
			TransactionID: txn.ID(),
			Valid:         valid,
		})
	}

	if execErr != nil {
		e.log.Warn().
			Hex("batch_id", batchID[:]).
			Bool("injected", t.injected).
			Err(execErr).
			Msg("transaction processor errors during batch execution")
	}

	e.mu.Lock()
	e.results[batchID] = &forge.BatchResult{TransactionResults: txResults}
	e.mu.Unlock()
}

// maybeSettle completes execution once the scheduler is finalized and no
// work is queued or running. The ending state root is folded in submission
// order over the transactions of fully valid batches.
func (e *Executor) maybeSettle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.settled || !e.finalized || e.pending > 0 {
		return
	}
	e.settled = true

	batchResults := make(map[forge.Identifier]*forge.BatchResult, len(e.order))
	stateRoot := e.previousStateRoot
	for _, batchID := range e.order {
		result := e.results[batchID]
		batchResults[batchID] = result
		if result == nil || !result.AllValid() {
			continue
		}
		for _, txr := range result.TransactionResults {
			next := sha256.New()
			next.Write(stateRoot)
			next.Write(txr.TransactionID[:])
			stateRoot = next.Sum(nil)
		}
	}

	e.finalResults = &forge.ExecutionResults{
		BatchResults:    batchResults,
		EndingStateRoot: stateRoot,
	}

	// closing done also tells the dispatch goroutine to exit and stop the pool
	close(e.done)
}
