// Package candidate implements the block-candidate state machine: it owns
// the ordered set of batches pending for the block under construction,
// drives admission, dependency and rule checking, reconciles speculative
// execution results, and produces the summarized, finalized block.
package candidate

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/module"
	"github.com/forgechain/forge-go/module/validation"
	"github.com/forgechain/forge-go/state/settings"
	"github.com/forgechain/forge-go/storage"
)

// CandidateBlock is the live state of one block-building attempt. It is
// created with a fixed previous-block reference and is single-use: once
// summarized (successfully or not) it can only be finalized or cancelled,
// never reopened.
//
// NOTE: CandidateBlock is NOT safe for concurrent use. AddBatch, Summarize
// and Finalize must be serialized by the caller; only Cancel may be invoked
// from another goroutine.
type CandidateBlock struct {
	log     zerolog.Logger
	metrics module.CandidateMetrics

	previous    *forge.Block
	commitStore storage.CommitStore
	scheduler   module.Scheduler
	assembler   module.BlockAssembler
	local       module.Local
	settings    settings.Reader
	injectors   []module.BatchInjector
	cfg         Config

	commitCache     *TransactionCommitCache
	pending         []*forge.Batch
	pendingIDs      map[forge.Identifier]struct{}
	injectedIDs     map[forge.Identifier]struct{}
	injectedList    []forge.Identifier
	injectorsPolled bool

	summary   []byte
	abandoned bool
	remaining []*forge.Batch

	// a failed scheduler submission poisons the candidate; the error is
	// surfaced on the next Summarize/Finalize since AddBatch cannot return
	schedulerErr error
}

// NewCandidateBlock creates the state machine for one block-building
// attempt on top of the given previous block.
func NewCandidateBlock(
	log zerolog.Logger,
	metrics module.CandidateMetrics,
	previous *forge.Block,
	commitStore storage.CommitStore,
	scheduler module.Scheduler,
	blockAssembler module.BlockAssembler,
	local module.Local,
	settingsReader settings.Reader,
	injectors []module.BatchInjector,
	options ...func(*Config),
) *CandidateBlock {

	cfg := Config{
		maxBatches: 0, // unbounded
	}
	for _, option := range options {
		option(&cfg)
	}

	return &CandidateBlock{
		log:         log.With().Str("component", "candidate_block").Logger(),
		metrics:     metrics,
		previous:    previous,
		commitStore: commitStore,
		scheduler:   scheduler,
		assembler:   blockAssembler,
		local:       local,
		settings:    settingsReader,
		injectors:   injectors,
		cfg:         cfg,
		commitCache: NewTransactionCommitCache(commitStore),
		pendingIDs:  make(map[forge.Identifier]struct{}),
		injectedIDs: make(map[forge.Identifier]struct{}),
	}
}

// PreviousBlockID returns the identifier of the chain-head block this
// candidate extends.
func (c *CandidateBlock) PreviousBlockID() forge.Identifier {
	return c.previous.ID()
}

// CanAddBatch reports whether the candidate accepts further batches.
// Callers must check it before AddBatch; beyond the conditions below the
// candidate does not self-enforce.
func (c *CandidateBlock) CanAddBatch() bool {
	return c.summary == nil && !c.abandoned && c.schedulerErr == nil &&
		(c.cfg.maxBatches == 0 || uint(len(c.pending)) < c.cfg.maxBatches)
}

// LastBatch returns the most recently admitted batch, or nil if no batch
// was ever admitted.
func (c *CandidateBlock) LastBatch() *forge.Batch {
	if len(c.pending) == 0 {
		return nil
	}
	return c.pending[len(c.pending)-1]
}

// AddBatch runs the admission pipeline for one externally supplied batch.
// A dropped batch is an expected policy outcome, not a failure, so AddBatch
// never returns an error; each rejection reason has a distinct diagnostic
// signal instead.
func (c *CandidateBlock) AddBatch(batch *forge.Batch) {

	batchID := batch.ID()
	log := c.log.With().Hex("batch_id", batchID[:]).Logger()

	if batch.Trace {
		log.Debug().Msg("trace: batch entering candidate admission")
	}

	if c.summary != nil || c.abandoned || c.schedulerErr != nil {
		log.Debug().Msg("candidate no longer accepting batches, dropping batch")
		return
	}

	// step 1: duplicate / already-committed batch
	committed, err := c.batchAlreadyCommitted(batchID)
	if err != nil {
		log.Error().Err(err).Msg("could not check batch commitment, dropping batch")
		return
	}
	if committed {
		log.Debug().Msg("dropping previously committed batch")
		c.metrics.BatchRejected(module.ReasonAlreadyCommitted)
		return
	}

	// step 2: per-transaction commitment and dependency checks
	admissible, reason := c.checkBatchDependencies(log, batch, c.commitCache)
	if !admissible {
		c.metrics.BatchRejected(reason)
		return
	}

	// step 3: poll injectors once per candidate, before the first batch
	var batchesToAdd []*forge.Batch
	if len(c.pending) == 0 && !c.injectorsPolled {
		c.injectorsPolled = true
		injected := c.pollInjectors()
		c.metrics.BatchesInjected(len(injected))
		batchesToAdd = append(batchesToAdd, injected...)
	}
	batchesToAdd = append(batchesToAdd, batch)

	// step 4: evaluate the validation rules over the entire prospective
	// sequence; rules can be sequence-level, so a delta is never enough
	prospective := make([]*forge.Batch, 0, len(c.pending)+len(batchesToAdd))
	prospective = append(prospective, c.pending...)
	prospective = append(prospective, batchesToAdd...)

	enforcer, err := validation.NewRuleEnforcer(c.settings, c.local.PublicKey(), c.log)
	if err != nil {
		log.Error().Err(err).Msg("could not construct rule enforcer, rejecting batch")
		c.discardInjected(batchesToAdd)
		c.metrics.BatchRejected(module.ReasonRuleError)
		return
	}
	allowed, err := enforcer.Evaluate(prospective)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidBatch) {
			log.Debug().Err(err).Msg("rejecting structurally invalid batch")
		} else {
			log.Error().Err(err).Msg("could not evaluate validation rules, rejecting batch")
		}
		c.discardInjected(batchesToAdd)
		c.metrics.BatchRejected(module.ReasonRuleError)
		return
	}
	if !allowed {
		log.Debug().Msg("block validation rules violated, rejecting batch")
		c.discardInjected(batchesToAdd)
		c.metrics.BatchRejected(module.ReasonRuleViolation)
		return
	}

	// step 5: commit the admission and submit for speculative execution
	submitted := true
	for _, accepted := range batchesToAdd {
		acceptedID := accepted.ID()
		c.pending = append(c.pending, accepted)
		c.pendingIDs[acceptedID] = struct{}{}
		c.commitCache.AddBatch(accepted)

		_, injected := c.injectedIDs[acceptedID]
		err = c.scheduler.AddBatch(accepted, forge.ZeroID, injected)
		if errors.Is(err, module.ErrSchedulerCancelled) {
			log.Debug().Msg("scheduler cancelled during submission, abandoning candidate")
			c.abandonForCancellation()
			return
		}
		if err != nil {
			// the execution subsystem itself is broken; poison the
			// candidate and surface the error on Summarize/Finalize
			c.schedulerErr = fmt.Errorf("could not submit batch (%x) for execution: %w", acceptedID, err)
			log.Error().Err(err).Msg("could not submit batch for execution")
			submitted = false
			break
		}
	}

	if submitted {
		c.metrics.BatchAdmitted()
	}
	c.metrics.PendingBatches(len(c.pending))
}

// Summarize drains execution results, reconciles them against dependency
// state and computes the deterministic digest over the surviving batch
// sequence. A nil summary with nil error means "no block this attempt";
// remaining batches for resubmission are retained either way. Summarize is
// idempotent once a summary exists.
func (c *CandidateBlock) Summarize(force bool) ([]byte, error) {

	if c.summary != nil {
		return c.summary, nil
	}
	if c.abandoned {
		return nil, nil
	}
	if c.schedulerErr != nil {
		return nil, c.schedulerErr
	}
	if !force && len(c.pending) == 0 {
		return nil, ErrBlockEmpty
	}

	err := c.scheduler.Finalize(true)
	if errors.Is(err, module.ErrSchedulerCancelled) {
		c.abandonForCancellation()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not finalize execution: %w", err)
	}
	results, err := c.scheduler.Complete(true)
	if errors.Is(err, module.ErrSchedulerCancelled) {
		c.abandonForCancellation()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not complete execution: %w", err)
	}

	// Reconciliation re-checks dependencies against a fresh cache seeded
	// from durable state only: execution validity is learned asynchronously,
	// so the surviving prefix can differ from the admitted sequence.
	reconCache := NewTransactionCommitCache(c.commitStore)
	var remaining []*forge.Batch

	for i, batch := range c.pending {
		batchID := batch.ID()
		log := c.log.With().Hex("batch_id", batchID[:]).Logger()
		if batch.Trace {
			log.Debug().Msg("trace: batch entering reconciliation")
		}

		_, injected := c.injectedIDs[batchID]
		result := results.BatchResults[batchID]

		// no execution result: externally supplied batches are retried on
		// the next candidate, injected ones are not
		if result == nil {
			if injected {
				log.Warn().Msg("failed to inject batch")
			} else {
				remaining = append(remaining, batch)
			}
			continue
		}

		// an invalid transaction discards the batch outright
		if !result.AllValid() {
			log.Debug().Msg("batch invalid, not added to block")
			continue
		}

		admissible, _ := c.checkBatchDependencies(log, batch, reconCache)
		if !admissible {
			// a later batch cannot be promoted while an earlier dependency
			// is unmet: defer this batch and everything after it
			log.Debug().Msg("batch dependency unmet after execution, deferring rest of candidate")
			remaining = append(remaining, c.pending[i:]...)
			break
		}

		c.assembler.AddBatch(batch)
		reconCache.AddBatch(batch)
	}

	c.remaining = remaining

	assembled := c.assembler.Batches()
	if len(assembled) == 0 || results.EndingStateRoot == nil || c.onlyInjected(assembled) {
		c.log.Debug().Msg("abandoning block, no batches added")
		c.abandoned = true
		c.metrics.BlockAbandoned()
		return nil, nil
	}

	c.assembler.SetStateRoot(results.EndingStateRoot)

	digest := sha256.New()
	for _, b := range assembled {
		digest.Write([]byte(b.ID().String()))
	}
	c.summary = digest.Sum(nil)
	c.assembler.SetBatchDigest(c.summary)

	c.metrics.BlockSummarized(len(assembled))

	return c.summary, nil
}

// Finalize attaches the consensus payload, signs the header and builds the
// final block. When summarization concluded "no block", the result carries
// no block payload but still reports the remaining batches, the last batch
// seen and the injected batch identifiers, which the caller needs to
// requeue work. Finalize fails with ErrBlockEmpty only if no batch was ever
// admitted.
func (c *CandidateBlock) Finalize(consensusData []byte, force bool) (*forge.FinalizeResult, error) {

	summary := c.summary
	if summary == nil && !c.abandoned {
		var err error
		summary, err = c.Summarize(force)
		if err != nil {
			return nil, err
		}
	}

	last := c.LastBatch()
	if last == nil {
		return nil, ErrBlockEmpty
	}

	if summary == nil {
		return c.buildResult(nil, last), nil
	}

	c.assembler.SetConsensus(consensusData)

	sig, err := c.local.Sign(c.assembler.HeaderFingerprint())
	if err != nil {
		return nil, fmt.Errorf("could not sign block header: %w", err)
	}
	c.assembler.SetSignature(sig)

	block, err := c.assembler.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build block: %w", err)
	}

	c.metrics.BlockFinalized()

	return c.buildResult(block, last), nil
}

// Cancel abandons all speculative execution for this candidate. Always safe
// to call, from any goroutine, including after Finalize; an in-flight
// Summarize unblocks with a "no block" outcome.
func (c *CandidateBlock) Cancel() {
	c.scheduler.Cancel()
}

func (c *CandidateBlock) buildResult(block *forge.Block, last *forge.Batch) *forge.FinalizeResult {
	injectedIDs := make([]forge.Identifier, len(c.injectedList))
	copy(injectedIDs, c.injectedList)
	return &forge.FinalizeResult{
		Block:            block,
		RemainingBatches: c.remaining,
		LastBatch:        last,
		InjectedBatchIDs: injectedIDs,
	}
}

// abandonForCancellation marks the candidate terminal after the scheduler
// was cancelled. Externally supplied batches are handed back for the next
// candidate; injected batches are not retried.
func (c *CandidateBlock) abandonForCancellation() {
	c.log.Debug().Msg("execution cancelled, abandoning candidate")
	for _, batch := range c.pending {
		if _, injected := c.injectedIDs[batch.ID()]; !injected {
			c.remaining = append(c.remaining, batch)
		}
	}
	c.abandoned = true
	c.metrics.BlockAbandoned()
}

// batchAlreadyCommitted checks the batch identifier against the pending set
// and the durable commit store.
func (c *CandidateBlock) batchAlreadyCommitted(batchID forge.Identifier) (bool, error) {
	if _, ok := c.pendingIDs[batchID]; ok {
		return true, nil
	}
	committed, err := c.commitStore.ContainsBatch(batchID)
	if err != nil {
		return false, fmt.Errorf("could not check commit store for batch: %w", err)
	}
	return committed, nil
}

// checkBatchDependencies verifies, without mutating the cache, that no
// transaction of the batch is already committed and that every dependency
// is satisfied by the cache or by an earlier transaction of the same batch.
// It returns the rejection reason when the batch is inadmissible; the
// caller folds an accepted batch into the cache afterwards, so a rejected
// batch never leaves partial state behind.
func (c *CandidateBlock) checkBatchDependencies(
	log zerolog.Logger,
	batch *forge.Batch,
	cache *TransactionCommitCache,
) (bool, string) {

	seen := make(map[forge.Identifier]struct{}, len(batch.Transactions))
	for _, txn := range batch.Transactions {
		txID := txn.ID()

		if _, ok := seen[txID]; ok {
			log.Debug().Hex("txn_id", txID[:]).Msg("transaction rejected as duplicated within the batch")
			return false, module.ReasonAlreadyCommitted
		}
		committed, err := cache.Contains(txID)
		if err != nil {
			log.Error().Err(err).Hex("txn_id", txID[:]).Msg("could not check transaction commitment, rejecting batch")
			return false, module.ReasonAlreadyCommitted
		}
		if committed {
			log.Debug().Hex("txn_id", txID[:]).Msg("transaction rejected as it is already in the chain")
			return false, module.ReasonAlreadyCommitted
		}

		for _, dep := range txn.Header.Dependencies {
			if _, ok := seen[dep]; ok {
				continue
			}
			satisfied, err := cache.Contains(dep)
			if err != nil {
				log.Error().Err(err).Hex("txn_id", txID[:]).Msg("could not check transaction dependency, rejecting batch")
				return false, module.ReasonMissingDependency
			}
			if !satisfied {
				log.Debug().
					Hex("txn_id", txID[:]).
					Hex("dependency", dep[:]).
					Msg("transaction rejected due to missing dependency")
				return false, module.ReasonMissingDependency
			}
		}

		seen[txID] = struct{}{}
	}

	return true, ""
}

// pollInjectors gathers the mandatory prefix batches for this candidate.
// A failing injector contributes nothing and never aborts the candidate.
func (c *CandidateBlock) pollInjectors() []*forge.Batch {
	var batches []*forge.Batch
	for _, injector := range c.injectors {
		injected, err := injector.BlockStart(c.previous)
		if err != nil {
			c.log.Warn().Err(err).Msg("batch injector failed, continuing without its batches")
			continue
		}
		for _, b := range injected {
			bID := b.ID()
			c.injectedIDs[bID] = struct{}{}
			c.injectedList = append(c.injectedList, bID)
			batches = append(batches, b)
		}
	}
	return batches
}

// discardInjected rolls back the injected-batch bookkeeping for a rejected
// admission attempt. The injected batches are not retried within this
// candidate; injectors are asked again on the next candidate.
func (c *CandidateBlock) discardInjected(batchesToAdd []*forge.Batch) {
	for _, b := range batchesToAdd {
		bID := b.ID()
		if _, ok := c.injectedIDs[bID]; !ok {
			continue
		}
		delete(c.injectedIDs, bID)
		for i, id := range c.injectedList {
			if id == bID {
				c.injectedList = append(c.injectedList[:i], c.injectedList[i+1:]...)
				break
			}
		}
	}
}

// onlyInjected reports whether every assembled batch came from an injector,
// meaning no externally supplied batch survived into the block.
func (c *CandidateBlock) onlyInjected(assembled []*forge.Batch) bool {
	for _, b := range assembled {
		if _, ok := c.injectedIDs[b.ID()]; !ok {
			return false
		}
	}
	return true
}
