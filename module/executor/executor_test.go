package executor

import (
	"crypto/sha256"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgechain/forge-go/model/forge"
	"github.com/forgechain/forge-go/module"
	"github.com/forgechain/forge-go/utils/unittest"
)

// foldStateRoot reproduces the deterministic state-root fold over the
// transactions of fully valid batches, in submission order.
func foldStateRoot(previous []byte, batches ...*forge.Batch) []byte {
	root := previous
	for _, batch := range batches {
		for _, txn := range batch.Transactions {
			txID := txn.ID()
			next := sha256.New()
			next.Write(root)
			next.Write(txID[:])
			root = next.Sum(nil)
		}
	}
	return root
}

func acceptAll(_ *forge.Transaction) (bool, error) {
	return true, nil
}

func TestExecutorSettles(t *testing.T) {
	previousRoot := unittest.StateRootFixture()
	exec, err := NewExecutor(unittest.Logger(), TransactionProcessorFunc(acceptAll), previousRoot)
	require.NoError(t, err)

	batch1 := unittest.BatchFixture(2)
	batch2 := unittest.BatchFixture(3)
	require.NoError(t, exec.AddBatch(batch1, forge.ZeroID, false))
	require.NoError(t, exec.AddBatch(batch2, forge.ZeroID, false))

	require.NoError(t, exec.Finalize(true))

	results, err := exec.Complete(true)
	require.NoError(t, err)
	require.NotNil(t, results)

	require.Contains(t, results.BatchResults, batch1.ID())
	require.Contains(t, results.BatchResults, batch2.ID())
	assert.True(t, results.BatchResults[batch1.ID()].AllValid())
	assert.True(t, results.BatchResults[batch2.ID()].AllValid())

	// the state root folds in submission order, regardless of which worker
	// finished first
	assert.Equal(t, foldStateRoot(previousRoot, batch1, batch2), results.EndingStateRoot)
}

func TestExecutorInvalidTransaction(t *testing.T) {
	previousRoot := unittest.StateRootFixture()

	valid := unittest.BatchFixture(1)
	invalid := unittest.BatchFixture(2)
	rejectID := invalid.Transactions[0].ID()

	processor := TransactionProcessorFunc(func(txn *forge.Transaction) (bool, error) {
		return txn.ID() != rejectID, nil
	})

	exec, err := NewExecutor(unittest.Logger(), processor, previousRoot)
	require.NoError(t, err)

	require.NoError(t, exec.AddBatch(valid, forge.ZeroID, false))
	require.NoError(t, exec.AddBatch(invalid, forge.ZeroID, false))
	require.NoError(t, exec.Finalize(true))

	results, err := exec.Complete(true)
	require.NoError(t, err)

	assert.True(t, results.BatchResults[valid.ID()].AllValid())
	assert.False(t, results.BatchResults[invalid.ID()].AllValid())

	// the invalid batch contributes nothing to the state root
	assert.Equal(t, foldStateRoot(previousRoot, valid), results.EndingStateRoot)
}

func TestExecutorProcessorError(t *testing.T) {
	batch := unittest.BatchFixture(1)

	processor := TransactionProcessorFunc(func(*forge.Transaction) (bool, error) {
		return false, errors.New("state database unavailable")
	})

	exec, err := NewExecutor(unittest.Logger(), processor, unittest.StateRootFixture())
	require.NoError(t, err)

	require.NoError(t, exec.AddBatch(batch, forge.ZeroID, false))
	require.NoError(t, exec.Finalize(true))

	results, err := exec.Complete(true)
	require.NoError(t, err)

	// a processor error yields an invalid result, not a missing one
	require.Contains(t, results.BatchResults, batch.ID())
	assert.False(t, results.BatchResults[batch.ID()].AllValid())
}

func TestExecutorCompleteNonBlocking(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	processor := TransactionProcessorFunc(func(*forge.Transaction) (bool, error) {
		<-release
		return true, nil
	})

	exec, err := NewExecutor(unittest.Logger(), processor, unittest.StateRootFixture())
	require.NoError(t, err)

	require.NoError(t, exec.AddBatch(unittest.BatchFixture(1), forge.ZeroID, false))

	results, err := exec.Complete(false)
	require.NoError(t, err)
	assert.Nil(t, results)

	exec.Cancel()
}

func TestExecutorCancelUnblocksComplete(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	processor := TransactionProcessorFunc(func(*forge.Transaction) (bool, error) {
		<-release
		return true, nil
	})

	exec, err := NewExecutor(unittest.Logger(), processor, unittest.StateRootFixture())
	require.NoError(t, err)

	require.NoError(t, exec.AddBatch(unittest.BatchFixture(1), forge.ZeroID, false))
	require.NoError(t, exec.Finalize(true))

	go func() {
		time.Sleep(50 * time.Millisecond)
		exec.Cancel()
	}()

	unittest.RequireReturnsBefore(t, func() {
		_, err := exec.Complete(true)
		assert.ErrorIs(t, err, module.ErrSchedulerCancelled)
	}, time.Second)

	// Cancel is idempotent
	exec.Cancel()
}

// Cancel must be safe from any goroutine at any time, in particular while
// another goroutine is mid-submission.
func TestExecutorCancelDuringSubmission(t *testing.T) {
	batches := unittest.BatchListFixture(32)

	for i := 0; i < 300; i++ {
		exec, err := NewExecutor(unittest.Logger(), TransactionProcessorFunc(acceptAll), unittest.StateRootFixture())
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, batch := range batches {
				if exec.AddBatch(batch, forge.ZeroID, false) != nil {
					return
				}
			}
		}()

		time.Sleep(time.Duration(i%20) * time.Microsecond)
		exec.Cancel()
		wg.Wait()

		_, err = exec.Complete(true)
		assert.ErrorIs(t, err, module.ErrSchedulerCancelled)
	}
}

// Every entry point of a cancelled scheduler reports the same sentinel, so
// a cancel landing before Finalize looks no different to the caller than
// one landing during Complete.
func TestExecutorCancelledRefusesWork(t *testing.T) {
	exec, err := NewExecutor(unittest.Logger(), TransactionProcessorFunc(acceptAll), unittest.StateRootFixture())
	require.NoError(t, err)

	exec.Cancel()

	assert.ErrorIs(t, exec.AddBatch(unittest.BatchFixture(1), forge.ZeroID, false), module.ErrSchedulerCancelled)
	assert.ErrorIs(t, exec.Finalize(true), module.ErrSchedulerCancelled)

	_, err = exec.Complete(true)
	assert.ErrorIs(t, err, module.ErrSchedulerCancelled)
}

func TestExecutorLifecycleGuards(t *testing.T) {
	exec, err := NewExecutor(unittest.Logger(), TransactionProcessorFunc(acceptAll), unittest.StateRootFixture())
	require.NoError(t, err)

	require.NoError(t, exec.Finalize(true))
	assert.Error(t, exec.Finalize(true))
	assert.Error(t, exec.AddBatch(unittest.BatchFixture(1), forge.ZeroID, false))

	// finalizing with no work settles immediately with the previous root
	results, err := exec.Complete(true)
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results.BatchResults)
}

func TestFifoQueue(t *testing.T) {
	_, err := newFifoQueue(0)
	assert.Error(t, err)

	queue, err := newFifoQueue(2)
	require.NoError(t, err)

	assert.True(t, queue.push(1))
	assert.True(t, queue.push(2))
	assert.False(t, queue.push(3))
	assert.Equal(t, 2, queue.len())

	head, ok := queue.pop()
	require.True(t, ok)
	assert.Equal(t, 1, head)

	assert.Equal(t, 1, queue.clear())
	_, ok = queue.pop()
	assert.False(t, ok)
}
