package executor

import (
	"fmt"
	"sync"

	"github.com/ef-ds/deque"
)

// fifoQueue is the admission queue between AddBatch and the worker pool.
// Elements beyond the max capacity are rejected. The queue is safe for
// concurrent use.
type fifoQueue struct {
	mu          sync.Mutex
	queue       deque.Deque
	maxCapacity int
}

func newFifoQueue(maxCapacity int) (*fifoQueue, error) {
	if maxCapacity < 1 {
		return nil, fmt.Errorf("capacity for fifo queue must be positive")
	}
	return &fifoQueue{maxCapacity: maxCapacity}, nil
}

// push appends the element to the queue. It returns false if the queue is
// at capacity.
func (q *fifoQueue) push(element interface{}) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.queue.Len() >= q.maxCapacity {
		return false
	}
	q.queue.PushBack(element)
	return true
}

// pop removes and returns the head of the queue, if any.
func (q *fifoQueue) pop() (interface{}, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.PopFront()
}

// clear discards all queued elements and returns how many were dropped.
func (q *fifoQueue) clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := q.queue.Len()
	for q.queue.Len() > 0 {
		q.queue.PopFront()
	}
	return dropped
}

// len returns the number of queued elements.
func (q *fifoQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Len()
}
