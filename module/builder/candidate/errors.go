package candidate

import (
	"errors"
)

// ErrBlockEmpty is returned by Summarize and Finalize when the candidate
// holds no admitted batches and the caller did not force an empty block.
// Callers treat it as "nothing to publish yet, keep accumulating".
var ErrBlockEmpty = errors.New("candidate block is empty")
