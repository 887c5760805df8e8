package candidate

// Config holds the admission limits of a candidate block.
type Config struct {
	maxBatches uint
}

// WithMaxBatches caps the number of pending batches. The zero default means
// unbounded.
func WithMaxBatches(maxBatches uint) func(*Config) {
	return func(cfg *Config) {
		cfg.maxBatches = maxBatches
	}
}
