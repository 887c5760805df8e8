package executor

// Config holds the tunables of the execution scheduler.
type Config struct {
	workers  int
	capacity int
}

func DefaultConfig() Config {
	return Config{
		workers:  4,
		capacity: 1024,
	}
}

// WithWorkers sets the number of concurrent execution workers.
func WithWorkers(workers int) func(*Config) {
	return func(cfg *Config) {
		cfg.workers = workers
	}
}

// WithCapacity sets the maximum number of batches that may be queued for
// execution at once.
func WithCapacity(capacity int) func(*Config) {
	return func(cfg *Config) {
		cfg.capacity = capacity
	}
}
