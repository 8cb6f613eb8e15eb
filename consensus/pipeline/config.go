package pipeline

import (
	"go.uber.org/atomic"
)

const (
	// DefaultMaxDeploysPerBlock bounds the deploy list a block may carry.
	DefaultMaxDeploysPerBlock = uint64(100)
)

// Config holds the runtime-adjustable knobs of the pipeline. All fields are
// updatable while the pipeline is running.
type Config struct {
	maxDeploysPerBlock *atomic.Uint64
}

func DefaultConfig() Config {
	return Config{
		maxDeploysPerBlock: atomic.NewUint64(DefaultMaxDeploysPerBlock),
	}
}

// GetMaxDeploysPerBlock returns the current deploy count limit for blocks.
func (c Config) GetMaxDeploysPerBlock() uint64 {
	return c.maxDeploysPerBlock.Load()
}

// SetMaxDeploysPerBlock changes the deploy count limit for blocks.
func (c Config) SetMaxDeploysPerBlock(limit uint64) {
	c.maxDeploysPerBlock.Store(limit)
}
