package counters

import (
	"sync/atomic"
)

// StrictMonotonicCounter is a helper struct which implements a strict
// monotonic counter. It is implemented using atomic operations and doesn't
// allow to set a value which is lower or equal to the already stored one.
type StrictMonotonicCounter struct {
	atomicCounter uint64
}

// NewMonotonicCounter creates a new counter with the initial value.
func NewMonotonicCounter(initialValue uint64) StrictMonotonicCounter {
	return StrictMonotonicCounter{
		atomicCounter: initialValue,
	}
}

// Set updates value of counter if and only if it's strictly larger than the
// value which is already stored. Returns true if the value was updated.
func (c *StrictMonotonicCounter) Set(newValue uint64) bool {
	for {
		oldValue := c.Value()
		if newValue <= oldValue {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.atomicCounter, oldValue, newValue) {
			return true
		}
	}
}

// Value returns the value which is currently stored.
func (c *StrictMonotonicCounter) Value() uint64 {
	return atomic.LoadUint64(&c.atomicCounter)
}
