package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its bit pattern
// Zero value is ready to use and reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
