package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits, zero value holds 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		v := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// MaxLabelLen bounds AtomicString values
const MaxLabelLen = 32

// AtomicString holds a short label, zero value is the empty string
type AtomicString struct {
	p atomic.Pointer[string]
}

// Store sets the label, cutting it to MaxLabelLen bytes on a rune boundary
func (s *AtomicString) Store(v string) {
	if len(v) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !isRuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	s.p.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return ""
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
