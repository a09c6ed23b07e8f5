package utils

import (
	"strconv"
	"sync/atomic"
)

// Sequence hands out monotonically increasing identifiers. The fake API client
// owns one to imitate server-assigned post ids; it is injected rather than
// kept as ambient package state.
type Sequence struct {
	counter uint64
}

// NewSequence creates a sequence whose first Next value is start+1
func NewSequence(start uint64) *Sequence {
	return &Sequence{counter: start}
}

// Next returns the next value in the sequence
func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.counter, 1)
}

// NextString returns the next value rendered as a decimal string
func (s *Sequence) NextString() string {
	return strconv.FormatUint(s.Next(), 10)
}
