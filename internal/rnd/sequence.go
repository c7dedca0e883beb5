package rnd

import (
	"fmt"
	"sync"
)

// Sequence is a scripted Source for tests. Every call consumes the next unit
// value u in [0,1) and maps it onto the requested range:
//
//	Float64:  u
//	Range:    min + u*(max-min)
//	IntRange: min + floor(u*(max-min+1)), clamped to max
//
// Running out of values panics, which fails the calling test with the
// number of draws that were consumed.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence creates a scripted source.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Push appends more values.
func (s *Sequence) Push(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Used returns how many values were consumed.
func (s *Sequence) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Remaining returns how many values are left.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.next
}

func (s *Sequence) take() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("rnd.Sequence exhausted after %d draws", s.next))
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Float64 implements Source.
func (s *Sequence) Float64() float64 {
	return s.take()
}

// Range implements Source.
func (s *Sequence) Range(min, max float64) float64 {
	u := s.take()
	if max <= min {
		return min
	}
	return min + u*(max-min)
}

// IntRange implements Source.
func (s *Sequence) IntRange(min, max int) int {
	u := s.take()
	if max <= min {
		return min
	}
	v := min + int(u*float64(max-min+1))
	if v > max {
		v = max
	}
	return v
}
