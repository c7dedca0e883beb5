package rnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for range 100 {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.IntRange(1, 6), b.IntRange(1, 6))
	}
}

func TestLocked_Bounds(t *testing.T) {
	src := New(7)

	for range 10_000 {
		f := src.Float64()
		assert.True(t, f >= 0 && f < 1, "Float64() = %v", f)

		r := src.Range(10, 20)
		assert.True(t, r >= 10 && r < 20, "Range(10,20) = %v", r)

		n := src.IntRange(3, 5)
		assert.True(t, n >= 3 && n <= 5, "IntRange(3,5) = %d", n)
	}
}

func TestLocked_DegenerateRanges(t *testing.T) {
	src := New(1)
	assert.Equal(t, 5.0, src.Range(5, 5))
	assert.Equal(t, 9, src.IntRange(9, 9))
	assert.Equal(t, 9, src.IntRange(9, 2))
}

func TestSequence_Mapping(t *testing.T) {
	seq := NewSequence(0.3, 0.5, 0.999, 0)

	assert.Equal(t, 3.0, seq.Range(0, 10))
	assert.Equal(t, 15.0, seq.Range(10, 20))
	assert.Equal(t, 5, seq.IntRange(1, 5))
	assert.Equal(t, 0.0, seq.Float64())
	assert.Equal(t, 4, seq.Used())
	assert.Equal(t, 0, seq.Remaining())
}

func TestSequence_ExhaustedPanics(t *testing.T) {
	seq := NewSequence()
	assert.Panics(t, func() { seq.Float64() })
}
