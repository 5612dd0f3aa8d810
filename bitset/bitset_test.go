package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coregx/bytevm/bitset"
)

func TestAddAndContains(t *testing.T) {
	var s bitset.Set
	s.Add('a')
	s.Add('z')

	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('z'))
	assert.False(t, s.Contains('b'))
}

func TestAddRange(t *testing.T) {
	var s bitset.Set
	s.AddRange('a', 'c')

	for _, ch := range []byte("abc") {
		assert.Truef(t, s.Contains(ch), "expected range to contain %q", ch)
	}
	assert.False(t, s.Contains('d'))
}

func TestAddRangeSpanningWords(t *testing.T) {
	var s bitset.Set
	s.AddRange(60, 70) // spans the 64-bit word boundary

	for b := 60; b <= 70; b++ {
		assert.Truef(t, s.Contains(byte(b)), "expected %d in range", b)
	}
	assert.False(t, s.Contains(59))
	assert.False(t, s.Contains(71))
}

func TestClear(t *testing.T) {
	var s bitset.Set
	s.Add('x')
	s.Clear()
	assert.False(t, s.Contains('x'))
}

func TestFullByteRange(t *testing.T) {
	var s bitset.Set
	s.AddRange(0, 255)
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(255))
	assert.True(t, s.Contains(128))
}
