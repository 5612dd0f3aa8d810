// Package bitset implements the fixed-size character-class bitmap used by
// the compile and vm packages: a 256-bit set over the 8-bit alphabet with
// O(1) membership and insertion.
//
// This is the flattened, runtime representation of a bracket expression.
// During parsing a class is kept as a slice into the pattern text (see
// ast.CharacterClass); only compile expands that slice into a Set.
package bitset

// Set is a bitmap over the 256 possible byte values, embedded by value
// inside compiled instructions: four 64-bit words cover the full 0-255
// range with no heap allocation.
type Set [4]uint64

// Add marks ch as a member of the set.
func (s *Set) Add(ch byte) {
	s[ch/64] |= 1 << (ch % 64)
}

// AddRange marks every byte in the inclusive range [lo, hi] as a member.
// Callers must ensure lo <= hi; the class parser in ast and compile never
// emits an inverted range (see the "empty range" syntax error).
func (s *Set) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether ch is a member of the set.
func (s *Set) Contains(ch byte) bool {
	return s[ch/64]&(1<<(ch%64)) != 0
}

// Clear resets the set to empty.
func (s *Set) Clear() {
	s[0], s[1], s[2], s[3] = 0, 0, 0, 0
}
