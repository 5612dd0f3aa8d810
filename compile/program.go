// Package compile lowers an ast.Node tree into a flat Program of
// instructions that vm.Run can execute directly.
//
// Emission uses an emit-now-patch-later discipline: Split and Jump
// instructions are written with placeholder targets, and those targets
// are filled in once the referenced sub-program has actually been
// emitted.
package compile

import "github.com/coregx/bytevm/bitset"

// Op tags the instruction variant.
type Op uint8

const (
	// Match halts the program successfully.
	Match Op = iota
	// Char consumes one byte equal to Ch.
	Char
	// AnyChar consumes any byte except NUL.
	AnyChar
	// Class consumes a byte that is a member of Bitmap.
	Class
	// ClassNegated consumes a byte that is not a member of Bitmap.
	ClassNegated
	// Jump transfers control to Target unconditionally (epsilon).
	Jump
	// Split forks into two epsilon successors, First tried before Second.
	Split
	// AssertBegin succeeds only at the start of input (epsilon).
	AssertBegin
	// AssertEnd succeeds only at the end of input (epsilon).
	AssertEnd
	// Save records the current input position into capture slot Slot
	// (epsilon).
	Save
)

// Inst is a single fixed-size program instruction. Which fields matter
// depends on Op; Jump/Split targets are instruction indices rather than
// pointers so the program can be copied and compared by value.
type Inst struct {
	Op Op

	Ch     byte
	Bitmap bitset.Set

	Target int32 // Jump

	First, Second int32 // Split, first tried before second

	Slot uint16 // Save
}

// Program is the flat, caller-owned instruction array produced by
// Compile. It is immutable once built and may be run concurrently by
// multiple callers, provided each supplies its own vm.Machine and
// capture buffer.
type Program struct {
	Insts []Inst

	// NumCaptures is the number of capture groups, including the
	// implicit group 0 added for the whole match. Capture slots are
	// numbered 0..2*NumCaptures-1 (even = start, odd = end).
	NumCaptures int
}
