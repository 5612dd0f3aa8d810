// Package ast implements the parser that turns a regular-expression pattern
// into a tree of tagged-union nodes, using a single-pass shunting-yard
// driver over a caller-sized arena.
//
// The arena is a flat []Node split into two stacks growing toward each
// other: a working stack (partially-reduced sub-expressions, mutated by
// push/drop) at the low end, and an output stack (finished children,
// referenced by stable pointer) at the high end.
package ast

// Kind tags the variant a Node represents.
type Kind uint8

const (
	// Epsilon matches the empty string.
	Epsilon Kind = iota
	// Character matches a single literal byte.
	Character
	// AnyCharacter matches any byte except NUL.
	AnyCharacter
	// CharacterClass matches a byte against a bracket expression. Class
	// holds the raw, unexpanded class body text; the class body is not
	// expanded into a bitmap until compile time.
	CharacterClass
	// CharacterClassNegated is CharacterClass with inverted polarity.
	CharacterClassNegated
	// Concatenation matches Left followed by Right.
	Concatenation
	// Alternation matches Left or, failing that, Right.
	Alternation
	// Quantifier matches Quantified repeated between NMin and NMax times
	// (NMax == -1 means unbounded), preferring more repetitions when
	// Greedy and fewer otherwise.
	Quantifier
	// AnchorBegin asserts the current position is the start of input.
	AnchorBegin
	// AnchorEnd asserts the current position is the end of input.
	AnchorEnd
	// Capture numbers a sub-expression for submatch extraction. Numbering
	// is assigned later, by the compiler, in left-to-right appearance
	// order — the parser only marks the boundary.
	Capture
)

// Node is a single arena slot. Which fields are meaningful depends on
// Kind; every variant is flattened into one Go struct so nodes can live
// in a single contiguous arena with no per-node allocation.
type Node struct {
	Kind Kind

	// Character
	Ch byte

	// CharacterClass / CharacterClassNegated: the class body, sliced
	// directly out of the pattern string (a Go string slice shares the
	// backing array, so this costs no copy).
	Class string

	// Concatenation / Alternation
	Left, Right *Node

	// Quantifier
	Quantified *Node
	NMin, NMax int // NMax == -1 means unbounded
	Greedy      bool

	// Capture
	Captured *Node
}
