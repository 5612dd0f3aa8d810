package compile

import (
	"github.com/coregx/bytevm/ast"
	"github.com/coregx/bytevm/internal/conv"
)

// EstimateInstructions returns an instruction count that is always
// sufficient to compile root: one instruction per leaf node, a Save pair
// per capture, a Split/Jump pair per alternation, a quantified body once
// per unrolled copy plus its Split (and Jump) instructions, plus the
// implicit outer capture group, the terminal Match, and — for
// an unanchored pattern — the non-greedy ".*?" search prefix.
func EstimateInstructions(root *ast.Node) int {
	n := countInstructions(root) + 2 /* implicit outer Save pair */ + 1 /* Match */
	if !isAnchored(root) {
		n += 3 /* Split, AnyChar, Jump */
	}
	return n
}

func countInstructions(node *ast.Node) int {
	if node == nil {
		return 0
	}
	switch node.Kind {
	case ast.Epsilon:
		return 0
	case ast.Character, ast.AnyCharacter, ast.CharacterClass, ast.CharacterClassNegated,
		ast.AnchorBegin, ast.AnchorEnd:
		return 1
	case ast.Concatenation:
		return countInstructions(node.Left) + countInstructions(node.Right)
	case ast.Alternation:
		return 2 + countInstructions(node.Left) + countInstructions(node.Right) // Split, Jump
	case ast.Capture:
		return 2 + countInstructions(node.Captured) // Save pair
	case ast.Quantifier:
		return countQuantifier(node)
	}
	return 0
}

func countQuantifier(node *ast.Node) int {
	body := countInstructions(node.Quantified)
	switch {
	case node.NMax == node.NMin:
		return node.NMin * body
	case node.NMax > node.NMin:
		return node.NMin*body + (node.NMax-node.NMin)*(body+1) // +1 Split each
	default: // unbounded
		if node.NMin == 0 {
			return body + 2 // Split, Jump
		}
		return node.NMin*body + 1 // trailing Split reusing the last copy
	}
}

// isAnchored reports whether node forces a match to start at position 0,
// so the caller can skip the implicit ".*?" search prefix.
func isAnchored(node *ast.Node) bool {
	switch node.Kind {
	case ast.AnchorBegin:
		return true
	case ast.Concatenation:
		return isAnchored(node.Left)
	case ast.Capture:
		return isAnchored(node.Captured)
	case ast.Alternation:
		return isAnchored(node.Left) && isAnchored(node.Right)
	case ast.Quantifier:
		return node.NMin > 0 && isAnchored(node.Quantified)
	default:
		return false
	}
}

// compiler walks an ast.Node tree and emits into a pre-sized instruction
// buffer, patching Split/Jump targets once the sub-program they refer to
// has actually been written.
type compiler struct {
	prog      []Inst
	pc        int
	nCaptures int
}

func (c *compiler) emit(inst Inst) int {
	idx := c.pc
	c.prog[c.pc] = inst
	c.pc++
	return idx
}

// compileNode emits node's instructions and returns the index of the
// first one (the entry point a predecessor should jump or fall through
// to); for Epsilon this is simply the next free slot, since Epsilon
// emits nothing.
func (c *compiler) compileNode(node *ast.Node) int {
	bottom := c.pc

	switch node.Kind {
	case ast.Epsilon:

	case ast.Character:
		c.emit(Inst{Op: Char, Ch: node.Ch})

	case ast.AnyCharacter:
		c.emit(Inst{Op: AnyChar})

	case ast.CharacterClass:
		idx := c.emit(Inst{Op: Class})
		c.prog[idx].Bitmap = expandClass(node.Class)

	case ast.CharacterClassNegated:
		idx := c.emit(Inst{Op: ClassNegated})
		c.prog[idx].Bitmap = expandClass(node.Class)

	case ast.AnchorBegin:
		c.emit(Inst{Op: AssertBegin})

	case ast.AnchorEnd:
		c.emit(Inst{Op: AssertEnd})

	case ast.Concatenation:
		c.compileNode(node.Left)
		c.compileNode(node.Right)

	case ast.Alternation:
		splitIdx := c.emit(Inst{Op: Split})
		first := c.compileNode(node.Left)
		jumpIdx := c.emit(Inst{Op: Jump})
		second := c.compileNode(node.Right)
		c.prog[splitIdx].First = conv.IntToInt32(first)
		c.prog[splitIdx].Second = conv.IntToInt32(second)
		c.prog[jumpIdx].Target = conv.IntToInt32(c.pc)

	case ast.Quantifier:
		c.compileQuantifier(node)

	case ast.Capture:
		slot := c.nCaptures * 2
		c.nCaptures++
		c.emit(Inst{Op: Save, Slot: conv.IntToUint16(slot)})
		c.compileNode(node.Captured)
		c.emit(Inst{Op: Save, Slot: conv.IntToUint16(slot + 1)})
	}

	return bottom
}

// compileQuantifier unrolls node's mandatory repetitions, then emits
// either a bounded tail of optional copies (NMax > NMin) or a single
// back-edge Split for the unbounded case (NMax == -1). Each mandatory
// copy re-runs with nCaptures reset to the value on entry, so repeated
// captures inside the body are renumbered identically on every
// iteration — only the last iteration's slots end up live after a match,
// matching "a capture group inside a repeated construct keeps only its
// final iteration's bounds".
func (c *compiler) compileQuantifier(node *ast.Node) {
	ncapturesOnEntry := c.nCaptures

	var last int
	for i := 0; i < node.NMin; i++ {
		c.nCaptures = ncapturesOnEntry
		last = c.compileNode(node.Quantified)
	}

	switch {
	case node.NMax > node.NMin:
		for i := 0; i < node.NMax-node.NMin; i++ {
			c.nCaptures = ncapturesOnEntry
			splitIdx := c.emit(Inst{Op: Split})
			first := c.compileNode(node.Quantified)
			second := c.pc
			if !node.Greedy {
				first, second = second, first
			}
			c.prog[splitIdx].First = conv.IntToInt32(first)
			c.prog[splitIdx].Second = conv.IntToInt32(second)
		}

	case node.NMax == -1:
		splitIdx := c.emit(Inst{Op: Split})
		var first, second int
		if node.NMin == 0 {
			first = c.compileNode(node.Quantified)
			jumpIdx := c.emit(Inst{Op: Jump})
			c.prog[jumpIdx].Target = conv.IntToInt32(splitIdx)
			second = c.pc
		} else {
			first = last
			second = c.pc
		}
		if !node.Greedy {
			first, second = second, first
		}
		c.prog[splitIdx].First = conv.IntToInt32(first)
		c.prog[splitIdx].Second = conv.IntToInt32(second)
	}
}

// Compile lowers root into a freshly allocated Program.
func Compile(root *ast.Node) (*Program, error) {
	return CompileWithBuffer(root, make([]Inst, EstimateInstructions(root)))
}

// CompileWithBuffer is Compile, but writes into a caller-supplied
// instruction buffer rather than allocating one. buf must have at least
// EstimateInstructions(root) slots, or ErrBufferTooSmall is returned.
func CompileWithBuffer(root *ast.Node, buf []Inst) (*Program, error) {
	if need := EstimateInstructions(root); len(buf) < need {
		return nil, &Error{Need: need, Got: len(buf), Err: ErrBufferTooSmall}
	}

	c := &compiler{prog: buf}

	wrapped := &ast.Node{Kind: ast.Capture, Captured: root}
	if !isAnchored(root) {
		wrapped = &ast.Node{
			Kind: ast.Concatenation,
			Left: &ast.Node{
				Kind:       ast.Quantifier,
				NMin:       0,
				NMax:       -1,
				Greedy:     false,
				Quantified: &ast.Node{Kind: ast.AnyCharacter},
			},
			Right: wrapped,
		}
	}

	c.compileNode(wrapped)
	c.emit(Inst{Op: Match})

	return &Program{Insts: c.prog[:c.pc], NumCaptures: c.nCaptures}, nil
}

// CompileFromPattern parses pattern and compiles the result in one step.
func CompileFromPattern(pattern string) (*Program, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(root)
}
