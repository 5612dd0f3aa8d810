package compile

import (
	"fmt"
	"strings"
)

// Disassemble renders p's instructions as one line each, in the style of
// a textbook bytecode listing: an address followed by the opcode and its
// operands. It exists for debugging and for external tooling.
func (p *Program) Disassemble() string {
	var b strings.Builder
	for i, inst := range p.Insts {
		fmt.Fprintf(&b, "%4d  %s\n", i, disasmInst(inst))
	}
	return b.String()
}

func disasmInst(inst Inst) string {
	switch inst.Op {
	case Match:
		return "match"
	case Char:
		return fmt.Sprintf("char  %q", inst.Ch)
	case AnyChar:
		return "any"
	case Class:
		return "class"
	case ClassNegated:
		return "nclass"
	case Jump:
		return fmt.Sprintf("jmp   %d", inst.Target)
	case Split:
		return fmt.Sprintf("split %d, %d", inst.First, inst.Second)
	case AssertBegin:
		return "begin"
	case AssertEnd:
		return "end"
	case Save:
		return fmt.Sprintf("save  %d", inst.Slot)
	default:
		return fmt.Sprintf("op(%d)", inst.Op)
	}
}
