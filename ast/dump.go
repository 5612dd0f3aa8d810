package ast

import (
	"fmt"
	"strings"
)

// Dump renders node's tree as indented, human-readable text, one node per
// line. It exists for debugging and for external tooling that wants to
// inspect a parse tree without reaching into Node's fields directly.
func Dump(node *Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if node == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	switch node.Kind {
	case Epsilon:
		fmt.Fprintf(b, "%sEpsilon\n", indent)

	case Character:
		fmt.Fprintf(b, "%sCharacter %q\n", indent, node.Ch)

	case AnyCharacter:
		fmt.Fprintf(b, "%sAnyCharacter\n", indent)

	case CharacterClass:
		fmt.Fprintf(b, "%sCharacterClass %q\n", indent, node.Class)

	case CharacterClassNegated:
		fmt.Fprintf(b, "%sCharacterClassNegated %q\n", indent, node.Class)

	case Concatenation:
		fmt.Fprintf(b, "%sConcatenation\n", indent)
		dump(b, node.Left, depth+1)
		dump(b, node.Right, depth+1)

	case Alternation:
		fmt.Fprintf(b, "%sAlternation\n", indent)
		dump(b, node.Left, depth+1)
		dump(b, node.Right, depth+1)

	case Quantifier:
		bound := fmt.Sprintf("%d", node.NMax)
		if node.NMax == -1 {
			bound = "inf"
		}
		fmt.Fprintf(b, "%sQuantifier {%d,%s} greedy=%v\n", indent, node.NMin, bound, node.Greedy)
		dump(b, node.Quantified, depth+1)

	case AnchorBegin:
		fmt.Fprintf(b, "%sAnchorBegin\n", indent)

	case AnchorEnd:
		fmt.Fprintf(b, "%sAnchorEnd\n", indent)

	case Capture:
		fmt.Fprintf(b, "%sCapture\n", indent)
		dump(b, node.Captured, depth+1)

	default:
		fmt.Fprintf(b, "%sunknown kind %d\n", indent, node.Kind)
	}
}
