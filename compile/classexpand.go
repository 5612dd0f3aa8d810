package compile

import "github.com/coregx/bytevm/bitset"

// expandClass re-scans a parsed class body (ast.Node.Class — everything
// between the brackets, escapes and ranges still raw) and populates a
// bitset.Set. The class body is walked a second time here, at compile
// time, rather than building the bitmap during parsing.
func expandClass(text string) bitset.Set {
	var set bitset.Set

	i := 0
	for i < len(text) {
		ch := text[i]
		i++
		if ch == '\\' {
			ch = classByteAt(text, i)
			i++
		}

		if hi := classByteAt(text, i+1); classByteAt(text, i) == '-' && hi != ']' && hi != 0 {
			set.AddRange(ch, hi)
			i += 2
			continue
		}
		set.Add(ch)
	}

	return set
}

func classByteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
