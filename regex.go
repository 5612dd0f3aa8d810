// Package bytevm provides a regular-expression engine built on a
// Thompson-NFA bytecode virtual machine: patterns compile to a flat
// instruction program, and matching runs that program breadth-first so
// the worst case is always O(program size * input length) — there is no
// pattern that can make it backtrack.
//
// Supported syntax is a practical subset of Perl/PCRE-style regular
// expressions: literals, ".", character classes ("[...]", "[^...]"),
// the quantifiers "?", "*", "+" and "{m,n}" (with their non-greedy "?"
// suffix forms), alternation "|", grouping "(...)" with capture, and the
// "^"/"$" anchors. It does not support Unicode character properties,
// named captures, back-references, or lookaround.
//
// Basic usage:
//
//	re, err := bytevm.Compile(`([a-z]+)@([a-z]+)\.([a-z]+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("user@example.com") {
//	    fmt.Println(re.FindStringSubmatch("user@example.com"))
//	}
package bytevm

import (
	"github.com/coregx/bytevm/ast"
	"github.com/coregx/bytevm/compile"
	"github.com/coregx/bytevm/vm"
)

// Regex is a compiled regular expression.
//
// A *Regex is safe for concurrent use by multiple goroutines: every
// matching method allocates its own vm.Machine. A caller running many
// matches against one Regex from a single goroutine should prefer
// Matcher, which reuses that Machine across calls.
type Regex struct {
	prog *compile.Program
	src  string
}

// Compile parses pattern and compiles it into a Regex.
func Compile(pattern string) (*Regex, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}
	prog, err := compile.Compile(root)
	if err != nil {
		return nil, err
	}
	return &Regex{prog: prog, src: pattern}, nil
}

// MustCompile is Compile, but panics instead of returning an error. It
// is meant for patterns fixed at compile time, such as package-level
// vars.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(`bytevm: Compile(` + pattern + `): ` + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regex) String() string {
	return re.src
}

// NumSubexp returns the number of parenthesized subexpressions,
// excluding the implicit whole-match group 0.
func (re *Regex) NumSubexp() int {
	return re.prog.NumCaptures - 1
}

func (re *Regex) captureSlots() []int {
	return make([]int, 2*re.prog.NumCaptures)
}

// Match reports whether b contains any match of re.
func (re *Regex) Match(b []byte) bool {
	return re.MatchString(string(b))
}

// MatchString reports whether s contains any match of re.
func (re *Regex) MatchString(s string) bool {
	return vm.Run(re.prog, s, re.captureSlots())
}

// Find returns the leftmost match of re in b, or nil if there is none.
func (re *Regex) Find(b []byte) []byte {
	loc := re.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]]
}

// FindString is Find for strings.
func (re *Regex) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns a two-element slice giving the byte offsets of the
// leftmost match, or nil if there is none.
func (re *Regex) FindIndex(b []byte) []int {
	return re.FindStringIndex(string(b))
}

// FindStringIndex is FindIndex for strings.
func (re *Regex) FindStringIndex(s string) []int {
	caps := re.captureSlots()
	if !vm.Run(re.prog, s, caps) {
		return nil
	}
	return caps[:2]
}

// FindSubmatch returns the leftmost match of re in b together with the
// matches of every capture group. Result[0] is the whole match;
// result[i] is group i, or nil if group i did not participate in the
// match. A nil return means no match.
func (re *Regex) FindSubmatch(b []byte) [][]byte {
	idx := re.FindSubmatchIndex(b)
	if idx == nil {
		return nil
	}
	out := make([][]byte, len(idx)/2)
	for i := range out {
		if idx[2*i] < 0 {
			continue
		}
		out[i] = b[idx[2*i]:idx[2*i+1]]
	}
	return out
}

// FindStringSubmatch is FindSubmatch for strings.
func (re *Regex) FindStringSubmatch(s string) []string {
	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] < 0 {
			continue
		}
		out[i] = s[idx[2*i]:idx[2*i+1]]
	}
	return out
}

// FindSubmatchIndex returns index pairs for the leftmost match and every
// capture group: result[2*i:2*i+2] is group i's bounds, [-1, -1] if
// group i never matched. A nil return means no match.
func (re *Regex) FindSubmatchIndex(b []byte) []int {
	return re.FindStringSubmatchIndex(string(b))
}

// FindStringSubmatchIndex is FindSubmatchIndex for strings.
func (re *Regex) FindStringSubmatchIndex(s string) []int {
	caps := re.captureSlots()
	if !vm.Run(re.prog, s, caps) {
		return nil
	}
	return caps
}

// FindAll returns the non-overlapping matches of re in b, in order. If n
// >= 0, at most n matches are returned; n < 0 means all matches. A nil
// return means no match was found.
func (re *Regex) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	var out [][]byte
	pos := 0
	for pos <= len(b) {
		loc := re.FindIndex(b[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out = append(out, b[start:end])
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n >= 0 && len(out) >= n {
			break
		}
	}
	return out
}

// FindAllString is FindAll for strings.
func (re *Regex) FindAllString(s string, n int) []string {
	matches := re.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

// Matcher pairs a Regex with a reusable vm.Machine, so a caller running
// many matches against the same pattern from one goroutine does not pay
// for a fresh thread-list allocation on every call.
type Matcher struct {
	re      *Regex
	machine *vm.Machine
}

// NewMatcher returns a Matcher bound to re.
func NewMatcher(re *Regex) *Matcher {
	return &Matcher{re: re, machine: vm.NewMachine(re.prog)}
}

// FindStringSubmatchIndex is Regex.FindStringSubmatchIndex, reusing m's
// Machine instead of allocating a new one.
func (m *Matcher) FindStringSubmatchIndex(s string) []int {
	caps := m.re.captureSlots()
	if !m.machine.Run(m.re.prog, s, caps) {
		return nil
	}
	return caps
}

// MatchString is Regex.MatchString, reusing m's Machine.
func (m *Matcher) MatchString(s string) bool {
	return m.machine.Run(m.re.prog, s, m.re.captureSlots())
}
