// Package vm executes a compile.Program against an input string using a
// breadth-first, Pike-VM-style simulation: every active thread advances
// one input byte per step, and priority order among threads is
// maintained so the first thread to reach Match is the leftmost-first
// result.
package vm

import "github.com/coregx/bytevm/compile"

// thread is one active execution path: an instruction pointer plus the
// capture slots accumulated to reach it. captures is a private snapshot
// — once a thread is appended to a threadList it is never mutated again,
// so two threads can be compared and discarded independently.
type thread struct {
	pc       int
	captures []int
}

// threadList is a dense, priority-ordered run of threads for a single
// input position. Its backing array is sized once (to the program's
// instruction count, the maximum number of live threads at any position)
// and reused across positions to avoid per-step allocation.
type threadList struct {
	threads []thread
	count   int
}

func newThreadList(n int) *threadList {
	return &threadList{threads: make([]thread, n)}
}

func (l *threadList) add(pc int, captures []int) {
	l.threads[l.count] = thread{pc: pc, captures: captures}
	l.count++
}

// Machine holds the buffers one Run call needs: two alternating thread
// lists and an epoch-stamped visited array for O(1) per-position
// deduplication. Allocate one per goroutine and reuse it across Run
// calls; a Machine is not safe for concurrent use.
type Machine struct {
	clist, nlist *threadList
	visited      []int
}

// NewMachine preallocates a Machine sized for prog. The same Machine may
// be reused across any number of Run calls against prog (or any program
// with no more instructions), amortizing the buffer allocation.
func NewMachine(prog *compile.Program) *Machine {
	n := len(prog.Insts)
	return &Machine{
		clist:   newThreadList(n),
		nlist:   newThreadList(n),
		visited: make([]int, n),
	}
}

// Run executes prog against input and reports whether it matches. On a
// match, captures[0:2] holds the overall match bounds and, for i >= 1,
// captures[2*i:2*i+2] holds sub-expression i's bounds ([-1, -1] if that
// group never participated). captures must have length at least
// 2*prog.NumCaptures.
func (m *Machine) Run(prog *compile.Program, input string, captures []int) bool {
	for i := range m.visited {
		m.visited[i] = 0
	}
	m.clist.count = 0
	m.nlist.count = 0

	start := make([]int, 2*prog.NumCaptures)
	for i := range start {
		start[i] = -1
	}
	m.addThread(m.clist, prog, 0, 0, len(input), start)

	matched := false

	for pos := 0; ; pos++ {
		if m.clist.count == 0 {
			break
		}
		atEnd := pos == len(input)
		var ch byte
		if !atEnd {
			ch = input[pos]
		}

	threadScan:
		for i := 0; i < m.clist.count; i++ {
			t := m.clist.threads[i]
			inst := &prog.Insts[t.pc]

			switch inst.Op {
			case compile.Char:
				if !atEnd && ch == inst.Ch {
					m.addThread(m.nlist, prog, t.pc+1, pos+1, len(input), t.captures)
				}
			case compile.AnyChar:
				if !atEnd && ch != 0 {
					m.addThread(m.nlist, prog, t.pc+1, pos+1, len(input), t.captures)
				}
			case compile.Class:
				if !atEnd && inst.Bitmap.Contains(ch) {
					m.addThread(m.nlist, prog, t.pc+1, pos+1, len(input), t.captures)
				}
			case compile.ClassNegated:
				if !atEnd && !inst.Bitmap.Contains(ch) {
					m.addThread(m.nlist, prog, t.pc+1, pos+1, len(input), t.captures)
				}
			case compile.Match:
				// This thread wins over every lower-priority thread
				// still waiting in clist, so stop scanning clist — but
				// higher-priority threads already queued into nlist
				// keep running, since a better (still higher-priority)
				// match may yet complete at a later position and
				// should overwrite this one.
				copy(captures, t.captures)
				matched = true
				break threadScan
			default:
				panic("vm: epsilon opcode reached the consuming dispatch")
			}
		}

		if atEnd {
			break
		}
		m.clist, m.nlist = m.nlist, m.clist
		m.nlist.count = 0
	}

	return matched
}

// addThread adds pc to list, first following every epsilon transition
// reachable from it (Jump, Split, the anchors, and Save) so that list
// only ever holds threads parked on a byte-consuming instruction or
// Match. visited deduplicates by instruction, stamped with pos+1 so the
// same array serves every position without being cleared between them —
// a pc visited while building the list for pos is never equal to pos+1
// when later visited while building the list for pos+1.
func (m *Machine) addThread(list *threadList, prog *compile.Program, pc, pos, inputLen int, captures []int) {
	if m.visited[pc] == pos+1 {
		return
	}
	m.visited[pc] = pos + 1

	inst := &prog.Insts[pc]
	switch inst.Op {
	case compile.Jump:
		m.addThread(list, prog, int(inst.Target), pos, inputLen, captures)

	case compile.Split:
		m.addThread(list, prog, int(inst.First), pos, inputLen, captures)
		m.addThread(list, prog, int(inst.Second), pos, inputLen, captures)

	case compile.AssertBegin:
		if pos == 0 {
			m.addThread(list, prog, pc+1, pos, inputLen, captures)
		}

	case compile.AssertEnd:
		if pos == inputLen {
			m.addThread(list, prog, pc+1, pos, inputLen, captures)
		}

	case compile.Save:
		slot := int(inst.Slot)
		old := captures[slot]
		captures[slot] = pos
		m.addThread(list, prog, pc+1, pos, inputLen, captures)
		captures[slot] = old

	default:
		snap := make([]int, len(captures))
		copy(snap, captures)
		list.add(pc, snap)
	}
}

// Run is a convenience wrapper over Machine for one-shot execution. It
// allocates a fresh Machine for the call; callers running many matches
// against the same Program should keep their own Machine via NewMachine
// instead.
func Run(prog *compile.Program, input string, captures []int) bool {
	return NewMachine(prog).Run(prog, input, captures)
}
