package ast

// arena implements a two-stack construction discipline: a single flat
// buffer split into a working stack growing up from index 0 and an output
// stack growing down from the end. push/drop mutate the working stack;
// consume moves its top into the output stack, returning a pointer that
// stays valid for the rest of parsing because the backing slice is never
// reallocated once handed to newArena.
type arena struct {
	nodes  []Node
	top    int // one past the last occupied working-stack slot
	output int // first occupied output-stack slot
}

func newArena(nodes []Node) *arena {
	return &arena{nodes: nodes, top: 0, output: len(nodes)}
}

// push appends n to the working stack and returns a pointer to its
// working-stack slot; unlike consume's result, that slot is reused once
// the node is consumed or dropped.
// The two-stack invariant (working-top <= output-top) must hold on every
// push; a correctly sized arena (see EstimateNodes) never violates it, so
// a violation here means the caller under-sized the arena.
func (a *arena) push(n Node) *Node {
	if a.top >= a.output {
		panic("ast: arena exhausted: pattern needs more nodes than EstimateNodes allotted")
	}
	a.nodes[a.top] = n
	a.top++
	return &a.nodes[a.top-1]
}

// drop pops the working stack without moving the node anywhere; its
// storage is simply abandoned until a later push overwrites it.
func (a *arena) drop() *Node {
	a.top--
	return &a.nodes[a.top]
}

// consume moves the working stack's top node into the output stack and
// returns a pointer into its new, permanent home.
func (a *arena) consume() *Node {
	a.output--
	a.nodes[a.output] = a.nodes[a.top-1]
	a.top--
	return &a.nodes[a.output]
}

// at returns a pointer to the working-stack slot at index i.
func (a *arena) at(i int) *Node {
	return &a.nodes[i]
}

// concatenate reduces the working-stack region [bottom, top) — the atoms
// of one concatenation group — into a single node, right-leaning: it
// repeatedly consumes the rightmost pair and pushes their Concatenation,
// until exactly one node remains at index bottom. An empty region
// produces Epsilon.
func (a *arena) concatenate(bottom int) *Node {
	if a.top == bottom {
		a.push(Node{Kind: Epsilon})
		return a.at(bottom)
	}
	for a.top-1 > bottom {
		right := a.consume()
		left := a.consume()
		a.push(Node{Kind: Concatenation, Left: left, Right: right})
	}
	return a.at(bottom)
}
