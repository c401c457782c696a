// Package dawg compiles a sorted list of uppercase A-Z words into a
// Directed Acyclic Word Graph: a minimized trie serialized as a flat,
// bit-packed array of fixed-width records.
//
// The pipeline runs in six strictly ordered stages - build, minimize,
// compress, linearize, verify, encode - each consuming the previous
// stage's output and producing owned values for the next. See Build.
package dawg

// Node is the unit of the graph, addressed by pointer identity during
// stages 1-3. Stage 4 reads a Node's Val, IsEnd and Children exactly
// once per sibling-list position it occupies - a single canonical Node
// can be copied into the FlatArray more than once, since suffix
// sharing means the same suffix language can be the tail of several
// different sibling lists, each needing its own EndOfList flag.
type Node struct {
	// Val is the letter this node represents, 'A'-'Z', or 0 for the
	// pseudo-root.
	Val byte

	// IsEnd is true iff the path ending at this node spells a
	// complete word.
	IsEnd bool

	// Children is this node's ChildList. Nil/empty after stage 1 only
	// for a word's terminal leaf node.
	Children *ChildList

	// ID is a stable, content-derived sequence number assigned to
	// every canonical node once stage 2 completes (see
	// assignNodeIDs). Unlike a pointer address it is the same on
	// every run given the same input, so later stages can use it for
	// deterministic tie-breaking without making the output depend on
	// memory layout.
	ID int
}

// ChildList is an ordered tuple of a node's children, sorted by Val.
// Two ChildLists are equal iff they hold the same Node pointers in the
// same order.
type ChildList struct {
	Nodes []*Node
}

// Len reports the number of nodes in the list. A nil *ChildList (never
// produced by this package, but convenient for zero-value callers)
// reports 0.
func (c *ChildList) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Nodes)
}

// Record is one 32-bit-packable entry of the linearized FlatArray: a
// Node after stage 4 has replaced its ChildList reference with an
// integer offset into the array.
type Record struct {
	Val       byte
	IsEnd     bool
	EndOfList bool
	Children  int
}

// FlatArray is the linearized output of stage 4: a contiguous sequence
// of records, accessed by integer offset. RootIndex is the index of
// the final appended root record.
type FlatArray struct {
	Records   []Record
	RootIndex int
}
