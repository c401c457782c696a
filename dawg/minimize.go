package dawg

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Digest identifies the suffix language rooted at a node. 128 bits is
// built from two independent 64-bit xxhash sums rather than a single
// cryptographic digest - materially cheaper than an MD5 call per node,
// at negligible extra collision risk for realistic lexicons.
type Digest [16]byte

// MinimizeResult is the outcome of stage 2: the canonicalized DAG root
// plus bookkeeping counters for the hash-bucket table's behavior.
type MinimizeResult struct {
	Root *Node

	// Nodes is the number of distinct canonical nodes inserted.
	Nodes int
	// Duplicates is the number of trie nodes that merged into an
	// already-canonical node.
	Duplicates int
	// Collisions is the number of times a digest bucket held more
	// than one distinct canonical node (i.e. a real hash collision,
	// resolved by the equivalence check rather than trusted blindly).
	Collisions int
}

// Minimize hash-merges equivalent subtrees of the trie rooted at root
// into a DAG. Two nodes are equivalent iff they share IsEnd, Val, and
// their (already-canonicalized) children lists are pointer-for-pointer
// equal.
//
// The walk is iterative, driven by an explicit stack of in-progress
// frames, rather than recursive, since unbounded recursion over long
// words can blow the call stack. Each frame accumulates the digests of
// its children as they complete, so a node's own digest is computed
// exactly once, from already-known parts, with no re-descent.
func Minimize(root *Node) *MinimizeResult {
	res := &MinimizeResult{}
	table := make(map[Digest][]*Node)

	type frame struct {
		node         *Node
		childIdx     int
		childDigests []Digest
	}
	stack := []*frame{{node: root}}

	canonicalize := func(n *Node, d Digest) *Node {
		bucket := table[d]
		fresh := bucket == nil
		for _, cand := range bucket {
			if nodesEquivalent(cand, n) {
				res.Duplicates++
				return cand
			}
		}
		table[d] = append(bucket, n)
		res.Nodes++
		if !fresh {
			res.Collisions++
		}
		return n
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.childIdx < top.node.Children.Len() {
			child := top.node.Children.Nodes[top.childIdx]
			top.childIdx++
			stack = append(stack, &frame{node: child})
			continue
		}

		d := digestParts(top.node.IsEnd, top.node.Val, top.childDigests)
		canon := canonicalize(top.node, d)

		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.node.Children.Nodes[parent.childIdx-1] = canon
			parent.childDigests = append(parent.childDigests, d)
		} else {
			root = canon
		}
	}

	dedupeChildLists(root)
	assignNodeIDs(root)

	res.Root = root
	return res
}

// assignNodeIDs walks the minimized DAG breadth-first from root,
// visiting each node's children in their already-sorted A-Z order, and
// numbers every reachable node in visitation order. The result depends
// only on the DAG's content and shape, never on pointer addresses, so
// it is identical across separate builds of the same input, which
// later stages rely on wherever they need a deterministic tie-break.
func assignNodeIDs(root *Node) {
	seen := map[*Node]bool{root: true}
	queue := []*Node{root}
	id := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		n.ID = id
		id++
		for _, c := range n.Children.Nodes {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
}

// nodesEquivalent reports whether a and b describe the same suffix
// language, given that their children are already canonical: IsEnd,
// Val and the child-pointer sequence must match exactly.
func nodesEquivalent(a, b *Node) bool {
	if a == b {
		return true
	}
	if a.IsEnd != b.IsEnd || a.Val != b.Val {
		return false
	}
	if a.Children.Len() != b.Children.Len() {
		return false
	}
	for i, n := range a.Children.Nodes {
		if b.Children.Nodes[i] != n {
			return false
		}
	}
	return true
}

// digestParts computes hash(N) = H(IsEnd || Val || concat(childDigests)),
// given the already-computed digests of N's children in order.
func digestParts(isEnd bool, val byte, childDigests []Digest) Digest {
	buf := make([]byte, 0, 2+16*len(childDigests))
	if isEnd {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, val)
	for _, cd := range childDigests {
		buf = append(buf, cd[:]...)
	}
	return sum128(buf)
}

// sum128 combines two independent 64-bit xxhash sums into a 128-bit
// digest using a one-byte domain-separation suffix for the second sum.
func sum128(buf []byte) Digest {
	var d Digest
	h1 := xxhash.Sum64(buf)
	binary.LittleEndian.PutUint64(d[0:8], h1)

	sep := append(append([]byte(nil), buf...), 0xFF)
	h2 := xxhash.Sum64(sep)
	binary.LittleEndian.PutUint64(d[8:16], h2)
	return d
}

// dedupeChildLists unifies ChildList instances that hold pointwise
// equal canonical nodes. It walks every canonical node reachable from
// root, depth-first with an explicit stack, and rewrites each node's
// Children to a shared instance the first time an equal list is seen.
func dedupeChildLists(root *Node) {
	seen := make(map[*Node]bool)
	byKey := make(map[string]*ChildList)
	stack := []*Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true

		key := childListKey(n.Children)
		if existing, ok := byKey[key]; ok {
			n.Children = existing
		} else {
			byKey[key] = n.Children
		}
		for _, c := range n.Children.Nodes {
			stack = append(stack, c)
		}
	}
}

// childListKey builds a string key from the pointer identity of a
// ChildList's nodes, in the same A-Z order the list is already sorted
// in (invariant 2), so that pointwise-equal lists collide in byKey.
func childListKey(cl *ChildList) string {
	buf := make([]byte, 0, cl.Len()*8)
	for _, n := range cl.Nodes {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(nodeID(n)))
		buf = append(buf, b[:]...)
	}
	return string(buf)
}

// nodeID returns a stable integer identifying n's pointer, used only
// as a transient, in-process map key - never serialized.
func nodeID(n *Node) uintptr {
	return reflect.ValueOf(n).Pointer()
}
