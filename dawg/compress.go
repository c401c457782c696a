package dawg

import "sort"

// CompressGroup is a surviving compression group from stage 3: a chain
// of ChildLists Host ⊋ Absorbed[0] ⊋ Absorbed[1] ⊋ ... each a strict
// subset of the previous and equal to its tail, destined to share one
// contiguous span in the flat array.
type CompressGroup struct {
	// Chain holds the group's lists from largest (the host, index 0)
	// to smallest, each a strict subset and the tail of its predecessor.
	Chain []*ChildList
}

// CompressResult is the outcome of stage 3.
type CompressResult struct {
	Groups []*CompressGroup
}

// Compress overlaps strict-subset sibling lists onto larger hosts: it
// builds an inverse index from canonical node to the ChildLists
// containing it, then processes ChildLists in descending length order,
// absorbing each into the first compatible host found via the smallest
// candidate bucket.
//
// Iteration order is made deterministic by sorting on Node.ID rather
// than on map iteration order or pointer addresses, so two builds of
// the same input always pick the same absorptions.
func Compress(root *Node) *CompressResult {
	lists := collectChildLists(root)

	inverse := make(map[*Node][]*ChildList)
	for _, cl := range lists {
		for _, n := range cl.Nodes {
			inverse[n] = append(inverse[n], cl)
		}
	}
	for n := range inverse {
		bucket := inverse[n]
		sort.Slice(bucket, func(i, j int) bool {
			return lessChildList(bucket[i], bucket[j])
		})
		inverse[n] = bucket
	}

	order := append([]*ChildList(nil), lists...)
	sort.Slice(order, func(i, j int) bool {
		// Descending length, deterministic tie-break ascending.
		if len(order[i].Nodes) != len(order[j].Nodes) {
			return len(order[i].Nodes) > len(order[j].Nodes)
		}
		return lessChildList(order[i], order[j])
	})

	group := make(map[*ChildList][]*ChildList, len(lists))
	absorbed := make(map[*ChildList]bool, len(lists))
	for _, cl := range lists {
		group[cl] = []*ChildList{cl}
	}

	for _, l := range order {
		if absorbed[l] {
			continue
		}
		n := smallestBucketNode(l, inverse)
		for _, h := range inverse[n] {
			if h == l || absorbed[h] {
				continue
			}
			top := group[h][len(group[h])-1]
			if !isStrictSupersetOf(top, l) {
				continue
			}
			// Linearize reads l from the last len(l) slots of the host's
			// span, so l must be exactly top's tail, not just a subset.
			tail := top.Nodes[len(top.Nodes)-len(l.Nodes):]
			isTail := true
			for i, n := range l.Nodes {
				if tail[i] != n {
					isTail = false
					break
				}
			}
			if isTail {
				group[h] = append(group[h], l)
				absorbed[l] = true
				break
			}
		}
	}

	var groups []*CompressGroup
	for _, cl := range lists {
		if absorbed[cl] {
			continue
		}
		groups = append(groups, &CompressGroup{Chain: group[cl]})
	}
	// Deterministic group order: by host's id tuple.
	sort.Slice(groups, func(i, j int) bool {
		return lessChildList(groups[i].Chain[0], groups[j].Chain[0])
	})

	return &CompressResult{Groups: groups}
}

// collectChildLists returns every distinct, non-empty ChildList
// reachable from root, in a deterministic order (BFS over the DAG
// following each node's already-sorted child order). Distinctness is
// by pointer, which is safe here because stage 2 already deduped
// equal-content ChildLists to a single shared instance.
func collectChildLists(root *Node) []*ChildList {
	var lists []*ChildList
	seenLists := make(map[*ChildList]bool)
	seenNodes := map[*Node]bool{root: true}
	queue := []*Node{root}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.Children.Len() > 0 && !seenLists[n.Children] {
			seenLists[n.Children] = true
			lists = append(lists, n.Children)
		}
		for _, c := range n.Children.Nodes {
			if !seenNodes[c] {
				seenNodes[c] = true
				queue = append(queue, c)
			}
		}
	}
	return lists
}

// smallestBucketNode returns the node in cl whose inverse-index bucket
// is smallest (the node that minimizes the candidate set a subset
// check has to scan), breaking ties by the lowest Node.ID.
func smallestBucketNode(cl *ChildList, inverse map[*Node][]*ChildList) *Node {
	best := cl.Nodes[0]
	bestSize := len(inverse[best])
	for _, n := range cl.Nodes[1:] {
		size := len(inverse[n])
		if size < bestSize || (size == bestSize && n.ID < best.ID) {
			best = n
			bestSize = size
		}
	}
	return best
}

// isStrictSupersetOf reports whether host's node set strictly contains
// sub's node set. Distinct ChildList instances always have distinct
// node sets after stage 2's dedupe, so a (non-strict) superset
// relation between distinct lists is automatically strict.
func isStrictSupersetOf(host, sub *ChildList) bool {
	if host == sub || len(host.Nodes) <= len(sub.Nodes) {
		return false
	}
	set := make(map[*Node]bool, len(host.Nodes))
	for _, n := range host.Nodes {
		set[n] = true
	}
	for _, n := range sub.Nodes {
		if !set[n] {
			return false
		}
	}
	return true
}

// lessChildList imposes a total order on ChildLists by the
// lexicographic sequence of their member Node.IDs, used wherever
// iteration order must be fixed deterministically rather than left to
// map order or list length alone.
func lessChildList(a, b *ChildList) bool {
	for i := 0; i < len(a.Nodes) && i < len(b.Nodes); i++ {
		if a.Nodes[i].ID != b.Nodes[i].ID {
			return a.Nodes[i].ID < b.Nodes[i].ID
		}
	}
	return len(a.Nodes) < len(b.Nodes)
}
