package dawg

// Linearize produces the FlatArray and assigns an integer offset to
// every surviving ChildList.
//
// A compression group's chain is L1 ⊋ L2 ⊋ ... ⊋ Lk, each Li a strict
// subset of its predecessor as a Node set. Because Compress only
// chains a list that is, pointer for pointer, the tail of its
// predecessor, every Li is exactly the last len(Li) nodes of L1 in
// order - so the host's own node list *is* the already-laid-out list
// every Li is read from; no separate 26-slot vector needs to be built.
func Linearize(root *Node, groups []*CompressGroup) *FlatArray {
	var layout []*Node
	endOfList := make(map[int]bool)
	offsets := make(map[*ChildList]int)

	pos := 0
	for _, g := range groups {
		host := g.Chain[0]
		p := host.Nodes
		layout = append(layout, p...)
		endOfList[pos+len(p)-1] = true

		for _, li := range g.Chain {
			offsets[li] = pos + len(p) - len(li.Nodes)
		}
		pos += len(p)
	}

	terminatorOffset := pos
	layout = append(layout, nil) // nil marks the terminator

	offsetOf := func(n *Node) int {
		if n.Children.Len() == 0 {
			return terminatorOffset
		}
		return offsets[n.Children]
	}

	records := make([]Record, len(layout)+1)
	for i, n := range layout {
		if n == nil {
			records[i] = Record{} // terminator: Val 0, IsEnd false, EndOfList false, Children 0
			continue
		}
		records[i] = Record{
			Val:       n.Val,
			IsEnd:     n.IsEnd,
			EndOfList: endOfList[i],
			Children:  offsetOf(n),
		}
	}

	rootIndex := len(records) - 1
	rootChildren := terminatorOffset
	if root.Children.Len() > 0 {
		rootChildren = offsets[root.Children]
	}
	records[rootIndex] = Record{EndOfList: true, Children: rootChildren}

	return &FlatArray{Records: records, RootIndex: rootIndex}
}
