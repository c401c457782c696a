package dawg

import "testing"

// TestCompressAbsorbsStrictSubset checks that a two-node chain (root's
// single-letter span, and that letter's own single-letter span)
// produces one group per span when no subset relation exists between
// them - the simplest case where Compress must do nothing.
func TestCompressNoSubsetKeepsGroupsSeparate(t *testing.T) {
	root, err := BuildTrie([]string{"A", "AB"})
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}
	mr := Minimize(root)
	cr := Compress(mr.Root)

	if len(cr.Groups) != 2 {
		t.Fatalf("Groups = %d, want 2 (root span {A}, A's span {B})", len(cr.Groups))
	}
	for _, g := range cr.Groups {
		if len(g.Chain) != 1 {
			t.Errorf("group %v unexpectedly absorbed other lists", g.Chain)
		}
	}
}

func TestLessChildListOrdering(t *testing.T) {
	n1 := &Node{ID: 1}
	n2 := &Node{ID: 2}
	n3 := &Node{ID: 3}

	a := &ChildList{Nodes: []*Node{n1, n2}}
	b := &ChildList{Nodes: []*Node{n1, n3}}
	c := &ChildList{Nodes: []*Node{n1}}

	if !lessChildList(a, b) {
		t.Error("want {1,2} < {1,3}")
	}
	if !lessChildList(c, a) {
		t.Error("want {1} < {1,2} (shorter prefix sorts first)")
	}
	if lessChildList(a, a) {
		t.Error("a list must not be less than itself")
	}
}

func TestIsStrictSupersetOf(t *testing.T) {
	n1 := &Node{ID: 1}
	n2 := &Node{ID: 2}
	n3 := &Node{ID: 3}

	host := &ChildList{Nodes: []*Node{n1, n2, n3}}
	sub := &ChildList{Nodes: []*Node{n1, n3}}
	notSub := &ChildList{Nodes: []*Node{n1, &Node{ID: 4}}}

	if !isStrictSupersetOf(host, sub) {
		t.Error("host should strictly contain sub")
	}
	if isStrictSupersetOf(host, notSub) {
		t.Error("host does not contain a node outside its set")
	}
	if isStrictSupersetOf(host, host) {
		t.Error("a list is not a strict superset of itself")
	}
}
