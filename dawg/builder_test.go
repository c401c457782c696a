package dawg

import "testing"

func TestBuildTrieSharesPrefix(t *testing.T) {
	root, err := BuildTrie([]string{"CAT", "CATS"})
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}
	if root.Val != 0 || root.IsEnd {
		t.Fatalf("root = %+v, want pseudo-root", root)
	}
	if root.Children.Len() != 1 {
		t.Fatalf("root has %d children, want 1 (C)", root.Children.Len())
	}

	c := root.Children.Nodes[0]
	a := c.Children.Nodes[0]
	tn := a.Children.Nodes[0]
	if c.Val != 'C' || a.Val != 'A' || tn.Val != 'T' {
		t.Fatalf("spine = %c%c%c, want CAT", c.Val, a.Val, tn.Val)
	}
	if !tn.IsEnd {
		t.Fatal("T node should be a word end (CAT)")
	}
	if tn.Children.Len() != 1 || tn.Children.Nodes[0].Val != 'S' {
		t.Fatalf("T's children = %+v, want single S", tn.Children.Nodes)
	}
	if !tn.Children.Nodes[0].IsEnd {
		t.Fatal("S node should be a word end (CATS)")
	}
}

func TestBuildTrieEmpty(t *testing.T) {
	root, err := BuildTrie(nil)
	if err != nil {
		t.Fatalf("BuildTrie(nil) failed: %v", err)
	}
	if root.Children.Len() != 0 {
		t.Fatalf("root.Children.Len() = %d, want 0", root.Children.Len())
	}
}

func TestValidateWordErrors(t *testing.T) {
	cases := []string{"", "cat", "CAT1", "CAT-DOG", " CAT"}
	for _, w := range cases {
		if err := validateWord(w); err == nil {
			t.Errorf("validateWord(%q) = nil, want error", w)
		}
	}
}

func TestBuildTrieOrderingError(t *testing.T) {
	_, err := BuildTrie([]string{"CAT", "ANT"})
	if err == nil {
		t.Fatal("BuildTrie with out-of-order input succeeded, want error")
	}
}
