package dawg

import "fmt"

// BuildTrie builds a prefix trie from a sequence of uppercase ASCII
// words given in strict increasing lexicographic order. It returns the
// pseudo-root node, whose Val is 0, IsEnd is false, and Children lists
// the first-letter branches.
//
// Because the input is sorted, each new word shares a prefix with its
// immediate predecessor, so the builder only ever needs to walk the
// rightmost spine of the trie built so far - it never revisits an
// earlier branch, with an explicit last-child check in place of a
// child-lookup map since the alphabet is the fixed A-Z range.
func BuildTrie(words []string) (*Node, error) {
	root := &Node{Children: &ChildList{}}

	var prev string
	for i, word := range words {
		if err := validateWord(word); err != nil {
			return nil, fmt.Errorf("%w: word %d (%q): %v", ErrInvalidInput, i, word, err)
		}
		if i > 0 && word <= prev {
			return nil, fmt.Errorf("%w: word %d (%q) does not strictly follow %q", ErrInvalidInput, i, word, prev)
		}
		prev = word

		cur := root
		for j := 0; j < len(word); j++ {
			c := word[j]
			cl := cur.Children
			var child *Node
			if n := cl.Len(); n > 0 && cl.Nodes[n-1].Val == c {
				child = cl.Nodes[n-1]
			} else {
				child = &Node{Val: c, Children: &ChildList{}}
				cl.Nodes = append(cl.Nodes, child)
			}
			cur = child
		}
		cur.IsEnd = true
	}

	return root, nil
}

// validateWord reports a descriptive error if word is empty or
// contains a byte outside A-Z.
func validateWord(word string) error {
	if word == "" {
		return fmt.Errorf("empty word")
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("character %q at position %d is not in A-Z", c, i)
		}
	}
	return nil
}
