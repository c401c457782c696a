package dawg

// Stats reports bookkeeping counters gathered across the pipeline, for
// progress reporting by an external collaborator; package dawg never
// logs or prints anything itself.
type Stats struct {
	// Words is the number of input words.
	Words int
	// MinimizedNodes is the number of distinct canonical nodes stage 2
	// produced.
	MinimizedNodes int
	// Duplicates is the number of trie nodes stage 2 merged away.
	Duplicates int
	// Collisions is the number of stage-2 digest-bucket collisions
	// resolved by the equivalence check.
	Collisions int
	// Groups is the number of surviving compression groups stage 3
	// produced.
	Groups int
	// Records is the final FlatArray length, including the
	// terminator and root.
	Records int
}

// Build runs the full six-stage pipeline over a sorted, uppercase,
// duplicate-free word list and returns the linearized array, its
// bit-packed encoding, and pipeline statistics.
//
// The stages are pure functions composed in sequence, keeping I/O and
// progress reporting out of the core:
// build -> minimize -> compress -> linearize -> verify -> encode.
func Build(words []string) (*FlatArray, []byte, *Stats, error) {
	root, err := BuildTrie(words)
	if err != nil {
		return nil, nil, nil, err
	}

	mr := Minimize(root)
	cr := Compress(mr.Root)
	fa := Linearize(mr.Root, cr.Groups)

	if err := Verify(fa, words); err != nil {
		return nil, nil, nil, err
	}

	enc, err := Encode(fa)
	if err != nil {
		return nil, nil, nil, err
	}

	stats := &Stats{
		Words:          len(words),
		MinimizedNodes: mr.Nodes,
		Duplicates:     mr.Duplicates,
		Collisions:     mr.Collisions,
		Groups:         len(cr.Groups),
		Records:        len(fa.Records),
	}
	return fa, enc, stats, nil
}
