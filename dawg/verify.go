package dawg

import "sort"

// ExtractWords walks fa starting at the root's child span and
// enumerates every word encoded in the array. At a span it iterates
// records until one with EndOfList is seen (inclusive); for each
// record with a non-zero Val it emits the current prefix plus that
// letter if IsEnd, then recurses into the span at the record's
// Children offset. Termination is guaranteed because Children offsets
// form a DAG - no cycles.
func ExtractWords(fa *FlatArray) []string {
	var words []string

	var walk func(offset int, prefix []byte)
	walk = func(offset int, prefix []byte) {
		for idx := offset; ; idx++ {
			rec := fa.Records[idx]
			if rec.Val != 0 {
				word := append(append([]byte(nil), prefix...), rec.Val)
				if rec.IsEnd {
					words = append(words, string(word))
				}
				walk(rec.Children, word)
			}
			if rec.EndOfList {
				break
			}
		}
	}

	root := fa.Records[fa.RootIndex]
	walk(root.Children, nil)
	return words
}

// Verify re-extracts the word set encoded in fa and confirms it equals
// words exactly. A mismatch is fatal and signals either a pipeline bug
// or a stage-2 hash collision that merged two non-equivalent suffix
// languages.
func Verify(fa *FlatArray, words []string) error {
	got := ExtractWords(fa)
	if !sameStringSet(got, words) {
		return ErrCorruptionDetected
	}
	return nil
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
