package trie

import "fmt"

// Range labels an edge with the text Words[Word][Start..End], inclusive.
// A range with End == Start-1 is a terminal: it spells nothing and marks the
// end of a word whose path continues with other edges.
type Range struct {
	Word  int
	Start int
	End   int
}

// Len is the number of bytes the range spells.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Terminal reports whether the range is a zero-length end-of-word marker.
func (r Range) Terminal() bool { return r.Len() == 0 }

func (r Range) String() string {
	return fmt.Sprintf("(%d,%d,%d)", r.Word, r.Start, r.End)
}

// text resolves the range against words, panicking on a malformed range.
func (r Range) text(words Words) string {
	w := words.At(r.Word)
	if r.Start < 0 || r.End < r.Start-1 || r.End >= len(w) {
		invariant("range", "%v is malformed for %q", r, w)
	}
	return w[r.Start : r.End+1]
}
