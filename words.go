package trie

// Words is the ordered word table a trie is built over. Indices are stable;
// the trie only keeps ranges into it and never modifies it.
type Words []string

// At returns the word at index i. It panics with an *InvariantError if i is
// out of range.
func (w Words) At(i int) string {
	if i < 0 || i >= len(w) {
		invariant("word", "index %d out of range [0,%d)", i, len(w))
	}
	return w[i]
}

// Len returns the number of words in the table, duplicates included.
func (w Words) Len() int { return len(w) }
