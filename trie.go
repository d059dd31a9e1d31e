package trie

import (
	"unicode/utf8"
)

// root is the arena index of the sentinel root. Since the root is never a
// child or a sibling, a zero link means "none".
const root = 0

// Trie is a compressed prefix tree over a fixed word table. Edges are stored as
// ranges into the table rather than as copied substrings. A Trie is built once
// by Build and is read-only afterwards, so concurrent Completions calls are safe.
type Trie struct {
	words Words
	nodes []node
	// leaves is the number of distinct words.
	leaves int
}

// node is an arena entry. A node with no firstChild is a leaf; its path from
// the root spells one complete word.
type node struct {
	rng        Range
	firstChild int
	sibling    int
	// aliases holds the indices of later insertions of the same word.
	aliases []int
}

// Leaf is a completion: a leaf of the trie and the word indices that spell it.
type Leaf struct {
	// Index is the word index whose insertion created the leaf.
	Index int
	// Aliases are the indices of later duplicates of the same word.
	Aliases []int
	// Range is the leaf's own edge.
	Range Range
}

// Build inserts every word of words, in order, into a new trie. The word table
// is borrowed, not copied, and must not be modified while the trie is in use.
func Build(words Words) *Trie {
	t := &Trie{
		words: words,
		nodes: make([]node, 1, 2*len(words)+1),
	}
	for i := range words {
		t.insert(i)
	}
	return t
}

// Words returns the word table the trie was built from.
func (t *Trie) Words() Words { return t.words }

// Len returns the number of distinct words, which equals the number of leaves.
func (t *Trie) Len() int { return t.leaves }

// Word returns the word a leaf spells.
func (t *Trie) Word(l Leaf) string { return t.words.At(l.Index) }

// insert adds words[i] to the trie. The walk descends through every edge the
// word shares completely, then either splits the first partially shared edge
// or appends a fresh leaf to the level where nothing matched.
func (t *Trie) insert(i int) {
	w := t.words.At(i)
	parent, offset := root, 0
	for {
		if offset == len(w) {
			t.terminate(parent, i, offset)
			return
		}
		last, next := 0, 0
		for c := t.nodes[parent].firstChild; c != 0; c = t.nodes[c].sibling {
			last = c
			rng := t.nodes[c].rng
			if rng.Start != offset {
				invariant("insert", "edge %v starts at %d, expected depth %d", rng, rng.Start, offset)
			}
			m := t.commonPrefix(w, offset, rng)
			if m == 0 {
				continue
			}
			if m < rng.Len() {
				t.split(c, m, i)
				return
			}
			next = c
			break
		}
		if next == 0 {
			t.appendSibling(parent, last, Range{Word: i, Start: offset, End: len(w) - 1})
			return
		}
		offset = t.nodes[next].rng.End + 1
		if t.nodes[next].firstChild == 0 {
			if offset == len(w) {
				t.nodes[next].aliases = append(t.nodes[next].aliases, i)
				return
			}
			t.convertLeaf(next)
		}
		parent = next
	}
}

// commonPrefix returns how many leading bytes of w[offset:] and the edge text
// agree, never ending inside a multi-byte character of the edge.
func (t *Trie) commonPrefix(w string, offset int, rng Range) int {
	edge := rng.text(t.words)
	rest := w[offset:]
	n := min(len(edge), len(rest))
	m := 0
	for m < n && edge[m] == rest[m] {
		m++
	}
	for m > 0 && m < len(edge) && !utf8.RuneStart(edge[m]) {
		m--
	}
	return m
}

// split shortens edge c to its first m bytes. The old remainder keeps c's
// subtree and aliases; words[i]'s remainder becomes a new leaf beside it.
func (t *Trie) split(c, m, i int) {
	old := t.nodes[c]
	cut := old.rng.Start + m
	rest := t.alloc(node{
		rng:        Range{Word: old.rng.Word, Start: cut, End: old.rng.End},
		firstChild: old.firstChild,
		aliases:    old.aliases,
	})
	fresh := t.alloc(node{rng: Range{Word: i, Start: cut, End: len(t.words[i]) - 1}})
	t.leaves++
	t.nodes[rest].sibling = fresh
	t.nodes[c].rng.End = cut - 1
	t.nodes[c].firstChild = rest
	t.nodes[c].aliases = nil
}

// convertLeaf turns leaf c into an internal node by giving its word a terminal
// child, so that longer words can continue below it.
func (t *Trie) convertLeaf(c int) {
	old := t.nodes[c]
	end := old.rng.End
	term := t.alloc(node{
		rng:     Range{Word: old.rng.Word, Start: end + 1, End: end},
		aliases: old.aliases,
	})
	t.nodes[c].firstChild = term
	t.nodes[c].aliases = nil
}

// terminate records that words[i] ends exactly below parent: as an alias of an
// existing terminal, or as a new terminal leaf.
func (t *Trie) terminate(parent, i, offset int) {
	last := 0
	for c := t.nodes[parent].firstChild; c != 0; c = t.nodes[c].sibling {
		last = c
		if t.nodes[c].rng.Terminal() {
			t.nodes[c].aliases = append(t.nodes[c].aliases, i)
			return
		}
	}
	t.appendSibling(parent, last, Range{Word: i, Start: offset, End: offset - 1})
}

// appendSibling adds a leaf for rng at the end of parent's child list; last is
// the current tail of that list, or 0 if it is empty.
func (t *Trie) appendSibling(parent, last int, rng Range) {
	n := t.alloc(node{rng: rng})
	t.leaves++
	if last == 0 {
		t.nodes[parent].firstChild = n
		return
	}
	t.nodes[last].sibling = n
}

func (t *Trie) alloc(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Completions returns the leaves whose words begin with prefix, in depth-first
// insertion order. The empty prefix matches every word. It returns nil when no
// word matches.
func (t *Trie) Completions(prefix string) []Leaf {
	type frame struct {
		parent, depth int
	}
	var leaves []Leaf
	stack := []frame{{parent: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rest := prefix[f.depth:]
		for c := t.nodes[f.parent].firstChild; c != 0; c = t.nodes[c].sibling {
			edge := t.nodes[c].rng.text(t.words)
			n := min(len(edge), len(rest))
			if edge[:n] != rest[:n] {
				continue
			}
			if len(edge) >= len(rest) {
				leaves = t.collect(c, leaves)
			} else if t.nodes[c].firstChild != 0 {
				stack = append(stack, frame{parent: c, depth: f.depth + len(edge)})
			}
		}
	}
	return leaves
}

// CompletionWords is like Completions but returns the words themselves.
func (t *Trie) CompletionWords(prefix string) []string {
	leaves := t.Completions(prefix)
	if leaves == nil {
		return nil
	}
	words := make([]string, len(leaves))
	for i, l := range leaves {
		words[i] = t.Word(l)
	}
	return words
}

// collect appends every leaf of the subtree rooted at n, n included.
func (t *Trie) collect(n int, leaves []Leaf) []Leaf {
	stack := []int{n}
	var children []int
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := t.nodes[c]
		if cur.firstChild == 0 {
			leaves = append(leaves, Leaf{Index: cur.rng.Word, Aliases: append([]int(nil), cur.aliases...), Range: cur.rng})
			continue
		}
		children = children[:0]
		for k := cur.firstChild; k != 0; k = t.nodes[k].sibling {
			children = append(children, k)
		}
		for j := len(children) - 1; j >= 0; j-- {
			stack = append(stack, children[j])
		}
	}
	return leaves
}
