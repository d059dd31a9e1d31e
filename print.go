package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented rendering of the trie to w. Each edge is shown as
// the prefix its path spells followed by its range triple.
func (t *Trie) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "root")
	type frame struct {
		n, depth int
	}
	var stack []frame
	push := func(parent, depth int) {
		start := len(stack)
		for c := t.nodes[parent].firstChild; c != 0; c = t.nodes[c].sibling {
			stack = append(stack, frame{n: c, depth: depth})
		}
		for i, j := start, len(stack)-1; i < j; i, j = i+1, j-1 {
			stack[i], stack[j] = stack[j], stack[i]
		}
	}
	push(root, 1)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.n]
		spelled := t.words.At(n.rng.Word)[:n.rng.End+1]
		indent := strings.Repeat("    ", f.depth-1)
		fmt.Fprintf(bw, "%s |-- %s %v", indent, spelled, n.rng)
		if n.rng.Terminal() {
			fmt.Fprint(bw, " $")
		}
		if len(n.aliases) > 0 {
			fmt.Fprintf(bw, " aliases=%v", n.aliases)
		}
		fmt.Fprintln(bw)
		push(f.n, f.depth+1)
	}
	return bw.Flush()
}

func (t *Trie) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}
