package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Loader reads a word table from whitespace-separated text.
type Loader struct {
	normalised, caseSensitive bool
	// transformer replaces the default mark-stripping chain when set.
	transformer transform.Transformer
}

// NewLoader creates a Loader. By default words are normalised and lower-cased.
func NewLoader() *Loader {
	l := new(Loader)
	l.WithNormalisation()
	l.CaseInsensitive()
	return l
}

// WithNormalisation strips combining marks from loaded words,
// for example Jürgen is loaded as Jurgen. Load drops the original spelling;
// use LoadWithOriginals to keep it.
func (l *Loader) WithNormalisation() *Loader {
	l.normalised = true
	return l
}

// WithTransformer normalises loaded words with tr instead of stripping
// combining marks.
func (l *Loader) WithTransformer(tr transform.Transformer) *Loader {
	l.normalised = true
	l.transformer = tr
	return l
}

// WithoutNormalisation keeps loaded words as written.
func (l *Loader) WithoutNormalisation() *Loader {
	l.normalised = false
	return l
}

// CaseSensitive keeps the case of loaded words.
func (l *Loader) CaseSensitive() *Loader {
	l.caseSensitive = true
	return l
}

// CaseInsensitive lower-cases loaded words.
func (l *Loader) CaseInsensitive() *Loader {
	l.caseSensitive = false
	return l
}

// Load reads every whitespace-separated word from r, in order.
func (l *Loader) Load(r io.Reader) (Words, error) {
	words, _, err := l.LoadWithOriginals(r)
	return words, err
}

// LoadWithOriginals is like Load but also returns the words as written. The
// two tables are index-aligned, so a Leaf.Index built over words also
// resolves to its original spelling.
func (l *Loader) LoadWithOriginals(r io.Reader) (words, originals Words, err error) {
	transformer := l.transformer
	if transformer == nil {
		transformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		original := scanner.Text()
		word := original
		if l.normalised {
			normal, _, err := transform.String(transformer, word)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: word %d %q: %v", ErrNormalisation, len(words), word, err)
			}
			word = normal
		}
		if !l.caseSensitive {
			word = strings.ToLower(word)
		}
		words = append(words, word)
		originals = append(originals, original)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading words: %w", err)
	}
	return words, originals, nil
}
