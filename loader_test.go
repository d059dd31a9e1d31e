package trie

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

type failingTransformer struct{ transform.NopResetter }

func (failingTransformer) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	return 0, 0, errors.New("bad mark")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoader(t *testing.T) {
	input := "Jürgen  Jurg\n\tÉcole école\nBEAR"

	t.Run("defaults", func(t *testing.T) {
		words, err := NewLoader().Load(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Words{"jurgen", "jurg", "ecole", "ecole", "bear"}, words)
	})

	t.Run("without normalisation", func(t *testing.T) {
		words, err := NewLoader().WithoutNormalisation().Load(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Words{"jürgen", "jurg", "école", "école", "bear"}, words)
	})

	t.Run("case sensitive", func(t *testing.T) {
		words, err := NewLoader().CaseSensitive().Load(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Words{"Jurgen", "Jurg", "Ecole", "ecole", "BEAR"}, words)
	})

	t.Run("as written", func(t *testing.T) {
		words, err := NewLoader().CaseSensitive().WithoutNormalisation().Load(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Words{"Jürgen", "Jurg", "École", "école", "BEAR"}, words)
	})

	t.Run("empty input", func(t *testing.T) {
		words, err := NewLoader().Load(strings.NewReader(" \n\t"))
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("read error", func(t *testing.T) {
		_, err := NewLoader().Load(failingReader{})
		assert.EqualError(t, err, "reading words: disk on fire")
	})

	t.Run("build from loaded words", func(t *testing.T) {
		words, err := NewLoader().Load(strings.NewReader(input))
		require.NoError(t, err)
		tr := Build(words)
		assert.Equal(t, 4, tr.Len())
		assert.Equal(t, []string{"jurg", "jurgen"}, wordsOf(tr, tr.Completions("jur")))
		assert.Equal(t, 5, tr.Words().Len())
	})

	t.Run("with originals", func(t *testing.T) {
		words, originals, err := NewLoader().LoadWithOriginals(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, Words{"Jürgen", "Jurg", "École", "école", "BEAR"}, originals)
		require.Equal(t, words.Len(), originals.Len())

		tr := Build(words)
		var spelled []string
		for _, l := range tr.Completions("jurg") {
			spelled = append(spelled, originals.At(l.Index))
		}
		assert.ElementsMatch(t, []string{"Jürgen", "Jurg"}, spelled)
	})

	t.Run("custom transformer", func(t *testing.T) {
		words, err := NewLoader().WithTransformer(runes.Remove(runes.In(unicode.Digit))).Load(strings.NewReader("R2D2 c3po"))
		require.NoError(t, err)
		assert.Equal(t, Words{"rd", "cpo"}, words)
	})

	t.Run("normalisation error", func(t *testing.T) {
		_, originals, err := NewLoader().WithTransformer(failingTransformer{}).LoadWithOriginals(strings.NewReader("ok Jürgen"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNormalisation))
		assert.EqualError(t, err, `word normalisation failed: word 0 "ok": bad mark`)
		assert.Nil(t, originals)
	})
}
