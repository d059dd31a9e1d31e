package trie

import (
	"errors"
	"fmt"
)

// Loader errors
var (
	// ErrNormalisation indicates that a word could not be normalised while loading.
	ErrNormalisation = errors.New("word normalisation failed")
)

// InvariantError is the value panicked with when the trie is handed an index
// or range that does not fit the word table. These are programming errors, not
// conditions a caller is expected to recover from.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("trie: %s: %s", e.Op, e.Detail)
}

func invariant(op, format string, args ...interface{}) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
