package Trees

import (
	"errors"
	"fmt"
)

// Causes of a ParseError, other than the *strconv.NumError of a malformed key.
var (
	// ErrTruncated indicates that the input ended before every node got both children.
	ErrTruncated = errors.New("input ends before the tree is complete")

	// ErrTrailing indicates that tokens follow a complete tree.
	ErrTrailing = errors.New("tokens follow a complete tree")

	// ErrOrder indicates a key that isn't strictly between the keys of its ancestors.
	ErrOrder = errors.New("key breaks the search order")

	// ErrCapacity indicates more nodes than the index type of the tree can address.
	ErrCapacity = errors.New("too many nodes for the index type")

	// ErrUnbalanced indicates a shape no AVLTree can have.
	ErrUnbalanced = errors.New("shape can't be height balanced")
)

// ParseError is returned by Deserialize and UnmarshalText when the text isn't
// the serialization of a tree.
type ParseError struct {
	Pos   int    // index of the offending token, len(tokens) if the input was cut short.
	Token string // the offending token.
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Trees: token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
