package planfind

import (
	"errors"
	"fmt"
)

// ErrNotArrayOrObject is a common error that multiple methods of Node
// return. This signals that the node is a standalone value.
var ErrNotArrayOrObject = errors.New("not array or object")

// ErrInvalidInput signals input that does not conform to the tree value
// model: a mapping with string keys, a sequence, or a scalar.
var ErrInvalidInput = errors.New("invalid input")

// ParseError captures information on errors when parsing.
type ParseError struct {
	msg        string
	token      token
	before     token
	parentKind Kind
	path       string
}

func newParseError(msg string, before, after token, n *Node) *ParseError {
	return &ParseError{
		msg:        msg,
		before:     before,
		token:      after,
		parentKind: parentKind(n),
		path:       n.PathTo().String(),
	}
}

func (e *ParseError) Error() string {
	if e.before == (token{}) {
		return fmt.Sprintf("%s; expected %s", e.token.Error(), e.msg)
	}
	if e.parentKind == Invalid {
		return fmt.Sprintf("%s; expected %s token after %s",
			e.token.Error(), e.msg, e.before.String())
	}
	if e.path == "" {
		return fmt.Sprintf("%s; expected %s token after %s (in top-level %s)",
			e.token.Error(), e.msg, e.before.String(), e.parentKind)
	}
	return fmt.Sprintf("%s; expected %s token after %s (at %s in %s)",
		e.token.Error(), e.msg, e.before.String(), e.path, e.parentKind)
}

// Where returns the row and column where the syntax error occurred.
func (e *ParseError) Where() (row, col int) {
	return e.token.Position[0], e.token.Position[1]
}

// helper functions

func parentKind(n *Node) Kind {
	if n == nil || n.parent == nil {
		return Invalid
	}
	return n.parent.kind
}
