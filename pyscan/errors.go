package pyscan

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// ParseError reports the first syntax error found in a source unit.
// Line and Column are 1-based; Column counts bytes.
type ParseError struct {
	Line    int
	Column  int
	Missing string // node type the parser had to insert, if any
}

func (e *ParseError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("invalid syntax: missing %q at line %d, column %d", e.Missing, e.Line, e.Column)
	}
	return fmt.Sprintf("invalid syntax at line %d, column %d", e.Line, e.Column)
}
