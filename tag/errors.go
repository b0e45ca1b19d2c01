package tag

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition = errors.New("tag: invalid definition")
	ErrUnknownTag        = errors.New("unknown tag")
	ErrUnexpectedEnd     = errors.New("unexpected end tag")
	ErrUnclosed          = errors.New("block was never closed")
)

// A SyntaxError is returned by Parse. Syntax errors are detected before any tag is rendered.
type SyntaxError struct {
	Line int
	Tag  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Tag, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
