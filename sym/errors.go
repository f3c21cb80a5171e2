package sym

import (
	"errors"
	"fmt"
)

var (
	ErrNotNumeric    = errors.New("sym: expression is not numeric")
	ErrNoConvergence = errors.New("sym: eigen decomposition did not converge")
	ErrParse         = errors.New("sym: parse error")
)

// ParseError locates a syntax error in the input of Parse.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sym: parse %q at %d: %s", e.Input, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }
