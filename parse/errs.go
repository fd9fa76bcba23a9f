package parse

import (
	"errors"
	"fmt"

	"github.com/pslkit/psl/ir"
)

var (
	ErrParse             = ir.ErrParse
	ErrUnterminatedBlock = errors.New("unterminated block")
	ErrUnmatchedClose    = errors.New("unmatched '}'")
	ErrUnbalanced        = errors.New("unbalanced brackets")
	ErrUnexpectedLine    = errors.New("unexpected line")
	ErrBadField          = errors.New("bad field")
)

// ParseErr reports a parse error at a given line.
type ParseErr struct {
	Err  error
	Line int
	Text string
}

func (e *ParseErr) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s: %s at line %d: %q", ErrParse, e.Err, e.Line+1, e.Text)
}
