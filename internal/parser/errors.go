package parser

import (
	"errors"
	"fmt"

	"luna/internal/token"
)

// Error is a syntax error. AtEOF marks errors where the input ended while a
// construct was still open; everything else is a token that fits no
// production at its position.
type Error struct {
	Pos   token.Position
	Msg   string
	AtEOF bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// IsIncomplete reports whether err means the input ended mid-construct.
// Interactive callers use it to keep prompting for more input instead of
// reporting a failure.
func IsIncomplete(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.AtEOF
}
