package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned when an outgoing action string cannot be decoded.
	ErrUnknownAction = errors.New("unknown action")
	// ErrEmptyCardList is returned for a card clause with no cards.
	ErrEmptyCardList = errors.New("empty card list")
)

// CardError reports a card that is not a rank followed by a suit.
type CardError struct {
	Card string
}

func (e *CardError) Error() string {
	return fmt.Sprintf("malformed card %q", e.Card)
}

// DecodeError reports a clause whose payload could not be decoded. Line is
// the 1-based line number within the session, or 0 when unknown.
type DecodeError struct {
	Line   int
	Clause string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: clause %q: %v", e.Line, e.Clause, e.Err)
	}
	return fmt.Sprintf("clause %q: %v", e.Clause, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AtLine returns a copy of the error annotated with a line number.
func (e *DecodeError) AtLine(line int) *DecodeError {
	out := *e
	out.Line = line
	return &out
}
