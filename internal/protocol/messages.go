package protocol

import (
	"strconv"
	"strings"
)

// Server -> client clause tags.
const (
	TagClock    = 'T'
	TagSeat     = 'P'
	TagHand     = 'H'
	TagGo       = 'G'
	TagFold     = 'F'
	TagCall     = 'C'
	TagCheck    = 'K'
	TagDiscard  = 'D'
	TagRaise    = 'R'
	TagBoard    = 'B'
	TagReveal   = 'O'
	TagDelta    = 'A'
	TagQuit     = 'Q'
	cardDivider = ","
)

// Clause is one whitespace-separated unit of a line: a one-letter tag
// followed by an optional payload.
type Clause struct {
	Tag     byte
	Payload string
}

func (c Clause) String() string {
	return string(c.Tag) + c.Payload
}

// ParseLine splits a line into clauses. A blank line yields none.
func ParseLine(line string) []Clause {
	fields := strings.Fields(line)
	clauses := make([]Clause, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, Clause{Tag: f[0], Payload: f[1:]})
	}
	return clauses
}

// Int parses the payload as a signed integer.
func (c Clause) Int() (int, error) {
	n, err := strconv.Atoi(c.Payload)
	if err != nil {
		return 0, &DecodeError{Clause: c.String(), Err: err}
	}
	return n, nil
}

// Float parses the payload as a number of seconds.
func (c Clause) Float() (float64, error) {
	f, err := strconv.ParseFloat(c.Payload, 64)
	if err != nil {
		return 0, &DecodeError{Clause: c.String(), Err: err}
	}
	return f, nil
}

// Cards parses the payload as a comma-separated card list. Each card must be
// a rank character followed by a suit character.
func (c Clause) Cards() ([]string, error) {
	if c.Payload == "" {
		return nil, &DecodeError{Clause: c.String(), Err: ErrEmptyCardList}
	}
	cards := strings.Split(c.Payload, cardDivider)
	for _, card := range cards {
		if !validCard(card) {
			return nil, &DecodeError{Clause: c.String(), Err: &CardError{Card: card}}
		}
	}
	return cards, nil
}

func validCard(card string) bool {
	if len(card) != 2 {
		return false
	}
	return strings.IndexByte("23456789TJQKA", card[0]) >= 0 &&
		strings.IndexByte("shdc", card[1]) >= 0
}
