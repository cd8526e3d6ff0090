// Package poker holds the card utilities the bots share: parsing the wire
// card format, sampling unseen cards, hand evaluation and equity estimates.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is one of the 52 cards, encoded as suit*13 + rank.
type Card uint8

// Ranks, lowest first.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard builds a card from a rank (Two..Ace) and suit (Clubs..Spades).
func NewCard(rank, suit uint8) Card {
	return Card(suit*13 + rank)
}

// Rank returns Two..Ace.
func (c Card) Rank() uint8 { return uint8(c) % 13 }

// Suit returns Clubs..Spades.
func (c Card) Suit() uint8 { return uint8(c) / 13 }

// Value returns the rank as 2..14 with the ace high.
func (c Card) Value() int { return int(c.Rank()) + 2 }

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool { return c < 52 }

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses the two-character wire form, e.g. "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	rank := strings.IndexByte(rankChars, s[0])
	suit := strings.IndexByte(suitChars, s[1])
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses every card in cards.
func ParseCards(cards []string) ([]Card, error) {
	out := make([]Card, 0, len(cards))
	for _, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCards is ParseCards for fixed inputs; it panics on error.
func MustParseCards(cards ...string) []Card {
	out, err := ParseCards(cards)
	if err != nil {
		panic(err)
	}
	return out
}

// CardSet is a bitmask over the 52 cards.
type CardSet uint64

// NewCardSet returns the set holding cards.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// Add returns s with c included.
func (s CardSet) Add(c Card) CardSet { return s | 1<<c }

// Has reports whether c is in s.
func (s CardSet) Has(c Card) bool { return s&(1<<c) != 0 }

// Len returns the number of cards in s.
func (s CardSet) Len() int { return bits.OnesCount64(uint64(s)) }
