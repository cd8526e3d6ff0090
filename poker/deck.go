package poker

import (
	rand "math/rand/v2"
)

// Deck holds the cards not yet seen, in a fixed order. Sampling reorders it
// in place, so a Deck must not be shared between goroutines.
type Deck struct {
	cards []Card
}

// NewDeck creates the deck of all cards except dead.
func NewDeck(dead ...Card) *Deck {
	used := NewCardSet(dead...)
	d := &Deck{cards: make([]Card, 0, 52)}
	for c := Card(0); c < 52; c++ {
		if !used.Has(c) {
			d.cards = append(d.cards, c)
		}
	}
	return d
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Sample draws n distinct cards with a partial Fisher-Yates shuffle and
// returns them. The slice aliases the deck and is valid until the next call.
func (d *Deck) Sample(rng *rand.Rand, n int) []Card {
	if n > len(d.cards) {
		return nil
	}
	for i := range n {
		j := i + rng.IntN(len(d.cards)-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d.cards[:n]
}

// Clone returns an independent copy, one per worker.
func (d *Deck) Clone() *Deck {
	return &Deck{cards: append([]Card(nil), d.cards...)}
}
