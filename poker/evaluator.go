package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// HandRank is the strength of the best hand available from a set of cards.
// Higher values are stronger; ranks from different card counts are
// comparable.
type HandRank int16

// Evaluate scores the best five-card hand within cards. Three-card sets are
// scored as incomplete hands; four cards is an error.
func Evaluate(cards []Card) (HandRank, error) {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pc, err := toPH(c)
		if err != nil {
			return 0, err
		}
		pcs[i] = pc
	}

	switch len(pcs) {
	case 3:
		var a [3]ph.Card
		copy(a[:], pcs)
		return HandRank(ph.Eval3(&a)), nil
	case 5:
		var a [5]ph.Card
		copy(a[:], pcs)
		return HandRank(ph.Eval5(&a)), nil
	case 7:
		var a [7]ph.Card
		copy(a[:], pcs)
		return HandRank(ph.Eval7(&a)), nil
	}
	if len(pcs) < 5 {
		return 0, fmt.Errorf("cannot evaluate %d cards", len(pcs))
	}
	return bestOfFives(pcs), nil
}

// MustEvaluate is Evaluate for inputs already known to be valid.
func MustEvaluate(cards []Card) HandRank {
	r, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return r
}

// Describe names the best hand within cards, e.g. "pair of kings".
func Describe(cards []Card) (string, error) {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pc, err := toPH(c)
		if err != nil {
			return "", err
		}
		pcs[i] = pc
	}
	return ph.Describe(pcs)
}

// bestOfFives scores every five-card subset of pcs and keeps the best.
func bestOfFives(pcs []ph.Card) HandRank {
	n := len(pcs)
	best := HandRank(-1 << 15)
	var five [5]ph.Card
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [5]ph.Card{pcs[a], pcs[b], pcs[c], pcs[d], pcs[e]}
						if s := HandRank(ph.Eval5(&five)); s > best {
							best = s
						}
					}
				}
			}
		}
	}
	return best
}

var phSuits = [4]ph.Suit{ph.Club, ph.Diamond, ph.Heart, ph.Spade}

// toPH converts to the evaluator's card, whose ranks run ace=1..king=13.
func toPH(c Card) (ph.Card, error) {
	if !c.Valid() {
		var zero ph.Card
		return zero, fmt.Errorf("invalid card %d", c)
	}
	rank := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	return ph.MakeCard(phSuits[c.Suit()], rank)
}
