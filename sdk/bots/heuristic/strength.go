package heuristic

import (
	"slices"

	"github.com/lox/pokerbots/poker"
)

// Bucket is a coarse class of made hand.
type Bucket string

const (
	BucketNuts         Bucket = "nuts"
	BucketVeryStrong   Bucket = "very-strong"
	BucketStrong       Bucket = "strong"
	BucketMediumStrong Bucket = "medium-strong"
	BucketMedium       Bucket = "medium"
	BucketMediumWeak   Bucket = "medium-weak"
	BucketDraw         Bucket = "draw"
	BucketWeak         Bucket = "weak"
)

// Strong reports whether the bucket is worth building a pot with.
func (b Bucket) Strong() bool {
	return b == BucketNuts || b == BucketVeryStrong || b == BucketStrong
}

// Middling reports whether the bucket can call a fair price.
func (b Bucket) Middling() bool {
	return b == BucketMediumStrong || b == BucketMedium
}

// PreflopStrength scores a starting hand between 0 and 1.
func PreflopStrength(hand []poker.Card) float64 {
	if len(hand) < 2 {
		return 0
	}
	values := make([]int, len(hand))
	for i, c := range hand {
		values[i] = c.Value()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	counts := rankCounts(hand)
	switch {
	case len(counts) == 1:
		return 0.95
	case len(counts) < len(hand):
		pair, kicker := 0, 0
		for v, n := range counts {
			if n == 2 {
				pair = max(pair, v)
			} else {
				kicker = max(kicker, v)
			}
		}
		return 0.55 + float64(pair)/14*0.25 + float64(kicker)/14*0.05
	}

	var strength float64
	top, second := sorted[0], sorted[1]
	switch {
	case top == 14 && second >= 12:
		strength = 0.50 + float64(second-12)*0.05
	case top == 14 && second >= 10:
		strength = 0.40 + float64(second-10)*0.05
	case top == 14:
		strength = 0.25 + float64(second)/14*0.10
	case top+second >= 24:
		strength = 0.40
	case top+second >= 22:
		strength = 0.32
	default:
		strength = float64(top+second) / 28 * 0.30
	}

	switch maxSuitCount(hand) {
	case 3:
		strength += 0.12
	case 2:
		strength += 0.06
	}

	connected, gapped := true, true
	for i := 0; i+1 < len(sorted); i++ {
		gap := sorted[i] - sorted[i+1]
		connected = connected && gap <= 1
		gapped = gapped && gap <= 2
	}
	if connected {
		strength += 0.10
	} else if gapped {
		strength += 0.05
	}
	return min(strength, 1.0)
}

// KeepValues scores how much each hole card is worth keeping given the
// board. The lowest score is the card to discard.
func KeepValues(hand, board []poker.Card) []float64 {
	handCounts := rankCounts(hand)
	boardCounts := rankCounts(board)
	suitTotals := suitCounts(append(slices.Clone(hand), board...))

	values := make([]float64, len(hand))
	for i, c := range hand {
		v := c.Value()
		var keep float64

		switch handCounts[v] {
		case 2:
			keep += 12
		case 3:
			keep += 15
		}

		switch n := boardCounts[v]; {
		case n >= 2:
			keep += 10
		case n == 1:
			keep += 4
		}

		switch n := suitTotals[c.Suit()]; {
		case n >= 4:
			keep += 8
		case n == 3:
			keep += 4
		}

		if straightWindow(hand, board) >= 4 && inStraightWindow(v, hand, board) {
			keep += 6
		}

		switch {
		case v == 14:
			keep += 5
		case v >= 12:
			keep += 3
		case v >= 10:
			keep += 1.5
		}
		values[i] = keep
	}
	return values
}

// DiscardIndex returns the index of the card with the lowest keep value.
func DiscardIndex(hand, board []poker.Card) int {
	values := KeepValues(hand, board)
	if len(values) == 0 {
		return 0
	}
	worst := 0
	for i, v := range values {
		if v < values[worst] {
			worst = i
		}
	}
	return worst
}

// Classify buckets the best hand made from cards and returns the
// bucket's nominal strength.
func Classify(cards []poker.Card) (Bucket, float64) {
	counts := rankCounts(cards)
	var sets []int
	for _, n := range counts {
		sets = append(sets, n)
	}
	slices.Sort(sets)
	slices.Reverse(sets)

	flush := maxSuitCount(cards) >= 5
	straight := longestRun(cards) >= 5
	pairs := ranksWithCount(counts, 2)

	switch {
	case flush && straight:
		return BucketNuts, 0.95
	case len(sets) > 0 && sets[0] == 4:
		return BucketNuts, 0.92
	case flush || straight:
		return BucketVeryStrong, 0.85
	case len(sets) >= 2 && sets[0] == 3 && sets[1] >= 2:
		return BucketVeryStrong, 0.82
	case len(sets) > 0 && sets[0] == 3:
		return BucketStrong, 0.70
	case len(pairs) >= 2:
		if pairs[0] >= 10 {
			return BucketStrong, 0.65
		}
		return BucketMediumStrong, 0.55
	case len(pairs) == 1:
		switch {
		case pairs[0] >= 11:
			return BucketMediumStrong, 0.50
		case pairs[0] >= 8:
			return BucketMedium, 0.40
		default:
			return BucketMediumWeak, 0.32
		}
	case maxSuitCount(cards) == 4 || straightWindow(cards, nil) >= 4:
		return BucketDraw, 0.35
	default:
		return BucketWeak, 0.15
	}
}

// Outs estimates the cards that improve hand on the next street and names
// the draw, or returns "" when there is none.
func Outs(hand, board []poker.Card) (int, string) {
	all := append(slices.Clone(hand), board...)
	outs, draw := 0, ""

	if maxSuitCount(all) == 4 {
		outs, draw = 9, "flush"
	}
	if straightWindow(all, nil) == 4 {
		if outs == 0 {
			outs, draw = 8, "straight"
		} else {
			outs, draw = outs+6, "combo"
		}
	}
	if outs == 0 && len(ranksWithCount(rankCounts(hand), 2)) > 0 {
		outs, draw = 2, "pair-to-trips"
	}
	if outs == 0 && len(ranksWithCount(rankCounts(all), 2)) >= 2 {
		outs, draw = 4, "two-pair-to-full-house"
	}
	return outs, draw
}

// DrawEquity applies the rule of four and two.
func DrawEquity(outs, streetsRemaining int) float64 {
	switch {
	case streetsRemaining >= 2:
		return float64(min(outs*4, 100)) / 100
	case streetsRemaining == 1:
		return float64(min(outs*2, 100)) / 100
	default:
		return 0
	}
}

// PotOdds is the share of the final pot a call contributes.
func PotOdds(cost, pot int) float64 {
	if cost <= 0 {
		return 0
	}
	return float64(cost) / float64(pot+cost)
}

func rankCounts(cards []poker.Card) map[int]int {
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[c.Value()]++
	}
	return counts
}

func suitCounts(cards []poker.Card) [4]int {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit()]++
	}
	return counts
}

func maxSuitCount(cards []poker.Card) int {
	counts := suitCounts(cards)
	return slices.Max(counts[:])
}

// ranksWithCount returns the ranks held exactly n times, highest first.
func ranksWithCount(counts map[int]int, n int) []int {
	var ranks []int
	for v, c := range counts {
		if c == n {
			ranks = append(ranks, v)
		}
	}
	slices.Sort(ranks)
	slices.Reverse(ranks)
	return ranks
}

// distinctValues returns the sorted distinct rank values of the cards, with
// the ace also counted low.
func distinctValues(cards ...[]poker.Card) []int {
	var values []int
	for _, set := range cards {
		for _, c := range set {
			values = append(values, c.Value())
			if c.Value() == 14 {
				values = append(values, 1)
			}
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}

// longestRun returns the longest run of consecutive rank values.
func longestRun(cards []poker.Card) int {
	values := distinctValues(cards)
	best, run := 0, 0
	for i, v := range values {
		if i > 0 && v == values[i-1]+1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

// straightWindow returns the most distinct ranks inside any five-rank span.
func straightWindow(hand, board []poker.Card) int {
	values := distinctValues(hand, board)
	best := 0
	for _, base := range values {
		n := 0
		for _, v := range values {
			if v >= base && v < base+5 {
				n++
			}
		}
		best = max(best, n)
	}
	return best
}

// inStraightWindow reports whether value falls in a five-rank span that
// starts at one of the held or board ranks.
func inStraightWindow(value int, hand, board []poker.Card) bool {
	values := distinctValues(hand, board)
	for _, base := range values {
		if value >= base && value < base+5 {
			return true
		}
		if value == 14 && base <= 2 {
			return true
		}
	}
	return false
}
