package poker

// HoleCategory buckets starting hands by strength.
type HoleCategory int

const (
	CategoryUnknown HoleCategory = iota
	CategoryTrash
	CategoryWeak
	CategoryMedium
	CategoryStrong
	CategoryPremium
)

func (c HoleCategory) String() string {
	switch c {
	case CategoryPremium:
		return "Premium"
	case CategoryStrong:
		return "Strong"
	case CategoryMedium:
		return "Medium"
	case CategoryWeak:
		return "Weak"
	case CategoryTrash:
		return "Trash"
	default:
		return "Unknown"
	}
}

// Categorize buckets a two- or three-card starting hand. A three-card hand
// is rated by the best two cards it could keep after a discard, and trips
// are always premium.
//
// Pairs: Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited
// broadway), Weak (22-66, suited connectors), Trash otherwise.
func Categorize(cards []Card) HoleCategory {
	for _, c := range cards {
		if !c.Valid() {
			return CategoryUnknown
		}
	}
	switch len(cards) {
	case 2:
		return categorizePair(cards[0], cards[1])
	case 3:
		if cards[0].Rank() == cards[1].Rank() && cards[1].Rank() == cards[2].Rank() {
			return CategoryPremium
		}
		return max(
			categorizePair(cards[0], cards[1]),
			categorizePair(cards[0], cards[2]),
			categorizePair(cards[1], cards[2]),
		)
	default:
		return CategoryUnknown
	}
}

// CategorizeStrings parses cards and categorizes them, returning
// CategoryUnknown for malformed input.
func CategorizeStrings(cards []string) HoleCategory {
	parsed, err := ParseCards(cards)
	if err != nil {
		return CategoryUnknown
	}
	return Categorize(parsed)
}

func categorizePair(a, b Card) HoleCategory {
	small, big := a.Value(), b.Value()
	if small > big {
		small, big = big, small
	}
	suited := a.Suit() == b.Suit()
	pair := small == big

	switch {
	case pair && small >= 11, small == 13 && big == 14:
		return CategoryPremium
	case pair && small == 10, big == 14 && (small == 12 || small == 11):
		return CategoryStrong
	case pair && small >= 7, suited && small >= 10:
		return CategoryMedium
	case pair, suited && big-small <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
