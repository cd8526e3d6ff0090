package game

import "fmt"

// Kind identifies the move carried by an Action.
type Kind int

const (
	Fold Kind = iota
	Call
	Check
	Raise
	Discard
)

func (k Kind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Check:
		return "check"
	case Raise:
		return "raise"
	case Discard:
		return "discard"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Fold && k <= Discard
}

// Action is a single player move. Amount is only meaningful for Raise and
// Card only for Discard.
type Action struct {
	Kind   Kind
	Amount int
	Card   int
}

// FoldAction returns a fold.
func FoldAction() Action { return Action{Kind: Fold} }

// CallAction returns a call.
func CallAction() Action { return Action{Kind: Call} }

// CheckAction returns a check.
func CheckAction() Action { return Action{Kind: Check} }

// RaiseAction returns a raise to a total pip of amount.
func RaiseAction(amount int) Action { return Action{Kind: Raise, Amount: amount} }

// DiscardAction returns a discard of the hole card at index card.
func DiscardAction(card int) Action { return Action{Kind: Discard, Card: card} }

func (a Action) String() string {
	switch a.Kind {
	case Raise:
		return fmt.Sprintf("raise %d", a.Amount)
	case Discard:
		return fmt.Sprintf("discard %d", a.Card)
	default:
		return a.Kind.String()
	}
}
