package game

import "slices"

// Step is one action recovered from a round's history chain.
type Step struct {
	Seat   int
	Street int
	Action Action
	// Facing is what the seat had to add to stay in before acting.
	Facing int
}

// History reconstructs the actions that led to s, oldest first. Board and
// reveal updates do not add links to the chain, so every link is one action.
// A terminal whose last round still had chips to match ended in a fold by
// the seat to act.
func History(s State) []Step {
	var (
		steps []Step
		last  *RoundState
	)
	switch st := s.(type) {
	case *TerminalState:
		last = st.Previous
		if last != nil && last.Dealt() && last.ContinueCost() > 0 {
			steps = append(steps, Step{
				Seat:   last.ToAct(),
				Street: last.Street,
				Action: FoldAction(),
				Facing: last.ContinueCost(),
			})
		}
	case *RoundState:
		last = st
	}

	for cur := last; cur != nil; {
		prev, ok := cur.Previous.(*RoundState)
		if !ok || prev == nil {
			break
		}
		steps = append(steps, stepBetween(prev, cur))
		cur = prev
	}
	slices.Reverse(steps)
	return steps
}

func stepBetween(prev, cur *RoundState) Step {
	seat := prev.ToAct()
	step := Step{Seat: seat, Street: prev.Street, Facing: prev.ContinueCost()}

	switch {
	case len(cur.Hands[seat]) < len(prev.Hands[seat]):
		step.Action = DiscardAction(discarded(prev.Hands[seat], cur.Hands[seat]))
	case cur.Street == prev.Street && cur.Button > prev.Button:
		if cur.Pips[seat] > prev.Pips[seat] {
			step.Action = RaiseAction(cur.Pips[seat])
		} else {
			step.Action = CheckAction()
		}
	case cur.Street == prev.Street && cur.Pips == prev.Pips && prev.Street != River:
		// a hidden hand gives nothing away when it discards
		step.Action = DiscardAction(0)
	case step.Facing > 0:
		step.Action = CallAction()
	default:
		step.Action = CheckAction()
	}
	return step
}

func discarded(before, after []string) int {
	for i, card := range before {
		if !slices.Contains(after, card) {
			return i
		}
	}
	return 0
}
