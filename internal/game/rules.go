package game

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIllegalAction is returned when a reported action cannot be applied to
// the reconstructed state.
var ErrIllegalAction = errors.New("illegal action")

// Proceed applies an action by the seat to act and returns the resulting
// state. The hand either continues (*RoundState) or ends (*TerminalState
// with placeholder deltas, the payout arrives separately).
func (r *RoundState) Proceed(a Action) (State, error) {
	if !r.Dealt() {
		return nil, fmt.Errorf("%w: %s before any hand was dealt", ErrIllegalAction, a)
	}

	active := r.ToAct()
	switch a.Kind {
	case Fold:
		return NewTerminal([2]int{0, 0}, r), nil

	case Call:
		next := r.clone()
		contribution := r.Pips[1-active] - r.Pips[active]
		if err := next.commit(active, contribution); err != nil {
			return nil, fmt.Errorf("call: %w", err)
		}
		next.Previous = r
		return next.closeStreet(), nil

	case Check:
		if r.ContinueCost() != 0 {
			return nil, fmt.Errorf("%w: check facing a bet of %d", ErrIllegalAction, r.ContinueCost())
		}
		if r.Street > Preflop && r.Button > 1 {
			next := r.clone()
			next.Previous = r
			return next.closeStreet(), nil
		}
		next := r.clone()
		next.Button++
		next.Previous = r
		return next, nil

	case Raise:
		next := r.clone()
		if a.Amount <= r.Pips[1-active] {
			return nil, fmt.Errorf("%w: raise to %d does not exceed %d", ErrIllegalAction, a.Amount, r.Pips[1-active])
		}
		if err := next.commit(active, a.Amount-r.Pips[active]); err != nil {
			return nil, fmt.Errorf("raise: %w", err)
		}
		next.Button++
		next.Previous = r
		return next, nil

	case Discard:
		next := r.clone()
		hand := next.Hands[active]
		if len(hand) > 0 {
			if a.Card < 0 || a.Card >= len(hand) {
				return nil, fmt.Errorf("%w: discard index %d of %d cards", ErrIllegalAction, a.Card, len(hand))
			}
			next.Hands[active] = slices.Delete(hand, a.Card, a.Card+1)
		}
		next.Previous = r
		return next, nil

	default:
		return nil, fmt.Errorf("%w: unknown action kind %d", ErrIllegalAction, int(a.Kind))
	}
}

func (r *RoundState) commit(seat, contribution int) error {
	if contribution < 0 || contribution > r.Stacks[seat] {
		return fmt.Errorf("%w: seat %d cannot put in %d with %d behind", ErrIllegalAction, seat, contribution, r.Stacks[seat])
	}
	r.Pips[seat] += contribution
	r.Stacks[seat] -= contribution
	return nil
}

// closeStreet ends betting on the current street. r is a fresh copy whose
// Previous already points at the state it supersedes. An all-in hand still
// walks every street so the remaining board can be reported; only checks
// are legal once a stack is empty.
func (r *RoundState) closeStreet() State {
	if r.Street == River {
		return NewTerminal([2]int{0, 0}, r)
	}
	r.Button = 1
	r.Street++
	r.Pips = [2]int{0, 0}
	return r
}
