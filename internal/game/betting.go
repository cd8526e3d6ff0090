package game

import "slices"

// ContinueCost returns the chips the seat to act must add to stay in.
func (r *RoundState) ContinueCost() int {
	active := r.ToAct()
	return r.Pips[1-active] - r.Pips[active]
}

// LegalActions returns the kinds the seat to act may choose from.
func (r *RoundState) LegalActions() []Kind {
	active := r.ToAct()
	if r.mustDiscard(active) {
		return []Kind{Discard}
	}

	cost := r.ContinueCost()
	if cost == 0 {
		// no betting once someone is all in
		if r.Stacks[0] == 0 || r.Stacks[1] == 0 {
			return []Kind{Check}
		}
		return []Kind{Check, Raise}
	}

	if cost >= r.Stacks[active] || r.Stacks[1-active] == 0 {
		return []Kind{Fold, Call}
	}
	return []Kind{Fold, Call, Raise}
}

// CanAct reports whether kind is among the legal actions.
func (r *RoundState) CanAct(kind Kind) bool {
	return slices.Contains(r.LegalActions(), kind)
}

// RaiseBounds returns the smallest and largest legal raise-to amounts.
func (r *RoundState) RaiseBounds() (int, int) {
	active := r.ToAct()
	cost := r.ContinueCost()
	maxContribution := min(r.Stacks[active], r.Stacks[1-active]+cost)
	minContribution := min(maxContribution, cost+max(cost, r.rules.BigBlind))
	return r.Pips[active] + minContribution, r.Pips[active] + maxContribution
}

// mustDiscard reports whether seat still holds the full three-card hand on
// the flop, where it has to give one up before betting.
func (r *RoundState) mustDiscard(seat int) bool {
	return r.Street == Flop && len(r.Hands[seat]) == 3
}
