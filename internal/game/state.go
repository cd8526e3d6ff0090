package game

import (
	"fmt"
	"slices"
)

// Streets, in order of play.
const (
	Preflop = iota
	Flop
	Turn
	River
)

// StreetName returns a readable name for a street number.
func StreetName(street int) string {
	switch street {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return fmt.Sprintf("street(%d)", street)
	}
}

// State is either a *RoundState or a *TerminalState. The set is closed.
type State interface {
	state()
}

// RoundState is an immutable snapshot of a hand in progress.
//
// Button counts the actions taken on the current street (starting at 1 on
// post-flop streets); its parity names the seat to act. Hands[seat] holds
// the hole cards known for that seat, empty for a hidden opponent.
type RoundState struct {
	Button   int
	Street   int
	Pips     [2]int
	Stacks   [2]int
	Hands    [2][]string
	Board    []string
	Previous State

	rules Rules
}

// TerminalState marks the end of a round. Deltas are {0, 0} until the
// payout is known.
type TerminalState struct {
	Deltas   [2]int
	Previous *RoundState
}

func (*RoundState) state()    {}
func (*TerminalState) state() {}

// NewPlaceholderRound returns the all-zero round that stands in for state
// before the first hand is dealt.
func NewPlaceholderRound(rules Rules) *RoundState {
	return &RoundState{rules: rules}
}

// NewHand deals a fresh hand. The active seat holds cards; the other seat's
// hand is unknown. Seat 0 posts the small blind.
func NewHand(rules Rules, active int, cards []string) *RoundState {
	var hands [2][]string
	hands[active] = slices.Clone(cards)
	hands[1-active] = []string{}
	return &RoundState{
		Button: 0,
		Street: Preflop,
		Pips:   [2]int{rules.SmallBlind, rules.BigBlind},
		Stacks: [2]int{rules.StartingStack - rules.SmallBlind, rules.StartingStack - rules.BigBlind},
		Hands:  hands,
		Board:  []string{},
		rules:  rules,
	}
}

// Rules returns the constants this round is played under.
func (r *RoundState) Rules() Rules {
	return r.rules
}

// ToAct returns the seat whose turn it is.
func (r *RoundState) ToAct() int {
	return r.Button % 2
}

// Dealt reports whether any hole cards are known, i.e. this is not the
// placeholder round.
func (r *RoundState) Dealt() bool {
	return len(r.Hands[0]) > 0 || len(r.Hands[1]) > 0
}

// Pot returns the chips committed by both seats over the whole hand.
func (r *RoundState) Pot() int {
	return 2*r.rules.StartingStack - r.Stacks[0] - r.Stacks[1]
}

// Refresh returns an identical copy of the snapshot.
func (r *RoundState) Refresh() *RoundState {
	return r.clone()
}

// WithBoard returns a copy with the community cards replaced.
func (r *RoundState) WithBoard(board []string) *RoundState {
	next := r.clone()
	next.Board = slices.Clone(board)
	return next
}

// WithRevealed returns a copy with cards appended to seat's hand. Every other
// field, including Previous, is kept.
func (r *RoundState) WithRevealed(seat int, cards []string) *RoundState {
	next := r.clone()
	next.Hands[seat] = append(next.Hands[seat], cards...)
	return next
}

func (r *RoundState) clone() *RoundState {
	return &RoundState{
		Button:   r.Button,
		Street:   r.Street,
		Pips:     r.Pips,
		Stacks:   r.Stacks,
		Hands:    [2][]string{slices.Clone(r.Hands[0]), slices.Clone(r.Hands[1])},
		Board:    slices.Clone(r.Board),
		Previous: r.Previous,
		rules:    r.rules,
	}
}

// NewTerminal wraps a concluded round.
func NewTerminal(deltas [2]int, previous *RoundState) *TerminalState {
	return &TerminalState{Deltas: deltas, Previous: previous}
}

// Concluded returns the round a state finished, or the round itself when it
// is still active.
func Concluded(s State) *RoundState {
	switch st := s.(type) {
	case *TerminalState:
		return st.Previous
	case *RoundState:
		return st
	default:
		return nil
	}
}
