// Package game models the state of a heads-up, three-hole-card match as the
// client sees it.
//
// A round is a chain of immutable snapshots. Every transition builds a new
// *RoundState whose Previous points at the snapshot it replaced, and a hand
// ends with a *TerminalState pointing at the last *RoundState:
//
//	round := game.NewHand(game.DefaultRules(), 0, []string{"As", "Kd", "2c"})
//	next, err := round.Proceed(game.CallAction())
//	switch st := next.(type) {
//	case *game.RoundState:
//	    // hand continues, st.ToAct() is the next seat to act
//	case *game.TerminalState:
//	    // hand is over, st.Previous is the final round
//	}
//
// Proceed implements the betting structure: seat 0 posts the small blind and
// acts first preflop, a call closes a street, two checks close a post-flop
// street, and a seat holding three cards on the flop must discard one before
// it can bet. Payouts are not computed here; terminal states carry {0, 0}
// until the server reports the delta.
package game
