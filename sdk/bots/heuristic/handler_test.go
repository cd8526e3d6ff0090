package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/internal/game"
)

func newTestHandler() *Handler {
	return NewHandler(Config{Seed: 17, EquityTrials: 100})
}

// flop returns the flop after seat 0 completes preflop, with active holding
// hand.
func flop(t *testing.T, active int, hand, board []string) *game.RoundState {
	t.Helper()
	next, err := game.NewHand(game.DefaultRules(), active, hand).Proceed(game.CallAction())
	require.NoError(t, err)
	round, ok := next.(*game.RoundState)
	require.True(t, ok)
	return round.WithBoard(board)
}

func requireLegal(t *testing.T, round *game.RoundState, action game.Action) {
	t.Helper()
	require.True(t, round.CanAct(action.Kind), "%s not in %v", action, round.LegalActions())
	_, err := round.Proceed(action)
	require.NoError(t, err)
}

func TestDiscardsWeakestCard(t *testing.T) {
	t.Parallel()

	round := flop(t, 1, []string{"Ah", "Ad", "7c"}, []string{"Kh", "9h", "2s"})
	action, err := newTestHandler().GetAction(game.NewMatchContext(), round, 1)
	require.NoError(t, err)
	assert.Equal(t, game.DiscardAction(2), action)
}

func TestProtectsSecuredBankroll(t *testing.T) {
	t.Parallel()

	match := game.MatchContext{Bankroll: 400, RoundNum: 950}
	round := game.NewHand(game.DefaultRules(), 0, []string{"As", "Ah", "Ad"})
	action, err := newTestHandler().GetAction(match, round, 0)
	require.NoError(t, err)
	assert.Equal(t, game.FoldAction(), action)
}

func TestFoldsWeakHandsWhenAhead(t *testing.T) {
	t.Parallel()

	match := game.MatchContext{Bankroll: 200, RoundNum: 10}
	round := game.NewHand(game.DefaultRules(), 0, []string{"7c", "2h", "9d"})
	action, err := newTestHandler().GetAction(match, round, 0)
	require.NoError(t, err)
	assert.Equal(t, game.FoldAction(), action)
}

func TestPlaysStrongPreflopHands(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	for range 50 {
		round := game.NewHand(game.DefaultRules(), 0, []string{"As", "Ah", "Ad"})
		action, err := h.GetAction(game.NewMatchContext(), round, 0)
		require.NoError(t, err)
		assert.Contains(t, []game.Kind{game.Raise, game.Call}, action.Kind)
		requireLegal(t, round, action)
	}
}

func TestPostflopActionsAreLegal(t *testing.T) {
	t.Parallel()

	boards := [][]string{
		{"Qh", "Jh", "Th"},
		{"2c", "7d", "9s"},
		{"Ac", "Kd", "4h"},
	}
	h := newTestHandler()
	for _, board := range boards {
		round := flop(t, 1, []string{"Ah", "Kh", "3d"}, board)

		discard, err := h.GetAction(game.NewMatchContext(), round, 1)
		require.NoError(t, err)
		require.Equal(t, game.Discard, discard.Kind)
		next, err := round.Proceed(discard)
		require.NoError(t, err)
		round = next.(*game.RoundState)

		action, err := h.GetAction(game.NewMatchContext(), round, 1)
		require.NoError(t, err)
		requireLegal(t, round, action)

		// facing a bet from seat 0
		bet, err := round.Proceed(game.CheckAction())
		require.NoError(t, err)
		facing, err := bet.(*game.RoundState).Proceed(game.RaiseAction(20))
		require.NoError(t, err)
		round = facing.(*game.RoundState)
		require.Equal(t, 1, round.ToAct())

		action, err = h.GetAction(game.NewMatchContext(), round, 1)
		require.NoError(t, err)
		requireLegal(t, round, action)
	}
}

func TestMadeNutsNeverFolds(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	for range 20 {
		round := flop(t, 1, []string{"Ah", "Kh", "2c"}, []string{"Qh", "Jh", "Th"})
		next, err := round.Proceed(game.DiscardAction(2))
		require.NoError(t, err)
		round = next.(*game.RoundState)

		action, err := h.GetAction(game.NewMatchContext(), round, 1)
		require.NoError(t, err)
		assert.NotEqual(t, game.Fold, action.Kind)
		requireLegal(t, round, action)
	}
}

func TestRoundCallbacks(t *testing.T) {
	t.Parallel()

	h := newTestHandler()
	round := game.NewHand(game.DefaultRules(), 0, []string{"As", "Ah", "Ad"})
	require.NoError(t, h.OnNewRound(game.NewMatchContext(), round, 0))
	require.NoError(t, h.OnRoundOver(game.NewMatchContext(), game.NewTerminal([2]int{3, -3}, round), 0))
	assert.Equal(t, 1, h.roundsSeen)
}
