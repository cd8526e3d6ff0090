package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/internal/game"
)

func TestActionsAreLegal(t *testing.T) {
	t.Parallel()

	h := NewHandler(99)
	for range 200 {
		round := game.NewHand(game.DefaultRules(), 0, []string{"Ah", "Kd", "2c"})
		action, err := h.GetAction(game.NewMatchContext(), round, 0)
		require.NoError(t, err)
		assert.True(t, round.CanAct(action.Kind), "illegal %s", action)
		if action.Kind == game.Raise {
			lo, hi := round.RaiseBounds()
			assert.GreaterOrEqual(t, action.Amount, lo)
			assert.LessOrEqual(t, action.Amount, hi)
		}
		_, err = round.Proceed(action)
		assert.NoError(t, err)
	}
}

func TestDiscardIndexInRange(t *testing.T) {
	t.Parallel()

	next, err := game.NewHand(game.DefaultRules(), 1, []string{"Ah", "Kd", "2c"}).Proceed(game.CallAction())
	require.NoError(t, err)
	round := next.(*game.RoundState)

	h := NewHandler(3)
	for range 50 {
		action, err := h.GetAction(game.NewMatchContext(), round, 1)
		require.NoError(t, err)
		require.Equal(t, game.Discard, action.Kind)
		assert.GreaterOrEqual(t, action.Card, 0)
		assert.Less(t, action.Card, 3)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := NewHandler(5), NewHandler(5)
	round := game.NewHand(game.DefaultRules(), 0, []string{"Ah", "Kd", "2c"})
	for range 20 {
		x, err := a.GetAction(game.NewMatchContext(), round, 0)
		require.NoError(t, err)
		y, err := b.GetAction(game.NewMatchContext(), round, 0)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}
