package callingstation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/internal/game"
)

func flop(t *testing.T, active int, hand []string) *game.RoundState {
	t.Helper()
	next, err := game.NewHand(game.DefaultRules(), active, hand).Proceed(game.CallAction())
	require.NoError(t, err)
	round, ok := next.(*game.RoundState)
	require.True(t, ok)
	return round.WithBoard([]string{"9h", "Tc", "Jd"})
}

func TestCallsPreflop(t *testing.T) {
	t.Parallel()

	round := game.NewHand(game.DefaultRules(), 0, []string{"7c", "2h", "4d"})
	action, err := Handler{}.GetAction(game.NewMatchContext(), round, 0)
	require.NoError(t, err)
	assert.Equal(t, game.CallAction(), action)
}

func TestDiscardsLowestThenChecks(t *testing.T) {
	t.Parallel()

	round := flop(t, 1, []string{"Ah", "3c", "Kd"})
	action, err := Handler{}.GetAction(game.NewMatchContext(), round, 1)
	require.NoError(t, err)
	assert.Equal(t, game.DiscardAction(1), action)

	next, err := round.Proceed(action)
	require.NoError(t, err)
	round = next.(*game.RoundState)
	assert.Equal(t, []string{"Ah", "Kd"}, round.Hands[1])

	action, err = Handler{}.GetAction(game.NewMatchContext(), round, 1)
	require.NoError(t, err)
	assert.Equal(t, game.CheckAction(), action)
}

func TestLowestCard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, LowestCard([]string{"Ah", "Kd", "2c"}))
	assert.Equal(t, 0, LowestCard([]string{"5h", "9d"}))
	assert.Equal(t, 0, LowestCard([]string{"??"}))
	assert.Equal(t, 0, LowestCard(nil))
}
