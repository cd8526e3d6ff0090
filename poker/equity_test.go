package poker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquityIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	hole := MustParseCards("As", "Ah")
	opts := EquityOptions{Trials: 2000, Workers: 4, Seed: 11}

	a, err := Equity(context.Background(), hole, nil, nil, opts)
	require.NoError(t, err)
	b, err := Equity(context.Background(), hole, nil, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 2000, a.Trials)
	// aces hold roughly 85% against a random hand
	assert.InDelta(t, 0.85, a.Equity(), 0.05)
}

func TestEquityMadeHandOnRiver(t *testing.T) {
	t.Parallel()

	// royal flush on the river cannot lose
	hole := MustParseCards("As", "Ks")
	board := MustParseCards("Qs", "Js", "Ts", "2d", "3c")
	res, err := Equity(context.Background(), hole, board, nil, EquityOptions{Trials: 500, Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, 500, res.Wins+res.Ties)
	assert.InDelta(t, 1.0, res.Equity(), 1e-9)
}

func TestEquityWeakHand(t *testing.T) {
	t.Parallel()

	hole := MustParseCards("7c", "2h")
	res, err := Equity(context.Background(), hole, nil, nil, EquityOptions{Trials: 2000, Workers: 2, Seed: 9})
	require.NoError(t, err)
	assert.Less(t, res.Equity(), 0.45)
}

func TestEquityThreeCardHole(t *testing.T) {
	t.Parallel()

	res, err := Equity(context.Background(), MustParseCards("Ks", "Kd", "Kc"), nil, nil,
		EquityOptions{Trials: 500, Seed: 2, OpponentHole: 3})
	require.NoError(t, err)
	assert.Greater(t, res.Equity(), 0.6)
}

func TestEquityErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := Equity(ctx, MustParseCards("As", "Ah"), nil, nil, EquityOptions{})
	assert.Error(t, err)

	_, err = Equity(ctx, MustParseCards("As", "As"), nil, nil, EquityOptions{Trials: 10})
	assert.ErrorContains(t, err, "duplicate")

	_, err = Equity(ctx, []Card{70}, nil, nil, EquityOptions{Trials: 10})
	assert.ErrorContains(t, err, "invalid card")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Equity(cancelled, MustParseCards("As", "Ah"), nil, nil, EquityOptions{Trials: 10, Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)

	var all []Card
	for c := Card(2); c < 52; c++ {
		all = append(all, c)
	}
	_, err = Equity(ctx, []Card{0, 1}, nil, all, EquityOptions{Trials: 10})
	assert.ErrorIs(t, err, ErrNotEnoughCards)
}
