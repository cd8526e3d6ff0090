package statistics

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/internal/game"
)

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	stats := New(2)
	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Sharpe())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.9))
	assert.NoError(t, stats.Validate())
}

func TestStatisticsSingleValue(t *testing.T) {
	t.Parallel()

	stats := New(2)
	stats.Add(RoundResult{Delta: 5, Seat: 1, WentToShowdown: true, FinalPot: 10, StreetReached: game.River})

	assert.Equal(t, 1, stats.Rounds)
	assert.InDelta(t, 2.5, stats.Mean(), 1e-9)
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.Sharpe())
	assert.InDelta(t, 2.5, stats.Min, 1e-9)
	assert.InDelta(t, 2.5, stats.Max, 1e-9)
	assert.Equal(t, 1, stats.ShowdownRounds)
	assert.Equal(t, 1, stats.Streets[game.River])
	assert.Equal(t, 10, stats.MaxPotChips)
	assert.NoError(t, stats.Validate())
}

func TestStatisticsMultipleValues(t *testing.T) {
	t.Parallel()

	stats := New(1)
	for i, d := range []int{1, -2, 3, 0, -1} {
		stats.Add(RoundResult{Delta: d, Seat: i % 2, WentToShowdown: d > 1 || d < -1})
	}

	// mean 0.2, sample variance 3.7
	assert.InDelta(t, 0.2, stats.Mean(), 1e-9)
	assert.InDelta(t, 3.7, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(3.7), stats.StdDev(), 1e-9)
	assert.InDelta(t, 0.2/math.Sqrt(3.7), stats.Sharpe(), 1e-9)
	assert.InDelta(t, 0.0, stats.Median(), 1e-9)
	assert.InDelta(t, -2.0, stats.Min, 1e-9)
	assert.InDelta(t, 3.0, stats.Max, 1e-9)

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())

	assert.InDelta(t, 1.0, stats.SeatMean(0), 1e-9)  // 1, 3, -1
	assert.InDelta(t, -1.0, stats.SeatMean(1), 1e-9) // -2, 0
	assert.Zero(t, stats.SeatMean(2))
	assert.NoError(t, stats.Validate())
}

func TestStatisticsPercentile(t *testing.T) {
	t.Parallel()

	stats := New(1)
	for _, d := range []int{40, 10, 30, 20} {
		stats.Add(RoundResult{Delta: d})
	}
	assert.InDelta(t, 10.0, stats.Percentile(0), 1e-9)
	assert.InDelta(t, 25.0, stats.Percentile(0.5), 1e-9)
	assert.InDelta(t, 40.0, stats.Percentile(1), 1e-9)
}

func TestResultFromTerminal(t *testing.T) {
	t.Parallel()

	round := game.NewHand(game.DefaultRules(), 0, []string{"Ah", "Kd"}).
		WithBoard([]string{"2c", "7d", "9h", "Js"}).
		WithRevealed(1, []string{"Qc", "Qs"})
	terminal := game.NewTerminal([2]int{-20, 20}, round)

	result := ResultFromTerminal(terminal, 0)
	assert.Equal(t, -20, result.Delta)
	assert.True(t, result.WentToShowdown)
	assert.Equal(t, game.Preflop, result.StreetReached)
	assert.Equal(t, 3, result.FinalPot)

	folded := game.NewTerminal([2]int{1, -1}, &game.RoundState{Hands: [2][]string{{"Ah", "Kd"}, {}}})
	assert.False(t, ResultFromTerminal(folded, 0).WentToShowdown)
}

type payoutStrategy struct {
	seen []int
	err  error
}

func (p *payoutStrategy) OnNewRound(game.MatchContext, *game.RoundState, int) error { return nil }

func (p *payoutStrategy) GetAction(game.MatchContext, *game.RoundState, int) (game.Action, error) {
	return game.CheckAction(), nil
}

func (p *payoutStrategy) OnRoundOver(_ game.MatchContext, terminal *game.TerminalState, active int) error {
	p.seen = append(p.seen, terminal.Deltas[active])
	return p.err
}

func TestTrackerRecordsAndForwards(t *testing.T) {
	t.Parallel()

	inner := &payoutStrategy{}
	tracker := NewTracker(inner, 2)

	prev := &game.RoundState{Hands: [2][]string{{"Ah", "Kd"}, {}}}
	require.NoError(t, tracker.OnRoundOver(game.NewMatchContext(), game.NewTerminal([2]int{4, -4}, prev), 0))
	require.NoError(t, tracker.OnRoundOver(game.NewMatchContext(), game.NewTerminal([2]int{6, -6}, prev), 1))

	assert.Equal(t, []int{4, -6}, inner.seen)

	snap := tracker.Snapshot()
	assert.Equal(t, 2, snap.Rounds)
	assert.InDelta(t, -0.5, snap.Mean(), 1e-9)

	inner.err = errors.New("boom")
	assert.EqualError(t, tracker.OnRoundOver(game.NewMatchContext(), game.NewTerminal([2]int{0, 0}, prev), 0), "boom")
	assert.Equal(t, 3, tracker.Snapshot().Rounds)
}

func TestTrackerLogSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	tracker := NewTracker(&payoutStrategy{}, 2)
	tracker.LogSummary(logger)
	assert.Contains(t, buf.String(), "No rounds completed")

	buf.Reset()
	prev := &game.RoundState{Hands: [2][]string{{"Ah", "Kd"}, {}}}
	require.NoError(t, tracker.OnRoundOver(game.NewMatchContext(), game.NewTerminal([2]int{4, -4}, prev), 0))
	tracker.LogSummary(logger)
	assert.Contains(t, buf.String(), "Session summary")
	assert.Contains(t, buf.String(), "rounds=1")
}
