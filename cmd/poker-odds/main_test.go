package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerbots/poker"
)

func TestParseCardList(t *testing.T) {
	t.Parallel()

	want := poker.MustParseCards("As", "Kd", "Qh")
	for _, in := range []string{"AsKdQh", "As,Kd,Qh", "As Kd Qh"} {
		got, err := parseCardList(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	got, err := parseCardList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseCardList("AsK")
	assert.Error(t, err)
	_, err = parseCardList("AsXx")
	assert.Error(t, err)
}

func TestRunPrintsEquity(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cli := CLI{Hand: "AsAh", Board: "2c7d9s", OpponentHole: 2, Iterations: 500, Workers: 2, Seed: 4}
	require.NoError(t, cli.Run(&out))
	assert.Contains(t, out.String(), "Equity vs random hand")
	assert.Contains(t, out.String(), "As Ah")
	assert.Contains(t, out.String(), "500 iterations")
}

func TestRunValidatesInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	assert.ErrorContains(t, (&CLI{Hand: "As", Iterations: 10}).Run(&out), "2 or 3 cards")
	assert.ErrorContains(t, (&CLI{Hand: "AsKd", Board: "2c3c4c5c6c7c", Iterations: 10}).Run(&out), "more than 5")
	assert.ErrorContains(t, (&CLI{Hand: "AsKd", Board: "As", Iterations: 10}).Run(&out), "duplicate")
}
