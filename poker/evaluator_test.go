package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOrdersHands(t *testing.T) {
	t.Parallel()

	// strongest first
	hands := [][]string{
		{"As", "Ks", "Qs", "Js", "Ts"},
		{"9h", "9d", "9s", "9c", "2h"},
		{"8h", "8d", "8s", "4c", "4h"},
		{"2d", "7d", "9d", "Jd", "Kd"},
		{"5c", "6d", "7h", "8s", "9c"},
		{"Ah", "2d", "3s", "4c", "5h"},
		{"Qh", "Qd", "Qs", "3c", "7h"},
		{"Jh", "Jd", "6s", "6c", "2h"},
		{"Th", "Td", "8s", "6c", "2h"},
		{"Ah", "Jd", "8s", "6c", "2h"},
	}

	var prev HandRank
	for i, h := range hands {
		rank, err := Evaluate(MustParseCards(h...))
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, prev, rank, "%v should beat %v", hands[i-1], h)
		}
		prev = rank
	}
}

func TestEvaluatePicksBestFive(t *testing.T) {
	t.Parallel()

	flush := MustParseCards("2h", "5h", "9h", "Jh", "Kh")
	withJunk := MustParseCards("2h", "5h", "9h", "Jh", "Kh", "3c")
	seven := MustParseCards("2h", "5h", "9h", "Jh", "Kh", "3c", "4d")
	eight := MustParseCards("2h", "5h", "9h", "Jh", "Kh", "3c", "4d", "7s")

	want := MustEvaluate(flush)
	assert.Equal(t, want, MustEvaluate(withJunk))
	assert.Equal(t, want, MustEvaluate(seven))
	assert.Equal(t, want, MustEvaluate(eight))
}

func TestEvaluateThreeCards(t *testing.T) {
	t.Parallel()

	trips := MustEvaluate(MustParseCards("4c", "4d", "4h"))
	pair := MustEvaluate(MustParseCards("Ac", "Ad", "Kh"))
	high := MustEvaluate(MustParseCards("Ac", "Qd", "9h"))
	assert.Greater(t, trips, pair)
	assert.Greater(t, pair, high)
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(MustParseCards("Ac", "Ad", "Kh", "Kd"))
	assert.Error(t, err)

	_, err = Evaluate([]Card{0, 1, 2, 3, 77})
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	desc, err := Describe(MustParseCards("Kh", "Kd", "7s", "4c", "2h"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}
