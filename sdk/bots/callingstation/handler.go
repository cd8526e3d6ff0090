package callingstation

import (
	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/runner"
	"github.com/lox/pokerbots/poker"
)

// Handler implements a calling station strategy that always calls or checks
type Handler struct{}

func (Handler) OnNewRound(game.MatchContext, *game.RoundState, int) error { return nil }

func (Handler) GetAction(_ game.MatchContext, round *game.RoundState, active int) (game.Action, error) {
	switch {
	case round.CanAct(game.Discard):
		return game.DiscardAction(LowestCard(round.Hands[active])), nil
	case round.CanAct(game.Check):
		return game.CheckAction(), nil
	case round.CanAct(game.Call):
		return game.CallAction(), nil
	default:
		return game.FoldAction(), nil
	}
}

// LowestCard returns the index of the lowest ranked card in hand, or 0 when
// the hand cannot be parsed.
func LowestCard(hand []string) int {
	cards, err := poker.ParseCards(hand)
	if err != nil || len(cards) == 0 {
		return 0
	}
	lowest := 0
	for i, c := range cards {
		if c.Rank() < cards[lowest].Rank() {
			lowest = i
		}
	}
	return lowest
}

// Check it implements the runner.Strategy interface
var _ runner.Strategy = Handler{}
