package random

import (
	rand "math/rand/v2"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/randutil"
	"github.com/lox/pokerbots/internal/runner"
)

// Handler implements a random strategy that makes random legal actions
type Handler struct {
	rng *rand.Rand
}

// NewHandler returns a random bot. A zero seed picks one from the clock.
func NewHandler(seed int64) *Handler {
	return &Handler{rng: randutil.New(seed)}
}

func (*Handler) OnNewRound(game.MatchContext, *game.RoundState, int) error { return nil }

func (h *Handler) GetAction(_ game.MatchContext, round *game.RoundState, active int) (game.Action, error) {
	legal := round.LegalActions()
	switch kind := legal[h.rng.IntN(len(legal))]; kind {
	case game.Raise:
		lo, hi := round.RaiseBounds()
		return game.RaiseAction(lo + h.rng.IntN(hi-lo+1)), nil
	case game.Discard:
		return game.DiscardAction(h.rng.IntN(len(round.Hands[active]))), nil
	default:
		return game.Action{Kind: kind}, nil
	}
}

// Check it implements the runner.Strategy interface
var _ runner.Strategy = (*Handler)(nil)
