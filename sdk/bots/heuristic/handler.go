// Package heuristic is a rule-based bot: preflop hand strength, a
// keep-value discard and Monte Carlo equity against pot odds after the flop,
// adjusted against a running read on the opponent.
package heuristic

import (
	"context"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/randutil"
	"github.com/lox/pokerbots/internal/runner"
	"github.com/lox/pokerbots/poker"
)

const (
	// Bankroll protection thresholds, in chips.
	lockThreshold   = 150
	secureThreshold = 300
	// Rounds before the end of the match when a secured lead is protected.
	secureWindow = 100

	topPreflop = 0.60

	// Rounds played before opponent adjustments are trusted.
	exploitThreshold = 10

	defaultTrials = 400
)

// Config tunes the bot.
type Config struct {
	Seed         int64
	EquityTrials int
	Logger       *log.Logger
}

// Handler implements runner.Strategy.
type Handler struct {
	rng    *rand.Rand
	trials int
	logger *log.Logger
	model  *OpponentModel

	roundsSeen int
}

// NewHandler returns a heuristic bot.
func NewHandler(cfg Config) *Handler {
	if cfg.EquityTrials <= 0 {
		cfg.EquityTrials = defaultTrials
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Handler{
		rng:    randutil.New(cfg.Seed),
		trials: cfg.EquityTrials,
		logger: cfg.Logger.WithPrefix("heuristic"),
		model:  NewOpponentModel(opponentWindow),
	}
}

func (h *Handler) OnNewRound(match game.MatchContext, round *game.RoundState, active int) error {
	h.roundsSeen++
	if h.roundsSeen%50 == 0 {
		h.logger.Info("Progress", "round", match.RoundNum, "bankroll", match.Bankroll,
			"opponent", h.model.Profile(), "confidence", h.model.Profile().Confidence)
	}
	h.logger.Debug("New round", "round", match.RoundNum, "seat", active,
		"hand", round.Hands[active], "category", poker.CategorizeStrings(round.Hands[active]))
	return nil
}

func (h *Handler) OnRoundOver(match game.MatchContext, terminal *game.TerminalState, active int) error {
	h.model.Observe(terminal, active)
	h.logger.Debug("Round over", "round", match.RoundNum, "delta", terminal.Deltas[active],
		"opponent", h.model.Profile(), "stats", h.model.Stats())
	return nil
}

// Opponent returns the current read on the opponent.
func (h *Handler) Opponent() *OpponentModel {
	return h.model
}

func (h *Handler) adjustments() Adjustments {
	if h.roundsSeen < exploitThreshold {
		return Adjustments{}
	}
	adj, _ := h.model.Adjustments()
	return adj
}

func (h *Handler) GetAction(match game.MatchContext, round *game.RoundState, active int) (game.Action, error) {
	hand, err := poker.ParseCards(round.Hands[active])
	if err != nil {
		return game.Action{}, err
	}
	board, err := poker.ParseCards(round.Board)
	if err != nil {
		return game.Action{}, err
	}

	if round.CanAct(game.Discard) {
		return game.DiscardAction(DiscardIndex(hand, board)), nil
	}

	if round.Rules().RoundsRemaining(match) < secureWindow && match.Bankroll >= secureThreshold {
		return passive(round), nil
	}
	if match.Bankroll >= lockThreshold && round.Street == game.Preflop &&
		PreflopStrength(hand) < 0.75 && round.CanAct(game.Fold) {
		return game.FoldAction(), nil
	}

	if legal := round.LegalActions(); len(legal) == 1 {
		return game.Action{Kind: legal[0]}, nil
	}

	adj := h.adjustments()
	if round.Street == game.Preflop {
		return h.preflop(round, active, hand, adj), nil
	}
	return h.postflop(round, active, hand, board, adj)
}

func (h *Handler) preflop(round *game.RoundState, active int, hand []poker.Card, adj Adjustments) game.Action {
	strength := PreflopStrength(hand)
	cost := round.ContinueCost()
	lo, hi := round.RaiseBounds()
	canRaise := round.CanAct(game.Raise)
	inPosition := active == 0

	sizing := 1.0
	if adj.ValueBetBigger {
		sizing = 1.25
	}
	defendAt, callAt := 0.40, 0.35
	if adj.FoldMore {
		defendAt, callAt = 0.45, 0.40
	}
	if adj.CallLighter {
		defendAt, callAt = 0.35, 0.30
	}
	steal := 0.05
	if adj.BluffMore {
		steal = 0.10
	}

	if cost > 0 {
		switch {
		case strength >= topPreflop:
			if canRaise && h.rng.Float64() < 0.75 {
				size := (0.6 + (strength-topPreflop)*0.8) * sizing
				return raiseTo(round, lo+int(float64(hi-lo)*size*0.5))
			}
			return continueOrFold(round)
		case !inPosition:
			if strength >= defendAt && PotOdds(cost, round.Pot()) <= 0.35 && round.CanAct(game.Call) {
				return game.CallAction()
			}
			return foldOrContinue(round)
		default:
			if canRaise && h.rng.Float64() < steal {
				return game.RaiseAction(lo)
			}
			if strength >= callAt && round.CanAct(game.Call) {
				return game.CallAction()
			}
			return foldOrContinue(round)
		}
	}

	switch {
	case strength >= topPreflop && canRaise && h.rng.Float64() < 0.90:
		share := 0.35
		if strength > 0.75 {
			share = 0.5
		}
		return raiseTo(round, int(float64(lo+hi)*share*sizing))
	case strength < topPreflop && inPosition && canRaise && strength >= 0.45 && h.rng.Float64() < 0.50:
		return game.RaiseAction(lo)
	case strength < topPreflop && inPosition && canRaise && h.rng.Float64() < steal:
		return game.RaiseAction(lo)
	}
	return continueOrFold(round)
}

func (h *Handler) postflop(round *game.RoundState, active int, hand, board []poker.Card, adj Adjustments) (game.Action, error) {
	bucket, _ := Classify(append(append([]poker.Card(nil), hand...), board...))
	outs, draw := Outs(hand, board)
	drawEquity := DrawEquity(outs, game.River-round.Street)

	result, err := poker.Equity(context.Background(), hand, board, nil, poker.EquityOptions{
		Trials: h.trials,
		Seed:   h.rng.Int64(),
	})
	if err != nil {
		return game.Action{}, err
	}
	equity := result.Equity()
	if draw != "" {
		equity = max(equity, drawEquity)
	}

	cost := round.ContinueCost()
	pot := round.Pot()
	lo, _ := round.RaiseBounds()
	canRaise := round.CanAct(game.Raise)
	inPosition := active == 0

	bluff, valueSize := 0.30, 1.0
	if adj.BluffMore {
		bluff = 0.50
	}
	if adj.ValueBetBigger {
		valueSize = 1.25
	}

	h.logger.Debug("Postflop decision", "street", game.StreetName(round.Street),
		"bucket", bucket, "equity", equity, "outs", outs, "draw", draw, "cost", cost, "pot", pot)

	if cost == 0 {
		switch {
		case bucket.Strong():
			prob := 0.85
			mult := 0.8
			switch bucket {
			case BucketNuts:
				prob, mult = 0.95, 1.2
			case BucketVeryStrong:
				mult = 1.0
			}
			if canRaise && h.rng.Float64() < prob {
				return raiseTo(round, round.Pips[active]+int(float64(pot)*0.75*mult*valueSize)), nil
			}
		case draw != "" && outs >= 8:
			if inPosition && canRaise && h.rng.Float64() < min(drawEquity*1.5, 0.60) {
				return game.RaiseAction(lo), nil
			}
		case bucket.Middling():
			if inPosition && canRaise && h.rng.Float64() < bluff {
				return game.RaiseAction(lo), nil
			}
		default:
			if inPosition && canRaise && h.rng.Float64() < 0.05 {
				return game.RaiseAction(lo), nil
			}
		}
		return passive(round), nil
	}

	odds := PotOdds(cost, pot)
	switch {
	case bucket.Strong():
		prob := 0.60
		if bucket != BucketStrong {
			prob = 0.85
		}
		if canRaise && h.rng.Float64() < prob {
			return raiseTo(round, round.Pips[1-active]+int(float64(pot)*valueSize)), nil
		}
		return continueOrFold(round), nil
	case draw != "":
		if equity > odds && round.CanAct(game.Call) {
			return game.CallAction(), nil
		}
		if inPosition && outs >= 8 && canRaise && h.rng.Float64() < 0.15 {
			return game.RaiseAction(lo), nil
		}
	case bucket.Middling():
		adjusted := equity
		if adj.CallLighter {
			adjusted *= 1.2
		}
		if adjusted > odds && round.CanAct(game.Call) {
			return game.CallAction(), nil
		}
	default:
		if !adj.FoldMore && odds <= 0.20 && round.CanAct(game.Call) && h.rng.Float64() < 0.10 {
			return game.CallAction(), nil
		}
		if equity > odds*1.5 && round.CanAct(game.Call) {
			return game.CallAction(), nil
		}
	}
	return foldOrContinue(round), nil
}

// raiseTo clamps target into the legal raise bounds.
func raiseTo(round *game.RoundState, target int) game.Action {
	if !round.CanAct(game.Raise) {
		return continueOrFold(round)
	}
	lo, hi := round.RaiseBounds()
	return game.RaiseAction(max(lo, min(target, hi)))
}

// continueOrFold checks, calls or folds, in that order of preference.
func continueOrFold(round *game.RoundState) game.Action {
	switch {
	case round.CanAct(game.Check):
		return game.CheckAction()
	case round.CanAct(game.Call):
		return game.CallAction()
	default:
		return game.FoldAction()
	}
}

// foldOrContinue gives up the hand when folding is allowed and otherwise
// checks or calls.
func foldOrContinue(round *game.RoundState) game.Action {
	if round.CanAct(game.Fold) {
		return game.FoldAction()
	}
	return continueOrFold(round)
}

// passive checks when possible and otherwise folds.
func passive(round *game.RoundState) game.Action {
	switch {
	case round.CanAct(game.Check):
		return game.CheckAction()
	case round.CanAct(game.Fold):
		return game.FoldAction()
	default:
		return continueOrFold(round)
	}
}

// Check it implements the runner interfaces
var (
	_ runner.Strategy         = (*Handler)(nil)
	_ runner.RoundOverHandler = (*Handler)(nil)
)
