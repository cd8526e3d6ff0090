// Package runner drives a single match: it reads protocol lines from a
// Transport, folds their clauses into the current match and round state, and
// answers each line with either a strategy decision or a Check
// acknowledgement.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/protocol"
)

var (
	// ErrConnectionClosed is returned when the stream ends before the server
	// sent Q.
	ErrConnectionClosed = errors.New("connection closed before end of session")
	// ErrUnexpectedClause is returned when a clause does not fit the current
	// state, such as a bet after the round has ended.
	ErrUnexpectedClause = errors.New("unexpected clause")
	// ErrBadSeat is returned for a seat index other than 0 or 1.
	ErrBadSeat = errors.New("seat must be 0 or 1")
	// ErrHandSize is returned when a dealt hand is not three cards.
	ErrHandSize = errors.New("hand must have 3 cards")
	// ErrUnknownKind is returned when a strategy picks an action kind that
	// has no wire form.
	ErrUnknownKind = errors.New("unknown action kind")
)

const holeCards = 3

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger.WithPrefix("runner")
	}
}

// WithRules sets the table constants used to build new hands.
func WithRules(rules game.Rules) Option {
	return func(r *Runner) {
		r.rules = rules
	}
}

// WithClock sets the clock used to time strategy decisions.
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithSlowDecisionShare sets the share of the remaining game clock a single
// decision may use before it is reported as slow. Zero disables the check.
func WithSlowDecisionShare(share float64) Option {
	return func(r *Runner) {
		r.slowShare = share
	}
}

// Runner owns the match state for one connection.
type Runner struct {
	transport Transport
	strategy  Strategy
	rules     game.Rules
	logger    *log.Logger
	clock     quartz.Clock
	slowShare float64

	match    game.MatchContext
	state    game.State
	newRound bool
	line     int

	slowDecisions int
}

// New creates a runner. The match starts with an empty placeholder round
// until the first hand is dealt.
func New(transport Transport, strategy Strategy, opts ...Option) *Runner {
	r := &Runner{
		transport: transport,
		strategy:  strategy,
		rules:     game.DefaultRules(),
		logger:    log.New(os.Stderr).WithPrefix("runner"),
		clock:     quartz.NewReal(),
		slowShare: 0.05,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.match = game.NewMatchContext()
	r.state = game.NewPlaceholderRound(r.rules)
	r.newRound = true
	return r
}

// Match returns the current match context.
func (r *Runner) Match() game.MatchContext {
	return r.match
}

// State returns the current round or terminal state.
func (r *Runner) State() game.State {
	return r.state
}

// SlowDecisions returns how many decisions exceeded the slow decision share.
func (r *Runner) SlowDecisions() int {
	return r.slowDecisions
}

// Run processes lines until the server sends Q, the stream fails, or ctx is
// cancelled. The transport is closed on return.
func (r *Runner) Run(ctx context.Context) error {
	defer func() { _ = r.transport.Close() }()

	// seat this client occupies, as last announced by P
	active := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := r.transport.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrConnectionClosed
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("receive: %w", err)
		}
		r.line++
		r.logger.Debug("recv", "line", r.line, "data", raw)

		result, err := r.fold(protocol.ParseLine(raw), &active)
		if err != nil {
			return err
		}
		if result.quit {
			r.logger.Info("Session ended", "bankroll", r.match.Bankroll, "rounds", r.match.RoundNum-1)
			return nil
		}

		action, err := r.respond(active, result.dealt)
		if err != nil {
			return err
		}

		out := protocol.EncodeAction(action)
		r.logger.Debug("send", "line", r.line, "data", out)
		if err := r.transport.WriteLine(out); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}
}

type foldResult struct {
	dealt bool
	quit  bool
}

// fold applies the clauses of one line in order.
func (r *Runner) fold(clauses []protocol.Clause, active *int) (foldResult, error) {
	var result foldResult
	for _, c := range clauses {
		if c.Tag == protocol.TagQuit {
			result.quit = true
			return result, nil
		}
		if c.Tag == protocol.TagHand {
			result.dealt = true
		}
		if err := r.apply(c, active); err != nil {
			return result, r.clauseError(c, err)
		}
	}
	return result, nil
}

func (r *Runner) apply(c protocol.Clause, active *int) error {
	switch c.Tag {
	case protocol.TagClock:
		seconds, err := c.Float()
		if err != nil {
			return err
		}
		r.match = r.match.WithClock(seconds)

	case protocol.TagSeat:
		seat, err := c.Int()
		if err != nil {
			return err
		}
		if seat != 0 && seat != 1 {
			return ErrBadSeat
		}
		*active = seat

	case protocol.TagHand:
		cards, err := c.Cards()
		if err != nil {
			return err
		}
		if len(cards) != holeCards {
			return ErrHandSize
		}
		r.state = game.NewHand(r.rules, *active, cards)
		r.newRound = true

	case protocol.TagGo:
		round, ok := r.state.(*game.RoundState)
		if !ok {
			return nil
		}
		round = round.Refresh()
		r.state = round
		if r.newRound && round.Dealt() {
			r.newRound = false
			if err := r.strategy.OnNewRound(r.match, round, *active); err != nil {
				return &StrategyError{Callback: "OnNewRound", Round: r.match.RoundNum, Err: err}
			}
		}

	case protocol.TagFold, protocol.TagCall, protocol.TagCheck, protocol.TagDiscard, protocol.TagRaise:
		action, _, err := protocol.ClauseAction(c)
		if err != nil {
			return err
		}
		round, ok := r.state.(*game.RoundState)
		if !ok {
			return fmt.Errorf("%w: %s after the round ended", ErrUnexpectedClause, action)
		}
		next, err := round.Proceed(action)
		if err != nil {
			return err
		}
		r.state = next

	case protocol.TagBoard:
		cards, err := c.Cards()
		if err != nil {
			return err
		}
		round, ok := r.state.(*game.RoundState)
		if !ok {
			return fmt.Errorf("%w: board after the round ended", ErrUnexpectedClause)
		}
		r.state = round.WithBoard(cards)

	case protocol.TagReveal:
		cards, err := c.Cards()
		if err != nil {
			return err
		}
		terminal, ok := r.state.(*game.TerminalState)
		if !ok || terminal.Previous == nil {
			return fmt.Errorf("%w: reveal before the round ended", ErrUnexpectedClause)
		}
		revised := terminal.Previous.WithRevealed(1-*active, cards)
		r.state = game.NewTerminal([2]int{0, 0}, revised)

	case protocol.TagDelta:
		delta, err := c.Int()
		if err != nil {
			return err
		}
		return r.award(delta, *active)

	default:
		r.logger.Debug("Ignoring clause", "line", r.line, "clause", c.String())
	}
	return nil
}

// award settles the round: the terminal marker is replaced by one carrying
// the real payout for the same concluded round.
func (r *Runner) award(delta, active int) error {
	concluded := game.Concluded(r.state)
	if concluded == nil {
		return fmt.Errorf("%w: payout without a round", ErrUnexpectedClause)
	}

	var deltas [2]int
	deltas[active] = delta
	deltas[1-active] = -delta
	terminal := game.NewTerminal(deltas, concluded)
	r.state = terminal
	r.match = r.match.WithDelta(delta)

	r.logger.Debug("Round over", "round", r.match.RoundNum, "delta", delta, "bankroll", r.match.Bankroll)

	if h, ok := r.strategy.(RoundOverHandler); ok {
		if err := h.OnRoundOver(r.match, terminal, active); err != nil {
			return &StrategyError{Callback: "OnRoundOver", Round: r.match.RoundNum, Err: err}
		}
	}
	r.match = r.match.NextRound()
	return nil
}

// respond picks the reply to a line: a strategy decision when it is this
// client's turn in a live round, otherwise a Check acknowledgement.
func (r *Runner) respond(active int, dealt bool) (game.Action, error) {
	if r.newRound || dealt {
		return game.CheckAction(), nil
	}
	round, ok := r.state.(*game.RoundState)
	if !ok || round.ToAct() != active {
		return game.CheckAction(), nil
	}

	start := r.clock.Now()
	action, err := r.strategy.GetAction(r.match, round, active)
	if err != nil {
		return game.Action{}, &StrategyError{Callback: "GetAction", Round: r.match.RoundNum, Err: err}
	}
	if !action.Kind.Valid() {
		return game.Action{}, &StrategyError{
			Callback: "GetAction",
			Round:    r.match.RoundNum,
			Err:      fmt.Errorf("%w: %s", ErrUnknownKind, action.Kind),
		}
	}
	r.observeDecision(r.clock.Since(start))
	return action, nil
}

func (r *Runner) observeDecision(elapsed time.Duration) {
	if r.slowShare <= 0 || r.match.GameClock <= 0 {
		return
	}
	if elapsed.Seconds() > r.slowShare*r.match.GameClock {
		r.slowDecisions++
		r.logger.Warn("Slow decision",
			"round", r.match.RoundNum,
			"elapsed", elapsed,
			"clock", r.match.GameClock)
	}
}

func (r *Runner) clauseError(c protocol.Clause, err error) error {
	var strategyErr *StrategyError
	if errors.As(err, &strategyErr) {
		return err
	}
	var decodeErr *protocol.DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.AtLine(r.line)
	}
	return &ClauseError{Line: r.line, Clause: c.String(), Err: err}
}
