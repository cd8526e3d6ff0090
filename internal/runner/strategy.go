package runner

import (
	"fmt"

	"github.com/lox/pokerbots/internal/game"
)

// Strategy decides what the bot does. The runner calls it synchronously and
// sends the returned action before reading the next line.
type Strategy interface {
	// OnNewRound is called once per round, when the server first signals
	// that the freshly dealt hand is under way.
	OnNewRound(match game.MatchContext, round *game.RoundState, active int) error

	// GetAction is called at each genuine decision point.
	GetAction(match game.MatchContext, round *game.RoundState, active int) (game.Action, error)
}

// RoundOverHandler is implemented by strategies that want to see each
// round's payout. It is optional.
type RoundOverHandler interface {
	OnRoundOver(match game.MatchContext, terminal *game.TerminalState, active int) error
}

// Transport is a bidirectional line stream to the engine.
type Transport interface {
	// ReadLine blocks until a full line is available. It returns io.EOF
	// once the peer has closed the stream.
	ReadLine() (string, error)
	// WriteLine sends one line and flushes it.
	WriteLine(line string) error
	Close() error
}

// StrategyError wraps a failure returned by a strategy callback.
type StrategyError struct {
	Callback string
	Round    int
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s (round %d): %v", e.Callback, e.Round, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// ClauseError reports a well-formed clause that the current state cannot
// accept, such as a bet after the round has ended or an illegal action.
type ClauseError struct {
	Line   int
	Clause string
	Err    error
}

func (e *ClauseError) Error() string {
	return fmt.Sprintf("line %d: clause %q: %v", e.Line, e.Clause, e.Err)
}

func (e *ClauseError) Unwrap() error {
	return e.Err
}
