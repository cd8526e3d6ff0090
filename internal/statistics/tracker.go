package statistics

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerbots/internal/game"
	"github.com/lox/pokerbots/internal/runner"
)

// Tracker wraps a strategy and records every round payout it sees.
type Tracker struct {
	runner.Strategy

	mu    sync.Mutex
	stats *Statistics
}

// NewTracker decorates strategy. Results are measured in units of bigBlind.
func NewTracker(strategy runner.Strategy, bigBlind int) *Tracker {
	return &Tracker{Strategy: strategy, stats: New(bigBlind)}
}

// OnRoundOver records the result and forwards to the wrapped strategy when
// it listens for payouts too.
func (t *Tracker) OnRoundOver(match game.MatchContext, terminal *game.TerminalState, active int) error {
	t.mu.Lock()
	t.stats.Add(ResultFromTerminal(terminal, active))
	t.mu.Unlock()

	if h, ok := t.Strategy.(runner.RoundOverHandler); ok {
		return h.OnRoundOver(match, terminal, active)
	}
	return nil
}

// Snapshot returns a copy of the statistics gathered so far.
func (t *Tracker) Snapshot() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := *t.stats
	s.Values = append([]float64(nil), t.stats.Values...)
	return s
}

// LogSummary writes the session summary at info level.
func (t *Tracker) LogSummary(logger *log.Logger) {
	s := t.Snapshot()
	if s.Rounds == 0 {
		logger.Info("No rounds completed")
		return
	}
	lo, hi := s.ConfidenceInterval95()
	logger.Info("Session summary",
		"rounds", s.Rounds,
		"net_bb", s.Sum,
		"mean_bb", s.Mean(),
		"stddev_bb", s.StdDev(),
		"sharpe", s.Sharpe(),
		"ci95_low", lo,
		"ci95_high", hi,
		"min_bb", s.Min,
		"max_bb", s.Max,
		"showdowns", s.ShowdownRounds,
	)
	if err := s.Validate(); err != nil {
		logger.Warn("Statistics inconsistent", "error", err)
	}
}
