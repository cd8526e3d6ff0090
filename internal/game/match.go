package game

// MatchContext carries the data that outlives a single round. It is a value
// type: every change produces a new MatchContext.
type MatchContext struct {
	Bankroll  int     // cumulative net winnings, signed
	GameClock float64 // remaining time budget in seconds
	RoundNum  int     // 1-based
}

// NewMatchContext returns the context a session starts with.
func NewMatchContext() MatchContext {
	return MatchContext{RoundNum: 1}
}

// WithClock returns a copy with the game clock replaced.
func (m MatchContext) WithClock(seconds float64) MatchContext {
	m.GameClock = seconds
	return m
}

// WithDelta returns a copy with delta added to the bankroll.
func (m MatchContext) WithDelta(delta int) MatchContext {
	m.Bankroll += delta
	return m
}

// NextRound returns a copy with the round counter advanced.
func (m MatchContext) NextRound() MatchContext {
	m.RoundNum++
	return m
}

// Rules holds the table constants the engine plays with.
type Rules struct {
	StartingStack int
	BigBlind      int
	SmallBlind    int
	NumRounds     int
}

// DefaultRules returns the standard match constants.
func DefaultRules() Rules {
	return Rules{
		StartingStack: 400,
		BigBlind:      2,
		SmallBlind:    1,
		NumRounds:     1000,
	}
}

// RoundsRemaining returns how many rounds are left after the current one.
func (r Rules) RoundsRemaining(m MatchContext) int {
	left := r.NumRounds - m.RoundNum
	if left < 0 {
		return 0
	}
	return left
}
