// Package statistics summarizes a session's round results.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokerbots/internal/game"
)

// RoundResult represents the outcome of a single round from our seat
type RoundResult struct {
	Delta          int  // chips won (+) or lost (-)
	Seat           int  // our seat, 0 or 1
	WentToShowdown bool // opponent's cards were revealed
	FinalPot       int  // chips committed by both seats when the round ended
	StreetReached  int  // furthest street reached
}

// ResultFromTerminal builds a RoundResult from the terminal snapshot of a
// round.
func ResultFromTerminal(terminal *game.TerminalState, seat int) RoundResult {
	result := RoundResult{Delta: terminal.Deltas[seat], Seat: seat}
	if prev := terminal.Previous; prev != nil {
		result.WentToShowdown = len(prev.Hands[1-seat]) > 0
		result.FinalPot = prev.Pot()
		result.StreetReached = prev.Street
	}
	return result
}

// SeatStats tracks results for one seat
type SeatStats struct {
	Rounds int
	Sum    float64
}

// Statistics tracks per-round deltas in big blinds
type Statistics struct {
	BigBlind int

	Rounds int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // All values for median/percentile calculation
	Min    float64
	Max    float64

	ShowdownRounds int
	ShowdownBB     float64 // BB from showdowns (wins and losses)
	NonShowdownBB  float64 // BB from folds (wins and losses)

	Seats   [2]SeatStats
	Streets [4]int // rounds ending on each street

	MaxPotChips int
}

// New returns empty statistics measured in units of bigBlind chips.
func New(bigBlind int) *Statistics {
	return &Statistics{BigBlind: bigBlind}
}

func (s *Statistics) toBB(chips int) float64 {
	if s.BigBlind <= 0 {
		return float64(chips)
	}
	return float64(chips) / float64(s.BigBlind)
}

// Add incorporates a new round result
func (s *Statistics) Add(result RoundResult) {
	bb := s.toBB(result.Delta)
	if s.Rounds == 0 || bb < s.Min {
		s.Min = bb
	}
	if s.Rounds == 0 || bb > s.Max {
		s.Max = bb
	}
	s.Rounds++
	s.Sum += bb
	s.Sum2 += bb * bb
	s.Values = append(s.Values, bb)

	if result.WentToShowdown {
		s.ShowdownRounds++
		s.ShowdownBB += bb
	} else {
		s.NonShowdownBB += bb
	}

	if result.Seat == 0 || result.Seat == 1 {
		s.Seats[result.Seat].Rounds++
		s.Seats[result.Seat].Sum += bb
	}
	if result.StreetReached >= game.Preflop && result.StreetReached <= game.River {
		s.Streets[result.StreetReached]++
	}
	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
	}
}

// Mean returns the average result in big blinds per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Sharpe returns mean over standard deviation, or 0 when the results do not
// vary.
func (s *Statistics) Sharpe() float64 {
	sd := s.StdDev()
	if sd == 0 {
		return 0
	}
	return s.Mean() / sd
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the mean result when sitting in seat.
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 0 || seat > 1 || s.Seats[seat].Rounds == 0 {
		return 0
	}
	return s.Seats[seat].Sum / float64(s.Seats[seat].Rounds)
}

// Validate checks that the accounting is consistent
func (s *Statistics) Validate() error {
	if math.Abs(s.Sum-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: Sum=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.Sum, s.ShowdownBB, s.NonShowdownBB)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}
	if seats := s.Seats[0].Rounds + s.Seats[1].Rounds; seats != s.Rounds {
		return fmt.Errorf("seat rounds total (%d) does not match rounds count (%d)", seats, s.Rounds)
	}
	return nil
}
