package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerbots/poker"
)

// CLI estimates the showdown equity of a starting hand against one random
// opponent.
type CLI struct {
	Hand         string `arg:"" help:"Hole cards, e.g. 'AsKdQh' or 'As,Kd'"`
	Board        string `short:"b" help:"Community cards (e.g., 'Td7s8h')"`
	Dead         string `short:"d" help:"Cards known to be out of play, such as our discard"`
	OpponentHole int    `short:"o" default:"2" help:"Cards the opponent holds at showdown"`
	Iterations   int    `short:"i" default:"100000" help:"Number of Monte Carlo iterations"`
	Workers      int    `short:"w" help:"Worker goroutines (0 uses every CPU)"`
	Seed         int64  `help:"Random seed for reproducible results (0 picks one)"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Monte Carlo equity of a hand against a random opponent"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(cli.Run(os.Stdout))
}

func (c *CLI) Run(w io.Writer) error {
	hand, err := parseCardList(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	if len(hand) < 2 || len(hand) > 3 {
		return fmt.Errorf("hand must contain 2 or 3 cards, got %d", len(hand))
	}
	board, err := parseCardList(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(board) > 5 {
		return fmt.Errorf("board cannot have more than 5 cards")
	}
	dead, err := parseCardList(c.Dead)
	if err != nil {
		return fmt.Errorf("dead cards: %w", err)
	}

	start := time.Now()
	result, err := poker.Equity(context.Background(), hand, board, dead, poker.EquityOptions{
		Trials:       c.Iterations,
		Workers:      c.Workers,
		Seed:         c.Seed,
		OpponentHole: c.OpponentHole,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headerStyle.Render("Equity vs random hand"))
	fmt.Fprintf(w, "%-10s %s %s\n", "Hand", handStyle.Render(cardsString(hand)),
		categoryStyle.Render("("+poker.Categorize(hand).String()+")"))
	if len(board) > 0 {
		fmt.Fprintf(w, "%-10s %s\n", "Board", cardsString(board))
	}
	fmt.Fprintf(w, "%-10s %s\n", "Win", winStyle.Render(percent(result.Wins, result.Trials)))
	fmt.Fprintf(w, "%-10s %s\n", "Tie", tieStyle.Render(percent(result.Ties, result.Trials)))
	fmt.Fprintf(w, "%-10s %.2f%%\n", "Equity", result.Equity()*100)
	fmt.Fprintf(w, "%d iterations in %v\n", result.Trials, time.Since(start).Round(time.Millisecond))
	return nil
}

// parseCardList accepts cards run together ("AsKd") or separated by commas
// or spaces.
func parseCardList(s string) ([]poker.Card, error) {
	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card list %q", s)
	}
	cards := make([]string, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		cards = append(cards, s[i:i+2])
	}
	return poker.ParseCards(cards)
}

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func percent(n, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(total)*100)
}
