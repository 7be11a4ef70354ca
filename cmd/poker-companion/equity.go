package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/poker-companion/internal/config"
	"github.com/lox/poker-companion/poker"
)

// EquityCmd computes win/tie/lose equity against a single random hand.
type EquityCmd struct {
	Hero       string `required:"" help:"Hole cards, e.g. 'Ah Ks'"`
	Board      string `short:"b" help:"Board cards (0, 3, 4 or 5), e.g. 'Qh Jc Tc'"`
	Iterations int    `short:"i" help:"Monte Carlo iterations (preflop/flop only)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (c *EquityCmd) Run(globals *Globals) error {
	hero, board, err := parseHeroBoard(c.Hero, c.Board)
	if err != nil {
		return err
	}

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	iterations := c.Iterations
	if iterations <= 0 {
		if len(board) == 0 {
			iterations = cfg.Defaults.PreflopIterations
		} else {
			iterations = cfg.Defaults.FlopIterations
		}
	}

	start := time.Now()
	eq, err := poker.EquityVsRandom(hero, board, poker.EquityOptions{
		Iterations: iterations,
		Seed:       c.Seed,
	})
	if err != nil {
		return err
	}

	displayEquity(os.Stdout, hero, board, eq, time.Since(start))
	return nil
}

func displayEquity(out io.Writer, hero, board []poker.Card, eq poker.Equity, duration time.Duration) {
	if len(board) > 0 {
		fmt.Fprintf(out, "%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("lose"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		handStyle.Render(formatCards(hero)),
		winStyle.Render(fmt.Sprintf("%.1f%%", eq.Win*100)),
		tieStyle.Render(fmt.Sprintf("%.1f%%", eq.Tie*100)),
		percentStyle.Render(fmt.Sprintf("%.1f%%", eq.Lose*100)))
	w.Flush()

	fmt.Fprintf(out, "\n%d scenarios in %v\n", eq.Scenarios, duration.Truncate(time.Millisecond))
}
