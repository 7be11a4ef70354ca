package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/lox/poker-companion/internal/analysis"
	"github.com/lox/poker-companion/poker"
)

// DistributionCmd shows the probability of each final hand category.
type DistributionCmd struct {
	Hero       string `required:"" help:"Hole cards, e.g. 'Ah Kh'"`
	Board      string `short:"b" help:"Board cards (0, 3, 4 or 5)"`
	Iterations int    `short:"i" help:"Monte Carlo iterations (preflop/flop only)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (c *DistributionCmd) Run(globals *Globals) error {
	hero, board, err := parseHeroBoard(c.Hero, c.Board)
	if err != nil {
		return err
	}

	dist, err := analysis.HandDistribution(hero, board, analysis.Options{
		Iterations: c.Iterations,
		Seed:       c.Seed,
	})
	if err != nil {
		return err
	}

	displayDistribution(os.Stdout, hero, board, dist)
	return nil
}

func displayDistribution(out io.Writer, hero, board []poker.Card, dist map[poker.HandCategory]float64) {
	fmt.Fprintf(out, "%s %s", headerStyle.Render("hand:"), handStyle.Render(formatCards(hero)))
	if len(board) > 0 {
		fmt.Fprintf(out, "  %s %s", headerStyle.Render("board:"), formatCards(board))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	categories := make([]poker.HandCategory, 0, len(dist))
	for category := range dist {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] > categories[j] })

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, category := range categories {
		fmt.Fprintf(w, "%s\t%s\n",
			categoryStyle.Render(category.String()),
			percentStyle.Render(fmt.Sprintf("%6.2f%%", dist[category]*100)))
	}
	w.Flush()
}
