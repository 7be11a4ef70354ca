package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/poker-companion/internal/analysis"
)

// OutsCmd reports flush and straight draws with their out cards.
type OutsCmd struct {
	Hero  string `required:"" help:"Hole cards, e.g. 'Ah Kh'"`
	Board string `required:"" help:"Flop or turn board, e.g. 'Qh Jh 2s'"`
}

func (c *OutsCmd) Run(globals *Globals) error {
	hero, board, err := parseHeroBoard(c.Hero, c.Board)
	if err != nil {
		return err
	}

	draws, err := analysis.DetectDraws(hero, board)
	if err != nil {
		return err
	}

	displayDraws(os.Stdout, draws)
	return nil
}

func displayDraws(out io.Writer, draws analysis.Draws) {
	if draws.TotalOuts == 0 {
		fmt.Fprintln(out, "no draws detected")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("draw"),
		headerStyle.Render("detail"),
		headerStyle.Render("outs"))
	if fd := draws.FlushDraw; fd != nil {
		fmt.Fprintf(w, "%s\t%s\t%d\n",
			categoryStyle.Render("flush"),
			fd.Suit.String(),
			fd.Outs)
	}
	for _, sd := range draws.StraightDraws {
		fmt.Fprintf(w, "%s\t%s\t%d\n",
			categoryStyle.Render(string(sd.Kind)),
			fmt.Sprintf("%s-high straight", sd.Target),
			sd.Outs)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%s %s\n", headerStyle.Render("out cards:"), formatCards(draws.OutCards))
	fmt.Fprintf(out, "%s %d\n", headerStyle.Render("total outs:"), draws.TotalOuts)
}
