package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/poker-companion/internal/advisor"
)

// AdviceCmd recommends raise, call or fold for the current spot.
type AdviceCmd struct {
	Hero       string   `required:"" help:"Hole cards, e.g. 'Ah Kh'"`
	Board      string   `short:"b" help:"Board cards (0, 3, 4 or 5)"`
	Pot        *float64 `help:"Current pot size (requires --call)"`
	Call       *float64 `help:"Amount to call (requires --pot)"`
	Iterations int      `short:"i" help:"Monte Carlo iterations (preflop/flop only)"`
	Seed       *int64   `help:"Random seed for reproducible results"`
}

func (c *AdviceCmd) Run(globals *Globals) error {
	hero, board, err := parseHeroBoard(c.Hero, c.Board)
	if err != nil {
		return err
	}

	advice, err := advisor.Advise(hero, board, advisor.Request{
		Pot:        c.Pot,
		Call:       c.Call,
		Iterations: c.Iterations,
		Seed:       c.Seed,
	})
	if err != nil {
		return err
	}

	displayAdvice(os.Stdout, advice)
	return nil
}

func displayAdvice(out io.Writer, advice advisor.Advice) {
	action := advice.Action
	switch action {
	case advisor.ActionRaise:
		action = winStyle.Render(strings.ToUpper(action))
	case advisor.ActionCall:
		action = tieStyle.Render(strings.ToUpper(action))
	default:
		action = percentStyle.Render(strings.ToUpper(action))
	}
	fmt.Fprintf(out, "%s %s (%s)\n\n", headerStyle.Render("action:"), action, advice.Confidence)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%.1f%%\n", headerStyle.Render("equity"), advice.Equity.Value()*100)
	if advice.Draws.TotalOuts > 0 {
		fmt.Fprintf(w, "%s\t%d (%s)\n",
			headerStyle.Render("outs"),
			advice.Draws.TotalOuts,
			formatCards(advice.Draws.OutCards))
	}
	if call := advice.Call; call != nil {
		fmt.Fprintf(w, "%s\t%.1f%%\n", headerStyle.Render("pot odds"), call.PotOdds*100)
		fmt.Fprintf(w, "%s\t%+.2f\n", headerStyle.Render("ev of call"), call.EV)
	}
	if advice.BetSizing != nil {
		fmt.Fprintf(w, "%s\t%.0f%% pot\n", headerStyle.Render("bet sizing"), *advice.BetSizing*100)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("rationale"))
	for _, line := range advice.Rationale {
		fmt.Fprintf(out, "  - %s\n", line)
	}
}
