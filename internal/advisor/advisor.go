// Package advisor turns equity, draws and pot odds into a single
// recommended action with supporting rationale.
package advisor

import (
	"fmt"

	"github.com/lox/poker-companion/internal/analysis"
	"github.com/lox/poker-companion/poker"
)

// Actions and confidence levels reported in Advice.
const (
	ActionRaise = "raise"
	ActionCall  = "call"
	ActionFold  = "fold"

	ConfidenceStrong   = "strong"
	ConfidenceModerate = "moderate"
	ConfidenceWeak     = "weak"
)

// Request carries the optional betting context. Pot and Call must be set
// together; without them the advisor reasons on equity and outs alone.
type Request struct {
	Pot        *float64
	Call       *float64
	Iterations int
	Seed       *int64
}

// Advice is the advisor's recommendation plus the inputs that drove it.
type Advice struct {
	Action     string
	Confidence string
	Equity     poker.Equity
	Draws      analysis.Draws
	Call       *analysis.CallAnalysis
	Rationale  []string
	BetSizing  *float64
}

// Advise recommends an action for the hero on the given board. Equity is
// computed against a single random opponent; on flop and turn boards the
// draw count feeds the marginal-hand rules.
func Advise(hero, board []poker.Card, req Request) (Advice, error) {
	if (req.Pot == nil) != (req.Call == nil) {
		return Advice{}, fmt.Errorf("%w: pot and call must be provided together", poker.ErrInvalidInput)
	}

	eq, err := poker.EquityVsRandom(hero, board, poker.EquityOptions{
		Iterations: req.Iterations,
		Seed:       req.Seed,
	})
	if err != nil {
		return Advice{}, err
	}
	draws, err := analysis.DetectDraws(hero, board)
	if err != nil {
		return Advice{}, err
	}

	adv := Advice{Equity: eq, Draws: draws}
	value := eq.Value()
	adv.rationalef("equity %.1f%% against a random hand", value*100)
	if len(board) == 0 {
		category := poker.CategorizeHoleCards(hero[0], hero[1])
		adv.rationalef("%s starting hand", category)
	}
	if draws.TotalOuts > 0 {
		adv.rationalef("%d outs to improve", draws.TotalOuts)
	}

	if req.Pot != nil {
		call, err := analysis.ShouldCall(*req.Pot, *req.Call, value)
		if err != nil {
			return Advice{}, err
		}
		adv.Call = &call
	}

	switch {
	case value >= 0.70:
		adv.Action = ActionRaise
		adv.Confidence = ConfidenceStrong
		adv.rationalef("dominant equity, bet for value")
		adv.size(value)

	case value >= 0.55:
		adv.Action = ActionRaise
		adv.Confidence = ConfidenceModerate
		adv.rationalef("clear equity edge, bet for value")
		adv.size(value)

	case value >= 0.35 && draws.TotalOuts >= 4:
		adv.decideOnPrice(value, "live draw")

	case value >= 0.35:
		adv.decideOnPrice(value, "marginal hand")

	default:
		adv.Action = ActionFold
		adv.Confidence = ConfidenceStrong
		adv.rationalef("too little equity to continue")
		if draws.TotalOuts >= 8 && adv.Call != nil && adv.Call.Profitable {
			adv.Action = ActionCall
			adv.Confidence = ConfidenceWeak
			adv.rationalef("strong draw priced in: EV %+.2f", adv.Call.EV)
		}
	}

	return adv, nil
}

// decideOnPrice resolves the middle equity band: call when the price is
// right, fold when it is not, lean on equity alone without pot context.
func (a *Advice) decideOnPrice(value float64, label string) {
	if a.Call == nil {
		a.Action = ActionCall
		a.Confidence = ConfidenceWeak
		a.rationalef("%s, no pot context to price a call", label)
		return
	}
	if a.Call.Profitable {
		a.Action = ActionCall
		a.Confidence = ConfidenceModerate
		a.rationalef("%s, calling is +EV (%+.2f)", label, a.Call.EV)
	} else {
		a.Action = ActionFold
		a.Confidence = ConfidenceModerate
		a.rationalef("%s, but the price is too high (EV %+.2f)", label, a.Call.EV)
	}
}

// size attaches a pot-fraction bet size for raise advice.
func (a *Advice) size(value float64) {
	var frac float64
	switch {
	case value >= 0.85:
		frac = 1.0
	case value >= 0.70:
		frac = 0.75
	case value >= 0.55:
		frac = 0.66
	default:
		frac = 0.50
	}
	a.BetSizing = &frac
	a.rationalef("suggested bet: %.0f%% of pot", frac*100)
}

func (a *Advice) rationalef(format string, args ...any) {
	a.Rationale = append(a.Rationale, fmt.Sprintf(format, args...))
}
