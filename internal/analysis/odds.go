package analysis

import (
	"fmt"

	"github.com/lox/poker-companion/poker"
)

// CallAnalysis compares the price of a call with the hand's equity.
type CallAnalysis struct {
	PotOdds    float64
	Equity     float64
	EV         float64
	Edge       float64
	Profitable bool
}

// PotOdds returns the fraction of the final pot the caller must invest,
// call / (pot + call).
func PotOdds(pot, call float64) (float64, error) {
	if pot < 0 {
		return 0, fmt.Errorf("%w: pot must be non-negative, got %v", poker.ErrInvalidInput, pot)
	}
	if call <= 0 {
		return 0, fmt.Errorf("%w: call must be positive, got %v", poker.ErrInvalidInput, call)
	}
	return call / (pot + call), nil
}

// EVCall returns the expected value of calling: equity*(pot+call) - call.
func EVCall(pot, call, equity float64) (float64, error) {
	if equity < 0 || equity > 1 {
		return 0, fmt.Errorf("%w: equity must be in [0,1], got %v", poker.ErrInvalidInput, equity)
	}
	if pot < 0 {
		return 0, fmt.Errorf("%w: pot must be non-negative, got %v", poker.ErrInvalidInput, pot)
	}
	if call <= 0 {
		return 0, fmt.Errorf("%w: call must be positive, got %v", poker.ErrInvalidInput, call)
	}
	return equity*(pot+call) - call, nil
}

// ShouldCall bundles pot odds, EV and the equity edge over the price into
// a single analysis.
func ShouldCall(pot, call, equity float64) (CallAnalysis, error) {
	odds, err := PotOdds(pot, call)
	if err != nil {
		return CallAnalysis{}, err
	}
	ev, err := EVCall(pot, call, equity)
	if err != nil {
		return CallAnalysis{}, err
	}
	return CallAnalysis{
		PotOdds:    odds,
		Equity:     equity,
		EV:         ev,
		Edge:       equity - odds,
		Profitable: ev > 0,
	}, nil
}
