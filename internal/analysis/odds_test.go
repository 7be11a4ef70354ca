package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/poker-companion/poker"
)

func TestPotOdds(t *testing.T) {
	t.Parallel()
	odds, err := PotOdds(100, 50)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, odds, 1e-12)

	_, err = PotOdds(-1, 50)
	require.ErrorIs(t, err, poker.ErrInvalidInput)
	_, err = PotOdds(100, 0)
	require.ErrorIs(t, err, poker.ErrInvalidInput)
}

func TestEVCall(t *testing.T) {
	t.Parallel()
	ev, err := EVCall(100, 50, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 25.0, ev, 1e-12)

	// Equity exactly at the pot odds price is breakeven.
	breakeven, err := EVCall(100, 50, 1.0/3.0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, breakeven, 1e-9)

	_, err = EVCall(100, 50, 1.5)
	require.ErrorIs(t, err, poker.ErrInvalidInput)
}

func TestShouldCall(t *testing.T) {
	t.Parallel()
	analysis, err := ShouldCall(100, 50, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, analysis.PotOdds, 1e-12)
	require.InDelta(t, 25.0, analysis.EV, 1e-12)
	require.InDelta(t, 0.5-1.0/3.0, analysis.Edge, 1e-12)
	require.True(t, analysis.Profitable)

	fold, err := ShouldCall(100, 50, 0.1)
	require.NoError(t, err)
	require.False(t, fold.Profitable)
	require.Negative(t, fold.EV)
}
