package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/poker-companion/poker"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(log.New(io.Discard))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(*Model)
}

func TestAddCardsFillsHeroThenBoard(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	require.NoError(t, m.addCards(poker.MustParseCards("Ah Ks")))
	require.Len(t, m.hero, 2)
	require.Empty(t, m.board)

	require.NoError(t, m.addCards(poker.MustParseCards("Qh Jc Tc")))
	require.Len(t, m.board, 3)
}

func TestAddCardsRejectsDuplicates(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	require.NoError(t, m.addCards(poker.MustParseCards("Ah Ks")))
	require.Error(t, m.addCards(poker.MustParseCards("Ah")))
}

func TestSubmitClearResets(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	require.NoError(t, m.addCards(poker.MustParseCards("Ah Ks")))

	cmd := m.submit("clear")
	require.Nil(t, cmd)
	require.Empty(t, m.hero)
	require.Empty(t, m.board)
}

func TestSubmitTriggersAnalysisOnValidStreet(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	cmd := m.submit("Ah Kh Qh Jh Th 2c 2d")
	require.NotNil(t, cmd)

	msg := cmd()
	analysis, ok := msg.(analysisMsg)
	require.True(t, ok)
	require.NoError(t, analysis.err)
	require.Contains(t, analysis.text, "Equity vs random hand")
	require.Contains(t, analysis.text, "Advice")
}

func TestSubmitBadInputSetsStatus(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	cmd := m.submit("Zz")
	require.Nil(t, cmd)
	require.NotEmpty(t, m.status)
}

func TestViewRendersPickerGrid(t *testing.T) {
	t.Parallel()
	m := testModel(t)
	require.NoError(t, m.addCards(poker.MustParseCards("Ah Ks")))

	view := m.View()
	require.Contains(t, view, "A♠")
	require.Contains(t, view, "Hero:")
	require.True(t, strings.Contains(view, ">"))
}

func TestDealCommandProducesRandomHand(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	cmd := m.submit("deal")
	require.Len(t, m.hero, 2)
	require.NotEqual(t, m.hero[0], m.hero[1])
	require.Empty(t, m.board)

	// Preflop analysis runs immediately on the dealt hand.
	require.NotNil(t, cmd)
	require.Contains(t, m.status, "Analyzing")
}
