// Package tui is an interactive hand analyzer: pick hero and board cards,
// then review equity, draws, distribution and advice in one screen.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/poker-companion/internal/advisor"
	"github.com/lox/poker-companion/internal/analysis"
	"github.com/lox/poker-companion/internal/randutil"
	"github.com/lox/poker-companion/poker"
)

// Model is the Bubble Tea model for the analyzer.
type Model struct {
	logger *log.Logger

	cardInput      textinput.Model
	resultViewport viewport.Model

	hero  []poker.Card
	board []poker.Card

	status   string
	results  string
	busy     bool
	quitting bool

	width       int
	height      int
	initialized bool
}

// analysisMsg carries the rendered analysis back into the update loop.
type analysisMsg struct {
	text string
	err  error
}

// NewModel creates the analyzer model.
func NewModel(logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter cards, e.g. Ah Ks (then board: Qh Jc Tc)"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:         logger.WithPrefix("tui"),
		cardInput:      ti,
		resultViewport: vp,
		status:         "Pick two hole cards.",
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case analysisMsg:
		m.busy = false
		if msg.err != nil {
			m.status = ErrorStyle.Render(msg.err.Error())
		} else {
			m.results = msg.text
			m.status = "Analysis ready. Add board cards or type 'clear'."
			m.resultViewport.SetContent(m.results)
			m.resultViewport.GotoTop()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			cmd := m.submit(strings.TrimSpace(m.cardInput.Value()))
			m.cardInput.SetValue("")
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.resultViewport, cmd = m.resultViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.cardInput, cmd = m.cardInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit consumes one line of input: card notation, or a command.
func (m *Model) submit(input string) tea.Cmd {
	switch strings.ToLower(input) {
	case "":
		return nil
	case "quit", "q":
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	case "clear":
		m.hero = nil
		m.board = nil
		m.results = ""
		m.resultViewport.SetContent("")
		m.status = "Pick two hole cards."
		return nil
	case "deal":
		deck := poker.NewDeck(randutil.NewUnseeded())
		m.hero = deck.Deal(2)
		m.board = nil
		m.results = ""
		m.resultViewport.SetContent("")
		return m.maybeAnalyze()
	}

	cards, err := poker.ParseCards(input)
	if err != nil {
		m.status = ErrorStyle.Render(err.Error())
		return nil
	}
	if err := m.addCards(cards); err != nil {
		m.status = ErrorStyle.Render(err.Error())
		return nil
	}
	return m.maybeAnalyze()
}

func (m *Model) addCards(cards []poker.Card) error {
	taken := poker.NewCardSet(append(append([]poker.Card{}, m.hero...), m.board...))
	for _, c := range cards {
		if taken.Contains(c) {
			return fmt.Errorf("%s is already picked", c)
		}
		taken.Add(c)
		if len(m.hero) < 2 {
			m.hero = append(m.hero, c)
		} else if len(m.board) < 5 {
			m.board = append(m.board, c)
		} else {
			return fmt.Errorf("board is full")
		}
	}
	return nil
}

// maybeAnalyze kicks off analysis when the picked cards form a valid
// street: two hole cards and 0, 3, 4 or 5 board cards.
func (m *Model) maybeAnalyze() tea.Cmd {
	if len(m.hero) < 2 {
		m.status = "Pick two hole cards."
		return nil
	}
	switch len(m.board) {
	case 0, 3, 4, 5:
	default:
		m.status = fmt.Sprintf("Board has %d cards; add up to %d more.", len(m.board), 5-len(m.board))
		return nil
	}

	hero := append([]poker.Card{}, m.hero...)
	board := append([]poker.Card{}, m.board...)
	m.busy = true
	m.status = "Analyzing..."
	return func() tea.Msg {
		text, err := renderAnalysis(hero, board)
		return analysisMsg{text: text, err: err}
	}
}

// renderAnalysis runs the full analysis suite and formats the result pane.
func renderAnalysis(hero, board []poker.Card) (string, error) {
	var b strings.Builder

	eq, err := poker.EquityVsRandom(hero, board, poker.EquityOptions{})
	if err != nil {
		return "", err
	}
	b.WriteString(HeaderStyle.Render(" Equity vs random hand "))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Win %.1f%%  Tie %.1f%%  Lose %.1f%%  (%d scenarios)\n\n",
		eq.Win*100, eq.Tie*100, eq.Lose*100, eq.Scenarios)

	draws, err := analysis.DetectDraws(hero, board)
	if err != nil {
		return "", err
	}
	if len(board) == 3 || len(board) == 4 {
		b.WriteString(HeaderStyle.Render(" Outs "))
		b.WriteString("\n")
		if draws.TotalOuts == 0 {
			b.WriteString(InfoStyle.Render("  no draws detected"))
			b.WriteString("\n\n")
		} else {
			if draws.FlushDraw != nil {
				fmt.Fprintf(&b, "  flush draw (%s): %d outs\n", draws.FlushDraw.Suit.Symbol(), draws.FlushDraw.Outs)
			}
			for _, sd := range draws.StraightDraws {
				fmt.Fprintf(&b, "  %s straight draw to %s: %d outs\n", sd.Kind, sd.Target, sd.Outs)
			}
			fmt.Fprintf(&b, "  total: %d outs: %s\n\n", draws.TotalOuts, formatCards(draws.OutCards))
		}
	}

	dist, err := analysis.HandDistribution(hero, board, analysis.Options{})
	if err != nil {
		return "", err
	}
	b.WriteString(HeaderStyle.Render(" Final hand distribution "))
	b.WriteString("\n")
	b.WriteString(formatDistribution(dist))
	b.WriteString("\n")

	adv, err := advisor.Advise(hero, board, advisor.Request{})
	if err != nil {
		return "", err
	}
	b.WriteString(HeaderStyle.Render(" Advice "))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s (%s)\n", ActionsStyle.Render(strings.ToUpper(adv.Action)), adv.Confidence)
	for _, r := range adv.Rationale {
		fmt.Fprintf(&b, "  - %s\n", r)
	}

	return b.String(), nil
}

func formatDistribution(dist map[poker.HandCategory]float64) string {
	cats := make([]poker.HandCategory, 0, len(dist))
	for cat := range dist {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] > cats[j] })

	var b strings.Builder
	for _, cat := range cats {
		fmt.Fprintf(&b, "  %-16s %6.2f%%\n", cat, dist[cat]*100)
	}
	return b.String()
}

// View renders the analyzer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	picker := m.renderPickerPane()
	pickerHeight := lipgloss.Height(picker)

	inputPane := m.renderInputPane()
	inputHeight := lipgloss.Height(inputPane)

	resultWidth := m.width - 2
	resultHeight := m.height - pickerHeight - inputHeight - 2
	if resultWidth < 1 {
		resultWidth = 1
	}
	if resultHeight < 1 {
		resultHeight = 1
	}
	m.resultViewport.Width = resultWidth
	m.resultViewport.Height = resultHeight
	if !m.initialized && resultHeight > 1 {
		m.resultViewport.GotoTop()
		m.initialized = true
	}

	resultStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(resultWidth).
		Height(resultHeight)

	return lipgloss.JoinVertical(lipgloss.Top,
		picker,
		resultStyle.Render(m.resultViewport.View()),
		inputPane,
	)
}

// renderPickerPane shows the rank-by-suit grid with picked cards struck out.
func (m *Model) renderPickerPane() string {
	picked := poker.NewCardSet(append(append([]poker.Card{}, m.hero...), m.board...))

	var b strings.Builder
	for suit := poker.Spades; suit <= poker.Clubs; suit++ {
		b.WriteString("  ")
		for rank := poker.Ace; rank >= poker.Two; rank-- {
			card := poker.Card{Rank: rank, Suit: suit}
			label := card.Rank.String() + card.Suit.Symbol()
			switch {
			case picked.Contains(card):
				b.WriteString(PickedCardStyle.Render(label))
			case card.IsRed():
				b.WriteString(RedCardStyle.Render(label))
			default:
				b.WriteString(BlackCardStyle.Render(label))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(HandInfoStyle.Render("Hero: " + formatCards(m.hero)))
	if len(m.board) > 0 {
		b.WriteString(HandInfoStyle.Render("  Board: " + formatCards(m.board)))
	}
	return b.String()
}

func (m *Model) renderInputPane() string {
	var b strings.Builder
	b.WriteString(m.cardInput.View())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Enter cards to add • 'deal' for a random hand • 'clear' to reset • Ctrl+C to quit"))
	return b.String()
}

func formatCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "--"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}

// Run starts the analyzer in the terminal.
func Run(logger *log.Logger) error {
	p := tea.NewProgram(NewModel(logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
