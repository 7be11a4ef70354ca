package server

import (
	"fmt"

	"github.com/lox/poker-companion/internal/advisor"
	"github.com/lox/poker-companion/internal/analysis"
	"github.com/lox/poker-companion/poker"
)

// Request is a single analysis request sent over the websocket.
type Request struct {
	Type       string   `json:"type"`
	Hero       []string `json:"hero"`
	Board      []string `json:"board,omitempty"`
	Iterations int      `json:"iterations,omitempty"`
	Seed       *int64   `json:"seed,omitempty"`
	Pot        *float64 `json:"pot,omitempty"`
	Call       *float64 `json:"call,omitempty"`
}

// Request types understood by the server.
const (
	RequestEquity       = "equity"
	RequestOuts         = "outs"
	RequestDistribution = "distribution"
	RequestAdvice       = "advice"
)

// EquityResponse reports win/tie/lose equity.
type EquityResponse struct {
	Type      string  `json:"type"`
	Win       float64 `json:"win"`
	Tie       float64 `json:"tie"`
	Lose      float64 `json:"lose"`
	Scenarios int     `json:"scenarios"`
}

// FlushDrawState mirrors analysis.FlushDraw in wire form.
type FlushDrawState struct {
	Suit string `json:"suit"`
	Outs int    `json:"outs"`
}

// StraightDrawState mirrors analysis.StraightDraw in wire form.
type StraightDrawState struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
	Outs   int    `json:"outs"`
}

// OutsResponse reports detected draws and out cards.
type OutsResponse struct {
	Type          string              `json:"type"`
	TotalOuts     int                 `json:"total_outs"`
	OutCards      []string            `json:"out_cards"`
	FlushDraw     *FlushDrawState     `json:"flush_draw,omitempty"`
	StraightDraws []StraightDrawState `json:"straight_draws,omitempty"`
}

// DistributionResponse reports final hand category probabilities keyed by
// category name.
type DistributionResponse struct {
	Type         string             `json:"type"`
	Distribution map[string]float64 `json:"distribution"`
}

// AdviceResponse reports the advisor's recommendation.
type AdviceResponse struct {
	Type       string   `json:"type"`
	Action     string   `json:"action"`
	Confidence string   `json:"confidence"`
	Equity     float64  `json:"equity"`
	Rationale  []string `json:"rationale"`
	BetSizing  *float64 `json:"bet_sizing,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func newErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Type: "error", Error: err.Error()}
}

// handleRequest dispatches a request to the analysis packages and builds
// the wire response.
func handleRequest(req *Request) (any, error) {
	hero, err := parseCardNames(req.Hero)
	if err != nil {
		return nil, err
	}
	board, err := parseCardNames(req.Board)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case RequestEquity:
		eq, err := poker.EquityVsRandom(hero, board, poker.EquityOptions{
			Iterations: req.Iterations,
			Seed:       req.Seed,
		})
		if err != nil {
			return nil, err
		}
		return EquityResponse{Type: RequestEquity, Win: eq.Win, Tie: eq.Tie, Lose: eq.Lose, Scenarios: eq.Scenarios}, nil

	case RequestOuts:
		draws, err := analysis.DetectDraws(hero, board)
		if err != nil {
			return nil, err
		}
		resp := OutsResponse{Type: RequestOuts, TotalOuts: draws.TotalOuts, OutCards: cardNames(draws.OutCards)}
		if draws.FlushDraw != nil {
			resp.FlushDraw = &FlushDrawState{Suit: draws.FlushDraw.Suit.String(), Outs: draws.FlushDraw.Outs}
		}
		for _, sd := range draws.StraightDraws {
			resp.StraightDraws = append(resp.StraightDraws, StraightDrawState{
				Kind:   string(sd.Kind),
				Target: sd.Target.String(),
				Outs:   sd.Outs,
			})
		}
		return resp, nil

	case RequestDistribution:
		dist, err := analysis.HandDistribution(hero, board, analysis.Options{
			Iterations: req.Iterations,
			Seed:       req.Seed,
		})
		if err != nil {
			return nil, err
		}
		named := make(map[string]float64, len(dist))
		for cat, p := range dist {
			named[cat.String()] = p
		}
		return DistributionResponse{Type: RequestDistribution, Distribution: named}, nil

	case RequestAdvice:
		adv, err := advisor.Advise(hero, board, advisor.Request{
			Pot:        req.Pot,
			Call:       req.Call,
			Iterations: req.Iterations,
			Seed:       req.Seed,
		})
		if err != nil {
			return nil, err
		}
		return AdviceResponse{
			Type:       RequestAdvice,
			Action:     adv.Action,
			Confidence: adv.Confidence,
			Equity:     adv.Equity.Value(),
			Rationale:  adv.Rationale,
			BetSizing:  adv.BetSizing,
		}, nil

	default:
		return nil, fmt.Errorf("unknown request type %q", req.Type)
	}
}

func parseCardNames(names []string) ([]poker.Card, error) {
	if len(names) == 0 {
		return nil, nil
	}
	cards := make([]poker.Card, 0, len(names))
	for _, name := range names {
		card, err := poker.ParseCard(name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func cardNames(cards []poker.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
