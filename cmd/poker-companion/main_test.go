package main

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/poker-companion/internal/analysis"
	"github.com/lox/poker-companion/poker"
)

func TestParseHeroBoard(t *testing.T) {
	tests := []struct {
		name      string
		hero      string
		board     string
		boardSize int
		hasError  bool
	}{
		{
			name:      "Hero only",
			hero:      "Ah Ks",
			board:     "",
			boardSize: 0,
		},
		{
			name:      "Hero with flop",
			hero:      "AhKs",
			board:     "Qh Jc Tc",
			boardSize: 3,
		},
		{
			name:     "Too few hero cards",
			hero:     "Ah",
			hasError: true,
		},
		{
			name:     "Too many hero cards",
			hero:     "Ah Ks Qd",
			hasError: true,
		},
		{
			name:     "Malformed board card",
			hero:     "Ah Ks",
			board:    "Qh Xx",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero, board, err := parseHeroBoard(tt.hero, tt.board)

			if tt.hasError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(hero) != 2 {
				t.Errorf("expected 2 hero cards, got %d", len(hero))
			}
			if len(board) != tt.boardSize {
				t.Errorf("expected %d board cards, got %d", tt.boardSize, len(board))
			}
		})
	}
}

func TestDisplayEquity(t *testing.T) {
	hero := poker.MustParseCards("Ah Kh")
	board := poker.MustParseCards("Qh Jh Th 2c 2d")

	var sb strings.Builder
	displayEquity(&sb, hero, board, poker.Equity{
		Win:       1.0,
		Scenarios: 990,
	}, 5*time.Millisecond)

	out := sb.String()
	if !strings.Contains(out, "100.0%") {
		t.Errorf("expected win percentage in output, got:\n%s", out)
	}
	if !strings.Contains(out, "990 scenarios") {
		t.Errorf("expected scenario count in output, got:\n%s", out)
	}
}

func TestDisplayDraws(t *testing.T) {
	hero := poker.MustParseCards("Ah Kh")
	board := poker.MustParseCards("Qh 7h 2s")

	draws, err := analysis.DetectDraws(hero, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	displayDraws(&sb, draws)

	out := sb.String()
	if !strings.Contains(out, "flush") {
		t.Errorf("expected flush draw in output, got:\n%s", out)
	}
	if !strings.Contains(out, "total outs:") {
		t.Errorf("expected total outs in output, got:\n%s", out)
	}
}

func TestDisplayDrawsNone(t *testing.T) {
	var sb strings.Builder
	displayDraws(&sb, analysis.Draws{})

	if !strings.Contains(sb.String(), "no draws") {
		t.Errorf("expected no-draws message, got:\n%s", sb.String())
	}
}
