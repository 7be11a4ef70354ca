package main

import (
	"fmt"
	"strings"

	"github.com/lox/poker-companion/poker"
)

// parseHeroBoard parses the hero and optional board card strings.
func parseHeroBoard(heroStr, boardStr string) ([]poker.Card, []poker.Card, error) {
	hero, err := poker.ParseCards(heroStr)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing hero: %w", err)
	}
	if len(hero) != 2 {
		return nil, nil, fmt.Errorf("hero must contain exactly 2 cards, got %d", len(hero))
	}

	var board []poker.Card
	if boardStr != "" {
		board, err = poker.ParseCards(boardStr)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing board: %w", err)
		}
	}
	return hero, board, nil
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
