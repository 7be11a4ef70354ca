// Package analysis derives decision-support statistics from the core
// evaluator: draw detection, pot odds and hand distributions.
package analysis

import (
	"fmt"

	"github.com/lox/poker-companion/poker"
)

// DrawKind classifies a straight draw by where the missing rank sits in
// its five-rank window.
type DrawKind string

const (
	OpenEnded DrawKind = "open-ended"
	Gutshot   DrawKind = "gutshot"
)

// FlushDraw describes four cards of one suit with one to come.
type FlushDraw struct {
	Suit poker.Suit
	Outs int
}

// StraightDraw describes a five-rank window missing exactly one rank.
type StraightDraw struct {
	Kind   DrawKind
	Target poker.Rank
	Outs   int
}

// Draws aggregates the draws present in a hero-plus-board combination.
// TotalOuts counts distinct out cards, so a card completing both a flush
// and a straight counts once.
type Draws struct {
	FlushDraw     *FlushDraw
	StraightDraws []StraightDraw
	TotalOuts     int
	OutCards      []poker.Card
}

// straightWindows lists the ten five-rank windows, wheel first. The ace
// plays low only in the wheel window.
var straightWindows = func() [10][5]poker.Rank {
	var windows [10][5]poker.Rank
	windows[0] = [5]poker.Rank{poker.Ace, poker.Two, poker.Three, poker.Four, poker.Five}
	for i := 1; i < 10; i++ {
		low := poker.Rank(int(poker.Two) + i - 1)
		for j := 0; j < 5; j++ {
			windows[i][j] = low + poker.Rank(j)
		}
	}
	return windows
}()

// DetectDraws finds flush and straight draws for the hero on a flop or
// turn board. Preflop and river boards have no cards to come and report
// no draws.
func DetectDraws(hero, board []poker.Card) (Draws, error) {
	if err := validateHeroBoard(hero, board); err != nil {
		return Draws{}, err
	}
	if len(board) != 3 && len(board) != 4 {
		return Draws{}, nil
	}

	all := make([]poker.Card, 0, 6)
	all = append(all, hero...)
	all = append(all, board...)
	visible := poker.NewCardSet(all)
	heroRanks := map[poker.Rank]bool{hero[0].Rank: true, hero[1].Rank: true}

	var draws Draws
	var outSet poker.CardSet
	var outs []poker.Card

	addOut := func(c poker.Card) {
		if !outSet.Contains(c) {
			outSet.Add(c)
			outs = append(outs, c)
		}
	}

	// Flush draw: exactly four of one suit, hero holding at least one.
	suitCount := map[poker.Suit]int{}
	for _, c := range all {
		suitCount[c.Suit]++
	}
	for suit := poker.Spades; suit <= poker.Clubs; suit++ {
		if suitCount[suit] != 4 {
			continue
		}
		if hero[0].Suit != suit && hero[1].Suit != suit {
			continue
		}
		fd := &FlushDraw{Suit: suit}
		for rank := poker.Two; rank <= poker.Ace; rank++ {
			c := poker.Card{Rank: rank, Suit: suit}
			if !visible.Contains(c) {
				fd.Outs++
				addOut(c)
			}
		}
		draws.FlushDraw = fd
		break
	}

	// Straight draws: windows with exactly one missing rank.
	rankSeen := map[poker.Rank]int{}
	for _, c := range all {
		rankSeen[c.Rank]++
	}
	reported := map[poker.Rank]bool{}
	for _, window := range straightWindows {
		missingIdx := -1
		present := 0
		heroPlays := false
		for i, rank := range window {
			if rankSeen[rank] > 0 {
				present++
				if heroRanks[rank] {
					heroPlays = true
				}
			} else {
				missingIdx = i
			}
		}
		if present != 4 || !heroPlays {
			continue
		}
		target := window[missingIdx]
		if reported[target] {
			continue
		}
		reported[target] = true

		kind := Gutshot
		if missingIdx == 0 || missingIdx == 4 {
			kind = OpenEnded
		}
		sd := StraightDraw{Kind: kind, Target: target}
		for suit := poker.Spades; suit <= poker.Clubs; suit++ {
			c := poker.Card{Rank: target, Suit: suit}
			if !visible.Contains(c) {
				sd.Outs++
				addOut(c)
			}
		}
		draws.StraightDraws = append(draws.StraightDraws, sd)
	}

	sortOutsDescending(outs)
	draws.OutCards = outs
	draws.TotalOuts = len(outs)
	return draws, nil
}

func sortOutsDescending(cards []poker.Card) {
	// Insertion sort; out lists never exceed a couple of dozen cards.
	for i := 1; i < len(cards); i++ {
		for j := i; j > 0; j-- {
			a, b := cards[j-1], cards[j]
			if a.Rank > b.Rank || (a.Rank == b.Rank && a.Suit <= b.Suit) {
				break
			}
			cards[j-1], cards[j] = cards[j], cards[j-1]
		}
	}
}

func validateHeroBoard(hero, board []poker.Card) error {
	if len(hero) != 2 {
		return fmt.Errorf("%w: expected 2 hole cards, got %d", poker.ErrInvalidInput, len(hero))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("%w: board must hold 0, 3, 4 or 5 cards, got %d", poker.ErrInvalidInput, len(board))
	}
	var seen poker.CardSet
	for _, c := range append(append([]poker.Card{}, hero...), board...) {
		if c.Rank < poker.Two || c.Rank > poker.Ace || c.Suit < poker.Spades || c.Suit > poker.Clubs {
			return fmt.Errorf("%w: malformed card %+v", poker.ErrInvalidInput, c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidInput, c)
		}
		seen.Add(c)
	}
	return nil
}
