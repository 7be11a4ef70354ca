package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a caller violates an evaluation contract,
// such as passing the wrong number of cards or duplicate cards.
var ErrInvalidInput = errors.New("poker: invalid input")

// HandCategory identifies the rank class of a five-card hand.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c HandCategory) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return fmt.Sprintf("HandCategory(%d)", int(c))
	}
}

// HandScore is a totally ordered strength value for a five-card hand.
// Higher is stronger. The category occupies the millions digit, so
// Score/1_000_000 recovers the HandCategory and the remainder breaks
// ties within a category.
type HandScore int

// Category returns the rank class encoded in the score.
func (s HandScore) Category() HandCategory {
	return HandCategory(s / categoryUnit)
}

const categoryUnit = 1_000_000

// rankPrime maps a rank to a distinct prime so that a product of five
// primes identifies a rank multiset. Indexed by Rank (2..14).
var rankPrime = [15]uint32{
	Two: 2, Three: 3, Four: 5, Five: 7, Six: 11, Seven: 13,
	Eight: 17, Nine: 19, Ten: 23, Jack: 29, Queen: 31, King: 37, Ace: 41,
}

// EvalCard is a card preprocessed for scoring. Batch callers convert
// once and reuse across many evaluations.
type EvalCard struct {
	Rank  Rank
	Suit  Suit
	Prime uint32
}

// NewEvalCard preprocesses a card for the scoring hot path.
func NewEvalCard(c Card) EvalCard {
	return EvalCard{Rank: c.Rank, Suit: c.Suit, Prime: rankPrime[c.Rank]}
}

// EvalCards preprocesses a slice of cards.
func EvalCards(cards []Card) []EvalCard {
	out := make([]EvalCard, len(cards))
	for i, c := range cards {
		out[i] = NewEvalCard(c)
	}
	return out
}

// straightHigh maps the prime product of five distinct consecutive ranks
// to the straight's high rank. A-2-3-4-5 maps to 5 (the wheel plays
// five high). Products of non-straight rank sets are absent.
var straightHigh = func() map[uint32]Rank {
	m := make(map[uint32]Rank, 10)
	// Wheel: A,2,3,4,5.
	m[rankPrime[Ace]*rankPrime[Two]*rankPrime[Three]*rankPrime[Four]*rankPrime[Five]] = Five
	for high := Six; high <= Ace; high++ {
		p := uint32(1)
		for r := high - 4; r <= high; r++ {
			p *= rankPrime[r]
		}
		m[p] = high
	}
	return m
}()

// combinations7c5 enumerates all 21 ways to choose five cards from seven,
// as index tuples into a seven-card array.
var combinations7c5 = func() [21][5]int {
	var combos [21][5]int
	n := 0
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						combos[n] = [5]int{a, b, c, d, e}
						n++
					}
				}
			}
		}
	}
	return combos
}()

// sortRanks5 sorts five ranks in descending order using a fixed
// 9-comparison sorting network, avoiding sort.Slice allocation on the
// scoring hot path.
func sortRanks5(r *[5]Rank) {
	swapIf := func(i, j int) {
		if r[i] < r[j] {
			r[i], r[j] = r[j], r[i]
		}
	}
	swapIf(0, 1)
	swapIf(3, 4)
	swapIf(2, 4)
	swapIf(2, 3)
	swapIf(0, 3)
	swapIf(0, 2)
	swapIf(1, 4)
	swapIf(1, 3)
	swapIf(1, 2)
}

func validateCards(cards []Card, want int) error {
	if len(cards) != want {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidInput, want, len(cards))
	}
	var seen CardSet
	for _, c := range cards {
		if c.Rank < Two || c.Rank > Ace || c.Suit < Spades || c.Suit > Clubs {
			return fmt.Errorf("%w: malformed card %+v", ErrInvalidInput, c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen.Add(c)
	}
	return nil
}

// Evaluate5 scores exactly five cards. It validates the input and returns
// ErrInvalidInput (wrapped) for a wrong count, a malformed card, or
// duplicates.
func Evaluate5(cards []Card) (HandScore, error) {
	if err := validateCards(cards, 5); err != nil {
		return 0, err
	}
	var hand [5]EvalCard
	for i, c := range cards {
		hand[i] = NewEvalCard(c)
	}
	return eval5(&hand), nil
}

// BestHand7 scores the best five-card hand among exactly seven cards.
func BestHand7(cards []Card) (HandScore, error) {
	if err := validateCards(cards, 7); err != nil {
		return 0, err
	}
	var hand [7]EvalCard
	for i, c := range cards {
		hand[i] = NewEvalCard(c)
	}
	return BestSeven(&hand), nil
}

// BestSeven is the unchecked seven-card hot path used by the equity and
// distribution loops. Callers guarantee seven valid, distinct cards.
func BestSeven(cards *[7]EvalCard) HandScore {
	best := HandScore(0)
	var five [5]EvalCard
	for _, combo := range combinations7c5 {
		five[0] = cards[combo[0]]
		five[1] = cards[combo[1]]
		five[2] = cards[combo[2]]
		five[3] = cards[combo[3]]
		five[4] = cards[combo[4]]
		if score := eval5(&five); score > best {
			best = score
		}
	}
	return best
}

// eval5 scores five valid, distinct cards. Flush and straight detection
// are order independent; ranks are sorted once for the tiebreak encodings.
func eval5(cards *[5]EvalCard) HandScore {
	flush := cards[0].Suit == cards[1].Suit &&
		cards[0].Suit == cards[2].Suit &&
		cards[0].Suit == cards[3].Suit &&
		cards[0].Suit == cards[4].Suit

	product := cards[0].Prime * cards[1].Prime * cards[2].Prime * cards[3].Prime * cards[4].Prime
	straightRank, straight := straightHigh[product]

	if straight && flush {
		return HandScore(int(StraightFlush)*categoryUnit + int(straightRank))
	}

	ranks := [5]Rank{cards[0].Rank, cards[1].Rank, cards[2].Rank, cards[3].Rank, cards[4].Rank}
	sortRanks5(&ranks)

	if flush {
		return HandScore(int(Flush)*categoryUnit +
			int(ranks[0])*50625 + int(ranks[1])*3375 + int(ranks[2])*225 + int(ranks[3])*15 + int(ranks[4]))
	}
	if straight {
		return HandScore(int(Straight)*categoryUnit + int(straightRank))
	}

	// Ranks are sorted descending, so equal ranks are adjacent and each
	// multiset shape has a fixed positional pattern.
	switch {
	case ranks[0] == ranks[3]: // x x x x k
		return HandScore(int(FourOfAKind)*categoryUnit + int(ranks[0])*100 + int(ranks[4]))
	case ranks[1] == ranks[4]: // k x x x x
		return HandScore(int(FourOfAKind)*categoryUnit + int(ranks[1])*100 + int(ranks[0]))
	case ranks[0] == ranks[2] && ranks[3] == ranks[4]: // t t t p p
		return HandScore(int(FullHouse)*categoryUnit + int(ranks[0])*100 + int(ranks[3]))
	case ranks[0] == ranks[1] && ranks[2] == ranks[4]: // p p t t t
		return HandScore(int(FullHouse)*categoryUnit + int(ranks[2])*100 + int(ranks[0]))
	case ranks[0] == ranks[2]: // t t t k k
		return HandScore(int(ThreeOfAKind)*categoryUnit + int(ranks[0])*10000 + int(ranks[3])*15 + int(ranks[4]))
	case ranks[1] == ranks[3]: // k t t t k
		return HandScore(int(ThreeOfAKind)*categoryUnit + int(ranks[1])*10000 + int(ranks[0])*15 + int(ranks[4]))
	case ranks[2] == ranks[4]: // k k t t t
		return HandScore(int(ThreeOfAKind)*categoryUnit + int(ranks[2])*10000 + int(ranks[0])*15 + int(ranks[1]))
	case ranks[0] == ranks[1] && ranks[2] == ranks[3]: // p p q q k
		return HandScore(int(TwoPair)*categoryUnit + int(ranks[0])*10000 + int(ranks[2])*100 + int(ranks[4]))
	case ranks[0] == ranks[1] && ranks[3] == ranks[4]: // p p k q q
		return HandScore(int(TwoPair)*categoryUnit + int(ranks[0])*10000 + int(ranks[3])*100 + int(ranks[2]))
	case ranks[1] == ranks[2] && ranks[3] == ranks[4]: // k p p q q
		return HandScore(int(TwoPair)*categoryUnit + int(ranks[1])*10000 + int(ranks[3])*100 + int(ranks[0]))
	case ranks[0] == ranks[1]: // p p k k k
		return HandScore(int(OnePair)*categoryUnit + int(ranks[0])*10000 + int(ranks[2])*225 + int(ranks[3])*15 + int(ranks[4]))
	case ranks[1] == ranks[2]: // k p p k k
		return HandScore(int(OnePair)*categoryUnit + int(ranks[1])*10000 + int(ranks[0])*225 + int(ranks[3])*15 + int(ranks[4]))
	case ranks[2] == ranks[3]: // k k p p k
		return HandScore(int(OnePair)*categoryUnit + int(ranks[2])*10000 + int(ranks[0])*225 + int(ranks[1])*15 + int(ranks[4]))
	case ranks[3] == ranks[4]: // k k k p p
		return HandScore(int(OnePair)*categoryUnit + int(ranks[3])*10000 + int(ranks[0])*225 + int(ranks[1])*15 + int(ranks[2]))
	}

	return HandScore(int(HighCard)*categoryUnit +
		int(ranks[0])*50625 + int(ranks[1])*3375 + int(ranks[2])*225 + int(ranks[3])*15 + int(ranks[4]))
}
