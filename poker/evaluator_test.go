package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func eval5T(t *testing.T, s string) HandScore {
	t.Helper()
	score, err := Evaluate5(MustParseCards(s))
	require.NoError(t, err)
	return score
}

func TestEvaluate5ScoreConstants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  HandScore
	}{
		{"royal flush", "Ah Kh Qh Jh Th", 9_000_014},
		{"nine-high straight flush", "9c 8c 7c 6c 5c", 9_000_009},
		{"wheel straight flush", "Ad 2d 3d 4d 5d", 9_000_005},
		{"wheel straight", "Ad 2c 3d 4h 5s", 5_000_005},
		{"six-high straight", "2c 3d 4h 5s 6d", 5_000_006},
		{"ace-high straight", "Ah Kd Qc Js Td", 5_000_014},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := eval5T(t, tc.cards); got != tc.want {
				t.Errorf("Evaluate5(%s) = %d, want %d", tc.cards, got, tc.want)
			}
		})
	}
}

func TestEvaluate5Categories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  HandCategory
	}{
		{"straight flush", "9s 8s 7s 6s 5s", StraightFlush},
		{"four of a kind", "9s 9h 9d 9c 2s", FourOfAKind},
		{"full house", "9s 9h 9d 2c 2s", FullHouse},
		{"flush", "As Ts 7s 4s 2s", Flush},
		{"straight", "9s 8h 7d 6c 5s", Straight},
		{"three of a kind", "9s 9h 9d Kc 2s", ThreeOfAKind},
		{"two pair", "9s 9h 5d 5c Ks", TwoPair},
		{"one pair", "9s 9h Ad 5c 2s", OnePair},
		{"high card", "As Jh 9d 5c 2s", HighCard},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score := eval5T(t, tc.cards)
			if got := score.Category(); got != tc.want {
				t.Errorf("Evaluate5(%s).Category() = %s, want %s", tc.cards, got, tc.want)
			}
		})
	}
}

func TestEvaluate5Ordering(t *testing.T) {
	t.Parallel()
	// Each hand must beat the next.
	ladder := []string{
		"Ah Kh Qh Jh Th", // royal flush
		"9c 8c 7c 6c 5c", // straight flush
		"Ad 2d 3d 4d 5d", // wheel straight flush
		"As Ah Ad Ac Ks", // quad aces
		"2s 2h 2d 2c 3s", // quad deuces
		"As Ah Ad Ks Kh", // aces full
		"2s 2h 2d As Ah", // deuces full of aces
		"As Ks 9s 5s 2s", // ace-high flush
		"Kh Qh 9h 5h 2h", // king-high flush
		"Ah Kd Qc Js Td", // broadway straight
		"6c 5d 4h 3s 2d", // six-high straight
		"Ad 2c 3d 4h 5s", // wheel
		"As Ah Ad Kc Qs", // trip aces
		"As Ah Kd Kc Qs", // aces up
		"As Ah Kd Qc Js", // pair of aces
		"2s 2h 5d 4c 3h", // pair of deuces, 5-4-3 kickers
		"As Kh Qd Jc 9s", // ace high
		"7s 5h 4d 3c 2h", // seven high
	}
	scores := make([]HandScore, len(ladder))
	for i, s := range ladder {
		scores[i] = eval5T(t, s)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1] <= scores[i] {
			t.Errorf("%s (%d) should beat %s (%d)", ladder[i-1], scores[i-1], ladder[i], scores[i])
		}
	}
}

func TestEvaluate5KickersBreakTies(t *testing.T) {
	t.Parallel()
	// Same category, different kickers.
	require.Greater(t, eval5T(t, "As Ah Kd Qc Js"), eval5T(t, "As Ah Kd Qc Ts"))
	require.Greater(t, eval5T(t, "9s 9h 9d 9c As"), eval5T(t, "9s 9h 9d 9c Ks"))
	require.Greater(t, eval5T(t, "As Ks Qs Js 9s"), eval5T(t, "As Ks Qs Ts 9s"))
	require.Greater(t, eval5T(t, "As Ah Kd Kc Qs"), eval5T(t, "As Ah Kd Kc Js"))
}

func TestEvaluate5SuitInvariance(t *testing.T) {
	t.Parallel()
	// Suits never break ties between equal-rank hands.
	a := eval5T(t, "As Kh Qd Jc 9s")
	b := eval5T(t, "Ac Kd Qh Js 9d")
	require.Equal(t, a, b)
}

func TestEvaluate5Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
	}{
		{"too few", "As Kh Qd Jc"},
		{"too many", "As Kh Qd Jc 9s 8s"},
		{"duplicate", "As Kh Qd Jc As"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate5(MustParseCards(tc.cards))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Evaluate5(%s) error = %v, want ErrInvalidInput", tc.cards, err)
			}
		})
	}

	t.Run("malformed card", func(t *testing.T) {
		t.Parallel()
		cards := MustParseCards("As Kh Qd Jc")
		cards = append(cards, Card{Rank: 1, Suit: Spades})
		_, err := Evaluate5(cards)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestBestHand7(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  HandCategory
	}{
		{"flush hidden in seven", "Ah Kh 2h 5h 9h Qc 2d", Flush},
		{"board straight", "2c 2d 5h 6s 7d 8c 9h", Straight},
		{"full house over two pair", "As Ah Kd Kc Kh 2s 3d", FullHouse},
		{"wheel using hole ace", "Ad Kc 2h 3s 4d 5c 9h", Straight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score, err := BestHand7(MustParseCards(tc.cards))
			require.NoError(t, err)
			require.Equal(t, tc.want, score.Category())
		})
	}

	t.Run("wrong count", func(t *testing.T) {
		t.Parallel()
		_, err := BestHand7(MustParseCards("As Kh Qd"))
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestHandCategoryString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Straight Flush", StraightFlush.String())
	require.Equal(t, "High Card", HighCard.String())
	require.Equal(t, "Two Pair", TwoPair.String())
}
