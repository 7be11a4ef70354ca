package poker

import (
	"testing"

	"github.com/lox/poker-companion/internal/randutil"
)

func BenchmarkEvaluate5(b *testing.B) {
	cards := MustParseCards("As Kh Qd Jc 9s")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Evaluate5(cards)
	}
}

func BenchmarkBestSeven(b *testing.B) {
	var hand [7]EvalCard
	for i, c := range MustParseCards("As Kh Qd Jc 9s 5h 2d") {
		hand[i] = NewEvalCard(c)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BestSeven(&hand)
	}
}

func BenchmarkEquityRiver(b *testing.B) {
	hero := MustParseCards("Ah Kh")
	board := MustParseCards("Qh Jh Th 2c 2d")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EquityVsRandom(hero, board, EquityOptions{})
	}
}

func BenchmarkEquityFlopSampled(b *testing.B) {
	hero := MustParseCards("Qs Jh")
	board := MustParseCards("Ts 9h 2c")
	seed := int64(1)
	opts := EquityOptions{Iterations: 10_000, Seed: &seed}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EquityVsRandom(hero, board, opts)
	}
}

func BenchmarkDeckShuffle(b *testing.B) {
	deck := NewDeck(randutil.New(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deck.Shuffle()
	}
}
