package analysis

import (
	rand "math/rand/v2"

	"github.com/lox/poker-companion/internal/randutil"
	"github.com/lox/poker-companion/poker"
)

// DefaultDistributionIterations is the Monte Carlo sample count used for
// preflop and flop boards when Options.Iterations is not set.
const DefaultDistributionIterations = 10_000

// Options tunes HandDistribution sampling, mirroring equity estimation:
// Iterations applies only to sampled streets and Seed makes runs
// reproducible.
type Options struct {
	Iterations int
	Seed       *int64
}

// HandDistribution returns the probability of ending the hand in each
// category. River boards are a point mass, turn boards enumerate the 46
// rivers, and earlier streets are sampled.
func HandDistribution(hero, board []poker.Card, opts Options) (map[poker.HandCategory]float64, error) {
	if err := validateHeroBoard(hero, board); err != nil {
		return nil, err
	}

	all := make([]poker.Card, 0, 7)
	all = append(all, hero...)
	all = append(all, board...)
	unseen := poker.EvalCards(poker.Remaining(poker.NewCardSet(all)))

	var hand [7]poker.EvalCard
	for i, c := range all {
		hand[i] = poker.NewEvalCard(c)
	}

	counts := make(map[poker.HandCategory]int)
	total := 0

	switch len(board) {
	case 5:
		counts[poker.BestSeven(&hand).Category()]++
		total = 1
	case 4:
		for _, river := range unseen {
			hand[6] = river
			counts[poker.BestSeven(&hand).Category()]++
			total++
		}
	default:
		iterations := opts.Iterations
		if iterations <= 0 {
			iterations = DefaultDistributionIterations
		}
		seed := rand.Int64()
		if opts.Seed != nil {
			seed = *opts.Seed
		}
		rng := randutil.New(seed)
		need := 5 - len(board)

		pool := make([]poker.EvalCard, len(unseen))
		copy(pool, unseen)
		for it := 0; it < iterations; it++ {
			for k := 0; k < need; k++ {
				j := k + rng.IntN(len(pool)-k)
				pool[k], pool[j] = pool[j], pool[k]
				hand[2+len(board)+k] = pool[k]
			}
			counts[poker.BestSeven(&hand).Category()]++
		}
		total = iterations
	}

	dist := make(map[poker.HandCategory]float64, len(counts))
	for cat, n := range counts {
		dist[cat] = float64(n) / float64(total)
	}
	return dist, nil
}
