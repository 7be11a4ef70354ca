package poker

import (
	"fmt"
	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/poker-companion/internal/randutil"
)

// Defaults for Monte Carlo equity estimation. River and turn boards are
// enumerated exactly and ignore the iteration count.
const (
	DefaultPreflopIterations = 10_000
	DefaultFlopIterations    = 30_000

	// mcShards is fixed rather than derived from GOMAXPROCS so that a
	// seeded run produces identical results on any machine.
	mcShards = 32
)

// Equity is the outcome distribution of a hand against one opponent
// holding two uniformly random unseen cards.
type Equity struct {
	Win       float64
	Tie       float64
	Lose      float64
	Scenarios int
}

// Value returns conventional equity, win plus half of tie.
func (e Equity) Value() float64 { return e.Win + e.Tie/2 }

// EquityOptions tunes equity estimation. The zero value selects
// street-appropriate defaults and a nondeterministic seed.
type EquityOptions struct {
	// Iterations overrides the Monte Carlo sample count on preflop and
	// flop boards. Ignored on turn and river boards, which are exact.
	Iterations int

	// Seed makes Monte Carlo estimation reproducible. Two runs with the
	// same inputs, iterations and seed return identical results.
	Seed *int64
}

// EquityVsRandom computes win/tie/lose equity for a two-card hand against
// a single opponent dealt uniformly from the unseen cards. The board must
// hold 0, 3, 4 or 5 cards. River and turn boards are enumerated exactly;
// preflop and flop boards are sampled.
func EquityVsRandom(hero []Card, board []Card, opts EquityOptions) (Equity, error) {
	if len(hero) != 2 {
		return Equity{}, fmt.Errorf("%w: expected 2 hole cards, got %d", ErrInvalidInput, len(hero))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return Equity{}, fmt.Errorf("%w: board must hold 0, 3, 4 or 5 cards, got %d", ErrInvalidInput, len(board))
	}
	all := make([]Card, 0, 7)
	all = append(all, hero...)
	all = append(all, board...)
	if err := validateCards(all, len(all)); err != nil {
		return Equity{}, err
	}

	unseen := EvalCards(Remaining(NewCardSet(all)))

	switch len(board) {
	case 5:
		return equityRiver(hero, board, unseen), nil
	case 4:
		return equityTurn(hero, board, unseen), nil
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		if len(board) == 0 {
			iterations = DefaultPreflopIterations
		} else {
			iterations = DefaultFlopIterations
		}
	}
	seed := rand.Int64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	return equityMonteCarlo(hero, board, unseen, iterations, seed), nil
}

func fillSeven(dst *[7]EvalCard, hero, board []Card) {
	for i, c := range hero {
		dst[i] = NewEvalCard(c)
	}
	for i, c := range board {
		dst[2+i] = NewEvalCard(c)
	}
}

// equityRiver enumerates all C(45,2) = 990 opponent holdings.
func equityRiver(hero, board []Card, unseen []EvalCard) Equity {
	var hand, opp [7]EvalCard
	fillSeven(&hand, hero, board)
	fillSeven(&opp, nil, board)
	heroScore := BestSeven(&hand)

	var wins, ties, total int
	for i := 0; i < len(unseen); i++ {
		for j := i + 1; j < len(unseen); j++ {
			opp[0], opp[1] = unseen[i], unseen[j]
			villain := BestSeven(&opp)
			switch {
			case heroScore > villain:
				wins++
			case heroScore == villain:
				ties++
			}
			total++
		}
	}
	return tally(wins, ties, total)
}

// equityTurn enumerates every river card and every opponent holding,
// 46 * C(45,2) = 45,540 showdowns.
func equityTurn(hero, board []Card, unseen []EvalCard) Equity {
	var hand, opp [7]EvalCard
	fillSeven(&hand, hero, board)
	fillSeven(&opp, nil, board)

	var wins, ties, total int
	for r := 0; r < len(unseen); r++ {
		hand[6] = unseen[r]
		opp[6] = unseen[r]
		heroScore := BestSeven(&hand)
		for i := 0; i < len(unseen); i++ {
			if i == r {
				continue
			}
			for j := i + 1; j < len(unseen); j++ {
				if j == r {
					continue
				}
				opp[0], opp[1] = unseen[i], unseen[j]
				villain := BestSeven(&opp)
				switch {
				case heroScore > villain:
					wins++
				case heroScore == villain:
					ties++
				}
				total++
			}
		}
	}
	return tally(wins, ties, total)
}

// equityMonteCarlo samples random opponent holdings and board completions.
// Work is split across a fixed number of shards, each seeded from the base
// seed, so the combined tally is independent of scheduling and CPU count.
func equityMonteCarlo(hero, board []Card, unseen []EvalCard, iterations int, seed int64) Equity {
	shards := mcShards
	if iterations < shards {
		shards = iterations
	}

	results := make([][2]int, shards)
	var g errgroup.Group
	for s := 0; s < shards; s++ {
		n := iterations / shards
		if s < iterations%shards {
			n++
		}
		shardSeed := randutil.ShardSeed(seed, s)
		g.Go(func() error {
			rng := randutil.New(shardSeed)
			results[s] = mcShard(hero, board, unseen, n, rng)
			return nil
		})
	}
	// Shard workers never fail; Wait only synchronizes.
	_ = g.Wait()

	var wins, ties int
	for _, r := range results {
		wins += r[0]
		ties += r[1]
	}
	return tally(wins, ties, iterations)
}

func mcShard(hero, board []Card, unseen []EvalCard, n int, rng *rand.Rand) [2]int {
	var hand, opp [7]EvalCard
	fillSeven(&hand, hero, board)
	fillSeven(&opp, nil, board)
	need := 5 - len(board)

	pool := make([]EvalCard, len(unseen))
	copy(pool, unseen)

	var wins, ties int
	for it := 0; it < n; it++ {
		// Partial Fisher-Yates: draw two opponent cards plus the board
		// completion without replacement.
		for k := 0; k < 2+need; k++ {
			j := k + rng.IntN(len(pool)-k)
			pool[k], pool[j] = pool[j], pool[k]
		}
		opp[0], opp[1] = pool[0], pool[1]
		for k := 0; k < need; k++ {
			hand[2+len(board)+k] = pool[2+k]
			opp[2+len(board)+k] = pool[2+k]
		}
		heroScore := BestSeven(&hand)
		villain := BestSeven(&opp)
		switch {
		case heroScore > villain:
			wins++
		case heroScore == villain:
			ties++
		}
	}
	return [2]int{wins, ties}
}

func tally(wins, ties, total int) Equity {
	return Equity{
		Win:       float64(wins) / float64(total),
		Tie:       float64(ties) / float64(total),
		Lose:      float64(total-wins-ties) / float64(total),
		Scenarios: total,
	}
}
