package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnseeded returns a *rand.Rand drawing its seeds from the runtime's
// auto-seeded global source, for callers that do not need reproducibility.
func NewUnseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// ShardSeed derives the seed for one shard of a partitioned computation.
// Distinct shards of the same base seed get decorrelated streams, and the
// derivation depends only on the base seed and shard index so results are
// reproducible regardless of how shards are scheduled.
func ShardSeed(base int64, shard int) int64 {
	return int64(mix(uint64(base) + uint64(shard+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
