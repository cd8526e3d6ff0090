// Package randutil derives reproducible random sources for the bots.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. A zero seed
// draws one from the wall clock so unseeded bots vary between sessions.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Split returns n independent sources derived from seed, one per worker.
func Split(seed int64, n int) []*rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = New(int64(mix(uint64(seed) + uint64(i+1)*goldenRatio64)))
	}
	return out
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
