package core

import (
	"golang.org/x/exp/rand"
)

// Random is the only source of chance in the simulation. *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests pass scripted sequences.
type Random interface {
	Intn(n int) int
	Float64() float64
}

func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi].
func uniform(rnd Random, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}

// sign returns -1 or +1 with equal probability.
func sign(rnd Random) float64 {
	if rnd.Intn(2) == 0 {
		return -1
	}
	return 1
}
