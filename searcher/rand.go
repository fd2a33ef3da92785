package searcher

import (
	"golang.org/x/exp/rand"

	"lukechampine.com/frand"
)

// Rand supplies the randomness for expansion and rollouts. frand backs the
// default; a fixed-seed source makes a whole search reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func defaultRand() Rand {
	return frand.New()
}

func seededRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}
