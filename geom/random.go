package geom

import (
	"math"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0, so the zero value still
// yields a reproducible stream.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// UniformPoints returns n points drawn uniformly from the square [0,side)².
// The same (n, side, seed) always yields the same slice.
//
// Complexity: O(n).
func UniformPoints(n int, side float64, seed int64) []Point {
	if n <= 0 {
		return []Point{}
	}
	rng := rngFromSeed(seed)
	out := make([]Point, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = Point{rng.Float64() * side, rng.Float64() * side}
	}

	return out
}

// CirclePoints places n points on a circle of the given radius with a small
// deterministic radial ripple so that no two chords tie exactly.
// The optimal tour is the polygon boundary in index order.
//
// Complexity: O(n).
func CirclePoints(n int, radius float64) []Point {
	if n <= 0 {
		return []Point{}
	}
	out := make([]Point, n)

	var (
		i  int
		th float64 // angle
		r  float64 // radius with ripple
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = radius * (1 + 0.002*float64((i*5)%7))
		out[i] = Point{r * math.Cos(th), r * math.Sin(th)}
	}

	return out
}
