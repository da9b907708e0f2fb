package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: non-finite coordinate")

// Point is a location in the plane. It is immutable once read.
type Point = orb.Point

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return planar.Distance(a, b)
}

// RoundedDistance returns Distance(a,b) rounded to the nearest integer,
// halves away from zero.
//
// Complexity: O(1).
func RoundedDistance(a, b Point) int64 {
	return int64(math.Round(planar.Distance(a, b)))
}

// ValidatePoints checks that every coordinate is finite.
// The returned error wraps ErrNonFinite and names the first offending index.
//
// Complexity: O(n).
func ValidatePoints(pts []Point) error {
	var (
		i int
		p Point
	)
	for i, p = range pts {
		if !finite(p[0]) || !finite(p[1]) {
			return fmt.Errorf("point %d (%g, %g): %w", i, p[0], p[1], ErrNonFinite)
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
