package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tsp"
)

func TestTourLength_Square(t *testing.T) {
	dm, _ := setup(t, squarePts(), kDef)
	assert.Equal(t, int64(40), mustLength(t, dm, []int{0, 1, 2, 3}))
	// Crossing tour uses both diagonals.
	assert.Equal(t, int64(48), mustLength(t, dm, []int{0, 2, 1, 3}))
}

func TestTourLength_RotationAndReversalInvariant(t *testing.T) {
	pts := geom.UniformPoints(30, sideLen, seedDet)
	dm, _ := setup(t, pts, kDef)
	tour := []int{5, 2, 9, 0, 29, 1, 3, 4, 6, 7, 8, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28}
	require.NoError(t, tsp.ValidatePermutation(tour, 30))

	base := mustLength(t, dm, tour)
	for s := 0; s < len(tour); s++ {
		rot, err := tsp.RotateToStart(tour, tour[s])
		require.NoError(t, err)
		assert.Equal(t, base, mustLength(t, dm, rot))
		assert.Equal(t, base, mustLength(t, dm, tsp.Reversed(rot)))
	}
}

func TestTourLength_Edges(t *testing.T) {
	dm, _ := setup(t, []geom.Point{{0, 0}, {3, 4}}, kDef)
	assert.Equal(t, int64(10), mustLength(t, dm, []int{0, 1}))
	assert.Equal(t, int64(0), mustLength(t, dm, []int{1}))
	assert.Equal(t, int64(0), mustLength(t, dm, nil))

	_, err := tsp.TourLength(dm, []int{0, 2})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourLength(nil, []int{0})
	assert.ErrorIs(t, err, tsp.ErrNilInput)
}

func TestNearestNeighbor_SquareTieBreak(t *testing.T) {
	dm, _ := setup(t, squarePts(), kDef)
	tour, err := tsp.NearestNeighbor(dm)
	require.NoError(t, err)
	// d(0,1)=d(0,3)=10: the lower index wins.
	assert.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighbor_PicksClosest(t *testing.T) {
	pts := []geom.Point{{0, 0}, {100, 0}, {1, 0}, {50, 0}, {2, 0}}
	dm, _ := setup(t, pts, kDef)
	tour, err := tsp.NearestNeighbor(dm)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 3, 1}, tour)
}

func TestNearestNeighbor_Trivial(t *testing.T) {
	for n := 0; n <= 2; n++ {
		dm, err := matrix.NewDistance(geom.UniformPoints(n, 10, seedDet))
		require.NoError(t, err)
		tour, err := tsp.NearestNeighbor(dm)
		require.NoError(t, err)
		assert.Equal(t, identity(n), tour)
	}
	_, err := tsp.NearestNeighbor(nil)
	assert.ErrorIs(t, err, tsp.ErrNilInput)
}

func TestNearestNeighbor_Permutation(t *testing.T) {
	pts := geom.UniformPoints(200, sideLen, seedDet)
	dm, _ := setup(t, pts, kDef)
	tour, err := tsp.NearestNeighbor(dm)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePermutation(tour, len(pts)))
	assert.Equal(t, 0, tour[0])
}
