package neighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/neighbors"
)

func mustMatrix(t *testing.T, pts []geom.Point) *matrix.Distance {
	t.Helper()
	m, err := matrix.NewDistance(pts)
	require.NoError(t, err)

	return m
}

func TestEffectiveK(t *testing.T) {
	assert.Equal(t, 0, neighbors.EffectiveK(20, 0))
	assert.Equal(t, 0, neighbors.EffectiveK(20, 1))
	assert.Equal(t, 1, neighbors.EffectiveK(20, 2))
	assert.Equal(t, 20, neighbors.EffectiveK(20, 100))
	assert.Equal(t, 0, neighbors.EffectiveK(0, 100))
}

func TestBuild_Square(t *testing.T) {
	pts := []geom.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	dm := mustMatrix(t, pts)

	c, err := neighbors.Build(dm, neighbors.DefaultK)
	require.NoError(t, err)
	require.Equal(t, 3, c.K())
	require.Equal(t, 4, c.Size())

	// Ties at distance 10 resolve to the lower index.
	assert.Equal(t, []int{1, 3, 2, 0}, c.Of(0))
	assert.Equal(t, []int{0, 2, 3, 1}, c.Of(1))
	assert.Equal(t, []int{1, 3, 0, 2}, c.Of(2))
	assert.Equal(t, []int{0, 2, 1, 3}, c.Of(3))
	assert.Nil(t, c.Of(4))
	assert.Nil(t, c.Of(-1))
	require.NoError(t, c.Validate(dm))
}

func TestBuild_ClampsAndTrims(t *testing.T) {
	pts := geom.UniformPoints(40, 500, 11)
	dm := mustMatrix(t, pts)

	for _, K := range []int{0, 1, 5, 39, 40, 100} {
		c, err := neighbors.Build(dm, K)
		require.NoError(t, err)
		want := neighbors.EffectiveK(K, len(pts))
		require.Equal(t, want, c.K(), "K=%d", K)
		for i := range pts {
			list := c.Of(i)
			require.Len(t, list, want+1)
			assert.Equal(t, i, list[want], "sentinel of %d", i)
		}
		require.NoError(t, c.Validate(dm), "K=%d", K)
	}
}

func TestBuild_Trivial(t *testing.T) {
	c, err := neighbors.Build(mustMatrix(t, nil), neighbors.DefaultK)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())

	c, err = neighbors.Build(mustMatrix(t, []geom.Point{{1, 1}}), neighbors.DefaultK)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, c.Of(0))

	c, err = neighbors.Build(mustMatrix(t, []geom.Point{{0, 0}, {3, 4}}), neighbors.DefaultK)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, c.Of(0))
	assert.Equal(t, []int{0, 1}, c.Of(1))
}

func TestBuild_Errors(t *testing.T) {
	_, err := neighbors.Build(nil, 3)
	assert.ErrorIs(t, err, neighbors.ErrNilMatrix)

	_, err = neighbors.Build(mustMatrix(t, nil), -1)
	assert.ErrorIs(t, err, neighbors.ErrInvalidK)

	_, err = neighbors.BuildSpatial([]geom.Point{{0, 0}}, mustMatrix(t, nil), 3)
	assert.ErrorIs(t, err, neighbors.ErrSizeMismatch)

	var nilC *neighbors.Candidates
	assert.ErrorIs(t, nilC.Validate(mustMatrix(t, nil)), neighbors.ErrSizeMismatch)
}

func TestBuildSpatial_MatchesBuild(t *testing.T) {
	cases := map[string][]geom.Point{
		"uniform":  geom.UniformPoints(300, 1000, 5),
		"circle":   geom.CirclePoints(64, 500),
		"gridTies": gridPoints(9, 10),
		"dupes":    {{1, 1}, {1, 1}, {1, 1}, {5, 5}, {5, 5}, {9, 0}},
	}
	for name, pts := range cases {
		pts := pts
		t.Run(name, func(t *testing.T) {
			dm := mustMatrix(t, pts)
			for _, K := range []int{0, 1, 4, 8, 20, len(pts)} {
				want, err := neighbors.Build(dm, K)
				require.NoError(t, err)
				got, err := neighbors.BuildSpatial(pts, dm, K)
				require.NoError(t, err)
				require.Equal(t, want.K(), got.K())
				for i := range pts {
					require.Equal(t, want.Of(i), got.Of(i), "K=%d node=%d", K, i)
				}
				require.NoError(t, got.Validate(dm))
			}
		})
	}
}

// gridPoints lays out side×side points with the given spacing; rounded
// distances tie heavily, which stresses the cut-off logic.
func gridPoints(side int, spacing float64) []geom.Point {
	out := make([]geom.Point, 0, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			out = append(out, geom.Point{float64(c) * spacing, float64(r) * spacing})
		}
	}

	return out
}
