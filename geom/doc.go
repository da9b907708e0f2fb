// Package geom holds the 2-D point model shared by the solver packages.
//
// Points are orb.Point values ([2]float64, X()/Y() accessors), so they
// interoperate directly with paulmach/orb geometry, GeoJSON export and the
// R-tree used for spatial candidate search.
//
// Provided helpers:
//   - Distance / RoundedDistance: Euclidean metric and its integer rounding.
//   - ValidatePoints: reject NaN/±Inf coordinates before any O(n²) work.
//   - UniformPoints / CirclePoints: deterministic synthetic instances.
package geom
