// Package lvtour computes short closed tours through 2-D point sets under a
// wall-clock time budget: "good enough, fast enough" Euclidean TSP.
//
// The work is split across small subpackages:
//
//	geom/      Point (orb.Point), rounded Euclidean distance, seeded point generators
//	matrix/    Distance: dense symmetric matrix of rounded integer distances
//	neighbors/ per-node candidate lists, sort-based or R-tree backed
//	tsp/       tour utilities, nearest-neighbour construction, candidate 2-opt, Solve
//	tspio/     point reader (plain, gzip, zstd, lz4), tour writer, GeoJSON export
//
// The lvtour command (cmd/lvtour) wires them together with YAML config,
// slog logging and Prometheus textfile metrics.
//
// Quick start:
//
//	pts, _ := tspio.ReadFile("points.txt")
//	res, err := tsp.Solve(ctx, pts, tsp.DefaultOptions())
//	if err != nil { ... }
//	_ = tspio.WriteTour(os.Stdout, res.Tour)
//
// Every solve is single-threaded and deterministic for a given input and
// options, except for where the deadline happens to fall.
package lvtour
