// Package tsp provides a time-bounded heuristic solver for the 2-D Euclidean
// Travelling Salesman Problem.
//
// Pipeline (see Solve):
//
//	points → matrix.Distance → neighbors.Candidates
//	points + matrix → NearestNeighbor → initial tour
//	tour + matrix + candidates → TwoOpt (repeated) → refined tour
//
// Building blocks are exported on their own:
//
//   - NearestNeighbor: greedy construction from node 0, lowest index wins
//     ties. O(n²).
//   - TwoOpt: first-improvement 2-opt restricted to candidate lists, run to
//     a local optimum. O(sweeps·n·k) checks plus O(n) per accepted reversal.
//   - TourLength: cyclic sum of edge distances. O(n).
//
// Tours are open permutations of [0,n): the successor of the last entry is
// the first. Everything is deterministic; no randomness is used.
//
// Use this package when an exact answer is out of reach and a good tour is
// needed within a wall-clock budget (default 1.9s).
package tsp
