// Package neighbors builds per-node candidate lists for restricted local search.
//
// For each node i the list holds the k = min(K, n-1) nearest other nodes,
// ascending by (rounded distance, node index), followed by i itself as a
// trailing sentinel. 2-opt only considers moves that connect a node to one
// of its candidates, which trades completeness for an O(n·k) sweep.
//
// Two builders produce identical lists:
//   - Build:        full per-row sort over the distance matrix, O(n² log n).
//   - BuildSpatial: R-tree nearest-neighbour scan that stops as soon as the
//     k-th rounded distance is exceeded; much cheaper when k ≪ n.
package neighbors
