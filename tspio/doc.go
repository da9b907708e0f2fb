// Package tspio reads point sets and writes tours for the lvtour CLI.
//
// Input format: an integer n followed by n whitespace-separated "x y"
// coordinate pairs. Output format: n lines, each the 0-based index of the
// node at that tour position.
//
// Open transparently decompresses .gz, .zst/.zstd and .lz4 inputs, and
// WriteGeoJSON exports a tour as a closed LineString for map viewers.
package tspio
