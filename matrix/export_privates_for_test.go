// SPDX-License-Identifier: MIT

package matrix

// NewDistanceFromData_TestOnly wraps a raw row-major buffer without any
// checks, so tests can feed ValidateSymmetric deliberately broken tables.
func NewDistanceFromData_TestOnly(n int, data []int64) *Distance {
	return &Distance{n: n, data: data}
}
