package tspio

import "errors"

var (
	// ErrBadHeader is returned when the leading point count is missing,
	// not an integer, or negative.
	ErrBadHeader = errors.New("tspio: bad point count")

	// ErrTruncated is returned when fewer than n coordinate pairs follow the header.
	ErrTruncated = errors.New("tspio: truncated input")

	// ErrBadCoordinate is returned when a coordinate is not a finite float.
	ErrBadCoordinate = errors.New("tspio: bad coordinate")

	// ErrBadTour is returned when a tour references a point that does not exist.
	ErrBadTour = errors.New("tspio: tour index out of range")
)
