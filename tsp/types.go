package tsp

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrDimensionMismatch is returned when a tour is not a permutation of
	// [0,n) or when matrix, candidates and tour disagree on n.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNilInput is returned when a required matrix or candidate set is nil.
	ErrNilInput = errors.New("tsp: nil input")

	// ErrInvalidK is returned when Options.CandidateK < 0.
	ErrInvalidK = errors.New("tsp: candidate list size must be non-negative")

	// ErrNegativeBudget is returned when Options.TimeBudget < 0.
	ErrNegativeBudget = errors.New("tsp: negative time budget")

	// ErrNegativeGranularity is returned when Options.DeadlineGranularity < 0.
	ErrNegativeGranularity = errors.New("tsp: negative deadline granularity")
)

// Defaults used by DefaultOptions.
const (
	DefaultCandidateK = 20
	DefaultTimeBudget = 1900 * time.Millisecond
)

// Options configures Solve.
type Options struct {
	// CandidateK is the nominal candidate-list size K; the effective size is
	// min(K, n-1). Zero disables local search moves entirely.
	CandidateK int

	// TimeBudget bounds wall-clock time, measured from the start of Solve.
	// It is checked only between improvement rounds; a running round always
	// completes. Zero returns the greedy tour.
	TimeBudget time.Duration

	// DeadlineGranularity truncates the elapsed time before it is compared
	// with TimeBudget. Zero compares exactly; time.Second reproduces a
	// whole-second clock, stopping up to one second past the budget.
	DeadlineGranularity time.Duration

	// Spatial selects the R-tree candidate builder instead of the full row
	// sort. Both produce identical lists.
	Spatial bool

	// Logger receives per-round Debug records and a final Info summary.
	// Nil discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns K=20, a 1.9s budget and exact deadline comparison.
func DefaultOptions() Options {
	return Options{
		CandidateK: DefaultCandidateK,
		TimeBudget: DefaultTimeBudget,
	}
}

// StopReason tells why Solve returned.
type StopReason uint8

const (
	// StopTrivial: n ≤ 1, no machinery was run.
	StopTrivial StopReason = iota
	// StopConverged: a full round failed to shorten the tour.
	StopConverged
	// StopDeadline: the budget was reached before a round could start.
	StopDeadline
	// StopCancelled: the context was done before a round could start.
	StopCancelled
)

// String implements fmt.Stringer.
func (s StopReason) String() string {
	switch s {
	case StopTrivial:
		return "trivial"
	case StopConverged:
		return "converged"
	case StopDeadline:
		return "deadline"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TwoOptStats summarizes one TwoOpt run.
type TwoOptStats struct {
	Sweeps int   // full passes over the tour, including the final idle one
	Moves  int   // accepted 2-opt moves
	Gain   int64 // total length removed, equal to before − after
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is a permutation of [0,n) in visiting order; the tour closes
	// from the last entry back to the first.
	Tour []int

	// Length is the cyclic length of Tour.
	Length int64

	// InitialLength is the length of the greedy construction.
	InitialLength int64

	Rounds  int // completed local-search rounds
	Sweeps  int // 2-opt sweeps over all rounds
	Moves   int // accepted 2-opt moves over all rounds
	Stop    StopReason
	Elapsed time.Duration
}
