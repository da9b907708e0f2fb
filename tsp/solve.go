// Package tsp - time-bounded orchestrator.
//
// Solve wires the pipeline together:
//
//	Init → Construct → { CheckDeadline → LocalSearch → Compare } → Done
//
// Each round snapshots the tour, runs TwoOpt to a local optimum and keeps
// the result only if it is strictly shorter; otherwise the snapshot is
// restored and the loop ends. The deadline and the context are consulted
// only between rounds: a round in flight always completes, so wall-clock
// usage may exceed the budget by one round.
package tsp

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/neighbors"
)

// Solve computes a short closed tour through pts within opts.TimeBudget.
//
// Contracts:
//   - n==0 → empty tour; n==1 → [0] with length 0 (no matrix is built).
//   - The returned tour is always a permutation of [0,n).
//   - A done ctx stops the loop like the deadline does: the best tour so far
//     is returned with Stop == StopCancelled and a nil error.
//
// Errors: ErrInvalidK, ErrNegativeBudget, ErrNegativeGranularity,
// geom.ErrNonFinite (wrapped with the point index).
//
// Complexity: O(n² log n) setup (O(n²) with opts.Spatial) plus the rounds.
func Solve(ctx context.Context, pts []geom.Point, opts Options) (Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := geom.ValidatePoints(pts); err != nil {
		return Result{}, err
	}
	log := loggerOf(opts)
	n := len(pts)

	// Trivial instances skip every stage.
	if n <= 1 {
		tour := make([]int, n)

		return Result{Tour: tour, Stop: StopTrivial, Elapsed: time.Since(start)}, nil
	}

	// Stage 1 - distances and candidates.
	dm, err := matrix.NewDistance(pts)
	if err != nil {
		return Result{}, err
	}
	var cands *neighbors.Candidates
	if opts.Spatial {
		cands, err = neighbors.BuildSpatial(pts, dm, opts.CandidateK)
	} else {
		cands, err = neighbors.Build(dm, opts.CandidateK)
	}
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - greedy construction.
	tour, err := NearestNeighbor(dm)
	if err != nil {
		return Result{}, err
	}
	initial, err := TourLength(dm, tour)
	if err != nil {
		return Result{}, err
	}
	log.Debug("tour constructed",
		slog.Int("n", n),
		slog.Int("k", cands.K()),
		slog.Int64("length", initial),
		slog.Duration("elapsed", time.Since(start)),
	)

	// Stage 3 - improvement rounds.
	res := Result{InitialLength: initial, Length: initial}
	snapshot := make([]int, n)

	var (
		stats         TwoOptStats
		before, after int64
		elapsed       time.Duration
	)
	for {
		elapsed = time.Since(start)
		if opts.DeadlineGranularity > 0 {
			elapsed = elapsed.Truncate(opts.DeadlineGranularity)
		}
		if elapsed >= opts.TimeBudget {
			res.Stop = StopDeadline
			break
		}
		if ctx.Err() != nil {
			res.Stop = StopCancelled
			break
		}

		copy(snapshot, tour)
		if stats, err = TwoOpt(dm, cands, tour); err != nil {
			return Result{}, err
		}
		res.Rounds++
		res.Sweeps += stats.Sweeps
		res.Moves += stats.Moves

		if after, err = TourLength(dm, tour); err != nil {
			return Result{}, err
		}
		if before, err = TourLength(dm, snapshot); err != nil {
			return Result{}, err
		}
		log.Debug("round finished",
			slog.Int("round", res.Rounds),
			slog.Int("sweeps", stats.Sweeps),
			slog.Int("moves", stats.Moves),
			slog.Int64("before", before),
			slog.Int64("after", after),
		)

		if after >= before {
			copy(tour, snapshot)
			res.Length = before
			res.Stop = StopConverged
			break
		}
		res.Length = after
	}

	res.Tour = tour
	res.Elapsed = time.Since(start)
	log.Info("solve finished",
		slog.Int("n", n),
		slog.Int64("initial", res.InitialLength),
		slog.Int64("length", res.Length),
		slog.Int("rounds", res.Rounds),
		slog.Int("moves", res.Moves),
		slog.String("stop", res.Stop.String()),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// loggerOf returns opts.Logger or a logger that drops every record.
func loggerOf(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}

	return slog.New(slog.DiscardHandler)
}
