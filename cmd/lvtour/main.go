// Command lvtour reads a 2-D point set and prints a short closed tour
// through it, one node index per line.
//
// Usage:
//
//	lvtour [flags] < points.txt
//	lvtour -in points.txt.zst -budget 5s -geojson tour.json
//	lvtour -gen 1000 -seed 7 > points.txt
//
// Input: n followed by n "x y" pairs. Flags override values from -config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/tspio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the raw command line.
type flags struct {
	in, out     string
	configPath  string
	geojsonPath string
	metricsPath string
	gen         int
	seed        int64
	side        float64

	k           int
	budget      time.Duration
	granularity time.Duration
	spatial     bool
	logLevel    string
	logFormat   string
}

func parseFlags(args []string, stderr io.Writer) (flags, map[string]bool, error) {
	var f flags
	def := DefaultConfig()

	fs := flag.NewFlagSet("lvtour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "-", "input file (- for stdin; .gz/.zst/.lz4 are decompressed)")
	fs.StringVar(&f.out, "out", "-", "tour output file (- for stdout)")
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.geojsonPath, "geojson", "", "also write the tour as GeoJSON to this file")
	fs.StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus textfile metrics to this file")
	fs.IntVar(&f.gen, "gen", 0, "generate N uniform random points instead of solving")
	fs.Int64Var(&f.seed, "seed", 1, "seed for -gen")
	fs.Float64Var(&f.side, "side", 10000, "square side length for -gen")
	fs.IntVar(&f.k, "k", def.CandidateK, "candidate list size")
	fs.DurationVar(&f.budget, "budget", def.TimeBudget, "wall-clock time budget")
	fs.DurationVar(&f.granularity, "granularity", def.DeadlineGranularity, "truncate elapsed time to this unit before the deadline check")
	fs.BoolVar(&f.spatial, "spatial", def.Spatial, "build candidate lists with an R-tree")
	fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "debug | info | warn | error")
	fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "text | json")

	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, set, nil
}

// resolveConfig loads -config (if any) and applies explicitly set flags on top.
func resolveConfig(f flags, set map[string]bool) (Config, error) {
	cfg := DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = ReadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}
	if set["k"] {
		cfg.CandidateK = f.k
	}
	if set["budget"] {
		cfg.TimeBudget = f.budget
	}
	if set["granularity"] {
		cfg.DeadlineGranularity = f.granularity
	}
	if set["spatial"] {
		cfg.Spatial = f.spatial
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = f.logFormat
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}
	cfg, err := resolveConfig(f, set)
	if err != nil {
		fmt.Fprintln(stderr, "lvtour:", err)
		return 2
	}
	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, "lvtour:", err)
		return 2
	}

	if err = execute(ctx, f, cfg, logger, stdout); err != nil {
		logger.Error("lvtour failed", slog.Any("err", err))
		return 1
	}

	return 0
}

func execute(ctx context.Context, f flags, cfg Config, logger *slog.Logger, stdout io.Writer) error {
	if f.gen > 0 {
		logger.Info("generating instance", slog.Int("n", f.gen), slog.Int64("seed", f.seed))
		pts := geom.UniformPoints(f.gen, f.side, f.seed)

		return writeOutput(f.out, stdout, func(w io.Writer) error { return tspio.WritePoints(w, pts) })
	}

	pts, err := tspio.ReadFile(f.in)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.in, err)
	}
	logger.Info("points loaded", slog.Int("n", len(pts)), slog.String("source", f.in))

	res, err := tsp.Solve(ctx, pts, cfg.Options(logger))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	err = writeOutput(f.out, stdout, func(w io.Writer) error { return tspio.WriteTour(w, res.Tour) })
	if err != nil {
		return fmt.Errorf("write tour: %w", err)
	}

	if f.geojsonPath != "" {
		err = writeOutput(f.geojsonPath, nil, func(w io.Writer) error {
			return tspio.WriteGeoJSON(w, pts, res.Tour, res.Length)
		})
		if err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
	}
	if f.metricsPath != "" {
		if err = writeMetrics(f.metricsPath, len(pts), res); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// writeOutput runs write against stdout when path is "-" or "" and stdout
// is non-nil, otherwise against a freshly created file. The file's Close
// error is returned when write itself succeeded.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if stdout != nil && (path == "" || path == "-") {
		return write(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(fh); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}
