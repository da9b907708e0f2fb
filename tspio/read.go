package tspio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/lvtour/geom"
)

// maxPrealloc bounds the capacity reserved from the header count.
const maxPrealloc = 1 << 16

// ReadPoints parses "n x0 y0 x1 y1 …" from r. Tokens may be split by any
// whitespace; anything after the n-th pair is ignored.
//
// Errors: ErrBadHeader, ErrTruncated, ErrBadCoordinate (wrapped with the
// point index), or the underlying read error.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return nil, ErrBadHeader
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%q: %w", sc.Text(), ErrBadHeader)
	}

	// The header is untrusted: grow with the data instead of trusting n.
	pts := make([]geom.Point, 0, min(n, maxPrealloc))
	var (
		i, c int
		v    float64
		p    geom.Point
	)
	for i = 0; i < n; i++ {
		for c = 0; c < 2; c++ {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, err
				}

				return nil, fmt.Errorf("read %d of %d points: %w", i, n, ErrTruncated)
			}
			v, err = strconv.ParseFloat(sc.Text(), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("point %d: %q: %w", i, sc.Text(), ErrBadCoordinate)
			}
			p[c] = v
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// readCloser chains a decoder with the closers of every layer below it.
type readCloser struct {
	io.Reader
	closers []func() error
}

// Close closes every layer, top first, and returns the first error.
func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open returns a reader for path. "-" and "" mean standard input. Files
// ending in .gz, .zst/.zstd or .lz4 are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		return &readCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		closeDec := func() error { zr.Close(); return nil }

		return &readCloser{Reader: zr, closers: []func() error{closeDec, f.Close}}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil
	default:
		return &readCloser{Reader: bufio.NewReaderSize(f, 1<<16), closers: []func() error{f.Close}}, nil
	}
}

// ReadFile is Open followed by ReadPoints.
func ReadFile(path string) ([]geom.Point, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadPoints(rc)
}
