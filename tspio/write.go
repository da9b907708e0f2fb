package tspio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/lvtour/geom"
)

// WriteTour writes one node index per line, in tour order.
func WriteTour(w io.Writer, tour []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range tour {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePoints writes pts in the input format read by ReadPoints. Floats
// use the shortest representation that parses back to the same value.
func WritePoints(w io.Writer, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(len(pts)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, p := range pts {
		buf = strconv.AppendFloat(buf[:0], p.X(), 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y(), 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// TourFeatureCollection builds a GeoJSON collection holding the closed tour
// as a LineString (properties "n" and "length") followed by one Point
// feature per node (properties "node" and "order").
//
// Errors: ErrBadTour.
func TourFeatureCollection(pts []geom.Point, tour []int, length int64) (*geojson.FeatureCollection, error) {
	line := make(orb.LineString, 0, len(tour)+1)
	for _, v := range tour {
		if v < 0 || v >= len(pts) {
			return nil, fmt.Errorf("node %d of %d: %w", v, len(pts), ErrBadTour)
		}
		line = append(line, pts[v])
	}
	if len(tour) > 0 {
		line = append(line, pts[tour[0]])
	}

	fc := geojson.NewFeatureCollection()
	route := geojson.NewFeature(line)
	route.Properties["n"] = len(tour)
	route.Properties["length"] = length
	fc.Append(route)

	for order, v := range tour {
		stop := geojson.NewFeature(pts[v])
		stop.Properties["node"] = v
		stop.Properties["order"] = order
		fc.Append(stop)
	}

	return fc, nil
}

// WriteGeoJSON encodes TourFeatureCollection to w.
func WriteGeoJSON(w io.Writer, pts []geom.Point, tour []int, length int64) error {
	fc, err := TourFeatureCollection(pts, tour, length)
	if err != nil {
		return err
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)

	return err
}
