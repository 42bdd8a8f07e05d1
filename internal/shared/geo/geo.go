package geo

import (
	"errors"
	"math"
)

// earth radius in meters (mean radius)
const earthRadiusM = 6371000.0

var ErrEmptyPolyline = errors.New("empty polyline")

// Point is a bare WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceMeters returns the great-circle distance between a and b.
// Identical coordinates yield exactly zero.
func DistanceMeters(a, b Point) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h past 1 for near-antipodal points and Asin
	// returns NaN outside [-1, 1].
	return 2 * earthRadiusM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// NearestDistanceToPolyline returns the distance from p to the closest
// vertex of line. Segments between vertices are not projected onto, so
// the result can overshoot on sparse polylines.
func NearestDistanceToPolyline(p Point, line []Point) (float64, error) {
	if len(line) == 0 {
		return 0, ErrEmptyPolyline
	}

	nearest := math.Inf(1)
	for _, v := range line {
		if d := DistanceMeters(p, v); d < nearest {
			nearest = d
		}
	}
	return nearest, nil
}
