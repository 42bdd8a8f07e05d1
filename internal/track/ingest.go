package track

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedDocument reports input that could not be parsed at all.
	ErrMalformedDocument = errors.New("malformed track document")
	// ErrNoTrackData reports a parseable document with no usable points.
	ErrNoTrackData = errors.New("no track data found")
)

// Decode normalizes the supported JSON shapes into a point sequence.
// Shapes are tried in order and the first match wins:
//
//  1. {"data": {"trackData": [...]}} where trackData is either a list of
//     point objects or a list of such lists (only the first is used)
//  2. a bare top-level array of point objects
//  3. {"coordinates": [[lon, lat, ele?], ...]}
//
// Point objects read lat, lon and ele; missing fields come out as zero.
func Decode(doc []byte) ([]Point, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrMalformedDocument
	}
	root := gjson.ParseBytes(doc)

	if trackData := root.Get("data.trackData"); trackData.IsArray() {
		list := trackData.Array()
		if len(list) > 0 && list[0].IsArray() {
			list = list[0].Array()
		}
		return pointsFromObjects(list)
	}

	if root.IsArray() {
		return pointsFromObjects(root.Array())
	}

	if coords := root.Get("coordinates"); coords.IsArray() {
		return pointsFromTriples(coords.Array())
	}

	return nil, ErrNoTrackData
}

func pointsFromObjects(list []gjson.Result) ([]Point, error) {
	if len(list) == 0 {
		return nil, ErrNoTrackData
	}
	points := make([]Point, 0, len(list))
	for _, item := range list {
		points = append(points, Point{
			Lat:       item.Get("lat").Float(),
			Lon:       item.Get("lon").Float(),
			Elevation: item.Get("ele").Float(),
		})
	}
	return points, nil
}

func pointsFromTriples(list []gjson.Result) ([]Point, error) {
	if len(list) == 0 {
		return nil, ErrNoTrackData
	}
	points := make([]Point, 0, len(list))
	for _, item := range list {
		triple := item.Array()
		var p Point
		if len(triple) > 0 {
			p.Lon = triple[0].Float()
		}
		if len(triple) > 1 {
			p.Lat = triple[1].Float()
		}
		if len(triple) > 2 {
			p.Elevation = triple[2].Float()
		}
		points = append(points, p)
	}
	return points, nil
}
