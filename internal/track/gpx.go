package track

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// DecodeGPX extracts the point sequence from a GPX document. Track points
// win; route points are only consulted when the file carries no tracks.
func DecodeGPX(doc []byte) ([]Point, error) {
	parsed, err := gpx.ParseBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var points []Point
	for _, trk := range parsed.Tracks {
		for _, segment := range trk.Segments {
			for _, p := range segment.Points {
				points = append(points, Point{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Elevation: p.Elevation.Value(),
				})
			}
		}
	}
	if len(points) == 0 {
		for _, route := range parsed.Routes {
			for _, p := range route.Points {
				points = append(points, Point{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Elevation: p.Elevation.Value(),
				})
			}
		}
	}

	if len(points) == 0 {
		return nil, ErrNoTrackData
	}
	return points, nil
}
