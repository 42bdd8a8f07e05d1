package track

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	kml "github.com/twpayne/go-kml/v3"
)

// GeoJSON renders the track as a single LineString feature for map
// renderers. orb geometries are two dimensional, so elevations ride
// along as a property in point order.
func GeoJSON(t *Track, stats Stats) ([]byte, error) {
	line := make(orb.LineString, len(t.Points))
	elevations := make([]float64, len(t.Points))
	for i, p := range t.Points {
		line[i] = orb.Point{p.Lon, p.Lat}
		elevations[i] = p.Elevation
	}

	feature := geojson.NewFeature(line)
	feature.Properties["id"] = t.ID
	feature.Properties["name"] = t.Name
	feature.Properties["point_count"] = len(t.Points)
	feature.Properties["total_distance_m"] = stats.TotalDistanceM
	feature.Properties["elevation_gain_m"] = stats.ElevationGainM
	feature.Properties["elevation_loss_m"] = stats.ElevationLossM
	feature.Properties["elevations_m"] = elevations
	feature.Properties["cumulative_km"] = stats.CumulativeKm

	return feature.MarshalJSON()
}

// WriteKML writes the track as a KML document with one path placemark,
// suitable for Google Earth and most offline map apps.
func WriteKML(w io.Writer, t *Track, stats Stats) error {
	coords := make([]kml.Coordinate, len(t.Points))
	for i, p := range t.Points {
		coords[i] = kml.Coordinate{Lon: p.Lon, Lat: p.Lat, Alt: p.Elevation}
	}

	name := t.Name
	if name == "" {
		name = t.ID
	}
	description := fmt.Sprintf("%.1f km, +%.0f m / -%.0f m",
		stats.TotalDistanceM/1000, stats.ElevationGainM, stats.ElevationLossM)

	doc := kml.KML(
		kml.Document(
			kml.Name(name),
			kml.Placemark(
				kml.Name(name),
				kml.Description(description),
				kml.LineString(
					kml.Tessellate(true),
					kml.Coordinates(coords...),
				),
			),
		),
	)
	return doc.WriteIndent(w, "", "  ")
}
