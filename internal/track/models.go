package track

import (
	"time"

	"github.com/kindermann-r/hiking-navigator/internal/shared/geo"
)

// Point is one trail coordinate. Slice order is path order.
type Point struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"ele"`
}

// Track is the ordered point sequence a session navigates against. Points
// are never mutated after loading; a new upload replaces the whole track.
type Track struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Points   []Point   `json:"points"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Stats are derived from the points and recomputed on every load.
// CumulativeKm carries one entry per point, starting at zero.
type Stats struct {
	TotalDistanceM float64   `json:"total_distance_m"`
	ElevationGainM float64   `json:"elevation_gain_m"`
	ElevationLossM float64   `json:"elevation_loss_m"`
	MinElevationM  float64   `json:"min_elevation_m"`
	MaxElevationM  float64   `json:"max_elevation_m"`
	CumulativeKm   []float64 `json:"cumulative_km"`
}

// Polyline strips the track down to bare coordinates for distance math.
func (t *Track) Polyline() []geo.Point {
	line := make([]geo.Point, len(t.Points))
	for i, p := range t.Points {
		line[i] = geo.Point{Lat: p.Lat, Lon: p.Lon}
	}
	return line
}
