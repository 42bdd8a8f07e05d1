package track

import "github.com/kindermann-r/hiking-navigator/internal/shared/geo"

// ComputeStats derives trail statistics in one pass over the points.
// Gain sums only ascending elevation deltas and loss only descending
// ones, so a noisy descent never shrinks the climb total.
func ComputeStats(points []Point) Stats {
	stats := Stats{CumulativeKm: make([]float64, 0, len(points))}
	if len(points) == 0 {
		return stats
	}

	stats.MinElevationM = points[0].Elevation
	stats.MaxElevationM = points[0].Elevation
	stats.CumulativeKm = append(stats.CumulativeKm, 0)

	total := 0.0
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]

		total += geo.DistanceMeters(
			geo.Point{Lat: prev.Lat, Lon: prev.Lon},
			geo.Point{Lat: cur.Lat, Lon: cur.Lon},
		)
		stats.CumulativeKm = append(stats.CumulativeKm, total/1000)

		delta := cur.Elevation - prev.Elevation
		if delta > 0 {
			stats.ElevationGainM += delta
		} else if delta < 0 {
			stats.ElevationLossM -= delta
		}

		if cur.Elevation < stats.MinElevationM {
			stats.MinElevationM = cur.Elevation
		}
		if cur.Elevation > stats.MaxElevationM {
			stats.MaxElevationM = cur.Elevation
		}
	}
	stats.TotalDistanceM = total

	return stats
}
