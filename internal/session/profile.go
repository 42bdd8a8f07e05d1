package session

import (
	"fmt"
	"io"

	"github.com/kindermann-r/hiking-navigator/internal/track"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderProfile writes the elevation-over-distance chart as a standalone
// HTML page. The real chart lives in the client app; this page exists so
// a loaded track can be inspected without it.
func renderProfile(w io.Writer, trk *track.Track, stats track.Stats) error {
	xAxis := make([]string, len(trk.Points))
	data := make([]opts.LineData, len(trk.Points))
	for i, p := range trk.Points {
		xAxis[i] = fmt.Sprintf("%.2f", stats.CumulativeKm[i])
		data[i] = opts.LineData{Value: p.Elevation}
	}

	title := trk.Name
	if title == "" {
		title = trk.ID
	}
	subtitle := fmt.Sprintf("%.1f km, +%.0f m / -%.0f m",
		stats.TotalDistanceM/1000, stats.ElevationGainM, stats.ElevationLossM)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     "westeros",
			PageTitle: "Elevation profile",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "km"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m"}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("elevation", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}
