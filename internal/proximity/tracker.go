package proximity

import "github.com/kindermann-r/hiking-navigator/internal/shared/geo"

// Tracker evaluates live fixes against the loaded trail polyline. It runs
// no goroutines and does no locking; the owning session serializes calls.
type Tracker struct {
	onRadiusM   float64
	nearRadiusM float64

	line   []geo.Point
	state  State
	code   ErrorCode
	fix    *Fix
	result *Result
}

func NewTracker(onRadiusM, nearRadiusM float64) *Tracker {
	if onRadiusM <= 0 {
		onRadiusM = DefaultOnTrailRadiusM
	}
	if nearRadiusM <= 0 {
		nearRadiusM = DefaultNearTrailRadiusM
	}
	return &Tracker{
		onRadiusM:   onRadiusM,
		nearRadiusM: nearRadiusM,
		state:       StateNoFix,
	}
}

// BandFor buckets a distance. Boundary values fall into the outer band.
func (t *Tracker) BandFor(distanceM float64) Band {
	switch {
	case distanceM < t.onRadiusM:
		return BandOnTrail
	case distanceM < t.nearRadiusM:
		return BandNearTrail
	default:
		return BandOffTrail
	}
}

// SetTrack retargets proximity at a new polyline. A retained fix is
// re-evaluated immediately instead of waiting for the next GPS update.
func (t *Tracker) SetTrack(line []geo.Point) {
	t.line = line
	if len(line) == 0 {
		t.result = nil
		return
	}
	if t.fix != nil {
		t.evaluate()
	}
}

// ObserveFix records the latest sample and recomputes the result. Without
// a loaded track the fix is still retained but the result stays nil.
func (t *Tracker) ObserveFix(f Fix) *Result {
	t.fix = &f
	t.state = StateTracking
	t.code = ""

	if len(t.line) == 0 {
		t.result = nil
		return nil
	}
	t.evaluate()
	return t.resultCopy()
}

// ObserveError moves the tracker to StateErrored. The previous fix and
// result survive, with the result flagged stale.
func (t *Tracker) ObserveError(code ErrorCode) *Result {
	t.state = StateErrored
	t.code = code
	if t.result != nil {
		t.result.Stale = true
	}
	return t.resultCopy()
}

// Snapshot returns a copy readers can hold without further coordination.
func (t *Tracker) Snapshot() Status {
	status := Status{State: t.state, Code: t.code}
	if t.fix != nil {
		f := *t.fix
		status.Fix = &f
	}
	status.Result = t.resultCopy()
	return status
}

func (t *Tracker) evaluate() {
	probe := geo.Point{Lat: t.fix.Lat, Lon: t.fix.Lon}
	d, err := geo.NearestDistanceToPolyline(probe, t.line)
	if err != nil {
		t.result = nil
		return
	}
	t.result = &Result{
		DistanceM: d,
		Band:      t.BandFor(d),
		Stale:     t.state == StateErrored,
	}
}

func (t *Tracker) resultCopy() *Result {
	if t.result == nil {
		return nil
	}
	r := *t.result
	return &r
}
