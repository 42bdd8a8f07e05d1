package proximity

// Band buckets a trail distance for the navigation indicator. A distance
// exactly on a boundary belongs to the outer band.
type Band string

const (
	BandOnTrail   Band = "on_trail"
	BandNearTrail Band = "near_trail"
	BandOffTrail  Band = "off_trail"
)

// Default banding radii in meters.
const (
	DefaultOnTrailRadiusM   = 50.0
	DefaultNearTrailRadiusM = 200.0
)

// State of the GPS subsystem as seen by the tracker.
type State string

const (
	StateNoFix    State = "no_fix"
	StateTracking State = "tracking"
	StateErrored  State = "errored"
)

// ErrorCode classifies a GPS subsystem failure.
type ErrorCode string

const (
	ErrPermissionDenied    ErrorCode = "permission_denied"
	ErrPositionUnavailable ErrorCode = "position_unavailable"
	ErrTimeout             ErrorCode = "timeout"
	ErrUnknown             ErrorCode = "unknown"
)

// ClassifyError maps a raw error code from the GPS source onto the known
// set. Anything unrecognized comes back as ErrUnknown.
func ClassifyError(code string) ErrorCode {
	switch c := ErrorCode(code); c {
	case ErrPermissionDenied, ErrPositionUnavailable, ErrTimeout:
		return c
	default:
		return ErrUnknown
	}
}

// Message returns the status line shown for this error code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrPermissionDenied:
		return "location permission denied"
	case ErrPositionUnavailable:
		return "position unavailable"
	case ErrTimeout:
		return "gps timeout"
	default:
		return "gps error"
	}
}

// Fix is a position sample. Each new fix supersedes the previous one.
type Fix struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	AccuracyM float64 `json:"accuracy_m,omitempty"`
}

// Result pairs the nearest-trail distance with its band. Stale marks a
// result retained from before the latest GPS failure.
type Result struct {
	DistanceM float64 `json:"distance_m"`
	Band      Band    `json:"band"`
	Stale     bool    `json:"stale"`
}

// Status is a point-in-time copy of the tracker for readers. Fix and
// Result are nil until a sample arrives and a track is loaded.
type Status struct {
	State  State     `json:"state"`
	Code   ErrorCode `json:"code,omitempty"`
	Fix    *Fix      `json:"fix,omitempty"`
	Result *Result   `json:"result,omitempty"`
}
