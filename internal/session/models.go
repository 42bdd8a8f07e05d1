package session

import (
	"errors"
	"sync"
	"time"

	"github.com/kindermann-r/hiking-navigator/internal/proximity"
	"github.com/kindermann-r/hiking-navigator/internal/track"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoTrackLoaded   = errors.New("no track loaded")
)

// Track upload formats. Anything but gpx is treated as JSON.
const (
	FormatJSON = "json"
	FormatGPX  = "gpx"
)

// Session is one navigation context: at most one loaded track plus the
// live proximity tracker evaluating fixes against it. The mutex
// serializes track swaps against fix processing and readers.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.RWMutex
	track   *track.Track
	stats   track.Stats
	tracker *proximity.Tracker
}

// Summary is the read model for a session.
type Summary struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Track     *TrackSummary    `json:"track,omitempty"`
	Stats     *track.Stats     `json:"stats,omitempty"`
	Proximity proximity.Status `json:"proximity"`
}

// TrackSummary describes a loaded track without its points.
type TrackSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	PointCount int       `json:"point_count"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// Event types pushed to stream listeners.
const (
	EventTrackLoaded = "track_loaded"
	EventProximity   = "proximity"
	EventGpsError    = "gps_error"
)

// Event is the envelope broadcast over the session's stream channel.
type Event struct {
	Type      string              `json:"type"`
	SessionID string              `json:"session_id"`
	Track     *TrackSummary       `json:"track,omitempty"`
	Stats     *track.Stats        `json:"stats,omitempty"`
	State     proximity.State     `json:"state,omitempty"`
	Code      proximity.ErrorCode `json:"code,omitempty"`
	Status    string              `json:"status,omitempty"`
	Result    *proximity.Result   `json:"result,omitempty"`
}
