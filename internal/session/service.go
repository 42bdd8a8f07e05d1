package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/kindermann-r/hiking-navigator/internal/proximity"
	"github.com/kindermann-r/hiking-navigator/internal/stream"
	"github.com/kindermann-r/hiking-navigator/internal/track"

	"github.com/google/uuid"
)

type Service struct {
	hub         *stream.Hub
	onRadiusM   float64
	nearRadiusM float64

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewService(hub *stream.Hub, onRadiusM, nearRadiusM float64) *Service {
	return &Service{
		hub:         hub,
		onRadiusM:   onRadiusM,
		nearRadiusM: nearRadiusM,
		sessions:    map[string]*Session{},
	}
}

func (s *Service) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		tracker:   proximity.NewTracker(s.onRadiusM, s.nearRadiusM),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Service) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// LoadTrack decodes doc, installs the result as the session's track and
// retargets the proximity tracker at it. On a decode error the previously
// loaded track stays installed untouched.
func (s *Service) LoadTrack(sessionID, name string, doc []byte, format string) (*track.Track, track.Stats, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return nil, track.Stats{}, err
	}

	var points []track.Point
	switch format {
	case FormatGPX:
		points, err = track.DecodeGPX(doc)
	default:
		points, err = track.Decode(doc)
	}
	if err != nil {
		return nil, track.Stats{}, err
	}

	loaded := &track.Track{
		ID:       uuid.NewString(),
		Name:     name,
		Points:   points,
		LoadedAt: time.Now(),
	}
	stats := track.ComputeStats(points)

	sess.mu.Lock()
	sess.track = loaded
	sess.stats = stats
	sess.tracker.SetTrack(loaded.Polyline())
	snap := sess.tracker.Snapshot()
	sess.mu.Unlock()

	s.broadcast(sessionID, Event{
		Type:      EventTrackLoaded,
		SessionID: sessionID,
		Track:     summarizeTrack(loaded),
		Stats:     &stats,
	})
	// a retained fix produces a result immediately on retarget
	if snap.Result != nil {
		s.broadcast(sessionID, Event{
			Type:      EventProximity,
			SessionID: sessionID,
			State:     snap.State,
			Result:    snap.Result,
		})
	}

	return loaded, stats, nil
}

// TrackWithStats returns the loaded track and its stats.
func (s *Service) TrackWithStats(sessionID string) (*track.Track, track.Stats, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return nil, track.Stats{}, err
	}

	sess.mu.RLock()
	trk, stats := sess.track, sess.stats
	sess.mu.RUnlock()

	if trk == nil {
		return nil, track.Stats{}, ErrNoTrackLoaded
	}
	return trk, stats, nil
}

// ReportFix feeds a position sample into the session. The fix is always
// retained; the result stays nil until a track is loaded.
func (s *Service) ReportFix(sessionID string, fix proximity.Fix) (proximity.Status, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return proximity.Status{}, err
	}

	sess.mu.Lock()
	sess.tracker.ObserveFix(fix)
	snap := sess.tracker.Snapshot()
	sess.mu.Unlock()

	if snap.Result != nil {
		s.broadcast(sessionID, Event{
			Type:      EventProximity,
			SessionID: sessionID,
			State:     snap.State,
			Result:    snap.Result,
		})
	}
	return snap, nil
}

// ReportGpsError records a failure of the GPS source. The last result
// survives flagged stale so the UI can keep showing it.
func (s *Service) ReportGpsError(sessionID, rawCode string) (proximity.Status, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return proximity.Status{}, err
	}

	code := proximity.ClassifyError(rawCode)

	sess.mu.Lock()
	sess.tracker.ObserveError(code)
	snap := sess.tracker.Snapshot()
	sess.mu.Unlock()

	s.broadcast(sessionID, Event{
		Type:      EventGpsError,
		SessionID: sessionID,
		State:     snap.State,
		Code:      code,
		Status:    code.Message(),
		Result:    snap.Result,
	})
	return snap, nil
}

// Proximity returns the tracker's current status.
func (s *Service) Proximity(sessionID string) (proximity.Status, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return proximity.Status{}, err
	}

	sess.mu.RLock()
	defer sess.mu.RUnlock()
	return sess.tracker.Snapshot(), nil
}

// Summary assembles the read model for a session.
func (s *Service) Summary(sessionID string) (Summary, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return Summary{}, err
	}

	sess.mu.RLock()
	defer sess.mu.RUnlock()

	summary := Summary{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		Proximity: sess.tracker.Snapshot(),
	}
	if sess.track != nil {
		summary.Track = summarizeTrack(sess.track)
		stats := sess.stats
		summary.Stats = &stats
	}
	return summary, nil
}

func (s *Service) broadcast(sessionID string, event Event) {
	if s.hub == nil {
		return
	}
	payload, _ := json.Marshal(event)
	s.hub.Broadcast(sessionID, payload)
}

func summarizeTrack(t *track.Track) *TrackSummary {
	return &TrackSummary{
		ID:         t.ID,
		Name:       t.Name,
		PointCount: len(t.Points),
		LoadedAt:   t.LoadedAt,
	}
}
