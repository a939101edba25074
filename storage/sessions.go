package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/explainer"
)

// ErrNotFound is returned when a session id is unknown or has expired.
var ErrNotFound = errors.New("not found")

// DefaultSessionTTL is how long an idle explainer session is kept.
const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxSessions caps the number of open sessions.
const DefaultMaxSessions = 1000

type session struct {
	exp      *explainer.Explainer
	lastSeen time.Time
	lastTick time.Time
}

// SessionStore owns every open explainer, one per page view or overlay.
// All access to an explainer goes through the store's lock.
type SessionStore struct {
	path string
	ttl  time.Duration
	max  int
	log  *zap.Logger
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore returns an empty store. If path is non-empty, Save and
// Load persist the stage of each session there as JSON.
func NewSessionStore(path string, ttl time.Duration, log *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Warn("could not create session directory", zap.String("path", path), zap.Error(err))
		}
	}
	return &SessionStore{
		path:     path,
		ttl:      ttl,
		max:      DefaultMaxSessions,
		log:      log,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

// SetMaxSessions changes the session cap. Values below 1 restore the
// default.
func (s *SessionStore) SetMaxSessions(n int) {
	if n < 1 {
		n = DefaultMaxSessions
	}
	s.mu.Lock()
	s.max = n
	s.evictLocked(0)
	s.mu.Unlock()
}

// Create mounts a new explainer at stage 0 and returns its id and view.
// When the store is full the least recently seen session is evicted.
func (s *SessionStore) Create(p explainer.Presentation) (string, explainer.View) {
	id := uuid.NewString()
	e := explainer.New(p)

	s.mu.Lock()
	s.evictLocked(1)
	now := s.now()
	s.sessions[id] = &session{exp: e, lastSeen: now, lastTick: now}
	s.mu.Unlock()

	s.log.Debug("explainer session created", zap.String("id", id), zap.String("presentation", string(p)))
	return id, e.View()
}

// Get returns the current view of a session.
func (s *SessionStore) Get(id string) (explainer.View, error) {
	var v explainer.View
	err := s.with(id, func(e *explainer.Explainer) { v = e.View() })
	return v, err
}

// Update applies fn to the session's explainer and returns the new view.
func (s *SessionStore) Update(id string, fn func(*explainer.Explainer)) (explainer.View, error) {
	var v explainer.View
	err := s.with(id, func(e *explainer.Explainer) {
		fn(e)
		v = e.View()
	})
	return v, err
}

// Tick advances the session's displayed frame by the time since its last
// tick and returns the frame and its scene. The clock is kept per session,
// so any number of streams on one session move it at real-time speed.
func (s *SessionStore) Tick(id string) (explainer.Frame, explainer.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		return explainer.Frame{}, explainer.Scene{}, err
	}
	now := s.now()
	elapsed := now.Sub(sess.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	sess.lastTick = now
	sess.lastSeen = now
	return sess.exp.Tick(elapsed), sess.exp.Scene(), nil
}

// Delete unmounts a session.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// Len is the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.Debug("swept idle explainer sessions", zap.Int("count", n))
	}
	return n
}

func (s *SessionStore) with(id string, fn func(*explainer.Explainer)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		return err
	}
	sess.lastSeen = s.now()
	fn(sess.exp)
	return nil
}

func (s *SessionStore) lookupLocked(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok || sess.lastSeen.Before(s.now().Add(-s.ttl)) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return sess, nil
}

// evictLocked makes room for extra more sessions: expired sessions go
// first, then the least recently seen ones.
func (s *SessionStore) evictLocked(extra int) {
	if len(s.sessions)+extra <= s.max {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	evicted := 0
	for len(s.sessions)+extra > s.max && len(s.sessions) > 0 {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, sess := range s.sessions {
			if oldestID == "" || sess.lastSeen.Before(oldest) {
				oldestID, oldest = id, sess.lastSeen
			}
		}
		delete(s.sessions, oldestID)
		evicted++
	}
	if evicted > 0 {
		s.log.Debug("evicted explainer sessions", zap.Int("count", evicted), zap.Int("max", s.max))
	}
}

type savedSession struct {
	Presentation explainer.Presentation `json:"presentation"`
	Stage        int                    `json:"stage"`
	LastSeen     time.Time              `json:"lastSeen"`
}

// Save writes the stage of every open session to disk. Displayed frames are
// not kept; a restored session eases in from the initial frame.
func (s *SessionStore) Save() error {
	if s.path == "" {
		return nil
	}
	s.mu.Lock()
	out := make(map[string]savedSession, len(s.sessions))
	for id, sess := range s.sessions {
		out[id] = savedSession{
			Presentation: sess.exp.Presentation,
			Stage:        sess.exp.Stage(),
			LastSeen:     sess.lastSeen,
		}
	}
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write sessions: %w", err)
	}
	return nil
}

// Load restores sessions written by Save. A missing file is not an error;
// an unreadable one is logged and ignored.
func (s *SessionStore) Load() int {
	if s.path == "" {
		return 0
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read sessions", zap.String("path", s.path), zap.Error(err))
		}
		return 0
	}
	var in map[string]savedSession
	if err := json.Unmarshal(data, &in); err != nil {
		s.log.Warn("invalid sessions JSON", zap.String("path", s.path), zap.Error(err))
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	cutoff := now.Add(-s.ttl)
	for id, saved := range in {
		if saved.LastSeen.Before(cutoff) {
			continue
		}
		e := explainer.New(explainer.ParsePresentation(string(saved.Presentation)))
		for i := 0; i < explainer.ClampStage(saved.Stage); i++ {
			e.Advance()
		}
		s.sessions[id] = &session{exp: e, lastSeen: saved.LastSeen, lastTick: now}
	}
	s.evictLocked(0)
	return len(s.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.Sweep()
		}
	}
}
