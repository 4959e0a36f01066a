package session

import "sync"

// Session is the aggregate root for one assessment run: an append-only
// log of attempts, exposure events and stress indicators.
//
// Appends take the session mutex so concurrent callers never interleave
// partial writes. Reads return copies, so analysis code always works on
// a fixed snapshot even while appends continue.
type Session struct {
	id string

	mu        sync.Mutex
	attempts  []Attempt
	exposures []Record
	stress    []Record
}

// ID returns the caller-supplied session identifier.
func (s *Session) ID() string { return s.id }

// AppendAttempt logs a task attempt.
func (s *Session) AppendAttempt(a Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, a)
}

// AppendExposure logs an exposure event.
func (s *Session) AppendExposure(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exposures = append(s.exposures, r)
}

// AppendStressIndicator logs a stress indicator.
func (s *Session) AppendStressIndicator(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stress = append(s.stress, r)
}

// Attempts returns a snapshot copy of the attempt log in insertion order.
func (s *Session) Attempts() []Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Exposures returns a snapshot copy of the exposure log.
func (s *Session) Exposures() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.exposures))
	copy(out, s.exposures)
	return out
}

// StressIndicators returns a snapshot copy of the stress indicator log.
func (s *Session) StressIndicators() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.stress))
	copy(out, s.stress)
	return out
}

// AttemptCount returns the number of logged attempts.
func (s *Session) AttemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempts)
}

// Store is the in-memory keyed session map. Lifecycle is caller-managed:
// construct once at startup and inject; sessions are created on first
// reference and never expired by the store itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, or (nil, false) if it was never seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating an empty one on first
// reference. Idempotent; never fails.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = &Session{id: id}
	st.sessions[id] = s
	return s
}

// IDs returns the identifiers of all known sessions.
func (st *Store) IDs() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		out = append(out, id)
	}
	return out
}
