package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmed-advisor/advisor-backend/internal/advisor/domain"
)

// Session is the server-side view state of one browser client: the
// visible screen plus the data the screens share. No ambient globals;
// everything a screen needs lives here.
type Session struct {
	ID        string                  `json:"id"`
	View      View                    `json:"view"`
	Profile   *domain.UserProfile     `json:"profile,omitempty"`
	Plan      *domain.AdvisorResponse `json:"plan,omitempty"`
	Saved     bool                    `json:"saved"`
	LastError string                  `json:"lastError,omitempty"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Store keeps sessions in memory, keyed by id. Handlers mutate a
// session only through Update, so each step is a single synchronous
// unit and concurrent requests for one session cannot interleave
// half-applied state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a new session at the HOME view.
func (s *Store) Create() Session {
	sess := &Session{
		ID:        uuid.New().String(),
		View:      ViewHome,
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	return *sess, nil
}

// Update applies fn to the session under the store lock and returns
// the resulting snapshot. When fn errors the session is untouched.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}

	working := *sess
	if err := fn(&working); err != nil {
		return *sess, err
	}
	working.UpdatedAt = time.Now()
	*sess = working
	return working, nil
}

// Prune drops sessions idle for longer than ttl and reports how many
// were removed.
func (s *Store) Prune(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
