package gameService

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a pending rock-paper-scissors challenge: the challenger and
// their hidden object, waiting for someone to accept.
type Session struct {
	ID           string
	ChallengerID string
	Object       string
	CreatedAt    time.Time
}

// Store keeps challenge sessions keyed by ID with a TTL. Challenges nobody
// accepts get evicted instead of accumulating forever. Safe for concurrent
// use from discordgo's event goroutines.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Put registers a new challenge and returns its session, keyed by a fresh
// UUID.
func (st *Store) Put(challengerID, object string) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpired(time.Now())

	session := Session{
		ID:           uuid.NewString(),
		ChallengerID: challengerID,
		Object:       object,
		CreatedAt:    time.Now(),
	}
	st.sessions[session.ID] = session

	return session
}

func (st *Store) Get(id string) (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpired(time.Now())

	session, ok := st.sessions[id]
	return session, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

func (st *Store) evictExpired(now time.Time) {
	for id, session := range st.sessions {
		if now.Sub(session.CreatedAt) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
