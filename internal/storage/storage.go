package storage

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/samosastudio/samosa/internal/models"
)

// HistoryStore keeps generated images per browser session, newest first.
// At most maxSessions sessions are held; the least recently used one is
// dropped to make room. Nothing is persisted; a restart clears every session.
type HistoryStore struct {
	sessions *lru.Cache
	limit    int
	mu       sync.Mutex
}

func New(limit, maxSessions int) *HistoryStore {
	return &HistoryStore{
		sessions: lru.New(maxSessions),
		limit:    limit,
	}
}

func (s *HistoryStore) Get(sessionID string) []models.GeneratedImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.history(sessionID)
	result := make([]models.GeneratedImage, len(history))
	copy(result, history)
	return result
}

// Prepend adds image to the front of the session history, dropping the
// oldest entries past the limit.
func (s *HistoryStore) Prepend(sessionID string, image models.GeneratedImage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append([]models.GeneratedImage{image}, s.history(sessionID)...)
	if s.limit > 0 && len(history) > s.limit {
		history = history[:s.limit]
	}
	s.sessions.Add(sessionID, history)
}

func (s *HistoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(sessionID)
}

// Len returns the number of sessions holding history
func (s *HistoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

// history must be called with mu held; lru.Get reorders the cache.
func (s *HistoryStore) history(sessionID string) []models.GeneratedImage {
	if v, ok := s.sessions.Get(sessionID); ok {
		return v.([]models.GeneratedImage)
	}
	return nil
}
