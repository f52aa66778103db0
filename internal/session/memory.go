package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a process-local Store for tests and redis-less
// development. Sessions never expire; restarting the process logs
// everyone out.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
}

type memorySession struct {
	email   string
	flashes []string
}

// NewMemoryStore constructs an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession)}
}

func (s *MemoryStore) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.sessions[id] = &memorySession{}
	return &Session{ID: id}, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Session{ID: id, Email: sess.email}, nil
}

func (s *MemoryStore) SetIdentity(ctx context.Context, id, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.email = email
	return nil
}

func (s *MemoryStore) ClearIdentity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.email = ""
	}
	return nil
}

func (s *MemoryStore) AddFlash(ctx context.Context, id, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.flashes = append(sess.flashes, message)
	return nil
}

func (s *MemoryStore) PopFlashes(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	flashes := sess.flashes
	sess.flashes = nil
	return flashes, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
