package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var janitorInterval = time.Minute

// Store keeps sessions in memory and evicts the ones that have been idle for
// longer than the TTL. Find and Save work on copies, so handlers can mutate a
// session freely and persist it with an explicit Save.
type Store interface {
	Create() *Session
	Find(id uuid.UUID) (*Session, bool)
	Save(sess *Session)
	Start(ctx context.Context)
	Stop()
}

type store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *zap.Logger
	wg       sync.WaitGroup
	stopChan chan struct{}
}

func NewStore(ttl time.Duration, logger *zap.Logger) Store {
	return &store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Create implements Store.
func (s *store) Create() *Session {
	sess := &Session{
		ID:        uuid.New(),
		Phase:     PhaseIdle,
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.ID] = &clone

	s.logger.Debug("session created", zap.String("session_id", sess.ID.String()))
	return sess
}

// Find implements Store.
func (s *store) Find(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	clone := *sess
	return &clone, true
}

// Save implements Store.
func (s *store) Save(sess *Session) {
	sess.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.ID] = &clone
}

// Start implements Store.
func (s *store) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.evictLoop(ctx)
}

// Stop implements Store.
func (s *store) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

func (s *store) evictLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	s.logger.Info("session janitor started", zap.Duration("ttl", s.ttl))

	for {
		select {
		case <-s.stopChan:
			s.logger.Info("session janitor stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictExpired(time.Now())
		}
	}
}

// evictExpired drops every session that has been idle past the TTL.
func (s *store) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
			s.logger.Debug("evicted idle session", zap.String("session_id", id.String()))
		}
	}
}
