// Package api - Form instance sessions
// Each form instance owns one validation engine. The store hands out an
// instance under its own lock so events for it are applied one at a time.
package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kitchhub/core/form"
)

// session is one form instance
type session struct {
	mu       sync.Mutex
	form     *form.Engine
	lastSeen time.Time
}

// SessionStore keeps form instances in memory
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	newForm  func() *form.Engine
	idleTTL  time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store; instances idle longer than idleTTL are dropped
func NewSessionStore(newForm func() *form.Engine, idleTTL time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		newForm:  newForm,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create starts a new form instance
func (s *SessionStore) Create() (uuid.UUID, *form.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictIdleLocked()

	id := uuid.New()
	sess := &session{form: s.newForm(), lastSeen: s.now()}
	s.sessions[id] = sess
	return id, sess.form
}

// With runs fn with exclusive access to the instance's engine.
// It returns false if the instance does not exist.
func (s *SessionStore) With(id uuid.UUID, fn func(*form.Engine)) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess.form)
	return true
}

// Delete discards an instance
func (s *SessionStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of live instances
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) evictIdleLocked() {
	if s.idleTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.idleTTL)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
