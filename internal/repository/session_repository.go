package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"farm-advisor/internal/models"
)

// SessionRepository stores the server-side session bindings.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.UserSession) error
	GetSession(ctx context.Context, sessionID string) (*models.UserSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// memorySessionRepository keeps sessions in-process. It is the default store
// for the single-process deployment; a Redis-backed store can be selected via
// configuration when sessions must survive restarts.
type memorySessionRepository struct {
	expiration time.Duration

	mu       sync.RWMutex
	sessions map[string]models.UserSession
}

func NewMemorySessionRepository(expiration time.Duration) SessionRepository {
	return &memorySessionRepository{
		expiration: expiration,
		sessions:   make(map[string]models.UserSession),
	}
}

func (r *memorySessionRepository) CreateSession(ctx context.Context, session *models.UserSession) error {
	if session.ID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if session.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	session.ExpiresAt = time.Now().Add(r.expiration)

	r.mu.Lock()
	r.sessions[session.ID] = *session
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) GetSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID cannot be empty")
	}

	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session not found")
	}

	if time.Now().After(session.ExpiresAt) {
		r.DeleteSession(ctx, sessionID)
		return nil, fmt.Errorf("session expired")
	}
	return &session, nil
}

func (r *memorySessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	return nil
}
