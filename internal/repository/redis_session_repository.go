package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farm-advisor/internal/models"

	"github.com/redis/go-redis/v9"
)

// redisSessionRepository stores sessions in Redis so they survive process
// restarts. Selected when REDIS_ADDR is configured.
type redisSessionRepository struct {
	client     *redis.Client
	expiration time.Duration
}

func NewRedisSessionRepository(client *redis.Client, expiration time.Duration) SessionRepository {
	return &redisSessionRepository{
		client:     client,
		expiration: expiration,
	}
}

func (r *redisSessionRepository) CreateSession(ctx context.Context, session *models.UserSession) error {
	if session.ID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if session.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	session.ExpiresAt = time.Now().Add(r.expiration)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(session.ID), data, r.expiration).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID cannot be empty")
	}

	data, err := r.client.Get(ctx, r.sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.UserSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		r.DeleteSession(ctx, sessionID)
		return nil, fmt.Errorf("session expired")
	}
	return &session, nil
}

func (r *redisSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if err := r.client.Del(ctx, r.sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
