package repository

import (
	"context"
	"testing"
	"time"

	"farm-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute)

	t.Run("create and get", func(t *testing.T) {
		session := &models.UserSession{ID: "s1", Username: "farmer1", CreatedAt: time.Now()}
		require.NoError(t, repo.CreateSession(ctx, session))
		assert.False(t, session.ExpiresAt.IsZero())

		got, err := repo.GetSession(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "farmer1", got.Username)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := repo.GetSession(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		session := &models.UserSession{ID: "s2", Username: "farmer2"}
		require.NoError(t, repo.CreateSession(ctx, session))
		require.NoError(t, repo.DeleteSession(ctx, "s2"))
		require.NoError(t, repo.DeleteSession(ctx, "s2"))

		_, err := repo.GetSession(ctx, "s2")
		assert.Error(t, err)
	})

	t.Run("rejects incomplete sessions", func(t *testing.T) {
		assert.Error(t, repo.CreateSession(ctx, &models.UserSession{Username: "x"}))
		assert.Error(t, repo.CreateSession(ctx, &models.UserSession{ID: "x"}))
	})
}

func TestMemorySessionExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Millisecond)

	session := &models.UserSession{ID: "short", Username: "farmer1"}
	require.NoError(t, repo.CreateSession(ctx, session))

	time.Sleep(5 * time.Millisecond)
	_, err := repo.GetSession(ctx, "short")
	assert.Error(t, err)
}
