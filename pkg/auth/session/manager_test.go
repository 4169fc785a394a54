package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	redisclient "github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

func newTestManager(t *testing.T) (*Manager, *redisclient.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisclient.NewFromRaw(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })

	manager, err := NewManager(client, config.JWTConfig{ExpirationMinutes: 60, RefreshTokenTTLMinutes: 120})
	require.NoError(t, err)
	return manager, client, mr
}

func TestNewManagerValidatesTTL(t *testing.T) {
	_, err := NewManager(nil, config.JWTConfig{ExpirationMinutes: 1, RefreshTokenTTLMinutes: 2})
	assert.Error(t, err)

	client := &redisclient.Client{}
	_, err = NewManager(client, config.JWTConfig{ExpirationMinutes: 60, RefreshTokenTTLMinutes: 30})
	assert.Error(t, err)
	_, err = NewManager(client, config.JWTConfig{ExpirationMinutes: 60})
	assert.Error(t, err)
}

func TestManagerGenerateAndRotate(t *testing.T) {
	manager, client, mr := newTestManager(t)
	ctx := context.Background()
	userID := uuid.New()

	token, err := manager.Generate(ctx, userID, "access-123")
	require.NoError(t, err)

	stored, err := mr.Get(client.AccessSessionKey("access-123"))
	require.NoError(t, err)
	assert.NotContains(t, stored, token, "raw refresh token must not be persisted")
	assert.Equal(t, 2*time.Hour, mr.TTL(client.AccessSessionKey("access-123")))

	_, err = manager.Rotate(ctx, "access-123", "wrong")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	rotation, err := manager.Rotate(ctx, "access-123", token)
	require.NoError(t, err)
	assert.Equal(t, userID, rotation.UserID)
	assert.NotEqual(t, "access-123", rotation.AccessID)
	assert.NotEqual(t, token, rotation.RefreshToken)

	ok, err := manager.HasSession(ctx, "access-123")
	require.NoError(t, err)
	assert.False(t, ok, "old session must be gone")

	ok, err = manager.HasSession(ctx, rotation.AccessID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = manager.Rotate(ctx, "access-123", token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken, "refresh tokens are single use")
}

func TestManagerRevoke(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Generate(ctx, uuid.New(), "access-xyz")
	require.NoError(t, err)
	require.NoError(t, manager.Revoke(ctx, "access-xyz"))

	ok, err := manager.HasSession(ctx, "access-xyz")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, manager.Revoke(ctx, " "))
}

func TestManagerSessionExpires(t *testing.T) {
	manager, _, mr := newTestManager(t)
	ctx := context.Background()

	token, err := manager.Generate(ctx, uuid.New(), "access-exp")
	require.NoError(t, err)
	mr.FastForward(3 * time.Hour)

	_, err = manager.Rotate(ctx, "access-exp", token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestGenerateValidatesInput(t *testing.T) {
	manager, _, _ := newTestManager(t)
	_, err := manager.Generate(context.Background(), uuid.Nil, "access")
	assert.Error(t, err)
	_, err = manager.Generate(context.Background(), uuid.New(), "")
	assert.Error(t, err)
}
