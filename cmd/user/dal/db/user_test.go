package db

import (
	"context"
	"testing"
	"time"

	"videotube/cmd/model"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}))
	Init(gdb)
}

func seedUser(t *testing.T, token string, expiresAt time.Time) *model.User {
	t.Helper()
	user := &model.User{
		Username:         "alice",
		Email:            "alice@example.com",
		FullName:         "Alice",
		Password:         "hashed",
		RefreshToken:     token,
		RefreshExpiresAt: expiresAt,
	}
	require.NoError(t, CreateUser(context.Background(), user))
	return user
}

func TestGetUserByRefreshTokenHonorsExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("live token resolves", func(t *testing.T) {
		setupTestDB(t)
		seeded := seedUser(t, "tok-live", time.Now().Add(time.Hour))

		user, err := GetUserByRefreshToken(ctx, "tok-live")
		require.NoError(t, err)
		assert.Equal(t, seeded.UserId, user.UserId)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		setupTestDB(t)
		seedUser(t, "tok-stale", time.Now().Add(-time.Hour))

		_, err := GetUserByRefreshToken(ctx, "tok-stale")
		assert.True(t, errors.Is(err, errno.TokenInvalidErr))
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		setupTestDB(t)
		_, err := GetUserByRefreshToken(ctx, "tok-missing")
		assert.True(t, errors.Is(err, errno.TokenInvalidErr))
	})
}

func TestUpdateRefreshTokenRevocation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seeded := seedUser(t, "tok-live", time.Now().Add(time.Hour))

	// Logging out clears the token and zeroes the expiry so the old
	// value can never resolve again.
	require.NoError(t, UpdateRefreshToken(ctx, seeded.UserId, "", time.Time{}))

	_, err := GetUserByRefreshToken(ctx, "tok-live")
	assert.True(t, errors.Is(err, errno.TokenInvalidErr))

	stored, err := GetUserById(ctx, seeded.UserId)
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshToken)
}
