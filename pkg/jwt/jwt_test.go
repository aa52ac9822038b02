package jwt

import (
	"context"
	"testing"

	"videotube/config"
	"videotube/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestMiddleware(t *testing.T) {
	t.Helper()
	config.ConfigInfo.Jwt.Secret = "test-secret"
	config.ConfigInfo.Jwt.AccessExpireMin = 60
	require.NoError(t, Init())
}

// Public routes run without AuthMiddleware, so a presented bearer token
// must still resolve to its subject there.
func TestCurrentUserIdWithoutMiddleware(t *testing.T) {
	initTestMiddleware(t)

	token, _, err := GenerateAccessToken(42)
	require.NoError(t, err)

	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	id, err := CurrentUserId(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCurrentUserIdAnonymous(t *testing.T) {
	initTestMiddleware(t)

	id, err := CurrentUserId(context.Background(), app.NewContext(0))
	assert.Zero(t, id)
	assert.True(t, errors.Is(err, errno.TokenInvalidErr))
}

func TestCurrentUserIdGarbageToken(t *testing.T) {
	initTestMiddleware(t)

	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer not-a-jwt")

	id, err := CurrentUserId(context.Background(), c)
	assert.Zero(t, id)
	assert.True(t, errors.Is(err, errno.TokenInvalidErr))
}
