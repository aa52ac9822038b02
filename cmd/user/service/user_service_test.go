package service

import (
	"testing"
	"time"

	"videotube/config"

	"github.com/stretchr/testify/assert"
)

func TestRefreshExpiry(t *testing.T) {
	config.ConfigInfo.Jwt.RefreshExpireDay = 10

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(10*24*time.Hour), refreshExpiry(now))
}
