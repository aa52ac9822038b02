package db

import (
	"context"
	"testing"

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
	require.NoError(t, gdb.AutoMigrate(&model.Playlist{}, &model.PlaylistVideo{}))
	Init(gdb)
}

func TestDeletePlaylistRemovesMemberships(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	playlist := &model.Playlist{UserId: 7, Name: "watch later"}
	require.NoError(t, CreatePlaylist(ctx, playlist))

	store := NewMemberStore()
	require.NoError(t, store.AddVideo(ctx, playlist.PlaylistId, 100))
	require.NoError(t, store.AddVideo(ctx, playlist.PlaylistId, 101))

	require.NoError(t, DeletePlaylist(ctx, playlist.PlaylistId, 7))

	var playlists, memberships int64
	require.NoError(t, DB.Model(&model.Playlist{}).Count(&playlists).Error)
	require.NoError(t, DB.Model(&model.PlaylistVideo{}).Count(&memberships).Error)
	assert.Zero(t, playlists)
	assert.Zero(t, memberships)
}

func TestDeletePlaylistWrongOwnerKeepsMemberships(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	playlist := &model.Playlist{UserId: 7, Name: "watch later"}
	require.NoError(t, CreatePlaylist(ctx, playlist))
	require.NoError(t, NewMemberStore().AddVideo(ctx, playlist.PlaylistId, 100))

	err := DeletePlaylist(ctx, playlist.PlaylistId, 8)
	assert.True(t, errors.Is(err, errno.NotFoundErr))

	// The transaction rolled back, nothing was deleted.
	var memberships int64
	require.NoError(t, DB.Model(&model.PlaylistVideo{}).Count(&memberships).Error)
	assert.Equal(t, int64(1), memberships)
}
