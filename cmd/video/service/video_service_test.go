package service

import (
	"testing"

	"videotube/cmd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleVideoInfosMissingOwner(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 1, UserId: 7, Title: "first", Views: 12},
		{VideoId: 2, UserId: 8, Title: "orphaned", Views: 3},
	}
	owners := map[int64]*model.UserInfo{
		7: {UserId: 7, Username: "alice"},
	}

	infos, err := assembleVideoInfos(videos, owners)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	require.NotNil(t, infos[0].Owner)
	assert.Equal(t, "alice", infos[0].Owner.Username)

	// A video whose owner row is gone is still returned, with the owner
	// collapsed to nil rather than dropped.
	assert.Equal(t, int64(2), infos[1].VideoId)
	assert.Equal(t, "orphaned", infos[1].Title)
	assert.Nil(t, infos[1].Owner)
}

func TestAssembleVideoInfosCopiesFields(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 5, UserId: 9, Title: "clip", Description: "d", Duration: 12.5, Views: 42, IsPublished: true},
	}

	infos, err := assembleVideoInfos(videos, map[int64]*model.UserInfo{})
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, int64(5), info.VideoId)
	assert.Equal(t, "clip", info.Title)
	assert.Equal(t, "d", info.Description)
	assert.Equal(t, 12.5, info.Duration)
	assert.Equal(t, int64(42), info.Views)
	assert.True(t, info.IsPublished)
	assert.Nil(t, info.Owner)
}
