package service

import (
	"context"
	"sync"
	"testing"

	"videotube/cmd/model"
	"videotube/cmd/playlist/dal/db"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type membership struct {
	playlistId int64
	videoId    int64
}

// memMemberStore mirrors the membership table's composite unique index
// and position ordering.
type memMemberStore struct {
	mu      sync.Mutex
	entries []membership
}

func (s *memMemberStore) AddVideo(ctx context.Context, playlistId, videoId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.playlistId == playlistId && e.videoId == videoId {
			return errno.ConflictErr.WithMessage("video already in playlist")
		}
	}
	s.entries = append(s.entries, membership{playlistId, videoId})
	return nil
}

func (s *memMemberStore) RemoveVideo(ctx context.Context, playlistId, videoId int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.playlistId == playlistId && e.videoId == videoId {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memMemberStore) VideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0)
	for _, e := range s.entries {
		if e.playlistId == playlistId {
			ids = append(ids, e.videoId)
		}
	}
	return ids, nil
}

func (s *memMemberStore) CountForPlaylists(ctx context.Context, playlistIds []int64) (map[int64]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[int64]int64, len(playlistIds))
	for _, id := range playlistIds {
		for _, e := range s.entries {
			if e.playlistId == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

var _ db.MemberStore = (*memMemberStore)(nil)

func newTestPlaylistService(store db.MemberStore, owned *model.Playlist) *PlaylistService {
	return &PlaylistService{
		ctx:     context.Background(),
		members: store,
		videoCheck: func(ctx context.Context, videoId int64) (bool, error) {
			return true, nil
		},
		byId: func(ctx context.Context, playlistId int64) (*model.Playlist, error) {
			if owned == nil || owned.PlaylistId != playlistId {
				return nil, errno.NotFoundErr.WithMessage("playlist not found")
			}
			return owned, nil
		},
	}
}

func TestAddVideoDuplicateConflict(t *testing.T) {
	store := &memMemberStore{}
	playlist := &model.Playlist{PlaylistId: 1, UserId: 7}
	svc := newTestPlaylistService(store, playlist)
	ctx := context.Background()

	require.NoError(t, svc.AddVideo(ctx, 7, 1, 100))

	// The second add of the same video must conflict and leave the
	// membership set unchanged.
	err := svc.AddVideo(ctx, 7, 1, 100)
	assert.True(t, errors.Is(err, errno.ConflictErr))

	ids, err := store.VideoIds(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)
}

func TestAddVideoOwnershipAndExistence(t *testing.T) {
	playlist := &model.Playlist{PlaylistId: 1, UserId: 7}

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc := newTestPlaylistService(&memMemberStore{}, playlist)
		err := svc.AddVideo(context.Background(), 8, 1, 100)
		assert.True(t, errors.Is(err, errno.AuthorizationErr))
	})

	t.Run("missing playlist is 404", func(t *testing.T) {
		svc := newTestPlaylistService(&memMemberStore{}, playlist)
		err := svc.AddVideo(context.Background(), 7, 2, 100)
		assert.True(t, errors.Is(err, errno.NotFoundErr))
	})

	t.Run("missing video is 404", func(t *testing.T) {
		svc := newTestPlaylistService(&memMemberStore{}, playlist)
		svc.videoCheck = func(ctx context.Context, videoId int64) (bool, error) {
			return false, nil
		}
		err := svc.AddVideo(context.Background(), 7, 1, 100)
		assert.True(t, errors.Is(err, errno.NotFoundErr))
	})
}

func TestRemoveVideoNotInPlaylist(t *testing.T) {
	playlist := &model.Playlist{PlaylistId: 1, UserId: 7}
	svc := newTestPlaylistService(&memMemberStore{}, playlist)

	err := svc.RemoveVideo(context.Background(), 7, 1, 100)
	assert.True(t, errors.Is(err, errno.ParamErr))
}
