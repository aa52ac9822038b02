package service

import (
	"context"
	"sync"
	"testing"

	"videotube/cmd/model"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLikeStore is an in-memory LikeStore with unique-index semantics:
// creating an existing edge returns ConflictErr, like the real table.
type memLikeStore struct {
	mu    sync.Mutex
	edges map[model.Like]bool
}

func newMemLikeStore() *memLikeStore {
	return &memLikeStore{edges: make(map[model.Like]bool)}
}

func (s *memLikeStore) key(userId int64, targetType string, targetId int64) model.Like {
	return model.Like{UserId: userId, TargetType: targetType, TargetId: targetId}
}

func (s *memLikeStore) Exists(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges[s.key(userId, targetType, targetId)], nil
}

func (s *memLikeStore) Create(ctx context.Context, like *model.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(like.UserId, like.TargetType, like.TargetId)
	if s.edges[k] {
		return errno.ConflictErr.WithMessage("like already exists")
	}
	s.edges[k] = true
	return nil
}

func (s *memLikeStore) Delete(ctx context.Context, userId int64, targetType string, targetId int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(userId, targetType, targetId)
	if !s.edges[k] {
		return 0, nil
	}
	delete(s.edges, k)
	return 1, nil
}

func (s *memLikeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.edges)
}

func targetAlwaysThere(ctx context.Context, id int64) (bool, error) {
	return true, nil
}

func newTestLikeService(store LikeStore) *LikeService {
	return &LikeService{
		ctx:   context.Background(),
		store: store,
		targets: map[string]TargetChecker{
			model.TargetTypeVideo:   targetAlwaysThere,
			model.TargetTypeComment: targetAlwaysThere,
			model.TargetTypeTweet: func(ctx context.Context, id int64) (bool, error) {
				return false, nil
			},
		},
	}
}

func TestToggleParity(t *testing.T) {
	store := newMemLikeStore()
	svc := newTestLikeService(store)
	ctx := context.Background()

	// An odd number of toggles lands on liked, an even number on not.
	for i := 0; i < 5; i++ {
		liked, err := svc.Toggle(ctx, 1, model.TargetTypeVideo, 10)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 0, liked, "toggle %d", i+1)
	}
	assert.Equal(t, 1, store.count())

	liked, err := svc.Toggle(ctx, 1, model.TargetTypeVideo, 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, store.count())
}

func TestToggleUnknownTargetType(t *testing.T) {
	svc := newTestLikeService(newMemLikeStore())
	_, err := svc.Toggle(context.Background(), 1, "channel", 10)
	assert.True(t, errors.Is(err, errno.ParamErr))
}

func TestToggleMissingTarget(t *testing.T) {
	svc := newTestLikeService(newMemLikeStore())
	_, err := svc.Toggle(context.Background(), 1, model.TargetTypeTweet, 99)
	assert.True(t, errors.Is(err, errno.NotFoundErr))
}

// conflictStore reports the edge as absent but refuses the create, the
// shape a lost toggle race takes at the store.
type conflictStore struct {
	memLikeStore
}

func (s *conflictStore) Exists(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	return false, nil
}

func (s *conflictStore) Create(ctx context.Context, like *model.Like) error {
	return errno.ConflictErr.WithMessage("like already exists")
}

func TestToggleConvergesOnLostRace(t *testing.T) {
	store := &conflictStore{memLikeStore{edges: make(map[model.Like]bool)}}
	svc := newTestLikeService(store)

	liked, err := svc.Toggle(context.Background(), 1, model.TargetTypeVideo, 10)
	require.NoError(t, err)
	assert.True(t, liked, "a duplicate-key create means the edge is on")
}

func TestToggleEdgesAreIndependent(t *testing.T) {
	store := newMemLikeStore()
	svc := newTestLikeService(store)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 1, model.TargetTypeVideo, 10)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 2, model.TargetTypeVideo, 10)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 1, model.TargetTypeComment, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, store.count())

	// Untoggling one user's edge leaves the others alone.
	liked, err := svc.Toggle(ctx, 1, model.TargetTypeVideo, 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 2, store.count())
}
